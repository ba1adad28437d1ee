package stream

import (
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"voxelstream/internal/meshing"
	"voxelstream/internal/profiling"
	"voxelstream/internal/voxel"
)

// Generator produces the voxel contents of a chunk. Implementations must be
// safe for concurrent calls; the manager invokes them from pool workers.
type Generator interface {
	Generate(coord voxel.Coord) *voxel.Chunk
}

// State tracks where a chunk is in its streaming lifecycle. A coordinate
// with no entry at all is unloaded.
type State uint8

const (
	// StateGenerating means a generation job is queued or running.
	StateGenerating State = iota
	// StateMeshing means voxel data is present and a mesh is pending,
	// queued, or running.
	StateMeshing
	// StateReady means a mesh has been handed to the render feeder.
	StateReady
	// StatePendingUnload means the chunk left the unload radius and its
	// GPU resources await release.
	StatePendingUnload
)

// Options tunes the streaming manager.
type Options struct {
	// LoadRadius is the chunk-grid radius within which chunks are
	// requested. UnloadRadius must be strictly larger; the band between
	// the two is the hysteresis zone where nothing is loaded or freed.
	LoadRadius   int
	UnloadRadius int

	// MaxInFlight caps generation plus meshing jobs submitted at once.
	MaxInFlight int

	// UploadsPerFrame caps meshes handed out per TakeUploads call so a
	// burst of finished work cannot stall a frame on GPU uploads.
	UploadsPerFrame int

	// MeshWait is how long a generated chunk waits for its six neighbors
	// before being meshed against whatever is present. Chunks meshed
	// early are remeshed when the missing neighbors arrive.
	MeshWait time.Duration
}

func (o Options) withDefaults() Options {
	if o.LoadRadius <= 0 {
		o.LoadRadius = 6
	}
	if o.UnloadRadius <= o.LoadRadius {
		o.UnloadRadius = o.LoadRadius + 2
	}
	if o.MaxInFlight <= 0 {
		o.MaxInFlight = 64
	}
	if o.UploadsPerFrame <= 0 {
		o.UploadsPerFrame = 256
	}
	if o.MeshWait <= 0 {
		o.MeshWait = 250 * time.Millisecond
	}
	return o
}

// Upload carries a finished mesh to the render feeder.
type Upload struct {
	Coord voxel.Coord
	Mesh  meshing.Mesh
}

// Stats aggregates streaming activity. Quads and MeshBytes total over every
// mesh accepted for upload, remeshes included.
type Stats struct {
	Generated int
	Meshed    int
	Loaded    int
	InFlight  int
	Uploaded  int
	Unloaded  int
	Quads     int
	MeshBytes int
}

type genResult struct {
	coord voxel.Coord
	chunk *voxel.Chunk
}

type meshResult struct {
	coord voxel.Coord
	mesh  meshing.Mesh
	sides uint8
}

type entry struct {
	state       State
	chunk       *voxel.Chunk
	queued      bool  // a mesh job for this coord is queued or running
	remesh      bool  // a neighbor arrived after the current mesh was built
	meshedSides uint8 // neighbor mask the delivered mesh was built from
	waiting     time.Time
}

// Manager drives chunk streaming around a moving viewpoint. All methods must
// be called from a single goroutine (the frame loop); workers communicate
// only through the buffered result channels drained in Update.
type Manager struct {
	opts Options
	gen  Generator
	pool *Pool

	entries map[voxel.Coord]*entry
	offsets []voxel.Coord // load-radius ball, sorted nearest first
	center  voxel.Coord

	genResults  chan genResult
	meshResults chan meshResult
	inFlight    int

	uploads []Upload
	unloads []voxel.Coord

	stats Stats
}

// NewManager creates a streaming manager over the given generator and pool.
func NewManager(gen Generator, pool *Pool, opts Options) *Manager {
	opts = opts.withDefaults()
	m := &Manager{
		opts:    opts,
		gen:     gen,
		pool:    pool,
		entries: make(map[voxel.Coord]*entry),
		// Buffered past MaxInFlight so worker sends never block even if
		// Update is not draining.
		genResults:  make(chan genResult, opts.MaxInFlight),
		meshResults: make(chan meshResult, opts.MaxInFlight),
	}

	r := opts.LoadRadius
	for z := -r; z <= r; z++ {
		for y := -r; y <= r; y++ {
			for x := -r; x <= r; x++ {
				if x*x+y*y+z*z <= r*r {
					m.offsets = append(m.offsets, voxel.Coord{X: x, Y: y, Z: z})
				}
			}
		}
	}
	sort.Slice(m.offsets, func(i, j int) bool {
		a, b := m.offsets[i], m.offsets[j]
		da := a.X*a.X + a.Y*a.Y + a.Z*a.Z
		db := b.X*b.X + b.Y*b.Y + b.Z*b.Z
		if da != db {
			return da < db
		}
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})

	return m
}

// Update advances the streaming state machine one frame: drains finished
// worker results, requests missing chunks nearest first, schedules meshing,
// and retires chunks that left the unload radius.
func (m *Manager) Update(viewpoint mgl32.Vec3) {
	defer profiling.Track("stream.Update")()

	m.center = voxel.CoordFromWorld(viewpoint)
	m.drainResults()
	m.requestMissing()
	m.scheduleMeshing()
	m.evictFar()
}

func (m *Manager) drainResults() {
gen:
	for {
		select {
		case r := <-m.genResults:
			m.inFlight--
			m.stats.Generated++
			e, ok := m.entries[r.coord]
			if !ok {
				continue
			}
			if m.beyondUnload(r.coord) {
				delete(m.entries, r.coord)
				continue
			}
			e.chunk = r.chunk
			e.state = StateMeshing
			e.waiting = time.Now()
			m.flagNeighborRemesh(r.coord)
		default:
			break gen
		}
	}

	for {
		select {
		case r := <-m.meshResults:
			m.inFlight--
			m.stats.Meshed++
			e, ok := m.entries[r.coord]
			if !ok {
				continue
			}
			e.queued = false
			if m.beyondUnload(r.coord) {
				continue // evictFar retires the entry
			}
			e.meshedSides = r.sides
			e.state = StateReady
			e.remesh = false
			m.stats.Quads += r.mesh.QuadCount()
			m.stats.MeshBytes += 4 * (len(r.mesh.Verts) + len(r.mesh.Indices))
			m.uploads = append(m.uploads, Upload{Coord: r.coord, Mesh: r.mesh})
		default:
			return
		}
	}
}

// flagNeighborRemesh marks already-meshed neighbors of a freshly generated
// chunk for a rebuild when their mesh was produced without it.
func (m *Manager) flagNeighborRemesh(coord voxel.Coord) {
	for _, dir := range meshing.Directions {
		v := dir.Vec()
		n, ok := m.entries[coord.Add(voxel.Coord{X: v[0], Y: v[1], Z: v[2]})]
		if !ok || n.state != StateReady {
			continue
		}
		if n.meshedSides&(1<<dir.Opposite()) == 0 {
			n.remesh = true
		}
	}
}

func (m *Manager) requestMissing() {
	for _, off := range m.offsets {
		if m.inFlight >= m.opts.MaxInFlight {
			return
		}
		coord := m.center.Add(off)
		if _, ok := m.entries[coord]; ok {
			continue
		}
		c := coord
		if !m.pool.Submit(func() {
			m.genResults <- genResult{coord: c, chunk: m.gen.Generate(c)}
		}) {
			return // queue full, retry next frame
		}
		m.entries[coord] = &entry{state: StateGenerating}
		m.inFlight++
	}
}

func (m *Manager) scheduleMeshing() {
	for coord, e := range m.entries {
		if m.inFlight >= m.opts.MaxInFlight {
			return
		}
		if e.chunk == nil || e.queued {
			continue
		}
		fresh := e.state == StateMeshing
		rebuild := e.state == StateReady && e.remesh
		if !fresh && !rebuild {
			continue
		}

		n := meshing.Neighborhood{Center: e.chunk}
		for _, dir := range meshing.Directions {
			v := dir.Vec()
			if ne, ok := m.entries[coord.Add(voxel.Coord{X: v[0], Y: v[1], Z: v[2]})]; ok {
				n.Sides[dir] = ne.chunk
			}
		}
		mask := n.SideMask()
		if fresh && mask != allSides && time.Since(e.waiting) < m.opts.MeshWait {
			continue // give neighbors a moment before meshing with holes
		}
		if rebuild && mask == e.meshedSides {
			e.remesh = false
			continue
		}

		c, nh := coord, n
		if !m.pool.Submit(func() {
			m.meshResults <- meshResult{coord: c, mesh: meshing.BuildMesh(&nh), sides: nh.SideMask()}
		}) {
			return
		}
		e.queued = true
		m.inFlight++
	}
}

const allSides = 0x3f

func (m *Manager) evictFar() {
	for coord, e := range m.entries {
		if !m.beyondUnload(coord) {
			continue
		}
		switch e.state {
		case StateReady:
			e.state = StatePendingUnload
			m.unloads = append(m.unloads, coord)
		case StatePendingUnload:
			// already listed, waiting for TakeUnloads
		default:
			// No GPU side to release. A result still in flight is
			// discarded when it arrives.
			delete(m.entries, coord)
		}
	}
}

func (m *Manager) beyondUnload(c voxel.Coord) bool {
	r := m.opts.UnloadRadius
	return c.DistSq(m.center) > r*r
}

// TakeUploads returns finished meshes for the render feeder, at most
// UploadsPerFrame per call. The remainder is kept for later frames.
func (m *Manager) TakeUploads() []Upload {
	n := len(m.uploads)
	if n > m.opts.UploadsPerFrame {
		n = m.opts.UploadsPerFrame
	}
	if n == 0 {
		return nil
	}
	out := make([]Upload, n)
	copy(out, m.uploads[:n])
	m.uploads = m.uploads[:copy(m.uploads, m.uploads[n:])]
	m.stats.Uploaded += n
	return out
}

// TakeUnloads returns coordinates whose GPU resources should be released
// and forgets their entries.
func (m *Manager) TakeUnloads() []voxel.Coord {
	if len(m.unloads) == 0 {
		return nil
	}
	out := m.unloads
	m.unloads = nil
	for _, coord := range out {
		delete(m.entries, coord)
	}
	m.stats.Unloaded += len(out)
	return out
}

// StateOf reports the streaming state of a coordinate. The second result is
// false when the chunk is unloaded.
func (m *Manager) StateOf(coord voxel.Coord) (State, bool) {
	e, ok := m.entries[coord]
	if !ok {
		return 0, false
	}
	return e.state, true
}

// Stats returns a snapshot of aggregate streaming counters.
func (m *Manager) Stats() Stats {
	s := m.stats
	s.Loaded = len(m.entries)
	s.InFlight = m.inFlight
	return s
}
