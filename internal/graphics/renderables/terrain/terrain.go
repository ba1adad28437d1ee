package terrain

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxelstream/internal/config"
	"voxelstream/internal/graphics"
	"voxelstream/internal/graphics/renderer"
	"voxelstream/internal/profiling"
	"voxelstream/internal/stream"
	"voxelstream/internal/voxel"
)

type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Terrain draws the streamed chunk meshes. The streaming manager hands it
// finished meshes through Upload and retired coordinates through Drop; all
// GL work happens on the render thread.
type Terrain struct {
	shader *graphics.Shader
	meshes map[voxel.Coord]*gpuMesh

	fogFalloff float32
	fogCurve   float32
	lightDir   mgl32.Vec3

	drawn int
}

// New creates the terrain renderable with the given render settings.
func New(settings config.RenderSettings) *Terrain {
	return &Terrain{
		meshes:     make(map[voxel.Coord]*gpuMesh),
		fogFalloff: settings.FogFalloff,
		fogCurve:   settings.FogCurve,
		lightDir:   mgl32.Vec3{0.3, 1.0, 0.3}.Normalize(),
	}
}

// Init compiles the terrain shader and sets its static uniforms.
func (t *Terrain) Init() error {
	shader, err := graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	t.shader = shader

	t.shader.Use()
	t.shader.SetVector3("lightDir", t.lightDir.X(), t.lightDir.Y(), t.lightDir.Z())
	sr, sg, sb := renderer.SkyColor()
	t.shader.SetVector3("skyColor", sr, sg, sb)
	t.shader.SetFloat("fogFalloff", t.fogFalloff)
	t.shader.SetFloat("fogCurve", t.fogCurve)
	return nil
}

// Upload installs or replaces the GPU mesh for a chunk. An empty mesh
// releases any existing buffers; air chunks draw nothing.
func (t *Terrain) Upload(u stream.Upload) {
	if len(u.Mesh.Indices) == 0 {
		t.Drop(u.Coord)
		return
	}

	m, ok := t.meshes[u.Coord]
	if !ok {
		m = &gpuMesh{}
		gl.GenVertexArrays(1, &m.vao)
		gl.GenBuffers(1, &m.vbo)
		gl.GenBuffers(1, &m.ebo)
		t.meshes[u.Coord] = m
	}

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(u.Mesh.Verts)*4, gl.Ptr(u.Mesh.Verts), gl.STATIC_DRAW)
	// One vertex is two packed uint32 words read as a uvec2.
	gl.VertexAttribIPointer(0, 2, gl.UNSIGNED_INT, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(u.Mesh.Indices)*4, gl.Ptr(u.Mesh.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	m.indexCount = int32(len(u.Mesh.Indices))
}

// Drop releases the GPU mesh for a chunk that left the streamed area.
func (t *Terrain) Drop(coord voxel.Coord) {
	m, ok := t.meshes[coord]
	if !ok {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	delete(t.meshes, coord)
}

// Render draws every chunk mesh that intersects the camera frustum.
func (t *Terrain) Render(ctx renderer.RenderContext) {
	defer profiling.Track("graphics.renderTerrain")()

	t.shader.Use()
	t.shader.SetMatrix4("proj", &ctx.Proj[0])
	t.shader.SetMatrix4("view", &ctx.View[0])

	frustum := graphics.NewFrustum(ctx.Proj.Mul4(ctx.View))
	size := float32(voxel.Size)

	t.drawn = 0
	for coord, m := range t.meshes {
		min := coord.WorldOffset()
		max := min.Add(mgl32.Vec3{size, size, size})
		if !frustum.ContainsAABB(min, max) {
			continue
		}
		t.shader.SetVector3("chunkOffset", min.X(), min.Y(), min.Z())
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
		t.drawn++
	}
	gl.BindVertexArray(0)
}

// DrawnChunks reports how many chunk meshes passed culling last frame.
func (t *Terrain) DrawnChunks() int {
	return t.drawn
}

// LoadedChunks reports how many chunk meshes are resident on the GPU.
func (t *Terrain) LoadedChunks() int {
	return len(t.meshes)
}

// Dispose releases all GPU meshes and the shader.
func (t *Terrain) Dispose() {
	for coord := range t.meshes {
		t.Drop(coord)
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}

// SetViewport is part of the Renderable interface; terrain has no
// viewport-dependent state.
func (t *Terrain) SetViewport(width, height int) {}
