package main

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"voxelstream/internal/graphics"
	"voxelstream/internal/graphics/renderables/terrain"
	"voxelstream/internal/graphics/renderer"
	"voxelstream/internal/profiling"
	"voxelstream/internal/stream"
)

func runGameLoop(window *glfw.Window, r *renderer.Renderer, camera *graphics.Camera, manager *stream.Manager, pool *stream.Pool, terrainRenderer *terrain.Terrain) {
	frames := 0
	lastFPSCheckTime := time.Now()
	lastTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		applyMovement(window, camera, float32(dt))

		manager.Update(camera.Position)
		func() {
			defer profiling.Track("stream.feed")()
			for _, u := range manager.TakeUploads() {
				terrainRenderer.Upload(u)
			}
			for _, coord := range manager.TakeUnloads() {
				terrainRenderer.Drop(coord)
			}
		}()

		r.Render(dt)
		frames++

		if time.Since(lastFPSCheckTime) >= time.Second {
			stats := manager.Stats()
			streamMS := float64(profiling.SumWithPrefix("stream.").Microseconds()) / 1000.0
			fmt.Printf("FPS: %d | chunks loaded=%d drawn=%d inflight=%d queued=%d | gen=%d mesh=%d quads=%d meshMB=%.1f | stream:%.1fms | %s\n",
				frames, stats.Loaded, terrainRenderer.DrawnChunks(), stats.InFlight, pool.QueueLen(),
				stats.Generated, stats.Meshed, stats.Quads, float64(stats.MeshBytes)/(1<<20),
				streamMS, profiling.TopN(3))
			frames = 0
			lastFPSCheckTime = time.Now()
		}

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	}
}

func applyMovement(window *glfw.Window, camera *graphics.Camera, dt float32) {
	var dir mgl32.Vec3
	if window.GetKey(glfw.KeyW) == glfw.Press {
		dir[2]++
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		dir[2]--
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		dir[0]++
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		dir[0]--
	}
	if window.GetKey(glfw.KeySpace) == glfw.Press {
		dir[1]++
	}
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		dir[1]--
	}
	if window.GetKey(glfw.KeyLeftControl) == glfw.Press {
		camera.MoveSpeed = 120
	} else {
		camera.MoveSpeed = 40
	}
	camera.Move(dir, dt)
}
