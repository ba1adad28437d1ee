package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"voxelstream/internal/config"
	"voxelstream/internal/graphics"
	"voxelstream/internal/graphics/renderables/terrain"
	"voxelstream/internal/graphics/renderer"
	"voxelstream/internal/stream"
	"voxelstream/internal/worldgen"
)

const configPath = "voxelstream.yaml"

func init() {
	runtime.LockOSThread()
}

func main() {
	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(settings.Render)
	if err != nil {
		panic(err)
	}

	gen, err := worldgen.New(worldgen.Config{
		Seed:              settings.World.Seed,
		DensityFrequency:  settings.World.DensityFrequency,
		DensityThreshold:  settings.World.DensityThreshold,
		MaterialFrequency: settings.World.MaterialFrequency,
		MaterialExponent:  settings.World.MaterialExponent,
	})
	if err != nil {
		panic(err)
	}

	pool := stream.NewPool(settings.Stream.Workers, settings.Stream.MaxInFlight*2)
	defer pool.Shutdown()
	manager := stream.NewManager(gen, pool, stream.Options{
		LoadRadius:      settings.Stream.LoadRadius,
		UnloadRadius:    settings.Stream.UnloadRadius,
		MaxInFlight:     settings.Stream.MaxInFlight,
		UploadsPerFrame: settings.Stream.UploadsPerFrame,
		MeshWait:        settings.Stream.MeshWait,
	})

	camera := graphics.NewCamera(settings.Render.Width, settings.Render.Height, settings.Render.FOV)
	terrainRenderer := terrain.New(settings.Render)
	r, err := renderer.NewRenderer(camera, terrainRenderer)
	if err != nil {
		panic(err)
	}
	defer r.Dispose()

	setupInputHandlers(window, r, camera)
	runGameLoop(window, r, camera, manager, pool, terrainRenderer)
}

func setupWindow(settings config.RenderSettings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(settings.Width, settings.Height, "voxelstream", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, err
	}

	if settings.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

func setupInputHandlers(window *glfw.Window, r *renderer.Renderer, camera *graphics.Camera) {
	firstMouse := true
	var lastX, lastY float64

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if firstMouse {
			lastX, lastY = xpos, ypos
			firstMouse = false
		}
		camera.Look(float32(xpos-lastX), float32(ypos-lastY))
		lastX, lastY = xpos, ypos
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
}
