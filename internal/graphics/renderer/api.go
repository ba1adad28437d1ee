package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelstream/internal/graphics"
)

// RenderContext provides shared per-frame state for all renderables.
type RenderContext struct {
	Camera *graphics.Camera
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
}

// Renderable is the lifecycle contract for renderable features.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
