package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"voxelstream/internal/graphics"
	"voxelstream/internal/profiling"
)

// Sky color, also the fog target in the terrain shader.
var skyColor = [3]float32{0.53, 0.81, 0.92}

// Renderer orchestrates rendering via renderable features.
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer configures the GL pipeline state and initializes the
// renderables in order.
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		renderables: rs,
		camera:      camera,
	}
	for _, renderable := range rs {
		if err := renderable.Init(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// SkyColor returns the clear color shared with the fog uniforms.
func SkyColor() (float32, float32, float32) {
	return skyColor[0], skyColor[1], skyColor[2]
}

// Render clears the frame and draws all renderables.
func (r *Renderer) Render(dt float64) {
	defer profiling.Track("graphics.Render")()

	gl.ClearColor(skyColor[0], skyColor[1], skyColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		DT:     dt,
		View:   r.camera.ViewMatrix(),
		Proj:   r.camera.ProjectionMatrix(),
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose releases the renderables in reverse order.
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport propagates a window resize.
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
