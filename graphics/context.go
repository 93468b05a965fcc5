package graphics

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/ggez-dev/ggez"
	"github.com/ggez-dev/ggez/conf"
	"github.com/ggez-dev/ggez/internal/gpuutil"
)

// targetFormat is the pixel format of every render target the context
// creates: the screen target, canvases, and screenshot readbacks.
const targetFormat = gputypes.TextureFormatRGBA8Unorm

const (
	globalsSize  = 64 // one mat4x4<f32>
	instanceSize = 96 // src vec4 + four matrix columns + color vec4
)

// halProvider is the contract through which the host hands in its GPU
// device. gpucontext.DeviceProvider is opaque; backends expose the
// underlying hal handles through these accessors.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// renderTarget is a texture the context can render into. flipped marks
// targets whose content is stored bottom-up (canvases); the transform
// pipeline compensates with a clip-space Y flip.
type renderTarget struct {
	tex     hal.Texture
	view    hal.TextureView
	width   uint32
	height  uint32
	flipped bool
}

func newRenderTarget(device hal.Device, label string, w, h uint32, flipped bool) (renderTarget, error) {
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        targetFormat,
		Usage: gputypes.TextureUsageRenderAttachment |
			gputypes.TextureUsageTextureBinding |
			gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return renderTarget{}, fmt.Errorf("%w: create target %s: %v", ggez.ErrRender, label, err)
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{Label: label + "_view"})
	if err != nil {
		device.DestroyTexture(tex)
		return renderTarget{}, fmt.Errorf("%w: create target view %s: %v", ggez.ErrRender, label, err)
	}
	return renderTarget{tex: tex, view: view, width: w, height: h, flipped: flipped}, nil
}

func (t *renderTarget) destroy(device hal.Device) {
	if t.view != nil {
		device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		device.DestroyTexture(t.tex)
		t.tex = nil
	}
}

// Slice is a vertex/index buffer pair consumed by Draw. A nil Slice draws
// the shared unit quad; custom geometry comes from NewSlice or from the
// Mesh constructors.
type Slice struct {
	verts      hal.Buffer
	indices    hal.Buffer
	indexCount uint32
}

// NewSlice uploads caller-supplied geometry for use with Draw. Vertices
// are interleaved x, y, u, v values (four floats per vertex); indices are
// a triangle list into them, so their count must be a multiple of three.
func NewSlice(ctx *GraphicsContext, vertices []float32, indices []uint16) (*Slice, error) {
	if len(vertices) == 0 || len(vertices)%4 != 0 {
		return nil, fmt.Errorf("%w: vertex data length %d is not a whole number of x,y,u,v vertices", ggez.ErrRender, len(vertices))
	}
	if len(vertices)/4 > math.MaxUint16+1 {
		return nil, fmt.Errorf("%w: slice has %d vertices, limit is %d", ggez.ErrRender, len(vertices)/4, math.MaxUint16+1)
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: index count %d is not a whole number of triangles", ggez.ErrRender, len(indices))
	}

	vertexData := appendFloats(make([]byte, 0, len(vertices)*4), vertices)
	indexData := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(indexData[i*2:], idx)
	}

	verts, err := gpuutil.CreateAndUploadBuffer(ctx.device, ctx.queue, "slice_vertices", vertexData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ggez.ErrRender, err)
	}
	indexBuf, err := gpuutil.CreateAndUploadBuffer(ctx.device, ctx.queue, "slice_indices", indexData,
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		ctx.device.DestroyBuffer(verts)
		return nil, fmt.Errorf("%w: %v", ggez.ErrRender, err)
	}
	return &Slice{verts: verts, indices: indexBuf, indexCount: uint32(len(indices))}, nil
}

// Destroy releases the slice's GPU buffers.
func (s *Slice) Destroy(ctx *GraphicsContext) {
	s.destroy(ctx.device)
}

func (s *Slice) destroy(device hal.Device) {
	if s.indices != nil {
		device.DestroyBuffer(s.indices)
		s.indices = nil
	}
	if s.verts != nil {
		device.DestroyBuffer(s.verts)
		s.verts = nil
	}
}

// GraphicsContext is the sole owner of the GPU device handles and all
// persistent rendering state: the render targets, the matrix stacks, the
// quad and uniform buffers, the shader registry, and the sampler cache.
// All drawing funnels through it. It is not safe for concurrent use; all
// calls must come from the thread owning the window.
//
// Matrix mutations follow an explicit two-phase protocol: mutate the
// stacks or projection, then call ApplyTransformations (or
// CalculateTransformMatrix plus UpdateGlobals) to push the combined
// matrix to the GPU. Nothing recomputes automatically; this allows
// batching several stack changes before a single upload.
type GraphicsContext struct {
	device hal.Device
	queue  hal.Queue
	fs     ggez.Filesystem

	screen renderTarget
	target *renderTarget

	screenRect Rect
	projection Matrix4
	modelStack []Matrix4
	viewStack  []Matrix4
	mvp        Matrix4

	quad        Slice
	globalsBuf  hal.Buffer
	instanceBuf hal.Buffer

	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout

	samplers       *SamplerCache
	defaultSampler SamplerSpec

	shaders       []*shaderEntry
	currentShader ShaderID

	boundView    hal.TextureView
	boundSampler hal.Sampler

	whiteImage *Image

	backgroundColor Color

	released atomic.Bool
}

// NewContext builds a graphics context over the device supplied by the
// host. The configuration supplies the initial screen coordinate system;
// the filesystem serves image loading and encoding.
func NewContext(provider gpucontext.DeviceProvider, c *conf.Conf, fs ggez.Filesystem) (*GraphicsContext, error) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("%w: device provider %T does not expose hal handles", ggez.ErrRender, provider)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return nil, fmt.Errorf("%w: provider returned no hal.Device", ggez.ErrRender)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok {
		return nil, fmt.Errorf("%w: provider returned no hal.Queue", ggez.ErrRender)
	}

	ctx := newBareContext(float32(c.WindowWidth), float32(c.WindowHeight))
	ctx.device = device
	ctx.queue = queue
	ctx.fs = fs
	if err := ctx.initGPU(uint32(c.WindowWidth), uint32(c.WindowHeight)); err != nil {
		return nil, err
	}
	ggez.Logger().Info("graphics context created",
		"width", c.WindowWidth, "height", c.WindowHeight)
	return ctx, nil
}

// newBareContext initializes the device-independent state: stacks,
// projection, shader registry bookkeeping, sampler defaults. Used by
// NewContext and directly by tests that never touch the GPU.
func newBareContext(w, h float32) *GraphicsContext {
	ctx := &GraphicsContext{
		modelStack:      []Matrix4{Matrix4Identity()},
		viewStack:       []Matrix4{Matrix4Identity()},
		mvp:             Matrix4Identity(),
		samplers:        newSamplerCache(),
		defaultSampler:  defaultSamplerSpec(),
		backgroundColor: Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0},
		shaders: []*shaderEntry{{
			label:     "default_quad",
			blend:     BlendAlpha,
			pipelines: make(map[BlendMode]hal.RenderPipeline),
		}},
		currentShader: DefaultShader,
	}
	ctx.screenRect = NewRect(0, 0, w, h)
	ctx.SetProjectionRect(ctx.screenRect)
	ctx.CalculateTransformMatrix()
	return ctx
}

func (c *GraphicsContext) initGPU(w, h uint32) error {
	vertexData := encodeQuadVertices()
	verts, err := gpuutil.CreateAndUploadBuffer(c.device, c.queue, "quad_vertices", vertexData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return fmt.Errorf("%w: %v", ggez.ErrRender, err)
	}
	indices, err := gpuutil.CreateAndUploadBuffer(c.device, c.queue, "quad_indices", encodeQuadIndices(),
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		c.device.DestroyBuffer(verts)
		return fmt.Errorf("%w: %v", ggez.ErrRender, err)
	}
	c.quad = Slice{verts: verts, indices: indices, indexCount: 6}

	c.globalsBuf, err = c.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "globals",
		Size:  globalsSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("%w: create globals buffer: %v", ggez.ErrRender, err)
	}
	c.instanceBuf, err = c.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "instance_properties",
		Size:  instanceSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("%w: create instance buffer: %v", ggez.ErrRender, err)
	}

	c.bindLayout, err = c.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "draw_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    3,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: create bind group layout: %v", ggez.ErrRender, err)
	}
	c.pipeLayout, err = c.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "draw_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{c.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("%w: create pipeline layout: %v", ggez.ErrRender, err)
	}

	defaultEntry, err := newShaderEntry(c.device, "default_quad", quadShaderSource, BlendAlpha)
	if err != nil {
		return err
	}
	c.shaders[DefaultShader] = defaultEntry

	c.screen, err = newRenderTarget(c.device, "screen", w, h, false)
	if err != nil {
		return err
	}
	c.target = &c.screen

	c.whiteImage, err = NewSolidImage(c, 1, White)
	if err != nil {
		return err
	}

	c.UpdateGlobals()
	c.updateInstanceMatrix(RectOne().vec4(), Matrix4Identity(), White.vec4())
	return nil
}

// Clear clears the active render target to the background color. The
// color is converted from sRGB to the linear representation the GPU
// clear path expects.
func (c *GraphicsContext) Clear() error {
	linear := c.backgroundColor.toLinear()
	encoder, err := c.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "clear_encoder"})
	if err != nil {
		return fmt.Errorf("%w: create encoder: %v", ggez.ErrRender, err)
	}
	if err := encoder.BeginEncoding("clear"); err != nil {
		return fmt.Errorf("%w: begin encoding: %v", ggez.ErrRender, err)
	}
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "clear_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    c.target.view,
			LoadOp:  gputypes.LoadOpClear,
			StoreOp: gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: float64(linear[0]),
				G: float64(linear[1]),
				B: float64(linear[2]),
				A: float64(linear[3]),
			},
		}},
	})
	rp.End()
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("%w: end encoding: %v", ggez.ErrRender, err)
	}
	defer c.device.FreeCommandBuffer(cmdBuf)
	if err := gpuutil.SubmitAndWait(c.device, c.queue, cmdBuf); err != nil {
		return fmt.Errorf("%w: %v", ggez.ErrRender, err)
	}
	return nil
}

// SetProjectionRect derives an orthographic projection from the rectangle
// with a Y-axis flip so that increasing Y moves down the screen. Callers
// must follow with ApplyTransformations for the change to take effect.
func (c *GraphicsContext) SetProjectionRect(r Rect) {
	ortho := Matrix4Orthographic(r.X, r.X+r.W, r.Y, r.Y+r.H, -1, 1)
	c.projection = Matrix4Scale(1, -1, 1).Mul(ortho)
}

// SetProjection replaces the projection matrix directly. Callers must
// follow with ApplyTransformations.
func (c *GraphicsContext) SetProjection(m Matrix4) {
	c.projection = m
}

// Projection returns the current projection matrix.
func (c *GraphicsContext) Projection() Matrix4 {
	return c.projection
}

// SetScreenCoordinates sets the screen coordinate system and immediately
// commits the resulting projection to the GPU.
func (c *GraphicsContext) SetScreenCoordinates(r Rect) {
	c.screenRect = r
	c.SetProjectionRect(r)
	c.ApplyTransformations()
}

// ScreenCoordinates returns the current screen coordinate rectangle.
func (c *GraphicsContext) ScreenCoordinates() Rect {
	return c.screenRect
}

// PushTransform pushes a matrix onto the model stack. A nil matrix
// duplicates the current top.
func (c *GraphicsContext) PushTransform(m *Matrix4) {
	if m == nil {
		c.modelStack = append(c.modelStack, c.modelStack[len(c.modelStack)-1])
		return
	}
	c.modelStack = append(c.modelStack, *m)
}

// PopTransform pops the model stack. Popping when only the base element
// remains is a no-op.
func (c *GraphicsContext) PopTransform() {
	if len(c.modelStack) > 1 {
		c.modelStack = c.modelStack[:len(c.modelStack)-1]
	}
}

// SetTransform replaces the top of the model stack.
func (c *GraphicsContext) SetTransform(m Matrix4) {
	c.modelStack[len(c.modelStack)-1] = m
}

// Transform returns the top of the model stack.
func (c *GraphicsContext) Transform() Matrix4 {
	return c.modelStack[len(c.modelStack)-1]
}

// ApplyTransform multiplies the matrix onto the top of the model stack.
func (c *GraphicsContext) ApplyTransform(m Matrix4) {
	top := len(c.modelStack) - 1
	c.modelStack[top] = c.modelStack[top].Mul(m)
}

// Origin resets the top of the model stack to the identity.
func (c *GraphicsContext) Origin() {
	c.SetTransform(Matrix4Identity())
}

// PushView pushes a matrix onto the view stack. A nil matrix duplicates
// the current top.
func (c *GraphicsContext) PushView(m *Matrix4) {
	if m == nil {
		c.viewStack = append(c.viewStack, c.viewStack[len(c.viewStack)-1])
		return
	}
	c.viewStack = append(c.viewStack, *m)
}

// PopView pops the view stack. Popping when only the base element remains
// is a no-op.
func (c *GraphicsContext) PopView() {
	if len(c.viewStack) > 1 {
		c.viewStack = c.viewStack[:len(c.viewStack)-1]
	}
}

// SetView replaces the top of the view stack.
func (c *GraphicsContext) SetView(m Matrix4) {
	c.viewStack[len(c.viewStack)-1] = m
}

// View returns the top of the view stack.
func (c *GraphicsContext) View() Matrix4 {
	return c.viewStack[len(c.viewStack)-1]
}

// CalculateTransformMatrix recomputes the combined matrix from the
// projection and the current stack tops. When the active target is a
// canvas, an extra clip-space Y flip is applied so canvas content is
// stored bottom-up, matching the row order of sampled render targets.
func (c *GraphicsContext) CalculateTransformMatrix() {
	model := c.modelStack[len(c.modelStack)-1]
	view := c.viewStack[len(c.viewStack)-1]
	mvp := c.projection.Mul(view).Mul(model)
	if c.target != nil && c.target.flipped {
		mvp = Matrix4Scale(1, -1, 1).Mul(mvp)
	}
	c.mvp = mvp
}

// UpdateGlobals uploads the combined matrix to the GPU uniform buffer.
func (c *GraphicsContext) UpdateGlobals() {
	c.queue.WriteBuffer(c.globalsBuf, 0, encodeMatrix(c.mvp))
}

// ApplyTransformations recomputes the combined matrix and uploads it.
// Must be called after any transform, view, or projection mutation and
// before the next draw that depends on it.
func (c *GraphicsContext) ApplyTransformations() {
	c.CalculateTransformMatrix()
	if c.queue != nil {
		c.UpdateGlobals()
	}
}

// UpdateInstanceProperties converts the DrawParam into the instance
// record (source rect, model matrix columns, color) and uploads it to the
// single-instance uniform buffer consumed by the next Draw.
func (c *GraphicsContext) UpdateInstanceProperties(p DrawParam) {
	c.updateInstanceMatrix(p.Src.vec4(), p.ToMatrix(), p.Color.vec4())
}

// updateInstanceMatrix uploads an instance record built from an explicit
// matrix, bypassing DrawParam composition. Canvas drawing uses this to
// bake in its flip transform.
func (c *GraphicsContext) updateInstanceMatrix(src [4]float32, m Matrix4, color [4]float32) {
	data := make([]byte, 0, instanceSize)
	data = appendFloats(data, src[:])
	for _, col := range m.Columns() {
		data = appendFloats(data, col[:])
	}
	data = appendFloats(data, color[:])
	c.queue.WriteBuffer(c.instanceBuf, 0, data)
}

// bindTexture selects the texture view and sampler spec bound by the next
// Draw call.
func (c *GraphicsContext) bindTexture(view hal.TextureView, spec SamplerSpec) error {
	sampler, err := c.samplers.GetOrInsert(c.device, spec)
	if err != nil {
		return err
	}
	c.boundView = view
	c.boundSampler = sampler
	return nil
}

// Draw issues a GPU draw call against the slice using the active shader
// and its blend mode. A nil slice draws the shared unit quad. The caller
// must have uploaded instance properties and bound a texture first.
func (c *GraphicsContext) Draw(slice *Slice) error {
	if slice == nil {
		slice = &c.quad
	}
	entry := c.shaders[c.currentShader]
	pipeline, err := entry.ensurePipeline(c.device, c.pipeLayout, targetFormat, entry.blend)
	if err != nil {
		return err
	}

	bindGroup, err := c.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "draw_bind_group",
		Layout: c.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: c.globalsBuf.NativeHandle(), Offset: 0, Size: globalsSize,
			}},
			{Binding: 1, Resource: gputypes.BufferBinding{
				Buffer: c.instanceBuf.NativeHandle(), Offset: 0, Size: instanceSize,
			}},
			{Binding: 2, Resource: gputypes.TextureViewBinding{
				TextureView: c.boundView.NativeHandle(),
			}},
			{Binding: 3, Resource: gputypes.SamplerBinding{
				Sampler: c.boundSampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: create bind group: %v", ggez.ErrRender, err)
	}
	defer c.device.DestroyBindGroup(bindGroup)

	encoder, err := c.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "draw_encoder"})
	if err != nil {
		return fmt.Errorf("%w: create encoder: %v", ggez.ErrRender, err)
	}
	if err := encoder.BeginEncoding("draw"); err != nil {
		return fmt.Errorf("%w: begin encoding: %v", ggez.ErrRender, err)
	}
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "draw_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    c.target.view,
			LoadOp:  gputypes.LoadOpLoad,
			StoreOp: gputypes.StoreOpStore,
		}},
	})
	rp.SetPipeline(pipeline)
	rp.SetBindGroup(0, bindGroup, nil)
	rp.SetVertexBuffer(0, slice.verts, 0)
	rp.SetIndexBuffer(slice.indices, gputypes.IndexFormatUint16, 0)
	rp.DrawIndexed(slice.indexCount, 1, 0, 0, 0)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("%w: end encoding: %v", ggez.ErrRender, err)
	}
	defer c.device.FreeCommandBuffer(cmdBuf)
	if err := gpuutil.SubmitAndWait(c.device, c.queue, cmdBuf); err != nil {
		return fmt.Errorf("%w: %v", ggez.ErrRender, err)
	}
	return nil
}

// SetBlendMode sets the blend mode of the currently active shader.
func (c *GraphicsContext) SetBlendMode(mode BlendMode) {
	c.shaders[c.currentShader].blend = mode
}

// BlendMode returns the blend mode of the currently active shader.
func (c *GraphicsContext) BlendMode() BlendMode {
	return c.shaders[c.currentShader].blend
}

// withBlendOverride runs fn with the given blend mode temporarily active,
// restoring the previous mode afterward. A nil override, or an override
// equal to the current mode, runs fn unchanged.
func (c *GraphicsContext) withBlendOverride(override *BlendMode, fn func() error) error {
	if override == nil || *override == c.BlendMode() {
		return fn()
	}
	prev := c.BlendMode()
	c.SetBlendMode(*override)
	err := fn()
	c.SetBlendMode(prev)
	return err
}

// RegisterShader compiles WGSL source into a new shader registry entry
// with alpha blending and returns its id. The shader must expose vs_main
// and fs_main entry points over the standard quad bindings.
func (c *GraphicsContext) RegisterShader(label, source string) (ShaderID, error) {
	entry, err := newShaderEntry(c.device, label, source, BlendAlpha)
	if err != nil {
		return 0, err
	}
	c.shaders = append(c.shaders, entry)
	id := ShaderID(len(c.shaders) - 1)
	ggez.Logger().Debug("shader registered", "id", int(id), "label", label)
	return id, nil
}

// SetShader makes the shader with the given id active. Draws after this
// call use its pipeline and its stored blend mode.
func (c *GraphicsContext) SetShader(id ShaderID) error {
	if id < 0 || int(id) >= len(c.shaders) {
		return fmt.Errorf("%w: unknown shader id %d", ggez.ErrRender, id)
	}
	c.currentShader = id
	return nil
}

// ActiveShader returns the id of the currently active shader.
func (c *GraphicsContext) ActiveShader() ShaderID {
	return c.currentShader
}

// SetCanvas redirects subsequent draws. A non-nil canvas binds its render
// target; nil restores the screen. This is a single global pointer, not a
// stack: nested canvas rendering must save and restore the previous
// target. The committed transform is recomputed because the flip state of
// the target may change.
func (c *GraphicsContext) SetCanvas(canvas *Canvas) {
	if canvas == nil {
		c.target = &c.screen
	} else {
		c.target = &canvas.target
	}
	c.ApplyTransformations()
}

// ResizeViewport re-derives the screen render target after the backing
// window surface changes size. Must be called on every resize, otherwise
// subsequent draws target a stale surface.
func (c *GraphicsContext) ResizeViewport(w, h uint32) error {
	wasScreen := c.target == &c.screen
	c.screen.destroy(c.device)
	screen, err := newRenderTarget(c.device, "screen", w, h, false)
	if err != nil {
		return err
	}
	c.screen = screen
	if wasScreen {
		c.target = &c.screen
	}
	ggez.Logger().Debug("viewport resized", "width", w, "height", h)
	return nil
}

// Present marks the end of a frame. Draw calls submit synchronously, so
// there is no batched encoder to flush; the host presents the screen
// texture through its own swapchain.
func (c *GraphicsContext) Present() {
}

// Screenshot reads back the screen target into a new Image.
func (c *GraphicsContext) Screenshot() (*Image, error) {
	data, err := gpuutil.ReadTextureRGBA8(c.device, c.queue, c.screen.tex,
		c.screen.width, c.screen.height, gputypes.TextureUsageRenderAttachment)
	if err != nil {
		return nil, fmt.Errorf("%w: screenshot: %v", ggez.ErrRender, err)
	}
	return NewImageFromRGBA8(c, int(c.screen.width), int(c.screen.height), data)
}

// DrawableSize returns the dimensions of the screen target in pixels.
func (c *GraphicsContext) DrawableSize() (w, h uint32) {
	return c.screen.width, c.screen.height
}

// SetDefaultFilter sets the filter mode applied to images created after
// this call.
func (c *GraphicsContext) SetDefaultFilter(f FilterMode) {
	c.defaultSampler.Filter = f
}

// DefaultFilter returns the filter mode applied to new images.
func (c *GraphicsContext) DefaultFilter() FilterMode {
	return c.defaultSampler.Filter
}

// SetBackgroundColor sets the color used by Clear.
func (c *GraphicsContext) SetBackgroundColor(color Color) {
	c.backgroundColor = color
}

// BackgroundColor returns the color used by Clear.
func (c *GraphicsContext) BackgroundColor() Color {
	return c.backgroundColor
}

// Destroy releases every GPU resource the context owns, in reverse
// creation order. Safe to call more than once.
func (c *GraphicsContext) Destroy() {
	if !c.released.CompareAndSwap(false, true) {
		return
	}
	if c.whiteImage != nil {
		c.whiteImage.Destroy(c)
		c.whiteImage = nil
	}
	c.screen.destroy(c.device)
	for _, entry := range c.shaders {
		entry.destroy(c.device)
	}
	c.shaders = nil
	c.samplers.destroy(c.device)
	if c.pipeLayout != nil {
		c.device.DestroyPipelineLayout(c.pipeLayout)
		c.pipeLayout = nil
	}
	if c.bindLayout != nil {
		c.device.DestroyBindGroupLayout(c.bindLayout)
		c.bindLayout = nil
	}
	if c.instanceBuf != nil {
		c.device.DestroyBuffer(c.instanceBuf)
		c.instanceBuf = nil
	}
	if c.globalsBuf != nil {
		c.device.DestroyBuffer(c.globalsBuf)
		c.globalsBuf = nil
	}
	c.quad.destroy(c.device)
	ggez.Logger().Info("graphics context destroyed")
}

// encodeQuadVertices returns the unit quad's interleaved position/uv
// vertex data: a quad centered on the origin spanning -0.5..0.5, with uv
// 0..1 mapping top-left to (0,0).
func encodeQuadVertices() []byte {
	verts := []float32{
		-0.5, -0.5, 0, 0,
		0.5, -0.5, 1, 0,
		0.5, 0.5, 1, 1,
		-0.5, 0.5, 0, 1,
	}
	return appendFloats(make([]byte, 0, len(verts)*4), verts)
}

func encodeQuadIndices() []byte {
	indices := []uint16{0, 1, 2, 0, 2, 3}
	data := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(data[i*2:], idx)
	}
	return data
}

func encodeMatrix(m Matrix4) []byte {
	return appendFloats(make([]byte, 0, globalsSize), m[:])
}

func appendFloats(data []byte, vals []float32) []byte {
	var buf [4]byte
	for _, v := range vals {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		data = append(data, buf[:]...)
	}
	return data
}
