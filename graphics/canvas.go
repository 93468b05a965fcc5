package graphics

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/ggez-dev/ggez"
	"github.com/ggez-dev/ggez/internal/gpuutil"
)

// Canvas is an offscreen render target that is also sampleable as a
// texture. Bind it with GraphicsContext.SetCanvas to draw into it, and
// draw it like any image to composite it.
//
// Rendering into a canvas stores rows bottom-up, the row order sampled
// render targets use. Two independent correction paths each produce
// upright output exactly once: DrawEx bakes a vertical flip into the
// draw transform, and ToRGBA8/Encode flip rows at extraction. Both use
// the shared flip helpers below.
type Canvas struct {
	image  Image
	target renderTarget
}

var _ Drawable = (*Canvas)(nil)

// NewCanvas allocates a w x h canvas. Multisampling is not supported;
// a sample count other than 1 is accepted but ignored with a warning.
func NewCanvas(ctx *GraphicsContext, w, h int, samples int) (*Canvas, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: canvas dimensions %dx%d must be at least 1x1", ggez.ErrResourceLoad, w, h)
	}
	if samples != 1 {
		ggez.Logger().Warn("multisampled canvases are not supported, using 1 sample", "requested", samples)
	}
	target, err := newRenderTarget(ctx.device, "canvas", uint32(w), uint32(h), true)
	if err != nil {
		return nil, err
	}
	return &Canvas{
		image: Image{
			tex:     target.tex,
			view:    target.view,
			width:   w,
			height:  h,
			sampler: ctx.defaultSampler,
		},
		target: target,
	}, nil
}

// NewCanvasWithWindowSize allocates a canvas matching the screen target.
func NewCanvasWithWindowSize(ctx *GraphicsContext) (*Canvas, error) {
	w, h := ctx.DrawableSize()
	return NewCanvas(ctx, int(w), int(h), 1)
}

// Image returns the canvas content viewed as an image. The image shares
// the canvas's GPU texture; its rows are stored bottom-up.
func (cv *Canvas) Image() *Image {
	return &cv.image
}

// Width returns the canvas width in texels.
func (cv *Canvas) Width() int {
	return cv.image.width
}

// Height returns the canvas height in texels.
func (cv *Canvas) Height() int {
	return cv.image.height
}

// Filter returns the canvas's filter mode.
func (cv *Canvas) Filter() FilterMode {
	return cv.image.Filter()
}

// SetFilter sets the canvas's filter mode.
func (cv *Canvas) SetFilter(f FilterMode) {
	cv.image.SetFilter(f)
}

// BlendMode returns the per-canvas blend override, or nil.
func (cv *Canvas) BlendMode() *BlendMode {
	return cv.image.BlendMode()
}

// SetBlendMode sets a per-canvas blend override. Nil clears it.
func (cv *Canvas) SetBlendMode(mode *BlendMode) {
	cv.image.SetBlendMode(mode)
}

// DrawEx draws the canvas as an image, baking in the vertical flip that
// corrects the canvas's bottom-up row order. The flip is distinct from
// any flip the caller requests through negative scale.
func (cv *Canvas) DrawEx(ctx *GraphicsContext, param DrawParam) error {
	scaled := cv.image.scaledParam(param)
	m := flipMatrixVertical(scaled.ToMatrix())
	src := flipSrcRect(scaled.Src)
	ctx.updateInstanceMatrix(src.vec4(), m, scaled.Color.vec4())
	if err := ctx.bindTexture(cv.image.view, cv.image.sampler); err != nil {
		return err
	}
	return ctx.withBlendOverride(cv.image.blendMode, func() error {
		return ctx.Draw(nil)
	})
}

// ToRGBA8 reads the canvas back as tightly packed row-major top-to-bottom
// RGBA8 bytes, correcting the bottom-up row order during extraction.
func (cv *Canvas) ToRGBA8(ctx *GraphicsContext) ([]byte, error) {
	data, err := gpuutil.ReadTextureRGBA8(ctx.device, ctx.queue, cv.target.tex,
		cv.target.width, cv.target.height, gputypes.TextureUsageRenderAttachment)
	if err != nil {
		return nil, fmt.Errorf("%w: read canvas: %v", ggez.ErrRender, err)
	}
	flipRowsRGBA(data, cv.image.width, cv.image.height)
	return data, nil
}

// ToImage copies the canvas content into a new independent Image with
// normal top-down row order.
func (cv *Canvas) ToImage(ctx *GraphicsContext) (*Image, error) {
	data, err := cv.ToRGBA8(ctx)
	if err != nil {
		return nil, err
	}
	return NewImageFromRGBA8(ctx, cv.image.width, cv.image.height, data)
}

// Encode writes the canvas content as PNG to the named path.
func (cv *Canvas) Encode(ctx *GraphicsContext, path string) error {
	data, err := cv.ToRGBA8(ctx)
	if err != nil {
		return err
	}
	return encodePNG(ctx.fs, path, cv.image.width, cv.image.height, data)
}

// Destroy releases the canvas's GPU texture. The image view returned by
// Image becomes invalid.
func (cv *Canvas) Destroy(ctx *GraphicsContext) {
	cv.target.destroy(ctx.device)
	cv.image.tex = nil
	cv.image.view = nil
}

// flipMatrixVertical appends a vertical flip to a draw transform. The
// quad is centered on the origin, so mirroring its local Y axis keeps it
// in the same footprint.
func flipMatrixVertical(m Matrix4) Matrix4 {
	return m.Mul(Matrix4Scale(1, -1, 1))
}

// flipSrcRect mirrors a fractional source rectangle vertically so the
// selected region stays the same when the underlying rows are reversed.
func flipSrcRect(src Rect) Rect {
	src.Y = (1 - src.H) - src.Y
	return src
}

// flipRowsRGBA reverses the row order of tightly packed RGBA8 pixel data
// in place.
func flipRowsRGBA(data []byte, w, h int) {
	stride := w * 4
	tmp := make([]byte, stride)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := data[top*stride : (top+1)*stride]
		b := data[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
