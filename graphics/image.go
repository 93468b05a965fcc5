package graphics

import (
	"fmt"
	"image"
	"image/png"

	_ "image/jpeg"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/ggez-dev/ggez"
	"github.com/ggez-dev/ggez/internal/gpuutil"
)

// Image owns a GPU-resident texture and exposes it as a Drawable. The
// sampler configuration is a descriptor resolved through the context's
// sampler cache at draw time, not a GPU handle. An optional blend-mode
// override applies around each draw of this image only.
type Image struct {
	tex    hal.Texture
	view   hal.TextureView
	width  int
	height int

	sampler   SamplerSpec
	blendMode *BlendMode
}

var _ Drawable = (*Image)(nil)

// NewImage loads an encoded image from the filesystem, decodes it to
// RGBA8, and uploads it as a texture. PNG, JPEG, and BMP are supported.
func NewImage(ctx *GraphicsContext, path string) (*Image, error) {
	r, err := ctx.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ggez.ErrResourceLoad, path, err)
	}
	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), src, bounds.Min, xdraw.Src)
	return NewImageFromRGBA8(ctx, bounds.Dx(), bounds.Dy(), rgba.Pix)
}

// NewImageFromRGBA8 constructs an image from raw row-major RGBA8 pixel
// data. Dimensions must be at least 1x1 and len(data) must equal w*h*4.
func NewImageFromRGBA8(ctx *GraphicsContext, w, h int, data []byte) (*Image, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: image dimensions %dx%d must be at least 1x1", ggez.ErrResourceLoad, w, h)
	}
	if len(data) != w*h*4 {
		return nil, fmt.Errorf("%w: pixel data length %d does not match %dx%d (want %d)",
			ggez.ErrResourceLoad, len(data), w, h, w*h*4)
	}

	tex, view, err := createSampledTexture(ctx, "image", uint32(w), uint32(h), data)
	if err != nil {
		return nil, err
	}
	return &Image{
		tex:     tex,
		view:    view,
		width:   w,
		height:  h,
		sampler: ctx.defaultSampler,
	}, nil
}

// NewSolidImage constructs a size x size image filled with a single color.
func NewSolidImage(ctx *GraphicsContext, size int, color Color) (*Image, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: solid image size %d must be at least 1", ggez.ErrResourceLoad, size)
	}
	r, g, b, a := color.ToRGBA()
	data := make([]byte, size*size*4)
	for i := 0; i < len(data); i += 4 {
		data[i] = r
		data[i+1] = g
		data[i+2] = b
		data[i+3] = a
	}
	return NewImageFromRGBA8(ctx, size, size, data)
}

// createSampledTexture uploads RGBA8 pixel data into a new texture
// usable for sampling and readback.
func createSampledTexture(ctx *GraphicsContext, label string, w, h uint32, data []byte) (hal.Texture, hal.TextureView, error) {
	tex, err := ctx.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage: gputypes.TextureUsageTextureBinding |
			gputypes.TextureUsageCopyDst |
			gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: create texture %s: %v", ggez.ErrRender, label, err)
	}
	ctx.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		data,
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: w * 4, RowsPerImage: h},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)
	view, err := ctx.device.CreateTextureView(tex, &hal.TextureViewDescriptor{Label: label + "_view"})
	if err != nil {
		ctx.device.DestroyTexture(tex)
		return nil, nil, fmt.Errorf("%w: create texture view %s: %v", ggez.ErrRender, label, err)
	}
	return tex, view, nil
}

// Width returns the image width in texels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in texels.
func (img *Image) Height() int {
	return img.height
}

// Dimensions returns the image bounds as a rectangle anchored at the
// origin.
func (img *Image) Dimensions() Rect {
	return NewRect(0, 0, float32(img.width), float32(img.height))
}

// Filter returns the image's filter mode.
func (img *Image) Filter() FilterMode {
	return img.sampler.Filter
}

// SetFilter sets the image's filter mode. Takes effect on the next draw.
func (img *Image) SetFilter(f FilterMode) {
	img.sampler.Filter = f
}

// WrapMode returns the image's per-axis wrap modes.
func (img *Image) WrapMode() (x, y WrapMode) {
	return img.sampler.WrapX, img.sampler.WrapY
}

// SetWrapMode sets the image's per-axis wrap modes. Takes effect on the
// next draw.
func (img *Image) SetWrapMode(x, y WrapMode) {
	img.sampler.WrapX = x
	img.sampler.WrapY = y
}

// BlendMode returns the per-image blend override, or nil when the image
// follows the context's current blend mode.
func (img *Image) BlendMode() *BlendMode {
	return img.blendMode
}

// SetBlendMode sets a per-image blend override. Nil clears it.
func (img *Image) SetBlendMode(mode *BlendMode) {
	img.blendMode = mode
}

// scaledParam folds the fractional source rectangle and the image's
// pixel dimensions into the param's scale so the unit quad renders at
// native pixel size by default; the pivot offset is scaled into the same
// space.
func (img *Image) scaledParam(param DrawParam) DrawParam {
	scaled := param
	scaled.Scale = Point2{
		X: param.Src.W * param.Scale.X * float32(img.width),
		Y: param.Src.H * param.Scale.Y * float32(img.height),
	}
	scaled.Offset = Point2{
		X: param.Offset.X * -1 * param.Scale.X,
		Y: param.Offset.Y * param.Scale.Y,
	}
	return scaled
}

// DrawEx draws the image at its native pixel size scaled by the param.
// A blend override, if set, is applied around the draw and the previous
// mode restored afterward.
func (img *Image) DrawEx(ctx *GraphicsContext, param DrawParam) error {
	ctx.UpdateInstanceProperties(img.scaledParam(param))
	if err := ctx.bindTexture(img.view, img.sampler); err != nil {
		return err
	}
	return ctx.withBlendOverride(img.blendMode, func() error {
		return ctx.Draw(nil)
	})
}

// ToRGBA8 reads the texture back into tightly packed row-major top-to-
// bottom RGBA8 bytes.
func (img *Image) ToRGBA8(ctx *GraphicsContext) ([]byte, error) {
	data, err := gpuutil.ReadTextureRGBA8(ctx.device, ctx.queue, img.tex,
		uint32(img.width), uint32(img.height), gputypes.TextureUsageTextureBinding)
	if err != nil {
		return nil, fmt.Errorf("%w: read image: %v", ggez.ErrRender, err)
	}
	return data, nil
}

// Encode writes the image as PNG to the named path on the filesystem.
func (img *Image) Encode(ctx *GraphicsContext, path string) error {
	data, err := img.ToRGBA8(ctx)
	if err != nil {
		return err
	}
	return encodePNG(ctx.fs, path, img.width, img.height, data)
}

// encodePNG writes tightly packed RGBA8 pixels as a PNG file.
func encodePNG(fs ggez.Filesystem, path string, w, h int, data []byte) error {
	out, err := fs.Create(path)
	if err != nil {
		return err
	}
	rgba := &image.RGBA{Pix: data, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	if err := png.Encode(out, rgba); err != nil {
		out.Close()
		return fmt.Errorf("%w: encode %s: %v", ggez.ErrFilesystem, path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ggez.ErrFilesystem, path, err)
	}
	return nil
}

// Destroy releases the image's GPU texture.
func (img *Image) Destroy(ctx *GraphicsContext) {
	if img.view != nil {
		ctx.device.DestroyTextureView(img.view)
		img.view = nil
	}
	if img.tex != nil {
		ctx.device.DestroyTexture(img.tex)
		img.tex = nil
	}
}
