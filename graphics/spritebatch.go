package graphics

import (
	"fmt"

	"github.com/ggez-dev/ggez"
)

// SpriteBatch amortizes drawing many sprites from one image. Sprites are
// recorded as DrawParams and replayed under a shared batch transform,
// saving the per-call matrix stack manipulation of drawing each sprite
// independently.
type SpriteBatch struct {
	image     *Image
	sprites   []DrawParam
	blendMode *BlendMode
}

var _ Drawable = (*SpriteBatch)(nil)

// NewSpriteBatch creates an empty batch over the image.
func NewSpriteBatch(img *Image) *SpriteBatch {
	return &SpriteBatch{image: img}
}

// Add records a sprite and returns its index for later Set calls.
func (sb *SpriteBatch) Add(param DrawParam) int {
	sb.sprites = append(sb.sprites, param)
	return len(sb.sprites) - 1
}

// Set replaces the sprite at the given index.
func (sb *SpriteBatch) Set(idx int, param DrawParam) error {
	if idx < 0 || idx >= len(sb.sprites) {
		return fmt.Errorf("%w: sprite index %d out of range (have %d)", ggez.ErrRender, idx, len(sb.sprites))
	}
	sb.sprites[idx] = param
	return nil
}

// Len returns the number of recorded sprites.
func (sb *SpriteBatch) Len() int {
	return len(sb.sprites)
}

// Clear removes all recorded sprites.
func (sb *SpriteBatch) Clear() {
	sb.sprites = sb.sprites[:0]
}

// BlendMode returns the per-batch blend override, or nil.
func (sb *SpriteBatch) BlendMode() *BlendMode {
	return sb.blendMode
}

// SetBlendMode sets a per-batch blend override. Nil clears it.
func (sb *SpriteBatch) SetBlendMode(mode *BlendMode) {
	sb.blendMode = mode
}

// DrawEx draws every recorded sprite under the batch's combined
// transform. The model stack is pushed around the replay and the
// committed matrix restored afterward.
func (sb *SpriteBatch) DrawEx(ctx *GraphicsContext, param DrawParam) error {
	m := ctx.Transform().Mul(param.ToMatrix())
	ctx.PushTransform(&m)
	ctx.ApplyTransformations()
	err := ctx.withBlendOverride(sb.blendMode, func() error {
		for _, sprite := range sb.sprites {
			if err := sb.image.DrawEx(ctx, sprite); err != nil {
				return err
			}
		}
		return nil
	})
	ctx.PopTransform()
	ctx.ApplyTransformations()
	return err
}
