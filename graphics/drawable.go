package graphics

// Drawable is anything that can be drawn through the graphics context.
// Implementations convert their geometry into a draw call against the
// context's current transform, shader, and blend state.
type Drawable interface {
	// DrawEx draws the drawable with the given parameters.
	DrawEx(ctx *GraphicsContext, param DrawParam) error

	// SetBlendMode sets a per-drawable blend mode override. A nil mode
	// clears the override so draws use the context's current blend mode.
	SetBlendMode(mode *BlendMode)

	// BlendMode returns the per-drawable blend mode override, or nil when
	// the drawable follows the context.
	BlendMode() *BlendMode
}

// Draw draws a drawable at dest with the given rotation and default
// parameters otherwise.
func Draw(ctx *GraphicsContext, d Drawable, dest Point2, rotation float32) error {
	param := DefaultDrawParam()
	param.Dest = dest
	param.Rotation = rotation
	return d.DrawEx(ctx, param)
}
