package graphics

import (
	"image"
	"math"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Text is a drawable string. The string is shaped with HarfBuzz for
// measurement, rasterized lazily into a white-on-transparent texture on
// first draw, and tinted by the DrawParam color.
type Text struct {
	value string
	font  *Font
	size  float64

	img   *Image
	dirty bool

	blendMode *BlendMode
}

var _ Drawable = (*Text)(nil)

// NewText creates a text drawable. A nil font selects the built-in
// default font.
func NewText(value string, f *Font, size float64) (*Text, error) {
	if f == nil {
		var err error
		f, err = DefaultFont()
		if err != nil {
			return nil, err
		}
	}
	return &Text{value: value, font: f, size: size, dirty: true}, nil
}

// String returns the text content.
func (t *Text) String() string {
	return t.value
}

// SetText replaces the text content. The texture is re-rendered on the
// next draw.
func (t *Text) SetText(value string) {
	if value == t.value {
		return
	}
	t.value = value
	t.dirty = true
}

// Width returns the shaped advance width of the text in pixels.
func (t *Text) Width() float64 {
	w, _ := t.measure()
	return w
}

// Height returns the line height of the text in pixels.
func (t *Text) Height() float64 {
	_, h := t.measure()
	return h
}

// visualRun is one directional run of the text in visual order.
type visualRun struct {
	runes []rune
	rtl   bool
}

// visualRuns splits the string into directional runs ordered for
// display, using the Unicode bidirectional algorithm.
func visualRuns(text string) []visualRun {
	if text == "" {
		return nil
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return []visualRun{{runes: []rune(text)}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []visualRun{{runes: []rune(text)}}
	}
	runs := make([]visualRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		runs = append(runs, visualRun{
			runes: []rune(run.String()),
			rtl:   run.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}

// shapeRun shapes one directional run and returns its advance width in
// pixels.
func (t *Text) shapeRun(run visualRun) float64 {
	dir := di.DirectionLTR
	if run.rtl {
		dir = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      run.runes,
		RunStart:  0,
		RunEnd:    len(run.runes),
		Direction: dir,
		Face:      gtfont.NewFace(t.font.gt),
		Size:      fixed.Int26_6(t.size * 64),
		Script:    runScript(run.runes),
		Language:  language.NewLanguage("en"),
	}
	output := (&shaping.HarfbuzzShaper{}).Shape(input)
	var width float64
	for _, g := range output.Glyphs {
		width += float64(g.Advance) / 64
	}
	return width
}

// runScript returns the script of the first non-common rune.
func runScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.LookupScript('a')
}

// measure returns the shaped width and the line height of the text.
func (t *Text) measure() (w, h float64) {
	for _, run := range visualRuns(t.value) {
		w += t.shapeRun(run)
	}
	face, err := t.rasterFace()
	if err != nil {
		return w, t.size
	}
	defer face.Close()
	metrics := face.Metrics()
	return w, float64(metrics.Ascent+metrics.Descent) / 64
}

func (t *Text) rasterFace() (xfont.Face, error) {
	face, err := opentype.NewFace(t.font.ot, &opentype.FaceOptions{
		Size:    t.size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return face, nil
}

// ensureImage rasterizes the text into a white-on-transparent RGBA
// texture if the content changed since the last draw.
func (t *Text) ensureImage(ctx *GraphicsContext) error {
	if !t.dirty {
		return nil
	}
	if t.img != nil {
		t.img.Destroy(ctx)
		t.img = nil
	}
	t.dirty = false
	if t.value == "" {
		return nil
	}

	face, err := t.rasterFace()
	if err != nil {
		return err
	}
	defer face.Close()
	metrics := face.Metrics()

	runs := visualRuns(t.value)
	var display string
	for _, run := range runs {
		display += string(run.runes)
	}

	shapedWidth, _ := t.measure()
	drawerWidth := float64(xfont.MeasureString(face, display)) / 64
	w := int(math.Ceil(math.Max(shapedWidth, drawerWidth)))
	h := int(math.Ceil(float64(metrics.Ascent+metrics.Descent) / 64))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	drawer := xfont.Drawer{
		Dst:  rgba,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	drawer.DrawString(display)

	img, err := NewImageFromRGBA8(ctx, w, h, rgba.Pix)
	if err != nil {
		return err
	}
	t.img = img
	return nil
}

// BlendMode returns the per-text blend override, or nil.
func (t *Text) BlendMode() *BlendMode {
	return t.blendMode
}

// SetBlendMode sets a per-text blend override. Nil clears it.
func (t *Text) SetBlendMode(mode *BlendMode) {
	t.blendMode = mode
}

// DrawEx rasterizes the text if needed and draws it like an image.
// Empty text draws nothing.
func (t *Text) DrawEx(ctx *GraphicsContext, param DrawParam) error {
	if err := t.ensureImage(ctx); err != nil {
		return err
	}
	if t.img == nil {
		return nil
	}
	t.img.blendMode = t.blendMode
	return t.img.DrawEx(ctx, param)
}

// Destroy releases the rasterized texture.
func (t *Text) Destroy(ctx *GraphicsContext) {
	if t.img != nil {
		t.img.Destroy(ctx)
		t.img = nil
	}
	t.dirty = true
}
