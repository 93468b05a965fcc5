package graphics

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/ggez-dev/ggez"
)

// Font is a parsed TTF/OTF font usable by Text. The same font data backs
// two views: an x/image font for glyph rasterization and a go-text font
// for HarfBuzz shaping. The go-text *Font is read-only and safe for
// concurrent use; faces derived from it are created per call.
type Font struct {
	data []byte
	ot   *opentype.Font
	gt   *gtfont.Font
}

// NewFont loads and parses a font file through the filesystem.
func NewFont(ctx *GraphicsContext, path string) (*Font, error) {
	r, err := ctx.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read font %s: %v", ggez.ErrFilesystem, path, err)
	}
	return NewFontFromBytes(data)
}

// NewFontFromBytes parses TTF/OTF font data.
func NewFontFromBytes(data []byte) (*Font, error) {
	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse font: %v", ggez.ErrResourceLoad, err)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: parse font: %v", ggez.ErrResourceLoad, err)
	}
	return &Font{data: data, ot: ot, gt: face.Font}, nil
}

var (
	defaultFontOnce sync.Once
	defaultFont     *Font
	defaultFontErr  error
)

// DefaultFont returns the built-in font (Go Regular), parsed once per
// process.
func DefaultFont() (*Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = NewFontFromBytes(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}
