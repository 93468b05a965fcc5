package conf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ggez-dev/ggez"
)

func TestNewDefaults(t *testing.T) {
	c := New("unit-test")
	if c.ID != "unit-test" {
		t.Errorf("ID = %q, want %q", c.ID, "unit-test")
	}
	if c.WindowWidth != 800 || c.WindowHeight != 600 {
		t.Errorf("window size = %dx%d, want 800x600", c.WindowWidth, c.WindowHeight)
	}
	if c.Version != "0.0.0" {
		t.Errorf("Version = %q, want 0.0.0", c.Version)
	}
}

func TestLoad(t *testing.T) {
	src := `
[conf]
id = "testgame"
version = "1.2.3"
window_title = "Test Game"
window_icon = "/icon.png"
window_width = 1280
window_height = 720
`
	c, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ID != "testgame" || c.Version != "1.2.3" {
		t.Errorf("got id=%q version=%q", c.ID, c.Version)
	}
	if c.WindowTitle != "Test Game" || c.WindowIcon != "/icon.png" {
		t.Errorf("got title=%q icon=%q", c.WindowTitle, c.WindowIcon)
	}
	if c.WindowWidth != 1280 || c.WindowHeight != 720 {
		t.Errorf("got size %dx%d", c.WindowWidth, c.WindowHeight)
	}
}

func TestLoadMissingSection(t *testing.T) {
	_, err := Load(strings.NewReader(`id = "nope"`))
	if !errors.Is(err, ggez.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(strings.NewReader(`[conf` + "\n"))
	if !errors.Is(err, ggez.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	orig := New("roundtrip")
	orig.WindowTitle = "Round Trip"
	orig.WindowWidth = 320
	orig.WindowHeight = 240

	var buf bytes.Buffer
	if err := orig.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *orig {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, orig)
	}
}
