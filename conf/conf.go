// Package conf loads and saves game engine configuration.
// The format is a TOML document with a single [conf] section; much of the
// layout follows the conventions established by LÖVE.
package conf

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/ggez-dev/ggez"
)

// Conf holds configuration data consumed at engine startup.
// The graphics core reads WindowWidth/WindowHeight as the initial drawable
// size; the remaining fields belong to the window collaborator.
type Conf struct {
	// ID is the name of the save directory.
	ID string `toml:"id"`

	// Version of the engine the game is designed to work with.
	Version string `toml:"version"`

	// WindowTitle is the window title.
	WindowTitle string `toml:"window_title"`

	// WindowIcon is a virtual file path to the window's icon.
	WindowIcon string `toml:"window_icon"`

	// WindowWidth and WindowHeight are the window's default dimensions.
	WindowWidth  int `toml:"window_width"`
	WindowHeight int `toml:"window_height"`
}

// document is the on-disk shape: a [conf] table wrapping Conf.
type document struct {
	Conf Conf `toml:"conf"`
}

// New returns a Conf with vague defaults and the given game ID.
func New(id string) *Conf {
	return &Conf{
		ID:           id,
		Version:      "0.0.0",
		WindowTitle:  "An easy, good game",
		WindowIcon:   "",
		WindowWidth:  800,
		WindowHeight: 600,
	}
}

// Load reads a TOML document from r and parses a Conf from its [conf]
// section. A document without a [conf] section is a config error.
func Load(r io.Reader) (*Conf, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ggez.ErrConfig, err)
	}
	if !md.IsDefined("conf") {
		return nil, fmt.Errorf("%w: section [conf] not in config file", ggez.ErrConfig)
	}
	return &doc.Conf, nil
}

// Save writes the Conf to w as a TOML document with a [conf] section.
func (c *Conf) Save(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(document{Conf: *c}); err != nil {
		return fmt.Errorf("%w: %v", ggez.ErrConfig, err)
	}
	return nil
}
