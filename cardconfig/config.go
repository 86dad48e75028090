// Package cardconfig defines the YAML card configuration and its defaults.
package cardconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration that cannot produce a card.
var ErrInvalidConfig = errors.New("cardconfig: invalid configuration")

// Palette holds the three design colors as hex strings.
type Palette struct {
	// Primary is the main background color.
	Primary string `yaml:"primary"`
	// Secondary is used for text, outlines, and default walls.
	Secondary string `yaml:"secondary"`
	// Accent is the off-white highlight color.
	Accent string `yaml:"accent"`
}

// FrontText configures the greeting side of the card.
type FrontText struct {
	Header         string `yaml:"header"`
	HeaderFontSize int    `yaml:"header_font_size"`

	// The pun line renders as prefix, emphasized word, suffix.
	PunPrefix           string `yaml:"pun_prefix"`
	PunEmphasis         string `yaml:"pun_emphasis"`
	PunSuffix           string `yaml:"pun_suffix"`
	PunFontSize         int    `yaml:"pun_font_size"`
	PunEmphasisFontSize int    `yaml:"pun_emphasis_font_size"`

	Credit         string `yaml:"credit"`
	CreditFontSize int    `yaml:"credit_font_size"`
}

// BackText configures the puzzle side of the card.
type BackText struct {
	Message         string `yaml:"message"`
	MessageFontSize int    `yaml:"message_font_size"`
	Credit          string `yaml:"credit"`
	CreditFontSize  int    `yaml:"credit_font_size"`
	StartLabel      string `yaml:"start_label"`
	EndLabel        string `yaml:"end_label"`
}

// MazeSection configures maze generation and rendering for the card back.
type MazeSection struct {
	// Width and Height are grid dimensions in cells.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Algorithm names the carving strategy (backtracker, prim, kruskal,
	// wilson).
	Algorithm string `yaml:"algorithm"`

	// Seed fixes generation; 0 draws from the clock.
	Seed int64 `yaml:"seed"`

	// CellSize is pixels per cell.
	CellSize int `yaml:"cell_size"`

	// WallStyle selects the renderer: solid, mosaic, dotted, or snake.
	WallStyle string `yaml:"wall_style"`

	// Style knobs, used by the matching wall style only.
	TileSize       int     `yaml:"tile_size"`
	TileGap        int     `yaml:"tile_gap"`
	WallThickness  int     `yaml:"wall_thickness"`
	DotSize        int     `yaml:"dot_size"`
	DotGap         int     `yaml:"dot_gap"`
	ScaleSize      int     `yaml:"scale_size"`
	ScaleVariation float64 `yaml:"scale_variation"`

	// WallColor overrides the palette secondary when non-empty.
	WallColor string `yaml:"wall_color"`
}

// Config is one complete card design.
type Config struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// HeroImage is a path to the front artwork, relative to the assets
	// directory; empty skips the hero.
	HeroImage string `yaml:"hero_image"`
	// HeroNudgeX optically re-centers the hero, in pixels.
	HeroNudgeX int `yaml:"hero_nudge_x"`

	// Width and Height are the card face dimensions in pixels at 300 DPI.
	// The default is portrait 2.5″×3.5″.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// AddTexture enables the vintage background pass.
	AddTexture bool `yaml:"add_texture"`
	// BorderWidth is the Greek-key border band height in pixels.
	BorderWidth int `yaml:"border_width"`

	Colors    Palette     `yaml:"colors"`
	FrontText FrontText   `yaml:"front_text"`
	BackText  BackText    `yaml:"back_text"`
	Maze      MazeSection `yaml:"maze"`
}

// Default returns the stock Valentine design: terracotta palette, the
// MAZE-ing pun, a 15×20 backtracker maze with mosaic walls. The grid
// fills the space the card back leaves between its borders and the
// message strip.
func Default() Config {
	return Config{
		Name:        "valentine",
		Description: "Valentine's Day card",
		HeroNudgeX:  -12,
		Width:       750,
		Height:      1050,
		AddTexture:  true,
		BorderWidth: 40,
		Colors: Palette{
			Primary:   "#CD6839",
			Secondary: "#1A1A1A",
			Accent:    "#F5F0E6",
		},
		FrontText: FrontText{
			Header:              "Happy Valentine's",
			HeaderFontSize:      72,
			PunPrefix:           "You are a",
			PunEmphasis:         "MAZE",
			PunSuffix:           "ing!",
			PunFontSize:         42,
			PunEmphasisFontSize: 90,
			CreditFontSize:      10,
		},
		BackText: BackText{
			Message:         "Happy Valentine's Day",
			MessageFontSize: 48,
			CreditFontSize:  10,
			StartLabel:      "start",
			EndLabel:        "end",
		},
		Maze: MazeSection{
			Width:          15,
			Height:         20,
			Algorithm:      "backtracker",
			CellSize:       40,
			WallStyle:      "mosaic",
			TileSize:       6,
			TileGap:        2,
			WallThickness:  4,
			DotSize:        4,
			DotGap:         4,
			ScaleSize:      8,
			ScaleVariation: 0.2,
		},
	}
}

// Load reads a YAML file over the defaults: keys present in the file
// override, everything else keeps its Default value. The result is
// validated before returning.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cardconfig: read %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cardconfig: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cardconfig: marshal: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cardconfig: write %s: %w", path, err)
	}

	return nil
}

// Validate fails fast on configurations that cannot render a card.
func (c Config) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: name must not be empty", ErrInvalidConfig)
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: card dimensions %d×%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Maze.Width < 1 || c.Maze.Height < 1:
		return fmt.Errorf("%w: maze dimensions %d×%d", ErrInvalidConfig, c.Maze.Width, c.Maze.Height)
	case c.Maze.CellSize < 1:
		return fmt.Errorf("%w: maze cell size %d", ErrInvalidConfig, c.Maze.CellSize)
	case c.BorderWidth < 0:
		return fmt.Errorf("%w: border width %d", ErrInvalidConfig, c.BorderWidth)
	default:
		return nil
	}
}

// WallHex resolves the maze wall color: the explicit override when set,
// otherwise the palette secondary.
func (c Config) WallHex() string {
	if c.Maze.WallColor != "" {
		return c.Maze.WallColor
	}

	return c.Colors.Secondary
}
