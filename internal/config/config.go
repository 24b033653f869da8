// Package config contains the render configuration and its file formats.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbeda/geom"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"boing/internal/grid"
	"boing/internal/sphere"
)

// ErrInvalid wraps every configuration problem found by Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config is everything a render needs.  It is never changed by the render.
type Config struct {

	// output document size in pixels
	CanvasWidth  float64 `toml:"canvas_width" yaml:"canvas_width"`
	CanvasHeight float64 `toml:"canvas_height" yaml:"canvas_height"`

	// ball radius; nil means half the smaller canvas dimension
	Radius *float64 `toml:"radius,omitempty" yaml:"radius,omitempty"`

	// ball placement; nil means the canvas center
	CenterX *float64 `toml:"center_x,omitempty" yaml:"center_x,omitempty"`
	CenterY *float64 `toml:"center_y,omitempty" yaml:"center_y,omitempty"`

	// latitude strips, pole to pole
	Bands int `toml:"bands" yaml:"bands"`

	// longitude wedges
	Gores int `toml:"gores" yaml:"gores"`

	// lean to the right as seen by the viewer, in degrees
	TiltDegrees float64 `toml:"tilt_degrees" yaml:"tilt_degrees"`

	// rotation about the ball's own polar axis, applied before the tilt
	SpinDegrees float64 `toml:"spin_degrees" yaml:"spin_degrees"`

	ColorRed   string `toml:"color_red" yaml:"color_red"`
	ColorWhite string `toml:"color_white" yaml:"color_white"`

	StrokeWidth float64 `toml:"stroke_width" yaml:"stroke_width"`

	// when empty every facet is stroked in its own fill color
	StrokeColorOverride string `toml:"stroke_color_override,omitempty" yaml:"stroke_color_override,omitempty"`

	DrawBackground  bool   `toml:"draw_background" yaml:"draw_background"`
	BackgroundColor string `toml:"background_color" yaml:"background_color"`

	Grid Grid `toml:"grid" yaml:"grid"`

	// destination file, or "-" for stdout
	OutputPath string `toml:"output_path" yaml:"output_path"`
}

// Grid configures the screen space reference grid drawn under the ball.
type Grid struct {
	Draw        bool    `toml:"draw" yaml:"draw"`
	Color       string  `toml:"color" yaml:"color"`
	StrokeWidth float64 `toml:"stroke_width" yaml:"stroke_width"`
	Spacing     float64 `toml:"spacing" yaml:"spacing"`
	OriginX     float64 `toml:"origin_x" yaml:"origin_x"`
	OriginY     float64 `toml:"origin_y" yaml:"origin_y"`

	// nil means the whole canvas
	Extent *Extent `toml:"extent,omitempty" yaml:"extent,omitempty"`
}

type Extent struct {
	MinX float64 `toml:"min_x" yaml:"min_x"`
	MinY float64 `toml:"min_y" yaml:"min_y"`
	MaxX float64 `toml:"max_x" yaml:"max_x"`
	MaxY float64 `toml:"max_y" yaml:"max_y"`
}

// Default is the classic ball: 8 bands, 16 gores, a 16 degree lean.
func Default() Config {
	return Config{
		CanvasWidth:     500,
		CanvasHeight:    500,
		Bands:           8,
		Gores:           16,
		TiltDegrees:     16,
		SpinDegrees:     0,
		ColorRed:        "#ff0000",
		ColorWhite:      "#ffffff",
		StrokeWidth:     0,
		DrawBackground:  false,
		BackgroundColor: "#aaaaaa",
		Grid: Grid{
			Draw:        false,
			Color:       "#a000a0",
			StrokeWidth: 1,
			Spacing:     25,
		},
		OutputPath: "boing.svg",
	}
}

// ResolvedRadius is the configured or derived ball radius.
func (c *Config) ResolvedRadius() float64 {
	if c.Radius != nil {
		return *c.Radius
	}
	return min(c.CanvasWidth, c.CanvasHeight) * 0.5
}

// Center is the configured or derived ball center.
func (c *Config) Center() geom.Coord {
	p := geom.Coord{X: c.CanvasWidth * 0.5, Y: c.CanvasHeight * 0.5}
	if c.CenterX != nil {
		p.X = *c.CenterX
	}
	if c.CenterY != nil {
		p.Y = *c.CenterY
	}
	return p
}

// Canvas is the document's bounds.
func (c *Config) Canvas() geom.Rect {
	return geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: c.CanvasWidth, Y: c.CanvasHeight}}
}

// GridExtent resolves the configured or derived grid extent.
func (c *Config) GridExtent() geom.Rect {
	if e := c.Grid.Extent; e != nil {
		return geom.Rect{Min: geom.Coord{X: e.MinX, Y: e.MinY}, Max: geom.Coord{X: e.MaxX, Y: e.MaxY}}
	}
	return c.Canvas()
}

// ReferenceGrid is the screen space grid drawn under the ball.
func (c *Config) ReferenceGrid() grid.Grid {
	return grid.Grid{
		Extent:      c.GridExtent(),
		Origin:      geom.Coord{X: c.Grid.OriginX, Y: c.Grid.OriginY},
		Spacing:     c.Grid.Spacing,
		Color:       c.Grid.Color,
		StrokeWidth: c.Grid.StrokeWidth,
	}
}

// StrokeFor is the stroke color of a facet filled with fill.
func (c *Config) StrokeFor(fill string) string {
	if c.StrokeColorOverride != "" {
		return c.StrokeColorOverride
	}
	return fill
}

// Fill maps a checker value to its configured color.
func (c *Config) Fill(k sphere.Checker) string {
	if k == sphere.Red {
		return c.ColorRed
	}
	return c.ColorWhite
}

// Validate reports every problem at once.  The returned error wraps
// ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, a ...any) {
		errs = append(errs, fmt.Errorf(format, a...))
	}

	finite := func(name string, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			add("%s must be finite, got %v", name, v)
			return false
		}
		return true
	}
	finite("tilt_degrees", c.TiltDegrees)
	finite("spin_degrees", c.SpinDegrees)
	finite("canvas_width", c.CanvasWidth)
	finite("canvas_height", c.CanvasHeight)
	if c.Radius != nil {
		finite("radius", *c.Radius)
	}
	if c.CenterX != nil {
		finite("center_x", *c.CenterX)
	}
	if c.CenterY != nil {
		finite("center_y", *c.CenterY)
	}
	finite("stroke_width", c.StrokeWidth)

	if !(c.CanvasWidth > 0) || !(c.CanvasHeight > 0) {
		add("canvas must be positive, got %vx%v", c.CanvasWidth, c.CanvasHeight)
	}
	if r := c.ResolvedRadius(); !(r > 0) {
		add("radius must be positive, got %v", r)
	}
	if c.Bands < sphere.MinBands {
		add("bands must be at least %d, got %d", sphere.MinBands, c.Bands)
	}
	if c.Gores < sphere.MinGores {
		add("gores must be at least %d, got %d", sphere.MinGores, c.Gores)
	}
	if !(c.StrokeWidth >= 0) {
		add("stroke_width must not be negative, got %v", c.StrokeWidth)
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		add("output_path is empty")
	}

	colors := [][2]string{
		{"color_red", c.ColorRed},
		{"color_white", c.ColorWhite},
	}
	if c.StrokeColorOverride != "" {
		colors = append(colors, [2]string{"stroke_color_override", c.StrokeColorOverride})
	}
	if c.DrawBackground {
		colors = append(colors, [2]string{"background_color", c.BackgroundColor})
	}
	if c.Grid.Draw {
		colors = append(colors, [2]string{"grid.color", c.Grid.Color})
		if !(c.Grid.Spacing > 0) {
			add("grid.spacing must be positive, got %v", c.Grid.Spacing)
		}
		if !(c.Grid.StrokeWidth >= 0) {
			add("grid.stroke_width must not be negative, got %v", c.Grid.StrokeWidth)
		}
		ok := finite("grid.origin_x", c.Grid.OriginX)
		ok = finite("grid.origin_y", c.Grid.OriginY) && ok
		ok = finite("grid.stroke_width", c.Grid.StrokeWidth) && ok
		ok = finite("grid.spacing", c.Grid.Spacing) && ok
		if e := c.Grid.Extent; e != nil {
			ok = finite("grid.extent.min_x", e.MinX) && ok
			ok = finite("grid.extent.min_y", e.MinY) && ok
			ok = finite("grid.extent.max_x", e.MaxX) && ok
			ok = finite("grid.extent.max_y", e.MaxY) && ok
		}
		if e := c.GridExtent(); !(e.Max.X > e.Min.X) || !(e.Max.Y > e.Min.Y) {
			add("grid.extent is empty")
			ok = false
		}
		if ok && c.Grid.Spacing > 0 {
			if v, h := c.ReferenceGrid().Counts(); max(v, h) > grid.MaxLines {
				add("grid.spacing %v needs more than %d lines per axis", c.Grid.Spacing, grid.MaxLines)
			}
		}
	}
	for _, col := range colors {
		if _, err := colorful.Hex(col[1]); err != nil {
			add("%s: %q is not a hex color", col[0], col[1])
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) file on top of Default.
// Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = DecodeTOML(bytes.NewReader(data), &cfg)
	case ".yaml", ".yml":
		err = DecodeYAML(bytes.NewReader(data), &cfg)
	default:
		return Config{}, fmt.Errorf("%w: unsupported config format %q", ErrInvalid, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	return cfg, nil
}

func DecodeTOML(r io.Reader, cfg *Config) error {
	return toml.NewDecoder(r).DisallowUnknownFields().Decode(cfg)
}

func DecodeYAML(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
