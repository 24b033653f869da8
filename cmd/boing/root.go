package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"boing/internal/config"
	"boing/internal/render"
)

// binder remembers how to copy each flag onto a Config, so that only flags
// given on the command line override values from a config file.
type binder struct {
	fs    *pflag.FlagSet
	apply map[string]func(*config.Config)
}

func bind[T any](b *binder, name string, set func(*config.Config, T), define func() *T) {
	p := define()
	b.apply[name] = func(c *config.Config) { set(c, *p) }
}

func (b *binder) overlay(cfg *config.Config) {
	b.fs.Visit(func(f *pflag.Flag) {
		if apply, ok := b.apply[f.Name]; ok {
			apply(cfg)
		}
	})
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "boing",
		Short: "Draw a faceted checkered ball as an SVG",
		Long: `boing tessellates a sphere into latitude bands and longitude gores,
spins it about its pole, tilts it to the right, drops the faces turned away
from the viewer and writes the rest as flat red and white polygons.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fs := cmd.Flags()
	fs.StringVarP(&configPath, "config", "c", "", "TOML or YAML config file; flags override it")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log pipeline details")
	b := bindConfigFlags(fs)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd.ErrOrStderr(), verbose)

		cfg := config.Default()
		if configPath != "" {
			var err error
			if cfg, err = config.Load(configPath); err != nil {
				return err
			}
			slog.Debug("loaded config", "path", configPath)
		}
		b.overlay(&cfg)

		if _, err := render.Run(cfg); err != nil {
			return err
		}
		if cfg.OutputPath != render.Stdout {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfg.OutputPath)
		}
		return nil
	}
	return cmd
}

// bindConfigFlags defines one flag per Config field, defaulting to Default.
func bindConfigFlags(fs *pflag.FlagSet) *binder {
	d := config.Default()
	b := &binder{fs: fs, apply: map[string]func(*config.Config){}}

	bind(b, "width", func(c *config.Config, v float64) { c.CanvasWidth = v },
		func() *float64 { return fs.Float64("width", d.CanvasWidth, "canvas width") })
	bind(b, "height", func(c *config.Config, v float64) { c.CanvasHeight = v },
		func() *float64 { return fs.Float64("height", d.CanvasHeight, "canvas height") })
	bind(b, "radius", func(c *config.Config, v float64) { c.Radius = &v },
		func() *float64 { return fs.Float64("radius", 0, "ball radius (default half the smaller canvas side)") })
	bind(b, "cx", func(c *config.Config, v float64) { c.CenterX = &v },
		func() *float64 { return fs.Float64("cx", 0, "ball center x (default canvas center)") })
	bind(b, "cy", func(c *config.Config, v float64) { c.CenterY = &v },
		func() *float64 { return fs.Float64("cy", 0, "ball center y (default canvas center)") })
	bind(b, "bands", func(c *config.Config, v int) { c.Bands = v },
		func() *int { return fs.Int("bands", d.Bands, "latitude bands, pole to pole") })
	bind(b, "gores", func(c *config.Config, v int) { c.Gores = v },
		func() *int { return fs.Int("gores", d.Gores, "longitude gores") })
	bind(b, "tilt", func(c *config.Config, v float64) { c.TiltDegrees = v },
		func() *float64 { return fs.Float64("tilt", d.TiltDegrees, "lean to the right, degrees") })
	bind(b, "spin", func(c *config.Config, v float64) { c.SpinDegrees = v },
		func() *float64 { return fs.Float64("spin", d.SpinDegrees, "spin about the polar axis, degrees") })
	bind(b, "red", func(c *config.Config, v string) { c.ColorRed = v },
		func() *string { return fs.String("red", d.ColorRed, "red checker color") })
	bind(b, "white", func(c *config.Config, v string) { c.ColorWhite = v },
		func() *string { return fs.String("white", d.ColorWhite, "white checker color") })
	bind(b, "stroke-width", func(c *config.Config, v float64) { c.StrokeWidth = v },
		func() *float64 { return fs.Float64("stroke-width", d.StrokeWidth, "facet edge width") })
	bind(b, "stroke", func(c *config.Config, v string) { c.StrokeColorOverride = v },
		func() *string { return fs.String("stroke", "", "facet edge color (default each facet's fill)") })
	bind(b, "background", func(c *config.Config, v bool) { c.DrawBackground = v },
		func() *bool { return fs.Bool("background", d.DrawBackground, "fill the canvas first") })
	bind(b, "background-color", func(c *config.Config, v string) { c.BackgroundColor = v },
		func() *string { return fs.String("background-color", d.BackgroundColor, "canvas fill color") })
	bind(b, "grid", func(c *config.Config, v bool) { c.Grid.Draw = v },
		func() *bool { return fs.Bool("grid", d.Grid.Draw, "draw a reference grid under the ball") })
	bind(b, "grid-color", func(c *config.Config, v string) { c.Grid.Color = v },
		func() *string { return fs.String("grid-color", d.Grid.Color, "grid line color") })
	bind(b, "grid-spacing", func(c *config.Config, v float64) { c.Grid.Spacing = v },
		func() *float64 { return fs.Float64("grid-spacing", d.Grid.Spacing, "distance between grid lines") })
	bind(b, "grid-width", func(c *config.Config, v float64) { c.Grid.StrokeWidth = v },
		func() *float64 { return fs.Float64("grid-width", d.Grid.StrokeWidth, "grid line width") })
	bind(b, "grid-origin-x", func(c *config.Config, v float64) { c.Grid.OriginX = v },
		func() *float64 { return fs.Float64("grid-origin-x", d.Grid.OriginX, "x every vertical grid line is offset from") })
	bind(b, "grid-origin-y", func(c *config.Config, v float64) { c.Grid.OriginY = v },
		func() *float64 { return fs.Float64("grid-origin-y", d.Grid.OriginY, "y every horizontal grid line is offset from") })
	bind(b, "grid-extent", func(c *config.Config, v config.Extent) { c.Grid.Extent = &v },
		func() *config.Extent {
			e := new(config.Extent)
			fs.Var((*extentValue)(e), "grid-extent", "grid bounds as minx,miny,maxx,maxy (default the canvas)")
			return e
		})
	bind(b, "output", func(c *config.Config, v string) { c.OutputPath = v },
		func() *string { return fs.StringP("output", "o", d.OutputPath, `output file, "-" for stdout`) })
	return b
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// extentValue parses "minx,miny,maxx,maxy" into a config.Extent.
type extentValue config.Extent

func (e *extentValue) String() string {
	if *e == (extentValue{}) {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g,%g", e.MinX, e.MinY, e.MaxX, e.MaxY)
}

func (e *extentValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fmt.Errorf("want minx,miny,maxx,maxy, got %q", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return err
		}
		v[i] = f
	}
	*e = extentValue{MinX: v[0], MinY: v[1], MaxX: v[2], MaxY: v[3]}
	return nil
}

func (e *extentValue) Type() string { return "extent" }
