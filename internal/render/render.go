// Package render runs the whole pipeline: mesh, orientation, culling,
// projection and document assembly.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jbeda/geom"
	"gonum.org/v1/gonum/spatial/r3"

	"boing/internal/config"
	"boing/internal/sphere"
	"boing/internal/svgdoc"
)

// ErrWrite wraps failures to store the finished document.
var ErrWrite = errors.New("writing document")

// Stdout is the output path that selects standard output.
const Stdout = "-"

// Result is everything one render produced.
type Result struct {
	Mesh      *sphere.Mesh
	World     []r3.Vec
	Visible   []sphere.Face
	Triangles []sphere.Projected
	Document  *svgdoc.Document
}

// Render validates cfg and builds the document.  It does no I/O.
func Render(cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Bands%2 != 0 || cfg.Gores%2 != 0 {
		slog.Warn("odd band or gore count, checker pattern will not close", "bands", cfg.Bands, "gores", cfg.Gores)
	}

	mesh, err := sphere.NewMesh(cfg.Bands, cfg.Gores, cfg.ResolvedRadius())
	if err != nil {
		return nil, err
	}
	slog.Debug("built mesh", "vertices", len(mesh.Vertices), "faces", len(mesh.Faces))

	world := sphere.NewTransform(cfg.SpinDegrees, cfg.TiltDegrees).ApplyAll(mesh.Vertices)

	visible, err := sphere.Visible(world, mesh.Faces)
	if err != nil {
		return nil, fmt.Errorf("culling: %w", err)
	}
	slog.Debug("face count after cull", "visible", len(visible), "culled", len(mesh.Faces)-len(visible))

	tris := sphere.Projector{Center: cfg.Center()}.Project(world, visible)

	doc := &svgdoc.Document{
		Width:    cfg.CanvasWidth,
		Height:   cfg.CanvasHeight,
		Polygons: Polygons(&cfg, tris),
	}
	if cfg.DrawBackground {
		doc.Background = cfg.BackgroundColor
	}
	if cfg.Grid.Draw {
		doc.Underlay = cfg.ReferenceGrid().Primitives()
	}
	slog.Debug("assembled document", "primitives", doc.Len(), "grid", len(doc.Underlay))

	return &Result{
		Mesh:      mesh,
		World:     world,
		Visible:   visible,
		Triangles: tris,
		Document:  doc,
	}, nil
}

// Polygons styles projected triangles with their checker fill and stroke.
func Polygons(cfg *config.Config, tris []sphere.Projected) []*svgdoc.Polygon {
	r := make([]*svgdoc.Polygon, len(tris))
	for i, t := range tris {
		fill := cfg.Fill(t.Face.Color)
		r[i] = &svgdoc.Polygon{
			Points:      []geom.Coord{t.A, t.B, t.C},
			Fill:        fill,
			Stroke:      cfg.StrokeFor(fill),
			StrokeWidth: cfg.StrokeWidth,
		}
	}
	return r
}

// Write serializes doc to w.
func Write(w io.Writer, doc *svgdoc.Document) error {
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// WriteFile stores doc at path, or on stdout when path is Stdout.
func WriteFile(path string, doc *svgdoc.Document) error {
	if path == Stdout {
		return Write(os.Stdout, doc)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	w := bufio.NewWriter(f)
	if err := Write(w, doc); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Run renders cfg and writes the result to cfg.OutputPath.
func Run(cfg config.Config) (*Result, error) {
	res, err := Render(cfg)
	if err != nil {
		return nil, err
	}
	if err := WriteFile(cfg.OutputPath, res.Document); err != nil {
		return nil, err
	}
	slog.Info("wrote document", "path", cfg.OutputPath, "triangles", len(res.Triangles))
	return res, nil
}
