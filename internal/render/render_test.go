package render

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boing/internal/config"
	"boing/internal/sphere"
)

func render(t *testing.T, cfg config.Config) (*Result, string) {
	t.Helper()
	res, err := Render(cfg)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res.Document))
	return res, buf.String()
}

func TestRenderDefaultBall(t *testing.T) {
	cfg := config.Default()
	res, out := render(t, cfg)

	assert.Len(t, res.Mesh.Faces, 224)
	assert.Len(t, res.Visible, 112)
	require.Len(t, res.Triangles, 112)
	require.Len(t, res.Document.Polygons, 112)
	assert.Equal(t, 112, strings.Count(out, "<polygon "))
	assert.NotContains(t, out, "<rect")
	assert.NotContains(t, out, "<line")

	first := res.Triangles[0].Face
	wantFill := "#ffffff"
	if (first.Band+first.Gore)%2 == 0 {
		wantFill = "#ff0000"
	}
	assert.Equal(t, wantFill, res.Document.Polygons[0].Fill)

	for i, p := range res.Document.Polygons {
		f := res.Triangles[i].Face
		assert.Equal(t, cfg.Fill(sphere.CheckerAt(f.Band, f.Gore)), p.Fill)
		assert.Equal(t, p.Fill, p.Stroke)
		assert.Equal(t, 0.0, p.StrokeWidth)
		assert.Len(t, p.Points, 3)
	}
}

func TestRenderMinimal(t *testing.T) {
	cfg := config.Default()
	cfg.Bands = 2
	cfg.Gores = 3
	res, out := render(t, cfg)
	assert.Len(t, res.Mesh.Vertices, 5)
	assert.Len(t, res.Mesh.Faces, 6)
	assert.NotEmpty(t, res.Visible)
	assert.Equal(t, len(res.Visible), strings.Count(out, "<polygon "))
}

func TestRenderInvalidGores(t *testing.T) {
	cfg := config.Default()
	cfg.Gores = 2
	res, err := Render(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Nil(t, res)
}

func TestRenderRejectsNonFinite(t *testing.T) {
	cfg := config.Default()
	cfg.TiltDegrees = math.Inf(1)
	res, err := Render(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Nil(t, res)

	cfg = config.Default()
	cfg.Grid.Draw = true
	cfg.Grid.OriginY = math.NaN()
	_, err = Render(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRenderFarGridOrigin(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Draw = true
	cfg.Grid.OriginX = 1e20
	res, _ := render(t, cfg)
	assert.NotEmpty(t, res.Document.Underlay)
	assert.Len(t, res.Document.Polygons, 112)
}

func TestRenderDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.SpinDegrees = 33.3
	cfg.DrawBackground = true
	cfg.Grid.Draw = true

	a, outA := render(t, cfg)
	b, outB := render(t, cfg)
	assert.Equal(t, a.Triangles, b.Triangles)
	assert.Equal(t, outA, outB)
}

func TestRenderLayers(t *testing.T) {
	cfg := config.Default()
	cfg.DrawBackground = true
	cfg.Grid.Draw = true
	cfg.Grid.Spacing = 100
	cfg.StrokeWidth = 1.5
	cfg.StrokeColorOverride = "#222222"
	res, out := render(t, cfg)

	// 0,100,...,500 both ways.
	assert.Len(t, res.Document.Underlay, 12)
	assert.Equal(t, 1+12+len(res.Triangles), res.Document.Len())

	rect := strings.Index(out, "<rect ")
	lastLine := strings.LastIndex(out, "<line ")
	firstPoly := strings.Index(out, "<polygon ")
	require.True(t, rect >= 0 && lastLine >= 0 && firstPoly >= 0)
	assert.Less(t, rect, lastLine)
	assert.Less(t, lastLine, firstPoly)
	assert.Contains(t, out, "fill='#aaaaaa'")
	assert.Contains(t, out, "stroke='#a000a0'")

	for _, p := range res.Document.Polygons {
		assert.Equal(t, "#222222", p.Stroke)
		assert.Equal(t, 1.5, p.StrokeWidth)
	}
	assert.Contains(t, out, "stroke='#222222' stroke-width='1.500'")
}

func TestRenderSpinKeepsOutline(t *testing.T) {
	cfg := config.Default()
	cfg.TiltDegrees = 0
	cfg.SpinDegrees = 90
	res, _ := render(t, cfg)

	center := cfg.Center()
	maxDist := 0.0
	for _, tri := range res.Triangles {
		for _, d := range []float64{tri.A.DistanceFrom(center), tri.B.DistanceFrom(center), tri.C.DistanceFrom(center)} {
			assert.LessOrEqual(t, d, 250+1e-9)
			maxDist = max(maxDist, d)
		}
	}
	assert.InDelta(t, 250, maxDist, 1e-9)
}

func TestRunWritesFile(t *testing.T) {
	cfg := config.Default()
	cfg.OutputPath = filepath.Join(t.TempDir(), "boing.svg")
	res, err := Run(cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res.Document))
	assert.Equal(t, buf.Bytes(), data)
}

func TestRunWriteError(t *testing.T) {
	cfg := config.Default()
	cfg.OutputPath = filepath.Join(t.TempDir(), "missing", "boing.svg")
	res, err := Run(cfg)
	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, res)
}
