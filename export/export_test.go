package export

import (
	"bytes"
	"errors"
	"html/template"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/martin2250/circaplot/types"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestLineChartPNG(t *testing.T) {
	xs := make([]float64, 2880)
	ys := make([]float64, 2880)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = 36 + math.Sin(float64(i)/229)
	}
	ys[10] = math.NaN()

	c := LineChart{
		Title:  "temperature",
		Series: []LineSeries{{Name: "f1", X: xs, Y: ys, Color: drawing.ColorFromHex("4e79a7")}},
		Bands:  types.DefaultEstrus.Bands(2880),
		XFormat: func(v float64) string {
			return "Day"
		},
	}

	var buf bytes.Buffer
	if err := c.RenderPNG(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestLineChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := LineChart{Series: []LineSeries{{Name: "a", X: []float64{1}, Y: []float64{2}}}}.RenderPNG(&buf)
	if !errors.Is(err, ErrEmptyChart) {
		t.Errorf("expected ErrEmptyChart, got %v", err)
	}
}

func TestLegendSkipsUnnamedBands(t *testing.T) {
	bands := bandSeries([]types.TimeRange{{Start: 0, End: 10}, {Start: 20, End: 30}, {Start: 40, End: 50}}, 0, 1)
	if len(bands) != 3 {
		t.Fatalf("expected 3 band series, got %d", len(bands))
	}

	series := append(bands,
		chart.ContinuousSeries{Name: "f1", XValues: []float64{0, 1}, YValues: []float64{0, 1}},
		chart.ContinuousSeries{Name: "f2", XValues: []float64{0, 1}, YValues: []float64{1, 0}},
	)

	var names []string
	for _, s := range legendSeries(series) {
		names = append(names, s.GetName())
	}
	if strings.Join(names, ",") != BandLabel+",f1,f2" {
		t.Errorf("legend lists %q", names)
	}
}

func TestHeatmapPNG(t *testing.T) {
	c := HeatmapChart{
		Title:  "f1",
		Days:   []float64{1, 2, 3},
		Values: make([][]float64, 3),
	}
	for i := range c.Values {
		c.Values[i] = make([]float64, 24)
		for h := range c.Values[i] {
			c.Values[i][h] = float64(i*24 + h)
		}
	}
	c.Values[1][5] = math.NaN()

	var buf bytes.Buffer
	if err := c.RenderPNG(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestHeatmapEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (HeatmapChart{}).RenderPNG(&buf); !errors.Is(err, ErrEmptyChart) {
		t.Errorf("expected ErrEmptyChart, got %v", err)
	}
}

func TestReport(t *testing.T) {
	r := Report{
		Title:     "mice",
		Generated: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Sections: []Section{
			{
				Name:    "femTemp",
				Kind:    "linked",
				Figures: []Figure{{Name: "circle", SVG: template.HTML("<svg></svg>"), Image: "femTemp.png"}},
			},
			{
				Name:  "broken",
				Kind:  "heatmap",
				Error: "open missing.csv: <no such file>",
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, r); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{"<svg></svg>", "femTemp.png", "2025-01-01 12:00:00", "&lt;no such file&gt;"} {
		if !strings.Contains(out, want) {
			t.Errorf("report does not contain %q", want)
		}
	}
}
