package pipeline

import (
	"fmt"
	"sort"

	"github.com/martin2250/circaplot/aggregate"
	"github.com/martin2250/circaplot/dataset"
	"github.com/martin2250/circaplot/downsampling"
	"github.com/martin2250/circaplot/export"
	"github.com/martin2250/circaplot/render"
	"github.com/martin2250/circaplot/scale"
	"github.com/martin2250/circaplot/tooltip"
	"github.com/martin2250/circaplot/types"
	"github.com/martin2250/circaplot/util"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type builder func(r *Runner, p Plot, res *Result) error

var builders map[Kind]builder

func init() {
	builders = map[Kind]builder{
		KindLinked:     buildLinked,
		KindCircular:   buildCircular,
		KindProfile:    buildProfile,
		KindSubjects:   buildSubjects,
		KindComparison: buildComparison,
		KindHeatmap:    buildHeatmap,
		KindTrace:      buildTrace,
	}
}

func (r *Runner) aggregator(p Plot) (aggregate.Aggregator, error) {
	reducer, err := downsampling.FindReducer(p.Reducer)
	if err != nil {
		return aggregate.Aggregator{}, err
	}
	return aggregate.Aggregator{Reducer: reducer, Base: r.Config.Start}, nil
}

func (r *Runner) profile(p Plot, name string) ([]aggregate.AveragedPoint, Dataset, error) {
	table, d, err := r.loader.Wide(name)
	if err != nil {
		return nil, d, err
	}
	a, err := r.aggregator(p)
	if err != nil {
		return nil, d, err
	}
	profile, err := a.Profile(table.Rows)
	if err != nil {
		return nil, d, fmt.Errorf("dataset %s: %w", name, err)
	}
	return profile, d, nil
}

func label(d Dataset) string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

func color(d Dataset) drawing.Color {
	if d.Color == "" {
		return drawing.Color{}
	}
	return scale.MustColor(d.Color)
}

func options(p Plot, title string) render.Options {
	if p.Title != "" {
		title = p.Title
	}
	return render.Options{
		Title:     title,
		Width:     p.Width,
		Height:    p.Height,
		XLabel:    p.XLabel,
		YLabel:    p.YLabel,
		Unit:      p.Unit,
		YFromZero: p.YFromZero,
	}
}

func bands(p Plot, length int) []types.TimeRange {
	if p.Estrus == nil {
		return nil
	}
	return p.Estrus.Bands(int64(length))
}

func dayFormat(v float64) string {
	return fmt.Sprintf("Day %d", int(v)/types.MinutesPerDay)
}

func clockFormat(v float64) string {
	m := int(v)
	return fmt.Sprintf("%02d:%02d", m/60%24, m%60)
}

// figureName joins plot and subject into a name usable as a file name
func figureName(plot, subject string) string {
	return util.FileName(plot + "-" + subject)
}

func indices(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

func profileChart(p Plot, title string, profile []aggregate.AveragedPoint, c drawing.Color) export.Chart {
	if !p.PNG {
		return nil
	}
	xs := make([]float64, len(profile))
	for i, point := range profile {
		xs[i] = float64(point.MinuteOfDay)
	}
	chart := export.LineChart{
		Title:   title,
		XLabel:  "Time of Day",
		YLabel:  p.YLabel,
		Width:   int(p.Width),
		Height:  int(p.Height),
		Series:  []export.LineSeries{{Name: title, X: xs, Y: aggregate.Averages(profile), Color: c}},
		XFormat: clockFormat,
	}
	if p.YFromZero {
		zero := 0.0
		chart.YMin = &zero
	}
	return chart
}

func buildLinked(r *Runner, p Plot, res *Result) error {
	temp, dt, err := r.profile(p, p.Datasets[0])
	if err != nil {
		return err
	}
	act, da, err := r.profile(p, p.Datasets[1])
	if err != nil {
		return err
	}

	circle, err := render.Circular(temp, render.CircularOptions{
		Options: render.Options{Title: label(dt)},
	})
	if err != nil {
		return err
	}

	o := options(p, label(da))
	if o.XLabel == "" {
		o.XLabel = "Time of Day"
	}
	o.Color = color(da)
	line, err := render.Line(act, o)
	if err != nil {
		return err
	}

	c := tooltip.New(circle, line)
	c.Bind()

	res.Coordinator = c
	res.Figures = []Figure{
		{Name: p.Name + "-circular", Doc: circle.Doc},
		{Name: p.Name + "-line", Doc: line.Doc, Chart: profileChart(p, label(da), act, o.Color)},
	}
	return nil
}

func buildCircular(r *Runner, p Plot, res *Result) error {
	profile, d, err := r.profile(p, p.Datasets[0])
	if err != nil {
		return err
	}

	o := options(p, label(d))
	circle, err := render.Circular(profile, render.CircularOptions{Options: o})
	if err != nil {
		return err
	}

	res.Figures = []Figure{{Name: p.Name, Doc: circle.Doc}}
	return nil
}

func buildProfile(r *Runner, p Plot, res *Result) error {
	profile, d, err := r.profile(p, p.Datasets[0])
	if err != nil {
		return err
	}

	o := options(p, label(d))
	o.Color = color(d)
	line, err := render.Line(profile, o)
	if err != nil {
		return err
	}

	res.Figures = []Figure{{Name: p.Name, Doc: line.Doc, Chart: profileChart(p, label(d), profile, o.Color)}}
	return nil
}

func buildSubjects(r *Runner, p Plot, res *Result) error {
	table, d, err := r.loader.Wide(p.Datasets[0])
	if err != nil {
		return err
	}

	o := options(p, label(d))
	o.Bands = bands(p, len(table.Rows))
	plot, err := render.Subjects(table, o)
	if err != nil {
		return err
	}

	fig := Figure{Name: p.Name, Doc: plot.Doc}
	if p.PNG {
		chart := export.LineChart{
			Title:   o.Title,
			XLabel:  p.XLabel,
			YLabel:  p.YLabel,
			Width:   int(p.Width),
			Height:  int(p.Height),
			Bands:   o.Bands,
			XFormat: dayFormat,
		}
		xs := indices(len(table.Rows))
		for j, name := range table.Subjects {
			chart.Series = append(chart.Series, export.LineSeries{
				Name:  name,
				X:     xs,
				Y:     table.Column(j),
				Color: scale.Category(j),
			})
		}
		fig.Chart = chart
	}

	res.Figures = []Figure{fig}
	return nil
}

func buildComparison(r *Runner, p Plot, res *Result) error {
	a, err := r.aggregator(p)
	if err != nil {
		return err
	}

	var series []render.Series
	length := 0
	for _, name := range p.Datasets {
		table, d, err := r.loader.Wide(name)
		if err != nil {
			return err
		}
		values, err := a.RowSeries(table.Rows)
		if err != nil {
			return fmt.Errorf("dataset %s: %w", name, err)
		}
		series = append(series, render.Series{Name: label(d), Values: values, Color: color(d)})
		if len(values) > length {
			length = len(values)
		}
	}

	o := options(p, p.Name)
	o.Bands = bands(p, length)
	plot, err := render.Comparison(series, o)
	if err != nil {
		return err
	}

	fig := Figure{Name: p.Name, Doc: plot.Doc}
	if p.PNG {
		chart := export.LineChart{
			Title:   o.Title,
			XLabel:  p.XLabel,
			YLabel:  p.YLabel,
			Width:   int(p.Width),
			Height:  int(p.Height),
			Bands:   o.Bands,
			XFormat: dayFormat,
		}
		for i, s := range series {
			c := s.Color
			if c == (drawing.Color{}) {
				c = scale.Category(i)
			}
			chart.Series = append(chart.Series, export.LineSeries{Name: s.Name, X: indices(len(s.Values)), Y: s.Values, Color: c})
		}
		if p.YFromZero {
			zero := 0.0
			chart.YMin = &zero
		}
		fig.Chart = chart
	}

	res.Figures = []Figure{fig}
	return nil
}

func (r *Runner) subjects(p Plot) ([]dataset.LongRecord, Dataset, []string, error) {
	records, d, err := r.loader.Long(p.Datasets[0])
	if err != nil {
		return nil, d, nil, err
	}
	if len(p.Subjects) == 0 {
		return records, d, dataset.Subjects(records), nil
	}
	subjects := make([]string, len(p.Subjects))
	for i, s := range p.Subjects {
		subjects[i] = util.NormalizeID(s)
	}
	return records, d, subjects, nil
}

func buildHeatmap(r *Runner, p Plot, res *Result) error {
	records, d, subjects, err := r.subjects(p)
	if err != nil {
		return err
	}

	for _, subject := range subjects {
		o := options(p, fmt.Sprintf("%s %s", label(d), subject))
		h, err := render.Heatmap(records, subject, o)
		if err != nil {
			return err
		}
		fig := Figure{Name: figureName(p.Name, h.Subject), Doc: h.Doc}
		if p.PNG {
			fig.Chart = export.HeatmapChart{Title: o.Title, Days: h.Days, Values: h.Values}
		}
		res.Figures = append(res.Figures, fig)
	}
	return nil
}

func buildTrace(r *Runner, p Plot, res *Result) error {
	records, d, subjects, err := r.subjects(p)
	if err != nil {
		return err
	}

	for _, subject := range subjects {
		o := options(p, fmt.Sprintf("%s %s", label(d), subject))
		o.Color = color(d)
		plot, err := render.Trace(records, subject, o)
		if err != nil {
			return err
		}
		fig := Figure{Name: figureName(p.Name, subject), Doc: plot.Doc}
		if p.PNG {
			valid, err := dataset.FilterValid(records, subject)
			if err != nil {
				return err
			}
			sort.SliceStable(valid, func(a, b int) bool { return valid[a].Slot < valid[b].Slot })
			xs := make([]float64, len(valid))
			ys := make([]float64, len(valid))
			for i, rec := range valid {
				xs[i], ys[i] = rec.Slot, rec.Value
			}
			fig.Chart = export.LineChart{
				Title:   o.Title,
				XLabel:  p.XLabel,
				YLabel:  p.YLabel,
				Width:   int(p.Width),
				Height:  int(p.Height),
				Series:  []export.LineSeries{{Name: subject, X: xs, Y: ys, Color: o.Color}},
				XFormat: func(v float64) string { return dayFormat(v + types.MinutesPerDay) },
			}
		}
		res.Figures = append(res.Figures, fig)
	}
	return nil
}
