// Package chart maps aggregated tables into declarative chart
// specifications. A Spec describes what to draw, not how: the browser-side
// renderer consumes the JSON encoding of a Spec and produces the figure.
package chart

import (
	"fmt"
	"sort"

	"github.com/brightline-labs/callboard/internal/frame"
)

// Kind identifies the chart shape.
type Kind string

const (
	KindBar        Kind = "bar"
	KindPie        Kind = "pie"
	KindFunnel     Kind = "funnel"
	KindGroupedBar Kind = "grouped-bar"
)

// Series is a named value set of a grouped-bar chart.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Spec is a declarative chart description. Labels and Values are parallel
// for bar/pie/funnel; grouped-bar uses Labels for the category axis and one
// Series per colour group.
type Spec struct {
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	LabelAxis string    `json:"labelAxis,omitempty"`
	ValueAxis string    `json:"valueAxis,omitempty"`
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values,omitempty"`
	Series    []Series  `json:"series,omitempty"`
}

// Bar builds a bar chart from grouped counts, preserving their order.
func Bar(title, labelAxis, valueAxis string, groups []frame.GroupCount) Spec {
	s := Spec{Kind: KindBar, Title: title, LabelAxis: labelAxis, ValueAxis: valueAxis}
	s.Labels, s.Values = split(groups)
	return s
}

// Pie builds a pie chart from grouped counts.
func Pie(title string, groups []frame.GroupCount) Spec {
	s := Spec{Kind: KindPie, Title: title}
	s.Labels, s.Values = split(groups)
	return s
}

// Funnel builds a funnel chart from grouped counts, widest stage first.
func Funnel(title string, groups []frame.GroupCount) Spec {
	s := Spec{Kind: KindFunnel, Title: title}
	s.Labels, s.Values = split(groups)
	return s
}

// GroupedBar pivots cross-tab pairs into a grouped bar chart: the A values
// become the category axis, each distinct B value becomes a series. Axis
// categories and series are ordered alphabetically; absent combinations
// are zero.
func GroupedBar(title, labelAxis string, pairs []frame.PairCount) Spec {
	axisIdx := map[string]int{}
	var axis []string
	seriesIdx := map[string]int{}
	var names []string

	for _, p := range pairs {
		if _, ok := axisIdx[p.A]; !ok {
			axisIdx[p.A] = 0
			axis = append(axis, p.A)
		}
		if _, ok := seriesIdx[p.B]; !ok {
			seriesIdx[p.B] = 0
			names = append(names, p.B)
		}
	}
	sort.Strings(axis)
	sort.Strings(names)
	for i, a := range axis {
		axisIdx[a] = i
	}
	for i, n := range names {
		seriesIdx[n] = i
	}

	series := make([]Series, len(names))
	for i, name := range names {
		series[i] = Series{Name: name, Values: make([]float64, len(axis))}
	}
	for _, p := range pairs {
		series[seriesIdx[p.B]].Values[axisIdx[p.A]] = float64(p.Count)
	}

	return Spec{
		Kind:      KindGroupedBar,
		Title:     title,
		LabelAxis: labelAxis,
		Labels:    axis,
		Series:    series,
	}
}

// DisplayTable extracts up to rowLimit rows from a frame as display
// strings in the given column order, preserving row order. Nil cells
// render as an em dash.
func DisplayTable(f *frame.Frame, columns []string, rowLimit int) [][]string {
	n := f.RowCount()
	if rowLimit > 0 && n > rowLimit {
		n = rowLimit
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = cell(f.Value(i, col))
		}
		rows = append(rows, row)
	}
	return rows
}

func cell(v any) string {
	if v == nil {
		return "—"
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// Whole numbers read better without the ".0" JSON decoding adds.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func split(groups []frame.GroupCount) ([]string, []float64) {
	labels := make([]string, len(groups))
	values := make([]float64, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
		values[i] = float64(g.Count)
	}
	return labels, values
}
