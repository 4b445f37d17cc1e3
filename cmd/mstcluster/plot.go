// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// plotLabels draws the first two dimensions of points, one colored series per
// label, and saves the figure to path. The format follows the extension.
// One-dimensional points are drawn against their index.
func plotLabels(path string, points *mat.Dense, labels []int) error {
	n, d := points.Dims()
	if n != len(labels) {
		return errors.Newf("plot: %d points but %d labels", n, len(labels))
	}

	groups := make(map[int]plotter.XYs)
	for i := 0; i < n; i++ {
		xy := plotter.XY{X: float64(i), Y: points.At(i, 0)}
		if d > 1 {
			xy = plotter.XY{X: points.At(i, 0), Y: points.At(i, 1)}
		}
		groups[labels[i]] = append(groups[labels[i]], xy)
	}
	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	p := plot.New()
	p.Title.Text = "mstcluster labels"
	p.X.Label.Text = "x0"
	p.Y.Label.Text = "x1"
	if d == 1 {
		p.X.Label.Text, p.Y.Label.Text = "point", "x0"
	}
	p.Add(plotter.NewGrid())

	for _, label := range keys {
		sc, err := plotter.NewScatter(groups[label])
		if err != nil {
			return errors.Wrapf(err, "plot: label %d", label)
		}
		sc.GlyphStyle.Radius = vg.Points(2.5)
		if label == 0 {
			sc.GlyphStyle.Color = plotutil.DarkColors[len(plotutil.DarkColors)-1]
			sc.GlyphStyle.Shape = draw.CrossGlyph{}
			p.Legend.Add("noise", sc)
		} else {
			sc.GlyphStyle.Color = plotutil.Color(label - 1)
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Legend.Add(fmt.Sprintf("cluster %d", label), sc)
		}
		p.Add(sc)
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "plot: save %s", path)
	}

	return nil
}
