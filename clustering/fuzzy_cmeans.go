// SPDX-License-Identifier: MIT
// Package clustering: fuzzy c-means refinement of an existing partition.

package clustering

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mstcluster/forest"
	"github.com/katalvlaran/mstcluster/matrix"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Defaults applied when the corresponding FuzzyCMeans field is zero.
const (
	DefaultFuzziness  = 2.0
	DefaultIterations = 100
	DefaultTolerance  = 1e-6
)

// FuzzyCMeans refines the previous partition with the classic fuzzy c-means
// alternation:
//
//	c_k  = Σ_n u_kn^m · x_n / Σ_n u_kn^m
//	u_kn = 1 / Σ_j (‖x_n − c_k‖ / ‖x_n − c_j‖)^(2/(m−1))
//
// Only "active" rows take part: a row that arrives all-zero stays all-zero, so
// clusters dissolved by noise pruning are never revived. Within each column the
// active memberships sum to 1.
type FuzzyCMeans struct {
	// Fuzziness is the exponent m (> 1). Zero means DefaultFuzziness.
	Fuzziness float64
	// Iterations caps the number of update rounds. Zero means DefaultIterations.
	Iterations int
	// Tolerance stops iterating once no membership moves by more than it.
	// Zero means DefaultTolerance.
	Tolerance float64
}

var _ Model = FuzzyCMeans{}

func (m FuzzyCMeans) withDefaults() (FuzzyCMeans, error) {
	if m.Fuzziness == 0 {
		m.Fuzziness = DefaultFuzziness
	}
	if m.Iterations == 0 {
		m.Iterations = DefaultIterations
	}
	if m.Tolerance == 0 {
		m.Tolerance = DefaultTolerance
	}
	if m.Fuzziness <= 1 || m.Iterations < 0 || m.Tolerance < 0 {
		return m, errors.Wrapf(ErrBadParameter, "fuzzy-cmeans m=%v iterations=%d tolerance=%v",
			m.Fuzziness, m.Iterations, m.Tolerance)
	}

	return m, nil
}

// Transform implements Model. The forest is not consulted; workers bounds the
// goroutines used for the membership update.
func (m FuzzyCMeans) Transform(points *mat.Dense, _ forest.SpanningForest, workers int, prev *mat.Dense) (*mat.Dense, error) {
	cfg, err := m.withDefaults()
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, ErrNoPartition
	}
	if err = matrix.ValidateNotEmpty(points); err != nil {
		return nil, errors.Wrap(err, "fuzzy-cmeans: points")
	}
	n, d := points.Dims()
	if err = matrix.ValidateColumns(prev, n); err != nil {
		return nil, errors.Wrap(err, "fuzzy-cmeans: previous partition")
	}
	if workers < 1 {
		workers = 1
	}

	u := mat.DenseCopyOf(prev)
	k, _ := u.Dims()
	var active []int
	for row, ok := range matrix.NonZeroRows(u) {
		if ok {
			active = append(active, row)
		}
	}
	if len(active) == 0 {
		return u, nil
	}

	centers := mat.NewDense(k, d, nil)
	for iter := 0; iter < cfg.Iterations; iter++ {
		updateCenters(points, u, centers, active, cfg.Fuzziness)
		delta, err := updateMemberships(points, u, centers, active, cfg.Fuzziness, workers)
		if err != nil {
			return nil, err
		}
		if delta <= cfg.Tolerance {
			break
		}
	}

	return u, nil
}

// updateCenters recomputes c_k for every active row in place.
func updateCenters(points, u, centers *mat.Dense, active []int, fuzziness float64) {
	n, _ := points.Dims()
	for _, k := range active {
		c := centers.RawRowView(k)
		for i := range c {
			c[i] = 0
		}
		var total float64
		for col := 0; col < n; col++ {
			w := math.Pow(u.At(k, col), fuzziness)
			if w == 0 {
				continue
			}
			floats.AddScaled(c, w, points.RawRowView(col))
			total += w
		}
		if total > 0 {
			floats.Scale(1/total, c)
		}
	}
}

// updateMemberships rewrites the active rows of u column by column, splitting
// the columns into one chunk per worker. It returns the largest absolute change.
func updateMemberships(points, u, centers *mat.Dense, active []int, fuzziness float64, workers int) (float64, error) {
	n, _ := points.Dims()
	exp := 2 / (fuzziness - 1)
	chunk := (n + workers - 1) / workers
	deltas := make([]float64, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			dist := make([]float64, len(active))
			for col := lo; col < hi; col++ {
				x := points.RawRowView(col)
				exact := -1
				for i, k := range active {
					dist[i] = floats.Distance(x, centers.RawRowView(k), 2)
					if dist[i] == 0 && exact < 0 {
						exact = i
					}
				}
				for i, k := range active {
					var next float64
					switch {
					case exact >= 0 && i == exact:
						next = 1
					case exact >= 0:
						next = 0
					default:
						var sum float64
						for j := range active {
							sum += math.Pow(dist[i]/dist[j], exp)
						}
						next = 1 / sum
					}
					deltas[w] = math.Max(deltas[w], math.Abs(next-u.At(k, col)))
					u.Set(k, col, next)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, errors.Wrap(err, "fuzzy-cmeans: membership update")
	}

	return floats.Max(deltas), nil
}
