// SPDX-License-Identifier: MIT
// Package pipeline: the refinement driver.
//
// Fit steps:
//  1. Accept points (copy, optional L2 row normalization) or reuse the
//     previously accepted ones.
//  2. Validate an initial partition against N, if given.
//  3. Acquire the forest (supplied / cached / freshly built and validated).
//  4. Reset the noise vector.
//  5. Refine: next model → transform → shape check → prune → report → persist.

package pipeline

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/katalvlaran/mstcluster/clustering"
	"github.com/katalvlaran/mstcluster/forest"
	"github.com/katalvlaran/mstcluster/matrix"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// ForestState records where the cached forest came from.
type ForestState int

const (
	// ForestNone means no forest is cached yet.
	ForestNone ForestState = iota

	// ForestBuilt means the forest was built by the pipeline and validated.
	ForestBuilt

	// ForestSupplied means the caller handed the forest in; it was not validated.
	ForestSupplied
)

// String returns "none", "built" or "supplied".
func (s ForestState) String() string {
	switch s {
	case ForestBuilt:
		return "built"
	case ForestSupplied:
		return "supplied"
	default:
		return "none"
	}
}

// Pipeline runs an ordered list of clustering models over a point set,
// dissolving weak clusters into noise after every step.
type Pipeline struct {
	opts Options
	seq  *sequencer

	points      *mat.Dense
	forest      forest.SpanningForest
	forestState ForestState
	partition   *mat.Dense
	noise       []float64
	steps       int // steps completed by the last Fit
	runID       string
}

// New returns a Pipeline over models, consumed in order across all Fit calls.
// Panics if any model is nil.
func New(models []clustering.Model, opts ...Option) *Pipeline {
	for i, m := range models {
		if m == nil {
			panic(errors.Newf("pipeline: New: model %d is nil", i))
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Builder == nil {
		bopts := []forest.BuilderOption{forest.WithLogger(o.Logger)}
		if o.Store != nil {
			bopts = append(bopts, forest.WithStore(o.Store))
		}
		o.Builder = FromForestBuilder(forest.NewBuilder(bopts...))
	}

	return &Pipeline{opts: o, seq: newSequencer(models)}
}

// Fit runs up to the requested number of refinement steps.
//
// points may be nil on every call but the first, in which case the points
// accepted earlier are reused. Running out of models ends the loop without
// error. On error the pipeline keeps whatever state the failed step reached.
func (p *Pipeline) Fit(points *mat.Dense, opts ...FitOption) error {
	fo := DefaultFitOptions()
	for _, opt := range opts {
		opt(&fo)
	}

	p.runID = uuid.NewString()
	log := p.opts.Logger.With("run", p.runID)

	// 1. Points.
	if err := p.acceptPoints(points, fo.Normalize); err != nil {
		return err
	}
	n, d := p.points.Dims()

	// 2. Initial partition.
	if fo.InitialPartition != nil {
		if err := matrix.ValidateColumns(fo.InitialPartition, n); err != nil {
			return errors.Wrap(errors.Mark(err, ErrPartitionShape), "pipeline: initial partition")
		}
	}

	// 3. Forest.
	if err := p.acquireForest(fo.Forest, log); err != nil {
		return err
	}

	// 4. Noise restarts with every call.
	p.noise = make([]float64, n)
	p.steps = 0

	steps := fo.Steps
	if steps < 0 {
		steps = p.seq.Len()
	}
	log.Debugw("fit started",
		"points", n, "dims", d, "steps", steps,
		"remaining_models", p.seq.Remaining(), "forest", p.forestState.String())

	// 5. Refine.
	prev := fo.InitialPartition
	for step := 0; step < steps; step++ {
		model, ok := p.seq.Next()
		if !ok {
			log.Debugw("models exhausted", "step", step)
			break
		}

		next, err := p.refine(model, prev, step, log)
		if err != nil {
			return err
		}
		prev = next

		if fo.SaveSteps {
			labels, err := p.Labels()
			if err != nil {
				return err
			}
			if err = persistStep(p.forest, p.opts.Store, fo.Title, step, labels); err != nil {
				return errors.Wrapf(err, "pipeline: step %d", step)
			}
		}
	}

	log.Infow("fit finished",
		"steps", p.steps, "clusters", p.NonEmptyClustersCount(), "noise_points", p.NoiseCount())

	return nil
}

// acceptPoints copies points into the pipeline, or checks that earlier ones exist.
func (p *Pipeline) acceptPoints(points *mat.Dense, normalize bool) error {
	if points == nil {
		if p.points == nil {
			return errors.WithHint(ErrNoData, "pass points to the first Fit call")
		}
		return nil
	}
	if err := matrix.ValidatePoints(points); err != nil {
		if !errors.Is(err, matrix.ErrNaNInf) {
			err = errors.Mark(err, ErrNoData)
		}
		return errors.Wrap(err, "pipeline: points")
	}

	if normalize {
		norm, _, err := matrix.NormalizeRowsL2(points)
		if err != nil {
			return errors.Wrap(err, "pipeline: normalize")
		}
		p.points = norm
		return nil
	}
	p.points = mat.DenseCopyOf(points)

	return nil
}

// acquireForest adopts a supplied forest, reuses the cached one, or builds and
// validates a new one.
func (p *Pipeline) acquireForest(supplied forest.SpanningForest, log *zap.SugaredLogger) error {
	if supplied != nil {
		p.forest = supplied
		p.forestState = ForestSupplied
		log.Debugw("forest supplied")
		return nil
	}
	if p.forest != nil {
		return nil
	}

	n, _ := p.points.Dims()
	start := time.Now()
	f, err := p.opts.Builder.Build(p.points, p.opts.Workers, p.opts.Distance)
	if err != nil {
		return errors.Wrap(err, "pipeline: build forest")
	}
	if err = validateForest(f, n); err != nil {
		return err
	}
	p.forest = f
	p.forestState = ForestBuilt
	log.Debugw("forest built", "points", n, "took", time.Since(start))

	return nil
}

// validateForest requires a single spanning tree with exactly n-1 edges in
// component 0.
func validateForest(f forest.SpanningForest, n int) error {
	if f == nil {
		return errors.Wrap(ErrInvalidForest, "builder returned no forest")
	}
	if !f.IsSpanningTree() {
		return errors.Wrap(ErrInvalidForest, "more than one component")
	}
	edges, err := f.TreeEdges(0)
	if err != nil {
		return errors.Wrap(errors.Mark(err, ErrInvalidForest), "pipeline: enumerate tree edges")
	}
	if len(edges) != n-1 {
		return errors.Wrapf(ErrInvalidForest, "%d edges for %d points", len(edges), n)
	}

	return nil
}

// refine runs one model, prunes its output and makes it the current partition.
func (p *Pipeline) refine(model clustering.Model, prev *mat.Dense, step int, log *zap.SugaredLogger) (*mat.Dense, error) {
	n, _ := p.points.Dims()
	start := time.Now()

	next, err := model.Transform(p.points, p.forest, p.opts.Workers, prev)
	if err != nil {
		return nil, errors.Wrapf(err, "pipeline: step %d", step)
	}
	if err = matrix.ValidateColumns(next, n); err != nil {
		return nil, errors.Wrapf(errors.Mark(err, ErrPartitionShape), "pipeline: step %d", step)
	}

	pruned := pruneNoise(next, p.noise, p.opts.MinPartition, p.opts.FuzzyNoiseCriterion)
	p.partition = next
	p.steps++

	report := StepReport{
		RunID:       p.runID,
		Step:        step,
		Clusters:    p.ClustersCount(),
		Surviving:   p.NonEmptyClustersCount(),
		Pruned:      len(pruned),
		NoisePoints: p.NoiseCount(),
		Duration:    time.Since(start),
	}
	log.Debugw("step done",
		"step", step, "clusters", report.Clusters, "surviving", report.Surviving,
		"pruned", pruned, "noise_points", report.NoisePoints, "took", report.Duration)
	if p.opts.Observer != nil {
		p.opts.Observer.ObserveStep(report)
	}

	return next, nil
}

// Labels returns one label per point: 0 for noise, k+1 for partition row k.
// A point is noise when its noise flag is at least its largest membership;
// otherwise it takes the lowest row with the largest membership.
func (p *Pipeline) Labels() ([]int, error) {
	if p.partition == nil {
		return nil, ErrNotFitted
	}
	stacked, err := matrix.StackRow(p.noise, p.partition)
	if err != nil {
		return nil, errors.Wrap(err, "pipeline: labels")
	}

	return matrix.ArgmaxColumns(stacked)
}

// ClustersCount returns the number of partition rows K, pruned rows included.
// It is 0 before any step has run.
func (p *Pipeline) ClustersCount() int {
	if p.partition == nil {
		return 0
	}
	k, _ := p.partition.Dims()

	return k
}

// NonEmptyClustersCount returns the number of partition rows with at least
// one nonzero membership.
func (p *Pipeline) NonEmptyClustersCount() int {
	if p.partition == nil {
		return 0
	}
	count := 0
	for _, nz := range matrix.NonZeroRows(p.partition) {
		if nz {
			count++
		}
	}

	return count
}

// NoiseCount returns the number of points flagged as noise by the last Fit.
func (p *Pipeline) NoiseCount() int {
	count := 0
	for _, v := range p.noise {
		if v != 0 {
			count++
		}
	}

	return count
}

// Partition returns the current K×N partition, or nil before any step.
// The matrix is owned by the pipeline.
func (p *Pipeline) Partition() *mat.Dense { return p.partition }

// Noise returns a copy of the noise vector of the last Fit.
func (p *Pipeline) Noise() []float64 { return append([]float64(nil), p.noise...) }

// Forest returns the cached forest, or nil.
func (p *Pipeline) Forest() forest.SpanningForest { return p.forest }

// ForestState reports where the cached forest came from.
func (p *Pipeline) ForestState() ForestState { return p.forestState }

// Points returns the accepted (possibly normalized) points, or nil.
func (p *Pipeline) Points() *mat.Dense { return p.points }

// Remaining returns how many models have not been consumed yet.
func (p *Pipeline) Remaining() int { return p.seq.Remaining() }

// Step returns the number of steps completed by the last Fit.
func (p *Pipeline) Step() int { return p.steps }

// RunID returns the id assigned to the last Fit call.
func (p *Pipeline) RunID() string { return p.runID }
