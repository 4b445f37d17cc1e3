// SPDX-License-Identifier: MIT
// Package pipeline: functional options for New and Fit.
//
// Option constructors panic on meaningless input (thresholds outside [0,1],
// non-positive worker counts, nil collaborators). Fit never panics on user
// data; it returns sentinel errors instead.

package pipeline

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mstcluster/forest"
	"github.com/katalvlaran/mstcluster/storage"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// ErrBadThreshold is the panic value (wrapped) of WithMinPartition and
// WithFuzzyNoiseCriterion when given a value outside [0,1].
var ErrBadThreshold = errors.New("pipeline: threshold must lie in [0,1]")

const (
	// DefaultMinPartition is the membership a point needs for a cluster to
	// count it as a strong member.
	DefaultMinPartition = 0.5

	// DefaultFuzzyNoiseCriterion is the largest strong-member fraction at
	// which a cluster is still dissolved into noise.
	DefaultFuzzyNoiseCriterion = 0.1

	// DefaultStepTitle prefixes persistence keys when no title is given.
	DefaultStepTitle = "step"
)

// ForestBuilder produces a spanning forest from raw points.
// *forest.Builder satisfies it through BuilderFunc.
type ForestBuilder interface {
	Build(points *mat.Dense, workers int, measure forest.DistanceMeasure) (forest.SpanningForest, error)
}

// BuilderFunc adapts a plain function to ForestBuilder.
type BuilderFunc func(points *mat.Dense, workers int, measure forest.DistanceMeasure) (forest.SpanningForest, error)

// Build calls fn.
func (fn BuilderFunc) Build(points *mat.Dense, workers int, measure forest.DistanceMeasure) (forest.SpanningForest, error) {
	return fn(points, workers, measure)
}

// FromForestBuilder wraps a *forest.Builder as a ForestBuilder.
func FromForestBuilder(b *forest.Builder) ForestBuilder {
	return BuilderFunc(func(points *mat.Dense, workers int, measure forest.DistanceMeasure) (forest.SpanningForest, error) {
		f, err := b.Build(points, workers, measure)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}

// Options configures a Pipeline for its whole lifetime.
//
//	MinPartition        – membership threshold for a strong member, in [0,1].
//	FuzzyNoiseCriterion – clusters with strong/N ≤ this are dissolved, in [0,1].
//	Workers             – forwarded to the forest builder and every model (≥1).
//	Distance            – forwarded to the forest builder.
//	Builder             – forest builder used when no forest is cached.
//	Store               – label sink for step persistence (nil disables it).
//	Logger              – diagnostics; no-op by default.
//	Observer            – per-step reports; nil disables them.
type Options struct {
	MinPartition        float64
	FuzzyNoiseCriterion float64
	Workers             int
	Distance            forest.DistanceMeasure
	Builder             ForestBuilder
	Store               storage.Store
	Logger              *zap.SugaredLogger
	Observer            Observer
}

// Option customizes Options.
type Option func(*Options)

// DefaultOptions returns the defaults: MinPartition 0.5, FuzzyNoiseCriterion
// 0.1, one worker, Euclidean distance, a Kruskal forest.Builder, no store,
// no-op logger, no observer.
func DefaultOptions() Options {
	return Options{
		MinPartition:        DefaultMinPartition,
		FuzzyNoiseCriterion: DefaultFuzzyNoiseCriterion,
		Workers:             1,
		Distance:            forest.Euclidean,
		Logger:              zap.NewNop().Sugar(),
	}
}

func checkThreshold(name string, v float64) {
	if !(v >= 0 && v <= 1) {
		panic(errors.Wrapf(ErrBadThreshold, "%s(%v)", name, v))
	}
}

// WithMinPartition sets the strong-membership threshold. Panics outside [0,1].
func WithMinPartition(v float64) Option {
	checkThreshold("WithMinPartition", v)
	return func(o *Options) { o.MinPartition = v }
}

// WithFuzzyNoiseCriterion sets the dissolve threshold on the strong-member
// fraction. Panics outside [0,1].
func WithFuzzyNoiseCriterion(v float64) Option {
	checkThreshold("WithFuzzyNoiseCriterion", v)
	return func(o *Options) { o.FuzzyNoiseCriterion = v }
}

// WithWorkers sets the worker count forwarded to collaborators. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(fmt.Sprintf("pipeline: WithWorkers(%d)", w))
	}
	return func(o *Options) { o.Workers = w }
}

// WithDistance selects the distance measure. Panics on an unknown measure.
func WithDistance(m forest.DistanceMeasure) Option {
	if !m.Valid() {
		panic(fmt.Sprintf("pipeline: WithDistance(%d)", int(m)))
	}
	return func(o *Options) { o.Distance = m }
}

// WithForestBuilder replaces the default forest builder. Panics on nil.
func WithForestBuilder(b ForestBuilder) Option {
	if b == nil {
		panic("pipeline: WithForestBuilder(nil)")
	}
	return func(o *Options) { o.Builder = b }
}

// WithStore sets the store used for step persistence. When no builder is
// given explicitly, the default builder attaches the same store to the forests
// it produces. Panics on nil.
func WithStore(s storage.Store) Option {
	if s == nil {
		panic("pipeline: WithStore(nil)")
	}
	return func(o *Options) { o.Store = s }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.SugaredLogger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithObserver registers o to receive one StepReport per step. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("pipeline: WithObserver(nil)")
	}
	return func(o *Options) { o.Observer = obs }
}

// FitOptions configures a single Fit call.
//
//	InitialPartition – K×N partition handed to the first step (nil = none).
//	Forest           – caller-supplied forest, adopted without validation.
//	Steps            – steps to run; negative means "one per registered model".
//	Normalize        – scale each point row to unit L2 norm before use.
//	SaveSteps        – persist forest and labels after every step.
//	Title            – prefix of persistence keys.
type FitOptions struct {
	InitialPartition *mat.Dense
	Forest           forest.SpanningForest
	Steps            int
	Normalize        bool
	SaveSteps        bool
	Title            string
}

// FitOption customizes FitOptions.
type FitOption func(*FitOptions)

// DefaultFitOptions returns: no initial partition, no forest, steps = number
// of registered models, no normalization, no saving, title "step".
func DefaultFitOptions() FitOptions {
	return FitOptions{Steps: -1, Title: DefaultStepTitle}
}

// WithInitialPartition hands p to the first step as its previous partition.
// Panics on nil.
func WithInitialPartition(p *mat.Dense) FitOption {
	if p == nil {
		panic("pipeline: WithInitialPartition(nil)")
	}
	return func(o *FitOptions) { o.InitialPartition = p }
}

// WithForest supplies a forest that replaces any cached one. It is trusted
// and not validated. Panics on nil.
func WithForest(f forest.SpanningForest) FitOption {
	if f == nil {
		panic("pipeline: WithForest(nil)")
	}
	return func(o *FitOptions) { o.Forest = f }
}

// WithSteps limits the call to n steps. Panics if n < 0.
func WithSteps(n int) FitOption {
	if n < 0 {
		panic(fmt.Sprintf("pipeline: WithSteps(%d)", n))
	}
	return func(o *FitOptions) { o.Steps = n }
}

// WithNormalization scales every point to unit L2 norm (zero rows stay zero).
func WithNormalization() FitOption {
	return func(o *FitOptions) { o.Normalize = true }
}

// WithSaveSteps persists the forest and the labels after every step under
// keys "{title}-spanning-forest#{step}" and "{title}-labels#{step}".
// An empty title selects DefaultStepTitle.
func WithSaveSteps(title string) FitOption {
	if title == "" {
		title = DefaultStepTitle
	}
	return func(o *FitOptions) {
		o.SaveSteps = true
		o.Title = title
	}
}
