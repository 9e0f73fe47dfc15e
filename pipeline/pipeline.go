// SPDX-License-Identifier: MIT
// Package: regcolor/pipeline

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regcolor/bfs"
	"github.com/katalvlaran/regcolor/coloring"
	"github.com/katalvlaran/regcolor/config"
	"github.com/katalvlaran/regcolor/igraph"
	"github.com/katalvlaran/regcolor/labels"
	"github.com/katalvlaran/regcolor/predictor"
	"github.com/katalvlaran/regcolor/resolve"
)

// Pipeline processes batches of graph instances with one predictor.
// A Pipeline is safe for concurrent use.
type Pipeline struct {
	nodes    int
	layout   igraph.Layout
	workers  int
	timeout  time.Duration
	injected float64

	pred    predictor.Predictor
	log     zerolog.Logger
	metrics *Metrics
	newID   func() string
}

// Option customizes a Pipeline.
type Option func(*options)

type options struct {
	log   *zerolog.Logger
	reg   prometheus.Registerer
	newID func() string
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = &l }
}

// WithRegisterer registers the pipeline metrics on reg instead of a private
// registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.reg = reg }
}

// WithRunIDs replaces the UUID generator used to tag runs. Panics on nil.
func WithRunIDs(fn func() string) Option {
	if fn == nil {
		panic("pipeline: WithRunIDs(nil)")
	}
	return func(o *options) { o.newID = fn }
}

// New validates cfg and builds a Pipeline around pred.
func New(cfg *config.Config, pred predictor.Predictor, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if pred == nil {
		return nil, ErrNilPredictor
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	layout, err := cfg.Layout()
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	o := options{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	log := cfg.CreateLogger()
	if o.log != nil {
		log = *o.log
	}
	if o.reg == nil {
		o.reg = prometheus.NewRegistry()
	}

	return &Pipeline{
		nodes:    cfg.Nodes(),
		layout:   layout,
		workers:  cfg.Workers(),
		timeout:  cfg.InstanceTimeout(),
		injected: cfg.InjectedValue(),
		pred:     pred,
		log:      log,
		metrics:  NewMetrics(o.reg, cfg.MetricsNamespace()),
		newID:    o.newID,
	}, nil
}

// Metrics returns the collectors of p.
func (p *Pipeline) Metrics() *Metrics { return p.metrics }

// Outcome is the full result of one instance: its Report plus the repaired
// prediction for callers that need the probabilities.
type Outcome struct {
	Report     Report
	Prediction *coloring.Prediction
}

// Probabilities renders the repaired prediction in the injected-tensor form
// using the configured injected value.
func (p *Pipeline) Probabilities(o Outcome) *mat.Dense {
	return o.Prediction.Materialize(p.injected)
}

// job is one parsed row waiting for a worker.
type job struct {
	index int
	rec   igraph.Record
	err   error
}

// Run processes rows of CSV fields. The returned error is non-nil only when
// ctx ended before every instance started; per-instance failures are in
// Batch.Errors.
func (p *Pipeline) Run(ctx context.Context, rows [][]string) (*Batch, error) {
	jobs := make([]job, len(rows))
	for i, fields := range rows {
		rec, err := igraph.ParseRecord(fields, p.nodes, p.layout)
		jobs[i] = job{index: i, rec: rec, err: err}
	}

	return p.run(ctx, jobs)
}

// RunReader reads every CSV row from r, then processes them like Run.
// Read errors other than malformed rows abort before any processing.
func (p *Pipeline) RunReader(ctx context.Context, r io.Reader) (*Batch, error) {
	rd, err := igraph.NewReader(r, p.nodes, p.layout)
	if err != nil {
		return nil, fmt.Errorf("RunReader: %w", err)
	}
	var jobs []job
	for {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !errors.Is(err, igraph.ErrMalformedRecord) {
			return nil, fmt.Errorf("RunReader: %w", err)
		}
		jobs = append(jobs, job{index: rd.Row(), rec: rec, err: err})
	}

	return p.run(ctx, jobs)
}

func (p *Pipeline) run(ctx context.Context, jobs []job) (*Batch, error) {
	runID := p.newID()
	log := p.log.With().Str("run_id", runID).Logger()
	start := time.Now()

	reports := make([]*Report, len(jobs))
	failures := make([]*InstanceError, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	var stopped error
	for i := range jobs {
		if err := gctx.Err(); err != nil {
			stopped = err
			break
		}
		i := i
		g.Go(func() error {
			j := jobs[i]
			if j.err != nil {
				failures[i] = p.failed(log, j, j.err)
				return nil
			}
			out, err := p.process(gctx, log, j.index, j.rec)
			if err != nil {
				failures[i] = p.failed(log, j, err)
				return nil
			}
			reports[i] = &out.Report
			return nil
		})
	}
	_ = g.Wait()

	batch := &Batch{RunID: runID, Reports: make([]Report, 0, len(jobs))}
	for i := range jobs {
		switch {
		case reports[i] != nil:
			batch.Reports = append(batch.Reports, *reports[i])
		case failures[i] != nil:
			batch.fail(failures[i])
		}
	}
	log.Info().
		Int("instances", len(jobs)).
		Int("ok", len(batch.Reports)).
		Int("failed", len(batch.Failures)).
		Dur("elapsed", time.Since(start)).
		Msg("batch finished")
	if stopped != nil {
		return batch, fmt.Errorf("Run: %w", stopped)
	}

	return batch, nil
}

func (p *Pipeline) failed(log zerolog.Logger, j job, err error) *InstanceError {
	p.metrics.Instances.WithLabelValues(StatusFailed).Inc()
	e := &InstanceError{Index: j.index, ID: j.rec.ID, Err: err}
	log.Warn().Err(e).Msg("instance failed")

	return e
}

// Process runs one already parsed instance outside of a batch.
func (p *Pipeline) Process(ctx context.Context, index int, rec igraph.Record) (Outcome, error) {
	out, err := p.process(ctx, p.log, index, rec)
	if err != nil {
		p.metrics.Instances.WithLabelValues(StatusFailed).Inc()
		return Outcome{}, &InstanceError{Index: index, ID: rec.ID, Err: err}
	}

	return out, nil
}

func (p *Pipeline) process(ctx context.Context, log zerolog.Logger, index int, rec igraph.Record) (Outcome, error) {
	start := time.Now()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	g, err := igraph.DecodeRecord(rec)
	if err != nil {
		return Outcome{}, err
	}
	canon, err := labels.Canonicalize(g, rec.Labels)
	if err != nil {
		return Outcome{}, err
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return Outcome{}, err
	}

	probs, err := p.pred.Predict(ctx, g)
	if err != nil {
		return Outcome{}, fmt.Errorf("predict: %w", err)
	}
	if probs == nil {
		return Outcome{}, fmt.Errorf("predict: %w", ErrPredictionShape)
	}
	if r, _ := probs.Dims(); r != g.N() {
		return Outcome{}, fmt.Errorf("predict: %d rows for %d nodes: %w", r, g.N(), ErrPredictionShape)
	}
	pred, err := coloring.NewPrediction(probs)
	if err != nil {
		return Outcome{}, fmt.Errorf("predict: %w", err)
	}

	before, err := measure(g, pred)
	if err != nil {
		return Outcome{}, err
	}
	res, err := resolve.Resolve(g, pred, resolve.WithLogger(log.With().Int("index", index).Logger()))
	if err != nil {
		return Outcome{}, err
	}
	after, err := measure(g, pred)
	if err != nil {
		return Outcome{}, err
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	rep := Report{
		Index:        index,
		ID:           rec.ID,
		ValidNodes:   len(g.ValidNodes()),
		LabelClasses: canon.Distinct(),
		Components:   len(comps),
		Empty:        res.Empty,
		Before:       before,
		After:        after,
		Conflicts:    res.Conflicts,
		Overrides:    len(res.Overrides),
		Allocated:    res.Allocated,
	}
	p.observe(rep, time.Since(start))
	log.Debug().
		Int("index", index).
		Str("id", rec.ID).
		Int("edges", before.Edges).
		Int("invalid_before", before.InvalidEdges).
		Int("invalid_after", after.InvalidEdges).
		Int("distinct_before", before.Distinct).
		Int("distinct_after", after.Distinct).
		Str("colors", after.Colors).
		Msg("instance resolved")

	return Outcome{Report: rep, Prediction: pred}, nil
}

func measure(g *igraph.Graph, pred *coloring.Prediction) (Snapshot, error) {
	m, err := coloring.ValidatePrediction(g, pred)
	if err != nil {
		return Snapshot{}, err
	}
	ch, err := coloring.ExtractPrediction(g, pred)
	if err != nil {
		return Snapshot{}, err
	}

	return snapshot(m, ch), nil
}

func (p *Pipeline) observe(rep Report, elapsed time.Duration) {
	status := StatusOK
	if rep.Empty {
		status = StatusEmpty
	}
	p.metrics.Instances.WithLabelValues(status).Inc()
	p.metrics.Conflicts.Add(float64(rep.Conflicts))
	p.metrics.Overrides.Add(float64(rep.Overrides))
	p.metrics.ColorsAllocated.Add(float64(rep.Allocated))
	if rep.Before.InvalidPercent != nil {
		p.metrics.InvalidPercent.WithLabelValues(StageBefore).Observe(*rep.Before.InvalidPercent)
	}
	if rep.After.InvalidPercent != nil {
		p.metrics.InvalidPercent.WithLabelValues(StageAfter).Observe(*rep.After.InvalidPercent)
	}
	p.metrics.Duration.Observe(elapsed.Seconds())
}
