// Package regcolor post-processes neural register-allocation predictions.
//
// A predictor proposes one color (physical register) per virtual register of
// an interference graph. Predictions are cheap but imperfect: some
// interfering registers end up on the same color. regcolor decodes the
// graphs, measures how wrong a prediction is, repairs it with a greedy
// single-pass resolver, and measures again.
//
// Packages:
//
//	igraph/     — bit-packed interference graph, CSV record parsing, decode/encode
//	labels/     — per-instance canonical labels (first occurrence order)
//	coloring/   — assignments, probability predictions with overrides,
//	              validator and chromatic extractor
//	resolve/    — greedy conflict resolver with an override audit trail
//	predictor/  — the predictor contract, softmax, Welsh–Powell and constant baselines
//	builder/    — deterministic fixture graphs (complete, cycle, random, ...)
//	bfs/        — breadth-first traversal and connected components over node slots
//	config/     — viper-backed configuration and zerolog logger
//	pipeline/   — parallel batch runner with Prometheus metrics and YAML reports
//
// Quick start:
//
//	cfg := config.NewConfig()
//	p, _ := pipeline.New(cfg, predictor.WelshPowell{Palette: cfg.Palette()})
//	batch, _ := p.RunReader(ctx, file)
//	_ = pipeline.EncodeReports(os.Stdout, batch)
//
// See examples/ for a runnable batch.
package regcolor
