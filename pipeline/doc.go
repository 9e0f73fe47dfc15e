// Package pipeline runs the full per-instance flow over a batch of CSV rows:
//
//	parse → decode → canonicalize labels → predict → measure → resolve → measure
//
// Instances are independent. Run fans them out over an errgroup bounded by
// pipeline.workers; one instance is always processed by a single goroutine.
// A malformed or failing instance never aborts the batch: it is recorded as
// an *InstanceError carrying its row index and the batch continues.
// Cancelling the context stops new instances from starting; instances
// already running finish or observe their own deadline.
//
// Every run gets a UUID that tags its log lines and its Batch. Reports are
// returned in row order regardless of completion order, and EncodeReports
// writes a Batch as YAML for downstream tooling.
//
// Metrics (Prometheus, namespace from metrics.namespace, subsystem "pipeline"):
//
//	instances_total{status}          ok | empty | failed
//	conflicts_total                  conflicting pairs met by the resolver
//	overrides_total                  colors rewritten by the resolver
//	colors_allocated_total           colors added beyond the predicted maximum
//	invalid_edge_percent{stage}      before | after, instances with edges only
//	instance_duration_seconds        wall time per processed instance
package pipeline
