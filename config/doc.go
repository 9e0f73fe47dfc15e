// Package config holds the runtime configuration of a batch run, backed by
// viper with documented defaults, plus the zerolog logger built from it.
//
// Keys and defaults:
//
//	graph.nodes              100      node capacity N, 1..128
//	graph.palette            101      predictor palette size C, ≥ 1
//	graph.leading_index      "auto"   auto | plain | indexed
//	pipeline.workers         NumCPU   concurrent instances, ≥ 1
//	pipeline.instance_timeout 0       per-instance deadline, 0 = none
//	resolver.injected_value  2.0      value written by Materialize, > 1
//	logging.level            "info"   zerolog level name
//	logging.format           "console" console | json
//	metrics.namespace        "regcolor"
//
// Errors:
//
//	– ErrInvalidConfig  a value is outside its documented range.
package config
