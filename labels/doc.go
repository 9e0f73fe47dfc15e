// Package labels remaps the raw per-node labels of one interference-graph
// instance into small sequential canonical ids.
//
// Contract
//
//   - Scope is one instance: every call starts from an empty mapping.
//   - Nodes are visited in increasing index order. Invalid nodes get 0.
//   - A valid node whose raw label was seen before reuses that id; otherwise it
//     receives the next id, starting at 1.
//   - Identical raw arrays always yield identical canonical arrays. The order of
//     first occurrence decides the numbering and is part of the contract.
//
// Canonical labels feed training and evaluation only; the conflict resolver
// never reads them.
package labels
