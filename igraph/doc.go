// Package igraph decodes bit-packed interference graphs into an explicit,
// fixed-capacity adjacency structure with a per-node validity mask.
//
// What
//
//   - Graph: N node slots (1..MaxNodes), a directed entry matrix adjacency[j][k]
//     that every consumer reads as undirected, and valid[j].
//   - Decode/DecodeRecord: rebuild a Graph from the lo/hi word pairs emitted by
//     the upstream interference-graph generator.
//   - Encode: the inverse mapping, used by fixtures and round-trip tests.
//   - ParseRecord/Reader: turn CSV rows (2N word columns followed by N label
//     columns, optionally preceded by one identifier column) into Records.
//
// Encoding
//
//	For node slot j the generator writes two unsigned 64-bit words. Bit b of lo
//	marks an entry adjacency[j][b]; bit b of hi marks adjacency[j][64+b].
//	A node with lo != 0 or hi != 0 is valid: the source format overloads the
//	diagonal adjacency[j][j] as the validity bit. Graph keeps that bit in a
//	separate mask, so At(j,j) reports validity and never a self-loop.
//
//	A real register with no interferences encodes as lo == hi == 0 and is
//	therefore decoded as invalid. The rule is kept literally for compatibility
//	with the generator; Stats reports how many such slots are referenced by
//	other rows so callers can notice it.
//
// Complexity
//
//   - Decode: O(N·64) bit extraction, O(N) memory (two words per row).
//   - At/Adjacent/Valid: O(1).
//   - Neighbors: O(N).
//
// Errors
//
//   - ErrBadSize          capacity outside 1..MaxNodes, or word slices of wrong length.
//   - ErrOutOfRange       node index outside 0..N-1.
//   - ErrMalformedRecord  wrong field count or non-numeric field in a row.
package igraph
