// Package sequence provides character-level string similarity measures.
//
// All measures operate on runes, not bytes. Similarities are in [0, 1];
// Jaro and JaroWinkler can be passed directly wherever a core.SimFunc is
// expected, which makes them the usual inner measures for the hybrid
// token aggregators.
package sequence
