// Package puzzle implements the geometry-agnostic core: the cut-set
// closure engine (§4.D), the face-extraction engine (§4.E), and the
// Move/Puzzle façade (§4.F) that wires them together and memoizes their
// derived views. Every exported type here is generic over a
// geom.Geometry instantiation; package planar and package spherical each
// provide one.
package puzzle
