// Package planar implements the Euclidean-plane geometry (§4.C "Planar
// specifics"): Point, Circle, Disk (an alias for Circle), Arc, and
// ArcsOnCircle, plus the geom.Geometry implementation (G) that lets
// package puzzle's closure and face-extraction engines operate over this
// geometry.
//
//	c1 := planar.NewCircle(planar.P(fixed.MustParse("-1"), fixed.Zero), fixed.MustParse("2.5"))
//	c2 := planar.NewCircle(planar.P(fixed.MustParse("1"), fixed.Zero), fixed.MustParse("2.5"))
//	pts, ok := planar.CircleIntersections(c1, c2)
package planar
