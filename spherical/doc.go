// Package spherical implements the unit-sphere geometry (§4.C "Spherical
// specifics"): Point on S², Circle with its dual (c,r) ≡ (−c,π−r)
// representation, Disk, Arc, and ArcsOnCircle (which, unlike the planar
// case, carries its own zero reference point since the sphere has no
// single global angular convention), plus the geom.Geometry
// implementation (G).
package spherical
