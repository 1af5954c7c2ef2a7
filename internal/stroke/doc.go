// Package stroke expands stroked paths into filled polygons.
//
// Instead of tracing one outline around the whole stroke, the expander
// emits one polygon per piece:
//   - a quad per flattened segment, offset by half the width on both sides
//   - a wedge per interior vertex for the line join
//   - a cap polygon at both ends of an open subpath
//
// Every polygon is oriented with a positive signed area, so filling them
// all with the nonzero rule paints their union. This suits accumulation
// rasterizers that sum coverage, such as golang.org/x/image/vector.
//
// # Line Caps
//
//   - LineCapButt: Flat cap ending exactly at the endpoint
//   - LineCapRound: Circle with radius = width/2 at the endpoint
//   - LineCapSquare: Square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: Sharp corner, falling back to bevel past the miter limit
//   - LineJoinRound: Circle at the corner
//   - LineJoinBevel: Straight line across the corner
package stroke
