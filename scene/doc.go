// Package scene provides a retained-mode scene graph for 2D vector content.
//
// A Scene holds an ordered list of paints. A paint is either a Shape (a
// path with fill and stroke state) or a Group of paints. Every paint has a
// 3x3 transform relative to its parent and may be restricted to the
// coverage of a clip Shape through SetComposite.
//
// Gradients are Fill values owned by exactly one shape. Duplicate them to
// reuse the same gradient on another shape.
//
// Scene objects perform no rendering. Consumers such as the raster and
// svg packages walk the graph and draw it.
package scene
