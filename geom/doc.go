// Package geom provides small integer 2D and 3D vector types used by
// the grid-based puzzle days: neighbor enumeration, component-wise
// arithmetic, and squared distances. All coordinates are int64 so grid
// positions may go negative (beams can drift off the left edge).
package geom
