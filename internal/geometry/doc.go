package geometry

// Package geometry contains the icon geometry and the pure functions that turn
// run values into drawable quantities: ring dash offset, glyph opacity and
// responsive scaling.
