package render

// Package render turns model.Frame snapshots into pixels. Each frame is
// described as a small SVG document, parsed with oksvg and rasterized with
// rasterx. oksvg strokes in device space, so stroke widths, dash arrays and
// dash offsets are written pre-scaled to the target pixel size.
