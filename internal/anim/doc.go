package anim

// Package anim holds the frame-driven building blocks of the transition:
// timed interpolation runs, named easing curves and a rising-edge detector.
// Nothing here owns a clock; callers advance runs with explicit deltas.
