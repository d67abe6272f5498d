package model

// Package model defines the data shared between the transition controller
// and its renderers: the transition state enum and per-frame snapshots.
// Structures are plain values so renderers can never write back into the
// controller.
