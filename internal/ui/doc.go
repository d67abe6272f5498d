package ui

// Package ui contains the Fyne user interface of the screen. It turns presses
// on the icon into controller starts, drives the controller from a Fyne
// animation used as a frame clock and paints every frame through a
// canvas.Raster. The status caption and settings are localized via Localization.
