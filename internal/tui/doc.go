// Package tui previews the download -> checkmark transition in a terminal.
// A bubbletea program ticks the controller on every frame message and draws
// the ring as a progress bar and the checkmark as a stroke revealed cell by cell.
package tui
