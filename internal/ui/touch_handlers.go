package ui

import (
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
)

var (
	_ desktop.Mouseable = (*TransitionIcon)(nil)
	_ mobile.Touchable  = (*TransitionIcon)(nil)
)

// MouseDown starts a press on the primary button
func (ti *TransitionIcon) MouseDown(event *desktop.MouseEvent) {
	if event != nil && event.Button != desktop.MouseButtonPrimary {
		return
	}
	ti.press.Down()
}

// MouseUp ends the press
func (ti *TransitionIcon) MouseUp(event *desktop.MouseEvent) {
	if event != nil && event.Button != desktop.MouseButtonPrimary {
		return
	}
	ti.press.Up()
}

// TouchDown starts a press
func (ti *TransitionIcon) TouchDown(*mobile.TouchEvent) {
	ti.press.Down()
}

// TouchUp ends the press
func (ti *TransitionIcon) TouchUp(*mobile.TouchEvent) {
	ti.press.Up()
}

// TouchCancel drops the press without starting anything new
func (ti *TransitionIcon) TouchCancel(*mobile.TouchEvent) {
	ti.press.Cancel()
}
