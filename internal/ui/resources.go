package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/download-check/internal/render"
)

const (
	AppIcon = "download-check.svg"
)

// AppIconResource is the download glyph, used as the window and app icon
var AppIconResource = fyne.NewStaticResource(AppIcon, []byte(render.GlyphDocument(render.DefaultStyle())))
