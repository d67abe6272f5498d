package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/download-check/internal/config"
	"github.com/ytget/download-check/internal/render"
	"github.com/ytget/download-check/internal/transition"
	"github.com/ytget/download-check/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.download-check"
	AppName = "Download Check"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.AppIconResource)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.SetIcon(ui.AppIconResource)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	ctrl, err := transition.NewController(settings.Options())
	if err != nil {
		log.Printf("invalid stored settings, using defaults: %v", err)
		ctrl, err = transition.NewController(transition.DefaultOptions())
		if err != nil {
			log.Fatalf("failed to create controller: %v", err)
		}
	}

	renderer, err := render.NewRenderer(render.DefaultStyle())
	if err != nil {
		log.Fatalf("failed to create renderer: %v", err)
	}

	rootUI := ui.NewRootUI(myWindow, myApp, ctrl, renderer)
	myApp.Lifecycle().SetOnStarted(rootUI.StartClock)
	myApp.Lifecycle().SetOnStopped(rootUI.StopClock)

	myWindow.ShowAndRun()
}
