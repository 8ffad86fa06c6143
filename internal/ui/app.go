package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// RunApp opens a window whose content is built by content and blocks until
// the app quits.
func RunApp(title string, content func(w fyne.Window) fyne.CanvasObject) {
	myApp := app.New()
	myWindow := myApp.NewWindow(title)
	myWindow.Resize(fyne.NewSize(640, 420))

	myWindow.SetContent(content(myWindow))
	myWindow.ShowAndRun()
}
