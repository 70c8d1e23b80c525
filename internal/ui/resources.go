package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "multi-converter.png"
)

// LoadLogoResource loads the application icon from the working directory
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
