package main

import (
	"image"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/m-mizutani/goerr/v2"
)

const (
	logoWidth  = 200
	logoHeight = 200

	backgroundHex = "#3B82F6"
	foregroundHex = "#EAB308"

	outputFile = "test-logo.png"
)

// circleBox is the bounding box the logo circle is inscribed in.
var circleBox = image.Rect(50, 50, 150, 150)

// newCanvas allocates the logo canvas filled with the background color.
func newCanvas() *gg.Context {
	dc := gg.NewContext(logoWidth, logoHeight)
	dc.SetHexColor(backgroundHex)
	dc.Clear()
	return dc
}

// drawCircle fills the ellipse inscribed in box with the given hex color.
func drawCircle(dc *gg.Context, box image.Rectangle, hex string) {
	rx := float64(box.Dx()) / 2
	ry := float64(box.Dy()) / 2

	dc.SetHexColor(hex)
	dc.DrawEllipse(float64(box.Min.X)+rx, float64(box.Min.Y)+ry, rx, ry)
	dc.Fill()
}

func renderLogo() image.Image {
	dc := newCanvas()
	drawCircle(dc, circleBox, foregroundHex)
	return dc.Image()
}

// saveLogo encodes img as PNG at path, replacing any existing file.
func saveLogo(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to save logo", goerr.V("path", path))
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return goerr.Wrap(err, "failed to save logo", goerr.V("path", path))
	}

	// Close reports late write failures such as a full disk.
	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to save logo", goerr.V("path", path))
	}
	return nil
}
