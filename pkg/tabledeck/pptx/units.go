// Package pptx assembles PresentationML packages with one picture per slide.
package pptx

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
// 1 inch = 914400 EMU, 1 inch = 96 pixels at 96 DPI
// Therefore: 914400 / 96 = 9525 EMU per pixel
const EMUPerPixel = 9525

// PixelsToEMU converts a pixel count to EMU at 96 DPI.
// PresentationML uses EMU for all slide coordinates.
func PixelsToEMU(px int) int64 {
	return int64(px) * EMUPerPixel
}
