package pptx

// Rect is a placement rectangle on the slide canvas, in EMU.
type Rect struct {
	X, Y, W, H int64
}

// Placement computes an aspect-preserving, centered rectangle for an image
// of pw x ph pixels on a slideW x slideH canvas, keeping margin clear on
// all four sides. The image is never upscaled. When the image is both too
// wide and too tall, the final scale is the stricter of the two independent
// ratios; the height check replaces the width-derived scale rather than
// composing with it.
func Placement(pw, ph int, slideW, slideH, margin int64) Rect {
	naturalW := float64(PixelsToEMU(pw))
	naturalH := float64(PixelsToEMU(ph))
	availW := float64(slideW - 2*margin)
	availH := float64(slideH - 2*margin)

	scale := 1.0
	if naturalW > availW {
		scale = availW / naturalW
	}
	if naturalH*scale > availH {
		scale = availH / naturalH
	}

	w := naturalW * scale
	h := naturalH * scale
	return Rect{
		X: int64((float64(slideW) - w) / 2),
		Y: int64((float64(slideH) - h) / 2),
		W: int64(w),
		H: int64(h),
	}
}
