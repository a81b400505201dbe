package pattern

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/pkg/errors"
)

// IsBackground reports whether c is a background pixel: mostly transparent
// or lighter than mid grey.
func IsBackground(c color.Color) bool {
	_, _, _, a := c.RGBA()
	if a < 0x8000 {
		return true
	}
	gray := color.Gray16Model.Convert(c).(color.Gray16)
	return gray.Y > 0x8000
}

// Decode returns the coordinates of every non-background pixel relative to
// the image's top-left corner, in row-major order.
func Decode(img image.Image) Pattern {
	b := img.Bounds()
	var out Pattern
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if IsBackground(img.At(x, y)) {
				continue
			}
			out = append(out, Point{DX: x - b.Min.X, DY: y - b.Min.Y})
		}
	}
	return out
}

// Fit shrinks img with nearest-neighbour sampling so neither side exceeds
// maxSide. Smaller images and non-positive limits are returned unchanged.
func Fit(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}
	if w >= h {
		h = max(1, h*maxSide/w)
		w = maxSide
	} else {
		w = max(1, w*maxSide/h)
		h = maxSide
	}
	return transform.Resize(img, w, h, transform.NearestNeighbor)
}

// LoadFile opens an image and decodes it into a pattern.
func LoadFile(path string, maxSide int) (Pattern, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to open image: %s", path)
	}
	p := Decode(Fit(img, maxSide))
	if len(p) == 0 {
		return nil, errors.Errorf("[LoadFile] image has no foreground pixels: %s", path)
	}
	return p, nil
}
