package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/yalue/image_utils"
)

// Scale enlarges img by an integer factor with nearest-neighbour sampling so
// every cell stays a crisp square.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	return transform.Resize(img, b.Dx()*factor, b.Dy()*factor, transform.NearestNeighbor)
}

// ContactSheet lays frames out left to right with gap pixels between them.
func ContactSheet(frames []image.Image, gap int) (*image.RGBA, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("contact sheet needs at least one frame")
	}
	sheet := image_utils.NewCompositeImage()
	x := 0
	for i, f := range frames {
		if e := sheet.AddImage(f, image.Pt(x, 0)); e != nil {
			return nil, fmt.Errorf("adding frame %d: %w", i, e)
		}
		x += f.Bounds().Dx() + gap
	}
	return image_utils.ToRGBA(sheet), nil
}

// EncodePNG writes img to w scaled by factor.
func EncodePNG(w io.Writer, img image.Image, factor int) error {
	if err := png.Encode(w, Scale(img, factor)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// WritePNG saves img to path scaled by factor.
func WritePNG(path string, img image.Image, factor int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := EncodePNG(f, img, factor); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
