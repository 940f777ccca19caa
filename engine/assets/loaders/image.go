package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
)

// LoadImage decodes the file at path into RGBA pixel data. flip mirrors
// rows vertically so row zero is the bottom of the image, matching the
// texture coordinate origin. ChannelCount reports the source format, not
// the returned layout, which is always 4 bytes per pixel.
func LoadImage(path string, flip bool) (*metadata.ImageData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders.LoadImage: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loaders.LoadImage: decoding %s: %w", path, err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		dstY := y
		if flip {
			dstY = height - 1 - y
		}
		for x := 0; x < width; x++ {
			rgba.Set(x, dstY, src.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return &metadata.ImageData{
		Width:        uint32(width),
		Height:       uint32(height),
		ChannelCount: sourceChannelCount(src),
		Pixels:       rgba.Pix,
	}, nil
}

// sourceChannelCount classifies the decoded color model into a channel
// count, so callers can reject grayscale and alias formats up front.
func sourceChannelCount(src image.Image) uint8 {
	switch src.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK, *image.Paletted:
		return 3
	default:
		return 4
	}
}
