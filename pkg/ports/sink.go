package ports

import (
	"image"
)

// ImageSink receives finished placeholder images.
// Implementations decide where (and whether) images are persisted.
type ImageSink interface {
	// Enabled returns true if the sink persists images.
	Enabled() bool

	// SaveImage stores img under the given base name (without extension).
	// It returns the location the image was written to.
	SaveImage(name string, img image.Image) (string, error)
}
