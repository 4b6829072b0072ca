// Package nullsink provides a no-op image sink for dry runs.
package nullsink

import (
	"image"

	"github.com/user/imageplaceholder/pkg/ports"
)

// Sink discards every image it receives.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveImage does nothing and returns an empty location.
func (s *Sink) SaveImage(name string, img image.Image) (string, error) {
	return "", nil
}

// Ensure Sink implements ports.ImageSink
var _ ports.ImageSink = (*Sink)(nil)
