package mocks

import (
	"image"
	"sync"

	"github.com/user/imageplaceholder/pkg/ports"
)

// ImageSink is a mock implementation of ports.ImageSink that keeps images in memory.
type ImageSink struct {
	mu sync.Mutex

	enabled bool

	SaveImageFunc func(name string, img image.Image) (string, error)

	Names  []string
	Images map[string]image.Image
}

// NewImageSink creates a new mock ImageSink.
func NewImageSink(enabled bool) *ImageSink {
	return &ImageSink{
		enabled: enabled,
		Images:  make(map[string]image.Image),
	}
}

func (m *ImageSink) Enabled() bool {
	return m.enabled
}

func (m *ImageSink) SaveImage(name string, img image.Image) (string, error) {
	if m.SaveImageFunc != nil {
		return m.SaveImageFunc(name, img)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Names = append(m.Names, name)
	m.Images[name] = img
	return name + ".png", nil
}

var _ ports.ImageSink = (*ImageSink)(nil)
