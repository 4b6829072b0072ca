// Package filesink provides a file-based image sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/imageplaceholder/pkg/ports"
)

// jpegQuality is used when the sink writes JPEG files.
const jpegQuality = 90

// Sink encodes images and writes them below a base directory.
type Sink struct {
	baseDir  string
	format   ports.ImageFormat
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new file Sink.
func New(baseDir string, format ports.ImageFormat, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		format:   format,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveImage encodes img and writes it to <baseDir>/<name><ext>.
func (s *Sink) SaveImage(name string, img image.Image) (string, error) {
	data, err := s.renderer.EncodeImage(img, s.format, jpegQuality)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(s.baseDir, name+s.format.Ext())
	if err := s.fs.WriteFile(path, data); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Ensure Sink implements ports.ImageSink
var _ ports.ImageSink = (*Sink)(nil)
