package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ImageService reports basic facts about an attached image. It performs no
// content understanding.
type ImageService interface {
	Describe(base64Image string) string
}

type imageService struct{}

// NewImageService creates an ImageService.
func NewImageService() ImageService {
	return &imageService{}
}

// Describe decodes a base64 payload and reports the detected format and
// pixel dimensions. Failures come back as descriptive text, not an error;
// the caller treats the result as ordinary context either way.
func (s *imageService) Describe(base64Image string) string {
	data, err := base64.StdEncoding.DecodeString(base64Image)
	if err != nil {
		return fmt.Sprintf("Error processing image: %v", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Sprintf("Error processing image: %v", err)
	}
	return fmt.Sprintf("Image processed: %s format, size: %dx%d", format, cfg.Width, cfg.Height)
}
