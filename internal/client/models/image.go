package models

import (
	"errors"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrEmptyImage       = errors.New("image is empty")
	ErrUnsupportedImage = errors.New("unsupported image format (jpeg, png and webp are accepted)")
)

var supportedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// DetectImage sniffs the content type of an uploaded image and returns its
// MIME type and file extension.
func DetectImage(b []byte) (string, string, error) {
	if len(b) == 0 {
		return "", "", ErrEmptyImage
	}
	mt := mimetype.Detect(b)
	for _, t := range supportedImageTypes {
		if mt.Is(t) {
			return t, mt.Extension(), nil
		}
	}
	return "", "", ErrUnsupportedImage
}
