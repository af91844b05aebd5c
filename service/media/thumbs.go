package media

import (
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Thumbnail bounding box in pixels.
const thumbSize = 320

// MakeThumbnail writes a scaled-down copy of a photo next to the
// original (name_thumb.ext) and returns its path.
func MakeThumbnail(srcPath string) (string, error) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return "", err
	}
	thumb := imaging.Fit(img, thumbSize, thumbSize, imaging.Lanczos)

	ext := filepath.Ext(srcPath)
	dst := strings.TrimSuffix(srcPath, ext) + "_thumb" + ext
	if err := imaging.Save(thumb, dst); err != nil {
		return "", err
	}
	return dst, nil
}
