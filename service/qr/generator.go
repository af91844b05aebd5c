package qr

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// Generator writes QR label PNGs pointing at the asset view URL, one
// file per asset.
type Generator struct {
	baseURL string
	dir     string
}

func NewGenerator(baseURL, dir string) *Generator {
	return &Generator{baseURL: baseURL, dir: dir}
}

// Path returns the label file path for an asset.
func (g *Generator) Path(assetID uint) string {
	return filepath.Join(g.dir, fmt.Sprintf("asset_%d.png", assetID))
}

// URL returns the target encoded in the asset's QR label.
func (g *Generator) URL(assetID uint) string {
	return fmt.Sprintf("%s/api/assets/%d", g.baseURL, assetID)
}

// Generate writes (or rewrites) the QR label for one asset.
func (g *Generator) Generate(assetID uint) error {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return err
	}
	return qrcode.WriteFile(g.URL(assetID), qrcode.Medium, 256, g.Path(assetID))
}

// Remove deletes the label file; a missing file is not an error.
func (g *Generator) Remove(assetID uint) error {
	err := os.Remove(g.Path(assetID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RegenerateAll rewrites labels for all given assets (used after a base
// URL change) and returns how many were written.
func (g *Generator) RegenerateAll(assetIDs []uint) (int, error) {
	n := 0
	for _, id := range assetIDs {
		if err := g.Generate(id); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
