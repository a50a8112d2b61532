package catalog

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/lucasb-eyer/go-colorful"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/curioapp/curio/internal/debug"
)

// imageExts are the extensions the scanner considers part of the library.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// Scan walks root and builds a catalog from the image files it finds.
// Each immediate subdirectory of root becomes the asset's base folder id
// (files directly under root are unfiled). Results are ordered by path so
// repeated scans of the same library produce the same catalog.
func Scan(root string) ([]Asset, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan library: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan library: %s is not a directory", root)
	}

	var mu sync.Mutex
	var assets []Asset

	conf := &fastwalk.Config{Follow: true}
	err = fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			debug.Log(debug.CATALOG, "scan: skipping %q: %v", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !imageExts[ext] {
			return nil
		}

		a := Asset{
			ID:        path,
			Title:     strings.TrimSuffix(filepath.Base(path), ext),
			SourceURI: "file://" + path,
			FolderID:  baseFolderFor(root, path),
		}
		a.Ratio, a.Color = probeImage(path)

		mu.Lock()
		assets = append(assets, a)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan library: %w", err)
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })
	debug.Log(debug.CATALOG, "scan: %d assets under %q", len(assets), root)
	return assets, nil
}

// baseFolderFor maps a file path to the id of the library subdirectory it
// lives under, or "" for files directly under root.
func baseFolderFor(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 {
		return ""
	}
	return "f-" + parts[0]
}

// probeImage returns the reduced aspect ratio ("16/9") and an average color
// ("#rrggbb") for the file. Failures degrade to empty strings; a catalog
// entry with no ratio or color still resolves normally.
func probeImage(path string) (ratio, color string) {
	f, err := os.Open(path)
	if err != nil {
		return "", ""
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return "", ""
	}
	d := gcd(cfg.Width, cfg.Height)
	ratio = fmt.Sprintf("%d/%d", cfg.Width/d, cfg.Height/d)

	// Re-open and decode for the color sample; DecodeConfig consumed the header.
	if _, err := f.Seek(0, 0); err != nil {
		return ratio, ""
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return ratio, ""
	}
	color = averageColor(img)
	return ratio, color
}

// averageColor samples the image on a coarse grid and returns the mean as a
// hex string.
func averageColor(img image.Image) string {
	bounds := img.Bounds()
	if bounds.Empty() {
		return ""
	}
	stepX := max(1, bounds.Dx()/16)
	stepY := max(1, bounds.Dy()/16)

	var r, g, b, n float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			r += c.R
			g += c.G
			b += c.B
			n++
		}
	}
	if n == 0 {
		return ""
	}
	return colorful.Color{R: r / n, G: g / n, B: b / n}.Hex()
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
