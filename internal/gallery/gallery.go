// Package gallery lists the images served on the gallery page. It is a thin
// filesystem wrapper: files come from a local directory, with a built-in
// catalog as fallback when the directory is missing or empty.
package gallery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Image is one gallery entry.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".avif": true,
}

// defaultCatalog is served when the gallery directory yields nothing.
var defaultCatalog = []Image{
	{Src: "/gallary/ride-01.jpg", Alt: "ride 01"},
	{Src: "/gallary/ride-02.jpg", Alt: "ride 02"},
	{Src: "/gallary/garage-night.jpg", Alt: "garage night"},
}

// Lister lists gallery images from a directory.
type Lister struct {
	dir      string
	fallback []Image
}

// NewLister creates a lister over the given directory.
func NewLister(dir string) *Lister {
	return &Lister{
		dir:      dir,
		fallback: defaultCatalog,
	}
}

// Images returns the gallery images in natural filename order. The public
// path keeps the site's historical "/gallary/" spelling.
func (l *Lister) Images() []Image {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return l.fallback
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}

	if len(names) == 0 {
		return l.fallback
	}

	sort.Slice(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})

	images := make([]Image, 0, len(names))
	for _, name := range names {
		images = append(images, Image{
			Src: "/gallary/" + name,
			Alt: altFromFilename(name),
		})
	}
	return images
}

// altFromFilename derives alt text from the file stem: separators become
// spaces.
func altFromFilename(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	alt := strings.TrimSpace(strings.Join(strings.FieldsFunc(stem, func(r rune) bool {
		return r == '-' || r == '_'
	}), " "))
	if alt == "" {
		return "Gallery image"
	}
	return alt
}

// naturalLess compares filenames with embedded numbers ordered numerically,
// so ride-2.jpg sorts before ride-10.jpg.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		aChunk, aRest, aNum := nextChunk(a)
		bChunk, bRest, bNum := nextChunk(b)

		if aNum && bNum {
			if aChunk != bChunk {
				// Compare digit runs by magnitude: longer (trimmed) run wins,
				// equal lengths compare lexically.
				at := strings.TrimLeft(aChunk, "0")
				bt := strings.TrimLeft(bChunk, "0")
				if len(at) != len(bt) {
					return len(at) < len(bt)
				}
				if at != bt {
					return at < bt
				}
				return aChunk < bChunk
			}
		} else if aChunk != bChunk {
			return aChunk < bChunk
		}

		a, b = aRest, bRest
	}
	return len(a) < len(b)
}

// nextChunk splits off the leading all-digit or all-non-digit run.
func nextChunk(s string) (chunk, rest string, numeric bool) {
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }

	numeric = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == numeric {
		i++
	}
	return s[:i], s[i:], numeric
}
