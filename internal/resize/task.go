package resize

import (
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const resizedSuffix = "_resized"

// ImageTask describes one image moving through the resizer
type ImageTask struct {
	Input        string
	Output       string
	Format       string
	Width        int
	Height       int
	Scale        float64
	TargetWidth  int
	TargetHeight int
}

// Resampled reports whether pixels were actually resized
func (t ImageTask) Resampled() bool {
	return t.Scale < 1
}

// OutputPath inserts "_resized" before the extension of input, in the same
// directory. Extensions imaging cannot encode (webp, none) are written as png
// with the source extension kept, so a.webp and a.png do not share an output.
func OutputPath(input string) string {
	dir, name := filepath.Split(input)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	if _, err := imaging.FormatFromFilename(name); err != nil {
		ext += ".png"
	}
	return filepath.Join(dir, stem+resizedSuffix+ext)
}
