package source

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ivlev/blogkit/internal/fault"
)

// ImageSource lists a single file or every regular file of a directory.
// Entries are not filtered by extension; non-images fail at decode time.
type ImageSource struct {
	paths []string
}

func NewImageSource(path string) (*ImageSource, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fault.FromOpen(path, err)
	}

	var paths []string
	if fi.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fault.FromOpen(path, err)
		}
		for _, entry := range entries {
			// non-recursive
			if entry.Type().IsRegular() {
				paths = append(paths, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(paths)
	} else {
		paths = []string{path}
	}

	return &ImageSource{paths: paths}, nil
}

func (s *ImageSource) Len() int {
	return len(s.paths)
}

func (s *ImageSource) Path(index int) string {
	return s.paths[index]
}

func (s *ImageSource) Dimensions(index int) (int, int, string, error) {
	path := s.paths[index]
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, "", fault.FromOpen(path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, "", fault.New(fault.KindDecode, path, fmt.Errorf("read header: %w", err))
	}
	return cfg.Width, cfg.Height, format, nil
}

func (s *ImageSource) Decode(index int) (image.Image, error) {
	path := s.paths[index]
	f, err := os.Open(path)
	if err != nil {
		return nil, fault.FromOpen(path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fault.New(fault.KindDecode, path, err)
	}
	return img, nil
}

func (s *ImageSource) Close() error {
	return nil
}
