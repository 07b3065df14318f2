package source

import "image"

// Source is an ordered set of image entries
type Source interface {
	Len() int
	Path(index int) string
	// Dimensions reads only the image header
	Dimensions(index int) (width, height int, format string, err error)
	Decode(index int) (image.Image, error)
	Close() error
}
