package fault

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies failures surfaced to the user
type Kind int

const (
	KindUnknown Kind = iota
	// KindFileNotFound - input path missing or unreadable
	KindFileNotFound
	// KindDecode - file is not a decodable image
	KindDecode
	// KindFileWrite - output could not be written
	KindFileWrite
	// KindEncoding - text is not valid UTF-8 or front matter is malformed
	KindEncoding
	// KindResource - host cannot hold the decoded image
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "FileNotFound"
	case KindDecode:
		return "DecodeError"
	case KindFileWrite:
		return "FileWriteError"
	case KindEncoding:
		return "EncodingError"
	case KindResource:
		return "ResourceError"
	default:
		return "UnknownError"
	}
}

// Error binds a Kind to the path that caused it
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// FromOpen maps errors of os.Open/os.ReadFile/os.Stat onto a Kind.
// Anything that prevents reading the input counts as FileNotFound.
func FromOpen(path string, err error) error {
	if err == nil {
		return nil
	}
	return New(KindFileNotFound, path, err)
}

// KindOf returns the Kind of the first *Error in the chain
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return KindFileNotFound
	}
	return KindUnknown
}

// Is reports whether err carries the given Kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
