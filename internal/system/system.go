package system

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// bytesPerPixel of the RGBA buffer a full decode allocates
const bytesPerPixel = 4

var (
	ErrInsufficientMemory = errors.New("not enough memory to decode image")
	ErrProbeFailed        = errors.New("memory probe failed")
)

// MemoryProbe reports the bytes currently available to the process
type MemoryProbe func() (uint64, error)

// AvailableMemory asks the OS via gopsutil
func AvailableMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Available, nil
}

// DecodeBudget returns the bytes a width x height image needs once decoded
func DecodeBudget(width, height int) uint64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	return uint64(width) * uint64(height) * bytesPerPixel
}

// CheckDecodeBudget fails with ErrInsufficientMemory when the decoded image
// would not fit in available memory, or with ErrProbeFailed when the host
// could not be asked.
func CheckDecodeBudget(width, height int, probe MemoryProbe) error {
	if probe == nil {
		probe = AvailableMemory
	}
	avail, err := probe()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProbeFailed, err)
	}

	need := DecodeBudget(width, height)
	if need > avail {
		return fmt.Errorf("%w: %dx%d needs %d bytes, %d available", ErrInsufficientMemory, width, height, need, avail)
	}
	return nil
}
