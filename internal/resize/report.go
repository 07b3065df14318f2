package resize

import (
	"errors"
	"fmt"
	"io"
)

type Failure struct {
	Path string
	Err  error
}

// Report collects the outcome of a run
type Report struct {
	Tasks    []ImageTask
	Failures []Failure
}

func (r *Report) Resampled() int {
	n := 0
	for _, t := range r.Tasks {
		if t.Resampled() {
			n++
		}
	}
	return n
}

// Err joins every collected failure, nil when there were none
func (r *Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "--- [RESIZE REPORT] ---\nImages: %d | Resized: %d | Copied: %d | Failed: %d\n",
		len(r.Tasks)+len(r.Failures), r.Resampled(), len(r.Tasks)-r.Resampled(), len(r.Failures))
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, f := range r.Failures {
		n, err = fmt.Fprintf(w, "  %s: %v\n", f.Path, f.Err)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
