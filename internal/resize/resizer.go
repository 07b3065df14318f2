package resize

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ivlev/blogkit/internal/config"
	"github.com/ivlev/blogkit/internal/console"
	"github.com/ivlev/blogkit/internal/fault"
	"github.com/ivlev/blogkit/internal/source"
	"github.com/ivlev/blogkit/internal/system"
)

type Resizer struct {
	Config  config.ImageConfig
	Out     *console.Printer
	Memory  system.MemoryProbe
	encoder func(img image.Image, path string, opts ...imaging.EncodeOption) error
}

func NewResizer(cfg config.ImageConfig, out *console.Printer) *Resizer {
	return &Resizer{
		Config:  cfg,
		Out:     out,
		Memory:  system.AvailableMemory,
		encoder: imaging.Save,
	}
}

// Run resizes the image at path, or every file of the directory at path.
// The first failure aborts the run unless ContinueOnError is set, in which
// case failures are collected into the report and returned joined.
func (r *Resizer) Run(path string) (*Report, error) {
	src, err := source.NewImageSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	report := &Report{}
	for i := 0; i < src.Len(); i++ {
		task, err := r.Process(src, i)
		if err != nil {
			if !r.Config.ContinueOnError {
				return report, err
			}
			r.Out.Warn("%v", err)
			report.Failures = append(report.Failures, Failure{Path: src.Path(i), Err: err})
			continue
		}
		report.Tasks = append(report.Tasks, task)
	}

	return report, report.Err()
}

// Process resizes a single entry of src and writes it next to the original
func (r *Resizer) Process(src source.Source, index int) (ImageTask, error) {
	input := src.Path(index)
	task := ImageTask{Input: input, Output: OutputPath(input)}

	r.Out.Info("Taking image from %s", input)

	w, h, format, err := src.Dimensions(index)
	if err != nil {
		return task, err
	}
	task.Width, task.Height, task.Format = w, h, format

	if err := system.CheckDecodeBudget(w, h, r.Memory); err != nil {
		if !errors.Is(err, system.ErrProbeFailed) {
			return task, fault.New(fault.KindResource, input, err)
		}
		r.Out.Warn("%v; decoding without a memory check", err)
	}

	img, err := src.Decode(index)
	if err != nil {
		return task, err
	}

	task.Scale = ComputeScale(w, h, r.Config.MaxWidth, r.Config.MaxHeight)
	task.TargetWidth, task.TargetHeight = TargetSize(w, h, task.Scale)
	r.Out.Info("Applying scale: %g to get max_width: %d and max_height: %d", task.Scale, r.Config.MaxWidth, r.Config.MaxHeight)

	if task.Resampled() {
		img = imaging.Resize(img, task.TargetWidth, task.TargetHeight, imaging.Lanczos)
	}

	if err := r.encoder(img, task.Output, imaging.JPEGQuality(r.Config.JPEGQuality)); err != nil {
		return task, fault.New(fault.KindFileWrite, task.Output, fmt.Errorf("save: %w", err))
	}

	r.Out.Step("Saving it to %s (%dx%d -> %dx%d)", task.Output, w, h, task.TargetWidth, task.TargetHeight)
	return task, nil
}
