package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivlev/blogkit/internal/config"
	"github.com/ivlev/blogkit/internal/console"
	"github.com/ivlev/blogkit/internal/resize"
)

type options struct {
	configPath      string
	maxWidth        int
	maxHeight       int
	jpegQuality     int
	continueOnError bool
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		log.Fatalf("[-] Error: %v", err)
	}
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "resizeimages <file-or-dir>",
		Short:         "Shrink images to fit a maximum bounding box",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(args[0], cfg.Images, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.IntVar(&opts.maxWidth, "max-width", config.DefaultMaxWidth, "Maximum output width")
	flags.IntVar(&opts.maxHeight, "max-height", config.DefaultMaxHeight, "Maximum output height")
	flags.IntVar(&opts.jpegQuality, "jpeg-quality", config.DefaultJPEGQuality, "JPEG quality, 1-100")
	flags.BoolVar(&opts.continueOnError, "continue-on-error", false, "Keep going after a failed image and report failures at the end")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file
func resolveConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("max-width") {
		cfg.Images.MaxWidth = opts.maxWidth
	}
	if flags.Changed("max-height") {
		cfg.Images.MaxHeight = opts.maxHeight
	}
	if flags.Changed("jpeg-quality") {
		cfg.Images.JPEGQuality = opts.jpegQuality
	}
	if flags.Changed("continue-on-error") {
		cfg.Images.ContinueOnError = opts.continueOnError
	}
	return cfg, cfg.Validate()
}

func run(path string, cfg config.ImageConfig, stderr io.Writer) error {
	out := console.New(stderr)
	resizer := resize.NewResizer(cfg, out)

	report, err := resizer.Run(path)
	if report != nil && cfg.ContinueOnError {
		_, _ = report.WriteTo(stderr)
	}
	if err != nil {
		return err
	}

	out.Success("Done: %d image(s), %d resized", len(report.Tasks), report.Resampled())
	return nil
}
