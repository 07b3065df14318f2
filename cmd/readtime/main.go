package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivlev/blogkit/internal/config"
	"github.com/ivlev/blogkit/internal/console"
	"github.com/ivlev/blogkit/internal/readtime"
)

type options struct {
	configPath string
	speed      int
	rules      string
	codeBlocks string
	verbose    bool
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Fatalf("[-] Error: %v", err)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "readtime <path>",
		Short:         "Estimate the reading time of a markdown post",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(args[0], cfg.Reading, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.IntVar(&opts.speed, "speed", config.DefaultReadingSpeed, "Reading speed, words per minute")
	flags.StringVar(&opts.rules, "rules", config.DefaultRuleSet, "Normalization rule set: v1 (legacy), v2")
	flags.StringVar(&opts.codeBlocks, "code-blocks", config.DefaultCodeBlocks, "Fenced code: count, skip")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print skipped lines to stderr")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file
func resolveConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Reading.Speed = opts.speed
	}
	if flags.Changed("rules") {
		cfg.Reading.Rules = opts.rules
	}
	if flags.Changed("code-blocks") {
		cfg.Reading.CodeBlocks = opts.codeBlocks
	}
	if flags.Changed("verbose") {
		cfg.Reading.Verbose = opts.verbose
	}
	return cfg, cfg.Validate()
}

func run(path string, cfg config.ReadingConfig, stdout, stderr io.Writer) error {
	out := console.New(stderr)

	policy, err := readtime.ParseCodeBlockPolicy(cfg.CodeBlocks)
	if err != nil {
		return err
	}

	opts := readtime.Options{Rules: cfg.Rules, CodeBlocks: policy}
	if cfg.Verbose {
		opts.OnSkip = func(line string) {
			out.Warn("Skipping this line: %s", line)
		}
	}

	est, doc, err := readtime.NewEstimator(cfg.Speed, opts).EstimateFile(path)
	if err != nil {
		return err
	}

	if doc.MetaErr != nil {
		out.Warn("Front matter is not a YAML mapping, counting without it: %v", doc.MetaErr)
	}
	if doc.Title != "" {
		out.Info("%s (%s)", doc.Title, path)
	}
	if cfg.Verbose {
		out.Info("Rules: %s | Code blocks: %s | Skipped lines: %d | Code lines: %d",
			est.RuleSet, policy, est.SkippedLines, est.CodeLines)
	}

	_, err = est.WriteTo(stdout)
	return err
}
