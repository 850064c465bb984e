package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	relnotes "github.com/alnah/go-relnotes"
	"github.com/alnah/go-relnotes/internal/changelog"
	"github.com/alnah/go-relnotes/internal/config"
	"github.com/alnah/go-relnotes/internal/fileutil"
	"github.com/alnah/go-relnotes/internal/hints"
	"github.com/alnah/go-relnotes/internal/logging"
)

// runMain runs the CLI and returns the process exit code.
// Failures are reported as a single "error: ..." line on stderr, followed
// by any hint lines carried in the error message.
func runMain(args []string, env *Environment) int {
	err := run(context.Background(), args, env)
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return exitCodeFor(err)
}

// run parses flags, resolves configuration, and writes the page.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return nil
		}
		if errors.Is(err, ErrInvalidArgs) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "relnotes %s\n", Version)
		return nil
	}

	start := env.Now()
	logger := logging.New(env.Stderr, logging.LevelFor(flags.common.quiet, flags.common.verbose))
	defer func() { _ = logger.Sync() }()

	cfg, err := resolveConfig(flags, logger)
	if err != nil {
		return err
	}

	if flags.list {
		return listVersions(cfg.ChangelogPath, env)
	}

	if cfg.OutputPath == "" {
		return fmt.Errorf("%w: pass --output-path or set outputPath in the config", ErrMissingOutput)
	}

	tag, err := resolveTag(flags.tag, env, logger)
	if err != nil {
		return err
	}

	text, err := readChangelog(cfg.ChangelogPath)
	if err != nil {
		return err
	}
	logger.Debug("read changelog", zap.String("path", cfg.ChangelogPath), zap.Int("bytes", len(text)))

	gen, err := env.NewGenerator(generatorOptions(cfg, logger)...)
	if err != nil {
		return err
	}
	defer func() { _ = gen.Close() }()

	pdfPath := cfg.PDFPath()
	result, err := gen.Generate(ctx, relnotes.Input{
		Changelog:          text,
		Tag:                tag,
		CanonicalURL:       cfg.CanonicalURL,
		FallbackReleaseURL: cfg.FallbackReleaseURL,
		Source:             filepath.Base(cfg.ChangelogPath),
		PDF:                pdfPath != "",
	})
	if err != nil {
		return withGenerateHint(err, text)
	}
	logger.Info("rendered release notes",
		zap.String("version", result.Version),
		zap.String("date", result.Date))

	if err := fileutil.WriteFile(cfg.OutputPath, []byte(result.HTML)); err != nil {
		return fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, cfg.OutputPath, err, hints.ForOutputDirectory())
	}
	fmt.Fprintf(env.Stdout, "Generated release notes page: %s\n", cfg.OutputPath)

	if pdfPath != "" {
		if err := fileutil.WriteFile(pdfPath, result.PDF); err != nil {
			return fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, pdfPath, err, hints.ForOutputDirectory())
		}
		fmt.Fprintf(env.Stdout, "Generated release notes PDF: %s\n", pdfPath)
	}

	logger.Debug("done", zap.Duration("elapsed", env.Now().Sub(start)))
	return nil
}

// resolveConfig applies defaults < config file < environment < flags and
// validates the merged result.
func resolveConfig(flags *cliFlags, logger *zap.Logger) (*config.Config, error) {
	envCfg, err := loadEnvConfig()
	if err != nil {
		return nil, err
	}
	for _, name := range envCfg.Unknown {
		logger.Warn("unknown environment variable (typo?)", zap.String("name", name))
	}

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(configName) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(configName)))
			}
			return nil, err
		}
		logger.Debug("loaded config", zap.String("name", configName))
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags copies explicitly set flags onto cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	set := flags.changed
	if set["changelog-path"] {
		cfg.ChangelogPath = flags.changelogPath
	}
	if set["output-path"] {
		cfg.OutputPath = flags.outputPath
	}
	if set["canonical-url"] {
		cfg.CanonicalURL = flags.canonicalURL
	}
	if set["fallback-release-url"] {
		cfg.FallbackReleaseURL = flags.fallbackReleaseURL
	}
	if set["product-name"] {
		cfg.ProductName = flags.productName
	}
	if set["date-format"] {
		cfg.DateFormat = flags.dateFormat
	}
	if set["pdf-path"] {
		cfg.PDF.Path = flags.pdfPath
	}
	if set["timeout"] {
		cfg.PDF.Timeout = flags.timeout
	}
}

// generatorOptions translates the merged config into generator options.
func generatorOptions(cfg *config.Config, logger *zap.Logger) []relnotes.Option {
	opts := []relnotes.Option{
		relnotes.WithProductName(cfg.ProductName),
		relnotes.WithDateFormat(cfg.DateFormat),
		relnotes.WithLogger(logger),
	}
	if cfg.PDF.PageSize != "" {
		opts = append(opts, relnotes.WithPageSize(cfg.PDF.PageSize))
	}
	if d := cfg.Timeout(); d > 0 {
		opts = append(opts, relnotes.WithTimeout(d))
	}
	return opts
}

// resolveTag returns the --tag value, or the tag at git HEAD when empty.
func resolveTag(tag string, env *Environment, logger *zap.Logger) (string, error) {
	if tag != "" {
		return tag, nil
	}

	dir, err := env.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}

	tag, err = env.HeadTag(dir)
	if err != nil {
		return "", fmt.Errorf("%w%s", err, hints.ForNoTagAtHead())
	}
	logger.Info("using tag at git HEAD", zap.String("tag", tag))
	return tag, nil
}

// readChangelog reads the changelog, mapping a missing path or a
// directory to ErrChangelogNotFound.
func readChangelog(path string) (string, error) {
	text, err := fileutil.ReadTextFile(path)
	if err == nil {
		return text, nil
	}
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, fileutil.ErrNotRegularFile) {
		return "", fmt.Errorf("%w: %s%s", ErrChangelogNotFound, path, hints.ForMissingChangelog())
	}
	return "", fmt.Errorf("reading changelog: %w", err)
}

// listVersions prints every version heading as "<version>\t<date>".
func listVersions(path string, env *Environment) error {
	text, err := readChangelog(path)
	if err != nil {
		return err
	}
	for _, h := range changelog.Headings(text) {
		fmt.Fprintf(env.Stdout, "%s\t%s\n", h.Version, h.Date)
	}
	return nil
}

// withGenerateHint appends an actionable hint for known generation failures.
func withGenerateHint(err error, text string) error {
	switch {
	case errors.Is(err, relnotes.ErrSectionNotFound):
		return fmt.Errorf("%w%s", err, hints.ForVersionNotFound(changelog.Versions(text)))
	case errors.Is(err, relnotes.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, relnotes.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	default:
		return err
	}
}
