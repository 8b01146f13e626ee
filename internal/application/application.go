package application

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/output"
	"github.com/eugenenazirov/minigrep/internal/search"
	"github.com/eugenenazirov/minigrep/internal/storage"
)

// App encapsulates the dependencies of a single search run.
type App struct {
	cfg     config.Config
	storage storage.Storage
	search  search.Func
	printer *output.Printer
	logger  *zap.Logger
}

// Option configures App behaviour.
type Option func(*options)

type options struct {
	storage storage.Storage
	stdout  io.Writer
}

// WithStorage overrides the content source, primarily for tests.
func WithStorage(store storage.Storage) Option {
	return func(o *options) {
		o.storage = store
	}
}

// WithStdout overrides the writer that receives matching lines.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *App {
	o := options{
		storage: storage.NewFileStorage(),
		stdout:  os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &App{
		cfg:     cfg,
		storage: o.storage,
		search:  search.For(cfg.CaseSensitive),
		printer: output.NewPrinter(o.stdout, cfg.Color),
		logger:  logger,
	}
}

// Run loads the configured file, searches it and prints every matching line.
// Nothing is printed when the file cannot be read.
func (a *App) Run() error {
	contents, err := a.storage.Load(a.cfg.Filename)
	if err != nil {
		a.logger.Debug("failed to load file", zap.String("filename", a.cfg.Filename), zap.Error(err))
		return &IOError{Path: a.cfg.Filename, Err: err}
	}

	// results reference contents directly
	results := a.search(a.cfg.Query, contents)
	a.logger.Debug("search complete",
		zap.String("filename", a.cfg.Filename),
		zap.Bool("case_sensitive", a.cfg.CaseSensitive),
		zap.Int("bytes", len(contents)),
		zap.Int("matches", len(results)),
	)

	if err := a.printer.Print(results, a.cfg.Query, a.cfg.CaseSensitive); err != nil {
		return &IOError{Path: "stdout", Err: err}
	}
	return nil
}
