package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/resumer"
	"github.com/fwojciec/resumer/batch"
	"github.com/fwojciec/resumer/extract"
	"github.com/fwojciec/resumer/gemini"
	"github.com/fwojciec/resumer/goquery"
	"github.com/fwojciec/resumer/htmltomarkdown"
	resumerhttp "github.com/fwojciec/resumer/http"
	"github.com/fwojciec/resumer/readability"
	"github.com/fwojciec/resumer/rod"
	resumerslog "github.com/fwojciec/resumer/slog"
	"github.com/fwojciec/resumer/sqlite"
	"github.com/fwojciec/resumer/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Debug installs logging decorators writing to stderr.
	Debug bool

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	HistoryService  resumer.HistoryService
	SettingsService resumer.SettingsService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Debug:  os.Getenv("RESUMER_DEBUG") != "",
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		EnvAPIKey: os.Getenv("GEMINI_API_KEY"),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("resumer"),
		kong.Description("Extract, summarize and question web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'resumer --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RESUMER_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.HistoryService = sqlite.NewHistoryService(m.DB)
	m.SettingsService = sqlite.NewSettingsService(m.DB)
	deps.History = m.HistoryService
	deps.Settings = m.SettingsService

	var logger *slog.Logger
	if m.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	w := &wiring{logger: logger, stderr: stderr}
	defer w.close()

	deps.Extractor = extract.NewExtractor()
	if logger != nil {
		deps.Extractor = resumerslog.NewLoggingExtractor(deps.Extractor, logger)
	}

	switch strings.Fields(kongCtx.Command())[0] {
	case "extract":
		if engine := newEngine(cli.Extract.Engine); engine != nil {
			deps.Extractor = &goquery.EngineExtractor{Engine: engine, Fallback: deps.Extractor}
		}
		if cli.Extract.Tokens {
			deps.TokenCounter = gemini.NewTokenCounter(gemini.DefaultModel)
		}
		if cli.Extract.File != "" {
			break
		}
		if deps.Loader, err = w.loader(cli.Extract.Render, cli.Extract.Probe, deps.Extractor); err != nil {
			return err
		}
		deps.Runner = &batch.Runner{
			Loader:       deps.Loader,
			Extractor:    deps.Extractor,
			RateLimiter:  batch.NewHostLimiter(batch.DefaultHostInterval),
			TokenCounter: deps.TokenCounter,
			Concurrency:  cli.Extract.Concurrency,
		}

	case "summarize", "ask":
		render := cli.Summarize.Render || cli.Ask.Render
		if deps.Loader, err = w.loader(render, false, deps.Extractor); err != nil {
			return err
		}
		client, err := m.newClient(ctx, deps)
		if err != nil {
			return err
		}
		deps.Summarizer = client
		deps.Asker = client
		if logger != nil {
			deps.Summarizer = resumerslog.NewLoggingSummarizer(client, logger)
			deps.Asker = resumerslog.NewLoggingAsker(client, logger)
		}
	}

	return kongCtx.Run(deps)
}

// newClient connects to Gemini with the environment key, falling back to
// the stored one.
func (m *Main) newClient(ctx context.Context, deps *Dependencies) (*gemini.Client, error) {
	key := deps.EnvAPIKey
	if key == "" {
		settings, err := deps.Settings.FindSettings(ctx)
		if err != nil {
			return nil, err
		}
		key = settings.APIKey
	}
	if key == "" {
		fmt.Fprintln(deps.Stderr, "Hint: Set GEMINI_API_KEY or run 'resumer config set-key KEY'. Get a key at https://aistudio.google.com/apikey")
		return nil, resumer.Errorf(resumer.EUNAUTHORIZED, "API key not configured")
	}

	client, err := gemini.NewClientFromAPIKey(ctx, key)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Check your API key is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

// newEngine returns the reference engine named by name, or nil for the
// built-in cascade.
func newEngine(name string) resumer.HTMLExtractor {
	switch name {
	case "trafilatura":
		return trafilatura.NewExtractor(htmltomarkdown.NewConverter())
	case "readability":
		return readability.NewExtractor(htmltomarkdown.NewConverter())
	default:
		return nil
	}
}

// wiring builds loaders and releases the fetchers behind them.
type wiring struct {
	logger  *slog.Logger
	stderr  io.Writer
	closers []func() error
}

func (w *wiring) close() {
	for _, c := range w.closers {
		_ = c()
	}
}

func (w *wiring) fetcher(f resumer.Fetcher, name string) resumer.Fetcher {
	if w.logger == nil {
		return f
	}
	return resumerslog.NewLoggingFetcher(f, name, w.logger)
}

func (w *wiring) wrap(l resumer.Loader) resumer.Loader {
	if w.logger == nil {
		return l
	}
	return resumerslog.NewLoggingLoader(l, w.logger)
}

func (w *wiring) httpLoader() resumer.Loader {
	return goquery.NewLoader(w.fetcher(resumerhttp.NewFetcher(), "http"))
}

func (w *wiring) browserLoader() (resumer.Loader, error) {
	f, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(w.stderr, "Hint: Chrome or Chromium must be installed")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	w.closers = append(w.closers, f.Close)
	return goquery.NewLoader(w.fetcher(f, "browser")), nil
}

// loader returns the loader for the requested mode: plain HTTP by default,
// a headless browser with render, or HTTP with browser fallback with probe.
func (w *wiring) loader(render, probe bool, extractor resumer.Extractor) (resumer.Loader, error) {
	switch {
	case render:
		l, err := w.browserLoader()
		if err != nil {
			return nil, err
		}
		return w.wrap(l), nil
	case probe:
		browser, err := w.browserLoader()
		if err != nil {
			return nil, err
		}
		return w.wrap(&batch.ProbeLoader{
			HTTP:      w.httpLoader(),
			Browser:   browser,
			Extractor: extractor,
		}), nil
	default:
		return w.wrap(w.httpLoader()), nil
	}
}

func defaultDBPath() string {
	if path := os.Getenv("RESUMER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "resumer.db"
	}
	dir := filepath.Join(home, ".resumer")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "resumer.db")
}
