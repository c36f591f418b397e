package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joacominatel/ducklogs/internal/app"
	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/joacominatel/ducklogs/internal/backend/httpapi"
	"github.com/joacominatel/ducklogs/internal/config"
	"github.com/joacominatel/ducklogs/internal/i18n"
	"github.com/joacominatel/ducklogs/internal/logging"
	"github.com/joacominatel/ducklogs/internal/render"
	"github.com/joacominatel/ducklogs/internal/tui"
	"github.com/sirupsen/logrus"
)

var version = "dev"

type options struct {
	api        string
	lang       string
	configPath string
	logPath    string
	debug      bool

	sql      string
	uri      string
	format   string
	limit    int
	region   string
	endpoint string
	connect  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("ducklogs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.api, "api", "", "log-query service base URL (default http://localhost:8080)")
	fs.StringVar(&o.lang, "lang", "", "display language: ja or en")
	fs.StringVar(&o.configPath, "config", "", "config file (default ~/.ducklogs/config.yaml)")
	fs.StringVar(&o.logPath, "log", "", "log file (default ~/.ducklogs/ducklogs.log)")
	fs.BoolVar(&o.debug, "debug", false, "log at debug level")
	fs.StringVar(&o.sql, "e", "", "run one SQL statement, print the result and exit")
	fs.StringVar(&o.uri, "uri", "", "quick-load a URI, print the result and exit")
	fs.StringVar(&o.format, "format", "", "format for -uri: parquet, json, jsonl, ndjson or csv")
	fs.IntVar(&o.limit, "limit", -1, "row limit for -uri (0 leaves it to the service)")
	fs.StringVar(&o.region, "region", "", "S3 region to apply before -e or -uri")
	fs.StringVar(&o.endpoint, "endpoint", "", "S3-compatible endpoint to apply before -e or -uri")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.sql != "" && o.uri != "" {
		return nil, errors.New("-e and -uri are mutually exclusive")
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "region" || f.Name == "endpoint" {
			o.connect = true
		}
	})
	return o, nil
}

func (o *options) oneShot() bool {
	return o.sql != "" || o.uri != ""
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	// Load configuration
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
		cfg.Path = opts.configPath
	}
	if opts.api != "" {
		cfg.APIBase = opts.api
	}
	if opts.debug {
		cfg.Debug = true
	}

	logPath := opts.logPath
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if logPath == "" {
		if logPath, err = config.DefaultLogPath(); err != nil {
			logPath = ""
		}
	}
	closer, err := logging.Setup(logPath, cfg.Debug)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
		closer, _ = logging.Setup("", cfg.Debug)
	}
	defer closer.Close()

	preference := opts.lang
	if preference == "" {
		preference = cfg.Language
	}
	tr := i18n.New(i18n.Detect(preference, os.Getenv))

	// Set up dependencies
	client := httpapi.New(httpapi.Options{
		BaseURL:   cfg.APIBase,
		Timeout:   cfg.Timeout,
		UserAgent: "ducklogs/" + version,
	})
	service := app.NewService(client)
	logrus.WithFields(logrus.Fields{
		"api":      service.Address(),
		"language": i18n.Code(tr.Tag()),
		"version":  version,
	}).Info("starting")

	if opts.oneShot() {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runOnce(ctx, service, cfg, opts, tr, stdout); err != nil {
			logrus.WithError(err).Error("one-shot request failed")
			fmt.Fprintln(stderr, tr.T(i18n.Error, backend.Message(err)))
			return 1
		}
		return 0
	}

	// Create and run TUI
	model := tui.NewModel(service, cfg, tr)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return 1
	}
	return 0
}

// runOnce applies the optional connection settings, then runs the single
// query or quick load and prints it as a plain-text table.
func runOnce(ctx context.Context, service *app.Service, cfg *config.Config, opts *options, tr *i18n.Translator, stdout io.Writer) error {
	if opts.connect {
		res, err := service.Connect(ctx, backend.ConnectionConfig{Region: opts.region, Endpoint: opts.endpoint})
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, tr.T(i18n.Success, res.Message))
	}

	var result *app.QueryResult
	if opts.sql != "" {
		res, err := service.RunQuery(ctx, opts.sql)
		if err != nil {
			return err
		}
		result = res
	} else {
		format := cfg.DefaultFormat()
		if opts.format != "" {
			f, err := backend.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			format = f
		}
		limit := cfg.Defaults.Limit
		if opts.limit >= 0 {
			limit = opts.limit
		}
		res, err := service.QuickLoad(ctx, backend.QuickRequest{URI: opts.uri, Format: format, Limit: limit})
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, render.SingleLine(tr.T(i18n.LogsSQL, res.SQL)))
		result = res
	}

	return render.WriteText(stdout, render.FromResult(result.Result), tr.T(i18n.NoData))
}
