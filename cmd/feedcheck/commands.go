package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/jdziat/rssfeed"
	"github.com/jdziat/rssfeed/internal/feedcheck/config"
	"github.com/jdziat/rssfeed/pkg/importer"
	"github.com/jdziat/rssfeed/pkg/prommetrics"
	"github.com/jdziat/rssfeed/pkg/rssxml"
)

// runFeedCommand loads configuration, imports the named feed and hands the
// result to the command.
func runFeedCommand(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	showMetrics := false
	if name == "summary" {
		fs.BoolVar(&showMetrics, "metrics", false, "print importer metrics after the summary")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%s expects exactly one file", name)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	reg := prometheus.NewRegistry()
	opts := []importer.Option{
		importer.WithOptions(cfg.Import),
		importer.WithLogger(rssfeed.NewSlogAdapter(logger).With("command", name)),
		importer.WithMetrics(prommetrics.NewCollector(reg)),
	}

	switch name {
	case "validate":
		imp := importer.New(append(opts, importer.WithStrict(true))...)
		return validateFeed(imp, in, stdout)
	case "summary":
		imp := importer.New(append(opts, importer.WithStrict(false))...)
		if err := summarizeFeed(imp, in, stdout); err != nil {
			return err
		}
		if showMetrics {
			return printMetrics(reg, stdout)
		}
		return nil
	default:
		imp := importer.New(opts...)
		return normalizeFeed(imp, in, stdout, cfg.Output.Indent)
	}
}

// validateFeed imports strictly and reports the first invalid field.
func validateFeed(imp *importer.Importer, in io.Reader, out io.Writer) error {
	ch, err := imp.Parse(in)
	if err != nil {
		if ve, ok := rssfeed.AsValidationError(err); ok {
			return fmt.Errorf("invalid feed: %s: %s", ve.Field, ve.Message)
		}
		return err
	}
	fmt.Fprintf(out, "OK: %q with %d items\n", ch.Title(), len(ch.Items()))
	return nil
}

// summarizeFeed imports leniently and prints the channel and what was dropped.
func summarizeFeed(imp *importer.Importer, in io.Reader, out io.Writer) error {
	res, err := imp.Import(in)
	if err != nil {
		return err
	}
	ch := res.Channel

	fmt.Fprintf(out, "Title:       %s\n", ch.Title())
	fmt.Fprintf(out, "Link:        %s\n", ch.Link())
	if lang, ok := ch.Language(); ok {
		fmt.Fprintf(out, "Language:    %s\n", lang)
	}
	if ttl, ok := ch.TTL(); ok {
		fmt.Fprintf(out, "TTL:         %s\n", ttl)
	}
	if _, ok := ch.ITunesExt(); ok {
		fmt.Fprintln(out, "iTunes:      yes")
	}
	fmt.Fprintf(out, "Items:       %d accepted, %d skipped\n", res.Stats.ItemsAccepted, res.Stats.ItemsSkipped)
	fmt.Fprintf(out, "Elements:    %d skipped\n", res.Stats.ElementsSkipped)

	for _, s := range res.Stats.Skipped {
		fmt.Fprintf(out, "  skipped %s at %s: %v\n", s.Element, s.Field, s.Err)
	}
	return nil
}

// normalizeFeed re-encodes the imported channel.
func normalizeFeed(imp *importer.Importer, in io.Reader, out io.Writer, indent string) error {
	ch, err := imp.Parse(in)
	if err != nil {
		return err
	}
	return rssxml.Encode(out, ch, rssxml.WithIndent(indent))
}

// newLogger builds the diagnostics logger from the log section of the config.
func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// openInput opens a local file, or stdin for "-".
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open feed: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// printMetrics writes every gathered family in the Prometheus text format.
func printMetrics(g prometheus.Gatherer, out io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	fmt.Fprintln(out, "Metrics:")
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
