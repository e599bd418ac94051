package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/EastonHans/transcriptkit/namematch"
	"github.com/EastonHans/transcriptkit/observability"
	"github.com/EastonHans/transcriptkit/ocr/tesseract"
	"github.com/EastonHans/transcriptkit/verify"
)

type options struct {
	docPath   string
	name      string
	program   string
	year      int
	semester  int
	matchOnly bool
	matchA    string
	matchB    string
	verbose   bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "verifytool: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "verifytool: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: verifytool [flags] <document>\n")
		fmt.Fprintf(flag.CommandLine.Output(), "       verifytool -match <registered> <extracted>\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.name, "name", "", "Registered student name")
	flag.StringVar(&opts.program, "program", "", "Registered program of study")
	flag.IntVar(&opts.year, "year", 0, "Registered year of study")
	flag.IntVar(&opts.semester, "semester", 2, "Registered semester")
	flag.BoolVar(&opts.matchOnly, "match", false, "Compare two names and exit")
	flag.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	flag.Parse()

	if opts.matchOnly {
		if flag.NArg() != 2 {
			flag.Usage()
			return options{}, fmt.Errorf("-match needs two names")
		}
		opts.matchA = flag.Arg(0)
		opts.matchB = flag.Arg(1)
		return opts, nil
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("missing document path")
	}
	if opts.name == "" {
		return options{}, fmt.Errorf("-name is required")
	}
	opts.docPath = flag.Arg(0)
	return opts, nil
}

func run(opts options) error {
	if opts.matchOnly {
		return emit(namematch.Match(opts.matchA, opts.matchB))
	}

	logger, err := buildLogger(opts.verbose)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.docPath)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	engine := tesseract.NewEngine()
	defer engine.Close()

	v := verify.New(engine, logger, verify.DefaultConfig())
	res, err := v.VerifyDocument(context.Background(), data,
		opts.name, opts.program, opts.year, opts.semester)
	if err != nil {
		// Emit the partial result so the caller still sees the per-page
		// errors, then report the failure.
		if emitErr := emit(res); emitErr != nil {
			return emitErr
		}
		return err
	}
	return emit(res)
}

func buildLogger(verbose bool) (observability.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	zl, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return observability.NewZapLogger(zl), nil
}

func emit(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
