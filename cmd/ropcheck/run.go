package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/ib-77/ropparse/pkg/rop"
	"github.com/ib-77/ropparse/pkg/rop/batch"
	"github.com/ib-77/ropparse/pkg/rop/core"
	"github.com/ib-77/ropparse/pkg/rop/option"
	"github.com/ib-77/ropparse/pkg/rop/solo"
	"github.com/ib-77/ropparse/pkg/value"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitInvalid = 2
)

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flagParser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	flagParser.Name = "ropcheck"

	if _, err := flagParser.ParseArgs(args); flags.WroteHelp(err) {
		fmt.Fprintln(stdout, err)
		return exitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalid
	}

	logger, err := newLogger(opts.Debug)
	if err != nil {
		fmt.Fprintf(stderr, "failed to build logger: %v\n", err)
		return exitInvalid
	}
	defer func() { _ = logger.Sync() }()

	p, err := buildParser(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalid
	}

	start := time.Now()
	files := opts.files()

	readStdin := sync.OnceValues(func() ([]byte, error) {
		return io.ReadAll(stdin)
	})

	loaded := make([]rop.Result[value.Value], len(files))
	for i, name := range files {
		loaded[i] = solo.Try(rop.Success(name), func(name string) (value.Value, error) {
			return load(name, opts.Format, readStdin)
		})
	}

	var docs []value.Value
	var positions []int
	for i, r := range loaded {
		if r.IsSuccess() {
			docs = append(docs, r.Result())
			positions = append(positions, i)
		}
	}

	ctx = core.WithWorkerOptions(ctx, opts.Lines)
	parsed := batch.RunAll(ctx, p, docs)

	results := make([]rop.Result[option.Option[value.Value]], len(files))
	for i, r := range loaded {
		if r.IsFailure() {
			results[i] = rop.FailFrom[value.Value, option.Option[value.Value]](r)
		}
	}
	for i, r := range parsed {
		results[positions[i]] = r
	}

	pr := newPrinter(stdout, opts.NoColor)
	status := exitOK
	for i, r := range results {
		logger.Debug("checked document",
			zap.String("file", files[i]),
			zap.Stringer("result_id", r.Id()),
			zap.Bool("success", r.IsSuccess()),
			zap.Error(r.Err()))

		if !pr.print(files[i], r) {
			status = exitFailed
		}
	}

	logger.Debug("done",
		zap.Int("documents", len(files)),
		zap.Duration("elapsed", time.Since(start)))
	return status
}

func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	return cfg.Build(zap.Fields())
}

var errUnknownFormat = errors.New("unknown format")

// load reads and decodes one document. "-" stands for stdin, which is read
// once however many times it is named.
func load(name, format string, readStdin func() ([]byte, error)) (value.Value, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = readStdin()
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return value.Value{}, fmt.Errorf("read %s: %w", name, err)
	}

	if format == "auto" || format == "" {
		format = "json"
		if ext := strings.ToLower(filepath.Ext(name)); ext == ".yaml" || ext == ".yml" {
			format = "yaml"
		}
	}

	switch format {
	case "json":
		return value.DecodeJSON(data)
	case "yaml":
		return value.DecodeYAML(data)
	}
	return value.Value{}, fmt.Errorf("%w: %s", errUnknownFormat, format)
}

type printer struct {
	w    io.Writer
	ok   *color.Color
	fail *color.Color
}

func newPrinter(w io.Writer, noColor bool) printer {
	pr := printer{
		w:    w,
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed),
	}
	if noColor {
		pr.ok.DisableColor()
		pr.fail.DisableColor()
	}
	return pr
}

// print writes one line for r and reports whether it was a success.
func (p printer) print(name string, r rop.Result[option.Option[value.Value]]) bool {
	return solo.Finally(r,
		func(v option.Option[value.Value]) bool {
			fmt.Fprintf(p.w, "%s %s %s\n", p.ok.Sprint("OK"), name, render(v))
			return true
		},
		func(err error) bool {
			fmt.Fprintf(p.w, "%s %s %v\n", p.fail.Sprint("ERR"), name, err)
			return false
		})
}

func render(v option.Option[value.Value]) string {
	return option.WithDefault("<none>", option.Map(v, func(v value.Value) string {
		b, err := v.MarshalJSON()
		if err != nil {
			return v.String()
		}
		return string(b)
	}))
}
