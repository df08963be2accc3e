// Package wdrender drives one render cycle: a saved WaveJSON source file to
// an output artifact through the external wavedrom-cli renderer and, for
// PDF, the external inkscape converter.
//
// The external tool contract works as follows.
//
// SVG/PNG
//  1. The renderer is invoked with -i <source> and -s <out.svg> or
//     -p <out.png>.
//
// PDF
//  1. The renderer is invoked with -i <source> and -s <intermediate.svg>.
//  2. The converter is invoked with --export-filename=<out.pdf> and the
//     intermediate SVG.
//
// Anything the tools write to stderr is captured into a per-cycle sink and
// reported back; the renderer's diagnostics are not parsed.
package wdrender

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"cdr.dev/slog"
	"go.uber.org/multierr"

	"oss.terrastruct.com/util-go/xdefer"

	"github.com/gmlarumbe/wavedrom-mode/lib/env"
	"github.com/gmlarumbe/wavedrom-mode/lib/log"
)

// Format selects the output artifact type.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
	PDF Format = "pdf"
)

var Formats = []Format{SVG, PNG, PDF}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, k := range Formats {
		if f == k {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q is not a supported format. Supported formats are: %v", s, Formats)
}

// Ext returns the artifact file extension including the leading dot.
func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) requiresConverter() bool {
	return f == PDF
}

const DefaultTimeout = 2 * time.Minute

// Opts is the configuration of a render cycle. It is read once per cycle and
// never mutated during one; changing it between cycles is fine.
type Opts struct {
	// Renderer is the path or name of the wavedrom-cli executable.
	Renderer string
	// Converter is the path or name of the inkscape executable. Only
	// required when Format is PDF.
	Converter string
	Format    Format
	// OutDir is where artifacts are written. Empty means the source file's
	// directory. Created, parents included, if missing.
	OutDir string
	// Timeout bounds the external processes. Zero means DefaultTimeout,
	// overridable via $WAVEDROM_TIMEOUT.
	Timeout time.Duration
}

// OutputPath resolves the artifact path for source. Pure and deterministic:
// (OutDir or source's directory)/(source basename without extension).(format).
func OutputPath(source string, format Format, outDir string) string {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(source)
	}
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(dir, base+format.Ext())
}

// Result is what a completed cycle reports. Stderr holds everything the
// external tools wrote to their error streams during this cycle; the sink
// starts empty every cycle.
type Result struct {
	OutputPath string
	Stderr     []byte
	Dur        time.Duration
}

// Advisory reports whether the external tools wrote to stderr despite the
// cycle succeeding. Advisory results are warnings only: the artifact may or
// may not have been produced correctly and the tool's diagnostics are left
// for the user to inspect.
func (r *Result) Advisory() bool {
	return len(r.Stderr) > 0
}

type command struct {
	path string
	args []string
}

// resolve is the precondition check. Nothing is launched and no directory is
// created when it fails.
func (o Opts) resolve(source string) (Opts, error) {
	if source == "" {
		return o, errors.New("source document has no backing file path")
	}
	if _, err := ParseFormat(string(o.Format)); err != nil {
		return o, err
	}
	if o.Renderer == "" {
		o.Renderer = "wavedrom-cli"
	}
	p, err := exec.LookPath(o.Renderer)
	if err != nil {
		return o, fmt.Errorf("renderer executable %q could not be resolved: %w", o.Renderer, err)
	}
	o.Renderer = p
	if o.Format.requiresConverter() {
		if o.Converter == "" {
			o.Converter = "inkscape"
		}
		p, err := exec.LookPath(o.Converter)
		if err != nil {
			return o, fmt.Errorf("converter executable %q could not be resolved: %w", o.Converter, err)
		}
		o.Converter = p
	}
	if o.OutDir != "" {
		if fi, err := os.Stat(o.OutDir); err == nil && !fi.IsDir() {
			return o, fmt.Errorf("output directory %v exists and is not a directory", o.OutDir)
		}
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
		if secs, ok := env.Timeout(); ok {
			o.Timeout = time.Duration(secs) * time.Second
		}
	}
	return o, nil
}

// buildCommands constructs the external command lines for o.Format. SVG and
// PNG are a single renderer invocation; PDF renders an intermediate SVG and
// chains into the converter. Unsupported formats yield nothing; resolve
// rejects them before this point.
func buildCommands(source, outputPath, intermediateSVG string, o Opts) []command {
	switch o.Format {
	case SVG:
		return []command{{o.Renderer, []string{"-i", source, "-s", outputPath}}}
	case PNG:
		return []command{{o.Renderer, []string{"-i", source, "-p", outputPath}}}
	case PDF:
		return []command{
			{o.Renderer, []string{"-i", source, "-s", intermediateSVG}},
			{o.Converter, []string{fmt.Sprintf("--export-filename=%s", outputPath), intermediateSVG}},
		}
	default:
		return nil
	}
}

// Render runs one cycle for source. On process failure the returned Result
// still carries whatever reached the stderr sink. A Result with a nil error
// and non-empty Stderr is an advisory: the external tool warned but exited
// zero, and the cycle proceeds.
func Render(ctx context.Context, source string, o Opts) (_ *Result, err error) {
	defer xdefer.Errorf(&err, "failed to render %v", source)
	start := time.Now()

	o, err = o.resolve(source)
	if err != nil {
		return nil, err
	}

	outputPath := OutputPath(source, o.Format, o.OutDir)
	if o.OutDir != "" {
		err = os.MkdirAll(o.OutDir, 0755)
		if err != nil {
			return nil, err
		}
	}

	var intermediate string
	if o.Format.requiresConverter() {
		f, err := os.CreateTemp("", "wavedrom-*.svg")
		if err != nil {
			return nil, err
		}
		intermediate = f.Name()
		f.Close()
		defer func() {
			err = multierr.Combine(err, os.Remove(intermediate))
		}()
	}

	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	res := &Result{OutputPath: outputPath}
	stderr := &bytes.Buffer{}
	stdout := &bytes.Buffer{}
	for _, c := range buildCommands(source, outputPath, intermediate, o) {
		cmd := exec.CommandContext(ctx, c.path, c.args...)
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		log.Debug(ctx, "running external tool", slog.F("args", cmd.Args))
		err = cmd.Run()
		res.Stderr = stderr.Bytes()
		if err != nil {
			if stderr.Len() > 0 {
				return res, fmt.Errorf("%v: %w\nstderr:\n%s", cmd.Args, err, stderr.Bytes())
			}
			return res, fmt.Errorf("%v: %w", cmd.Args, err)
		}
	}
	res.Dur = time.Since(start)
	return res, nil
}
