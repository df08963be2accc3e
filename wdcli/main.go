package wdcli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/xmain"

	"github.com/gmlarumbe/wavedrom-mode/lib/background"
	"github.com/gmlarumbe/wavedrom-mode/lib/log"
	"github.com/gmlarumbe/wavedrom-mode/lib/version"
	"github.com/gmlarumbe/wavedrom-mode/wdrender"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	ctx = log.WithDefault(ctx)

	// These should be kept up-to-date with the readme
	watchFlag, err := ms.Opts.Bool("WAVEDROM_WATCH", "watch", "w", false, "watch the input for changes and live reload the rendered artifact. Use $HOST and $PORT to specify the listening address.\n(default localhost:0, which will open on a randomly available local port).")
	if err != nil {
		return err
	}
	hostFlag := ms.Opts.String("HOST", "host", "h", "localhost", "host listening address when used with watch")
	portFlag := ms.Opts.String("PORT", "port", "p", "0", "port listening address when used with watch")
	formatFlag := ms.Opts.String("WAVEDROM_FORMAT", "format", "f", "svg", "output format. One of svg, png, pdf.")
	outDirFlag := ms.Opts.String("WAVEDROM_OUT_DIR", "out-dir", "o", "", "directory rendered artifacts are written to. Defaults to the source file's directory. Created if missing.")
	rendererFlag := ms.Opts.String("WAVEDROM_RENDERER", "renderer", "", "wavedrom-cli", "path to the wavedrom-cli executable")
	converterFlag := ms.Opts.String("WAVEDROM_CONVERTER", "converter", "", "inkscape", "path to the inkscape executable. Only used for pdf output.")
	timeoutFlag, err := ms.Opts.Int64("WAVEDROM_TIMEOUT", "timeout", "", 120, "the maximum number of seconds a render may run before timing out")
	if err != nil {
		return err
	}
	configFlag := ms.Opts.String("WAVEDROM_CONFIG", "config", "c", "", "path to a project config file (default: .wavedrom.yml next to the input, then in the working directory)")
	browserFlag := ms.Opts.String("BROWSER", "browser", "", "", "browser executable that watch opens. Setting to 0 opens no browser.")
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
		ms.Env.Setenv("DEBUG", "1")
	}
	if *browserFlag != "" {
		ms.Env.Setenv("BROWSER", *browserFlag)
	}

	args := ms.Opts.Flags.Args()

	var subcommand string
	var inputPath string
	if len(args) > 0 {
		switch args[0] {
		case "preview", "highlight", "vocab", "version":
			subcommand = args[0]
			if len(args) > 1 {
				inputPath = args[1]
			}
		default:
			inputPath = args[0]
		}
	}

	switch subcommand {
	case "vocab":
		vocabCmd(ms)
		return nil
	case "version":
		if len(args) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	if len(args) == 0 {
		if versionFlag != nil && *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	}

	// Flags not explicitly set by the user may be overridden by the project
	// config file. Environment variables already act as flag defaults
	// through Opts, so only truly unset flags fall back to the file.
	flagSet := make(map[string]struct{})
	ms.Opts.Flags.Visit(func(f *pflag.Flag) {
		flagSet[f.Name] = struct{}{}
	})
	configPath := *configFlag
	if configPath != "" {
		configPath = ms.AbsPath(configPath)
	}
	var configInput string
	if inputPath != "" {
		configInput = ms.AbsPath(inputPath)
	}
	fc, err := loadFileConfig(configPath, configInput)
	if err != nil {
		return err
	}
	merge := func(flag, envKey string, dst *string, fileVal string) {
		if fileVal == "" {
			return
		}
		if _, ok := flagSet[flag]; ok {
			return
		}
		if envKey != "" && ms.Env.Getenv(envKey) != "" {
			return
		}
		*dst = fileVal
	}
	merge("format", "WAVEDROM_FORMAT", formatFlag, fc.Format)
	merge("out-dir", "WAVEDROM_OUT_DIR", outDirFlag, fc.OutDir)
	merge("renderer", "WAVEDROM_RENDERER", rendererFlag, fc.Renderer)
	merge("converter", "WAVEDROM_CONVERTER", converterFlag, fc.Converter)
	merge("host", "HOST", hostFlag, fc.Host)
	merge("port", "PORT", portFlag, fc.Port)
	if fc.Timeout > 0 && ms.Env.Getenv("WAVEDROM_TIMEOUT") == "" {
		if _, ok := flagSet["timeout"]; !ok {
			*timeoutFlag = fc.Timeout
		}
	}

	format, err := wdrender.ParseFormat(*formatFlag)
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	outDir := *outDirFlag
	if outDir != "" {
		outDir = ms.AbsPath(outDir)
	}
	renderOpts := wdrender.Opts{
		Renderer:  *rendererFlag,
		Converter: *converterFlag,
		Format:    format,
		OutDir:    outDir,
		Timeout:   time.Duration(*timeoutFlag) * time.Second,
	}

	switch subcommand {
	case "preview":
		return previewCmd(ctx, ms, inputPath, renderOpts)
	case "highlight":
		return highlightCmd(ms, args[1:])
	}

	sources, err := collectSources(ms, inputPath)
	if err != nil {
		return err
	}

	if *watchFlag {
		w, err := newWatcher(ctx, ms, watcherOpts{
			host:       *hostFlag,
			port:       *portFlag,
			inputPaths: sources,
			renderOpts: renderOpts,
		})
		if err != nil {
			return err
		}
		return w.run()
	}

	for _, src := range sources {
		err = renderOnce(ctx, ms, src, renderOpts)
		if err != nil {
			return err
		}
	}
	return nil
}

// renderOnce drives a single render cycle and reports its outcome the way a
// save-triggered cycle would.
func renderOnce(ctx context.Context, ms *xmain.State, source string, opts wdrender.Opts) error {
	cancel := background.Repeat(func() {
		ms.Log.Info.Printf("rendering %v...", ms.HumanPath(source))
	}, time.Second*5)
	defer cancel()

	res, err := wdrender.Render(ctx, source, opts)
	if err != nil {
		return err
	}
	cancel()

	if res.Advisory() {
		ms.Log.Warn.Printf("%v rendered with warnings, inspect the renderer's stderr:\n%s", ms.HumanPath(source), res.Stderr)
	}
	ms.Log.Success.Printf("successfully rendered %v to %v in %v", ms.HumanPath(source), ms.HumanPath(res.OutputPath), res.Dur)
	return nil
}

// collectSources resolves the input argument. A directory input binds every
// .wjson file directly inside it to the render workflow.
func collectSources(ms *xmain.State, inputPath string) ([]string, error) {
	inputPath = ms.AbsPath(inputPath)
	fi, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return []string{inputPath}, nil
	}
	matches, err := filepath.Glob(filepath.Join(inputPath, "*.wjson"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .wjson files found in %v", ms.HumanPath(inputPath))
	}
	return matches, nil
}
