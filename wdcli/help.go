package wdcli

import (
	"fmt"
	"path/filepath"
	"strings"

	"oss.terrastruct.com/util-go/xmain"

	"github.com/gmlarumbe/wavedrom-mode/lib/version"
	"github.com/gmlarumbe/wavedrom-mode/wavejson"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--watch] [--format=svg] file.wjson
  %[1]s preview file.wjson
  %[1]s highlight file.wjson [file.html]
  %[1]s vocab

%[1]s renders file.wjson to file.svg | file.png | file.pdf by invoking the
external wavedrom-cli renderer (and, for pdf, the inkscape converter).
The artifact is written next to the source unless --out-dir is set.

Passing a directory renders every .wjson file directly inside it.

With --watch, every save of the input re-renders it and a local live-reload
preview page shows the latest artifact.

Flags:
%[3]s

Subcommands:
  %[1]s preview file.wjson - Open the current rendered artifact in the browser
  %[1]s highlight file.wjson [file.html] - Write a syntax-highlighted HTML view of the source
  %[1]s vocab - List the recognized WaveJSON vocabulary by category
  %[1]s version - Print the version

A .wavedrom.yml file next to the input (or in the working directory) may set
renderer, converter, format, out-dir, host, port and timeout. Environment
variables override the file; flags override both.
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}

func vocabCmd(ms *xmain.State) {
	sections := []struct {
		name  string
		vocab map[string]struct{}
	}{
		{"keywords", wavejson.Keywords},
		{"signal attributes", wavejson.SignalAttributes},
		{"config attributes", wavejson.ConfigAttributes},
		{"head/foot attributes", wavejson.HeadFootAttributes},
		{"brackets", wavejson.Brackets},
		{"punctuation", wavejson.Punctuation},
	}
	for _, s := range sections {
		fmt.Fprintf(ms.Stdout, "%s: %s\n", s.name, strings.Join(wavejson.SortedVocab(s.vocab), " "))
	}
}
