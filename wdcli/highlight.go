package wdcli

import (
	"bytes"
	"path/filepath"
	"strings"

	"oss.terrastruct.com/util-go/xmain"

	"github.com/gmlarumbe/wavedrom-mode/wavejson"
)

// highlightCmd writes a syntax-highlighted HTML view of a WaveJSON source.
// The output path defaults to the source path with a .html extension; pass -
// to write to stdout.
func highlightCmd(ms *xmain.State, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return xmain.UsageErrorf("highlight expects a .wjson file and an optional output path")
	}
	inputPath := args[0]
	outputPath := renameExt(inputPath, ".html")
	if len(args) == 2 {
		outputPath = args[1]
	}

	src, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}

	var b bytes.Buffer
	err = wavejson.HighlightHTML(&b, string(src))
	if err != nil {
		return err
	}
	err = ms.WritePath(outputPath, b.Bytes())
	if err != nil {
		return err
	}
	if outputPath != "-" {
		ms.Log.Success.Printf("wrote %v", ms.HumanPath(outputPath))
	}
	return nil
}

// newExt must include the leading .
func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}
