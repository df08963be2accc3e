package wdcli

import (
	"context"

	"oss.terrastruct.com/util-go/xmain"

	"github.com/gmlarumbe/wavedrom-mode/wdrender"
)

// previewCmd opens the resolved output artifact for the input in the default
// browser. It does not render first; a stale or missing artifact is the
// browser's problem to report.
func previewCmd(ctx context.Context, ms *xmain.State, inputPath string, opts wdrender.Opts) error {
	if inputPath == "" {
		return xmain.UsageErrorf("preview expects a .wjson file argument")
	}
	return wdrender.Preview(ctx, ms.Env, ms.AbsPath(inputPath), opts)
}
