package wdrender

import (
	"context"
	"path/filepath"

	"oss.terrastruct.com/util-go/xbrowser"
	"oss.terrastruct.com/util-go/xos"
)

// Preview opens the resolved output artifact for source in the system
// browser. There are no preconditions beyond path resolution; if the
// artifact does not exist the browser reports whatever it reports.
func Preview(ctx context.Context, env *xos.Env, source string, o Opts) error {
	p, err := filepath.Abs(OutputPath(source, o.Format, o.OutDir))
	if err != nil {
		return err
	}
	return xbrowser.Open(ctx, env, "file://"+p)
}
