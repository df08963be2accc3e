package wdcli

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/fsnotify/fsnotify"

	"oss.terrastruct.com/util-go/xbrowser"
	"oss.terrastruct.com/util-go/xhttp"
	"oss.terrastruct.com/util-go/xmain"

	"github.com/gmlarumbe/wavedrom-mode/wdrender"
)

//go:embed static
var staticFS embed.FS

type watcherOpts struct {
	host       string
	port       string
	inputPaths []string
	renderOpts wdrender.Opts
}

type watcher struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	ms *xmain.State
	watcherOpts

	compileCh chan struct{}

	pendingMu sync.Mutex
	pending   map[string]struct{}

	fw               *fsnotify.Watcher
	l                net.Listener
	staticFileServer http.Handler

	wsclientsMu sync.Mutex
	closing     bool
	wsclientsWG sync.WaitGroup
	wsclients   map[*wsclient]struct{}

	errMu sync.Mutex
	err   error

	resMu    sync.Mutex
	res      *renderResult
	artifact string
}

// renderResult is what preview tabs receive after each cycle. The artifact
// itself is fetched separately from /artifact; Seq busts the cache.
type renderResult struct {
	Seq    int    `json:"seq"`
	Source string `json:"source"`
	Format string `json:"format"`
	Err    string `json:"err"`
}

func newWatcher(ctx context.Context, ms *xmain.State, opts watcherOpts) (*watcher, error) {
	ctx, cancel := context.WithCancel(ctx)

	w := &watcher{
		ctx:    ctx,
		cancel: cancel,

		ms:          ms,
		watcherOpts: opts,

		compileCh: make(chan struct{}, 1),
		pending:   make(map[string]struct{}),
		wsclients: make(map[*wsclient]struct{}),
	}
	err := w.init()
	if err != nil {
		cancel()
		return nil, err
	}
	return w, nil
}

func (w *watcher) init() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fw = fw

	sfs, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}
	w.staticFileServer = http.FileServer(http.FS(sfs))

	return w.listen()
}

func (w *watcher) run() error {
	defer w.close()

	w.goFunc(w.watchLoop)
	w.goFunc(w.compileLoop)

	err := w.goServe()
	if err != nil {
		return err
	}

	w.wg.Wait()
	w.close()
	return w.err
}

func (w *watcher) close() {
	w.wsclientsMu.Lock()
	if w.closing {
		w.wsclientsMu.Unlock()
		return
	}
	w.closing = true
	w.wsclientsMu.Unlock()

	w.cancel()
	if w.fw != nil {
		err := w.fw.Close()
		w.setErr(err)
	}
	if w.l != nil {
		err := w.l.Close()
		w.setErr(err)
	}

	w.wsclientsWG.Wait()
}

func (w *watcher) setErr(err error) {
	w.errMu.Lock()
	if w.err == nil {
		w.err = err
	}
	w.errMu.Unlock()
}

func (w *watcher) goFunc(fn func(context.Context) error) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.cancel()

		err := fn(w.ctx)
		w.setErr(err)
	}()
}

// watchLoop turns file system events on the watched sources into render
// requests. Events are coalesced: editors tend to emit a chmod/write burst
// per save and we want exactly one cycle out of it. A slow poll backs up the
// notification API in case a change was missed.
func (w *watcher) watchLoop(ctx context.Context) error {
	lastModified := make(map[string]time.Time)

	for _, p := range w.inputPaths {
		mt, err := w.ensureAddWatch(ctx, p)
		if err != nil {
			return err
		}
		lastModified[p] = mt
		w.ms.Log.Info.Printf("rendering %v...", w.ms.HumanPath(p))
	}
	w.requestRender(w.inputPaths...)

	eatBurstTimer := time.NewTimer(0)
	<-eatBurstTimer.C
	pollTicker := time.NewTicker(time.Second * 10)
	defer pollTicker.Stop()

	changed := make(map[string]struct{})

	for {
		select {
		case <-pollTicker.C:
			missedChanges := false
			for _, watched := range w.fw.WatchList() {
				mt, err := w.ensureAddWatch(ctx, watched)
				if err != nil {
					return err
				}
				if mt2, ok := lastModified[watched]; !ok || !mt.Equal(mt2) {
					missedChanges = true
					lastModified[watched] = mt
				}
			}
			if missedChanges {
				w.requestRender(w.fw.WatchList()...)
			}
		case ev, ok := <-w.fw.Events:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Debug.Printf("received file system event %v", ev)
			mt, err := w.ensureAddWatch(ctx, ev.Name)
			if err != nil {
				return err
			}
			if ev.Op == fsnotify.Chmod {
				if mt.Equal(lastModified[ev.Name]) {
					// Benign Chmod.
					// See https://github.com/fsnotify/fsnotify/issues/15
					continue
				}
				lastModified[ev.Name] = mt
			}
			changed[ev.Name] = struct{}{}
			// Wait for the burst of events from one editor save to settle
			// before rendering, so an incomplete write is not rendered and
			// reported as a misleading error.
			eatBurstTimer.Reset(time.Millisecond * 16)
		case <-eatBurstTimer.C:
			var changedList []string
			for k := range changed {
				changedList = append(changedList, k)
				delete(changed, k)
			}
			sort.Strings(changedList)
			changedStr := w.ms.HumanPath(changedList[0])
			for i := 1; i < len(changedList); i++ {
				changedStr += fmt.Sprintf(", %s", w.ms.HumanPath(changedList[i]))
			}
			w.ms.Log.Info.Printf("detected change in %s: rerendering...", changedStr)
			w.requestRender(changedList...)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Error.Printf("fsnotify error: %v", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *watcher) requestRender(paths ...string) {
	w.pendingMu.Lock()
	for _, p := range paths {
		w.pending[p] = struct{}{}
	}
	w.pendingMu.Unlock()

	select {
	case w.compileCh <- struct{}{}:
	default:
	}
}

func (w *watcher) takePending() []string {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()
	out := make([]string, 0, len(w.pending))
	for p := range w.pending {
		out = append(out, p)
		delete(w.pending, p)
	}
	sort.Strings(out)
	return out
}

func (w *watcher) ensureAddWatch(ctx context.Context, path string) (time.Time, error) {
	interval := time.Millisecond * 16
	tc := time.NewTimer(0)
	<-tc.C
	for {
		mt, err := w.addWatch(ctx, path)
		if err == nil {
			return mt, nil
		}
		if interval >= time.Second {
			w.ms.Log.Error.Printf("failed to watch %q: %v (retrying in %v)", w.ms.HumanPath(path), err, interval)
		}

		tc.Reset(interval)
		select {
		case <-tc.C:
			if interval < time.Second {
				interval = time.Second
			}
			if interval < time.Second*16 {
				interval *= 2
			}
		case <-ctx.Done():
			return time.Time{}, ctx.Err()
		}
	}
}

func (w *watcher) addWatch(ctx context.Context, path string) (time.Time, error) {
	err := w.fw.Add(path)
	if err != nil {
		return time.Time{}, err
	}
	d, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return d.ModTime(), nil
}

// compileLoop runs render cycles for pending sources, one at a time, and
// broadcasts each outcome to the connected preview tabs. The browser is
// opened once, after the first successful cycle.
func (w *watcher) compileLoop(ctx context.Context) error {
	browserOpened := false
	for {
		select {
		case <-w.compileCh:
		case <-ctx.Done():
			return ctx.Err()
		}

		succeeded := false
		for _, src := range w.takePending() {
			res, err := wdrender.Render(ctx, src, w.renderOpts)
			errs := ""
			if err != nil {
				errs = fmt.Errorf("failed to render: %w", err).Error()
				w.ms.Log.Error.Print(errs)
			} else if res.Advisory() {
				w.ms.Log.Warn.Printf("%v rendered with warnings, inspect the renderer's stderr:\n%s", w.ms.HumanPath(src), res.Stderr)
			} else {
				w.ms.Log.Success.Printf("successfully rendered %v to %v in %v", w.ms.HumanPath(src), w.ms.HumanPath(res.OutputPath), res.Dur)
			}

			w.resMu.Lock()
			seq := 0
			if w.res != nil {
				seq = w.res.Seq
			}
			if res != nil {
				w.artifact = res.OutputPath
			}
			w.res = &renderResult{
				Seq:    seq + 1,
				Source: filepath.Base(src),
				Format: string(w.renderOpts.Format),
				Err:    errs,
			}
			w.resMu.Unlock()
			w.broadcast()
			if err == nil {
				succeeded = true
			}
		}

		if succeeded && !browserOpened {
			browserOpened = true
			url := fmt.Sprintf("http://%s", w.l.Addr())
			err := xbrowser.Open(ctx, w.ms.Env, url)
			if err != nil {
				w.ms.Log.Warn.Printf("failed to open browser to %v: %v", url, err)
			}
		}
	}
}

func (w *watcher) listen() error {
	l, err := net.Listen("tcp", net.JoinHostPort(w.host, w.port))
	if err != nil {
		return err
	}
	w.l = l
	w.ms.Log.Success.Printf("listening on http://%v", w.l.Addr())
	return nil
}

func (w *watcher) goServe() error {
	m := http.NewServeMux()
	m.HandleFunc("/", w.handleRoot)
	m.Handle("/static/", http.StripPrefix("/static", w.staticFileServer))
	m.HandleFunc("/artifact", w.handleArtifact)
	m.Handle("/watch", xhttp.HandlerFuncAdapter{Log: w.ms.Log, Func: w.handleWatch})

	s := xhttp.NewServer(w.ms.Log.Warn, xhttp.Log(w.ms.Log, m))
	w.goFunc(func(ctx context.Context) error {
		return xhttp.Serve(ctx, time.Second*30, s, w.l)
	})

	return nil
}

func (w *watcher) getRes() *renderResult {
	w.resMu.Lock()
	defer w.resMu.Unlock()
	return w.res
}

func (w *watcher) handleRoot(hw http.ResponseWriter, r *http.Request) {
	hw.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(hw, `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>%s</title>
	<script src="/static/watch.js"></script>
	<link rel="stylesheet" href="/static/watch.css">
</head>
<body>
	<div id="wavedrom-err" style="display: none"></div>
	<div id="wavedrom-artifact-container"></div>
</body>
</html>`, filepath.Base(w.inputPaths[0]))
}

// handleArtifact serves the most recently rendered artifact from disk. The
// preview page re-requests it after every broadcast.
func (w *watcher) handleArtifact(hw http.ResponseWriter, r *http.Request) {
	w.resMu.Lock()
	artifact := w.artifact
	w.resMu.Unlock()

	if artifact == "" {
		http.Error(hw, "nothing rendered yet", http.StatusNotFound)
		return
	}
	hw.Header().Set("Cache-Control", "no-store")
	http.ServeFile(hw, r, artifact)
}

func (w *watcher) handleWatch(hw http.ResponseWriter, r *http.Request) error {
	w.wsclientsMu.Lock()
	if w.closing {
		w.wsclientsMu.Unlock()
		return xhttp.Errorf(http.StatusServiceUnavailable, "server shutting down...", "server shutting down...")
	}
	// Register before upgrading the connection so that close() waits for
	// this client even if it hits between the hijack and the registration.
	w.wsclientsWG.Add(1)
	w.wsclientsMu.Unlock()

	c, err := websocket.Accept(hw, r, &websocket.AcceptOptions{
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		w.wsclientsWG.Done()
		return err
	}

	go func() {
		defer w.wsclientsWG.Done()
		defer c.Close(websocket.StatusInternalError, "the sky is falling")

		ctx, cancel := context.WithTimeout(w.ctx, time.Hour)
		defer cancel()

		cl := &wsclient{
			w:         w,
			resultsCh: make(chan struct{}, 1),
			c:         c,
		}

		w.wsclientsMu.Lock()
		w.wsclients[cl] = struct{}{}
		w.wsclientsMu.Unlock()
		defer func() {
			w.wsclientsMu.Lock()
			delete(w.wsclients, cl)
			w.wsclientsMu.Unlock()
		}()

		ctx = cl.c.CloseRead(ctx)
		go wsHeartbeat(ctx, cl.c)
		_ = cl.writeLoop(ctx)
	}()
	return nil
}

type wsclient struct {
	w         *watcher
	resultsCh chan struct{}
	c         *websocket.Conn
}

func (cl *wsclient) writeLoop(ctx context.Context) error {
	for {
		res := cl.w.getRes()
		if res != nil {
			err := cl.write(ctx, res)
			if err != nil {
				return err
			}
		}

		select {
		case <-cl.resultsCh:
		case <-ctx.Done():
			cl.c.Close(websocket.StatusGoingAway, "server shutting down...")
			return ctx.Err()
		}
	}
}

func (cl *wsclient) write(ctx context.Context, res *renderResult) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*30)
	defer cancel()

	return wsjson.Write(ctx, cl.c, res)
}

func (w *watcher) broadcast() {
	w.wsclientsMu.Lock()
	defer w.wsclientsMu.Unlock()
	clientsSuffix := ""
	if len(w.wsclients) != 1 {
		clientsSuffix = "s"
	}
	w.ms.Log.Info.Printf("broadcasting update to %d client%s", len(w.wsclients), clientsSuffix)
	for cl := range w.wsclients {
		select {
		case cl.resultsCh <- struct{}{}:
		default:
		}
	}
}

func wsHeartbeat(ctx context.Context, c *websocket.Conn) {
	defer c.Close(websocket.StatusInternalError, "the sky is falling")

	t := time.NewTimer(0)
	<-t.C
	for {
		err := c.Ping(ctx)
		if err != nil {
			return
		}

		t.Reset(time.Second * 30)
		select {
		case <-t.C:
		case <-ctx.Done():
			return
		}
	}
}
