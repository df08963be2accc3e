// Package background runs a callback at an interval until cancelled. Used to
// keep the user informed while an external render runs long.
package background

import "time"

func Repeat(do func(), interval time.Duration) (cancel func()) {
	done := make(chan struct{})

	go func() {
		t := time.NewTimer(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				do()
				t.Reset(interval)
			case <-done:
				return
			}
		}
	}()

	var stopped bool
	return func() {
		if !stopped {
			stopped = true
			close(done)
		}
	}
}
