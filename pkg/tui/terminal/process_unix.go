// ABOUTME: Unix SIGWINCH delivery for ProcessTerminal resize callbacks
// ABOUTME: One goroutine per subscription, stopped by the returned cancel

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

func (t *ProcessTerminal) watchResize(fn func(width, height int)) func() {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case <-done:
				return
			case <-sigCh:
				w, h, err := t.Size()
				if err != nil {
					continue
				}
				fn(w, h)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
		})
	}
}
