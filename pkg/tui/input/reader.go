// ABOUTME: Reader pumps raw terminal input into per-token callbacks
// ABOUTME: Reads on a helper goroutine so cancellation never waits on a blocked Read

package input

import (
	"context"
	"io"

	"github.com/mauromedda/pi-vlist/pkg/tui/key"
)

const readBufSize = 256

type readResult struct {
	data []byte
	err  error
}

// Run reads r until ctx is done or r fails, passing each key or mouse
// token to onToken. It returns nil on io.EOF or cancellation.
func Run(ctx context.Context, r io.Reader, onToken func(string)) error {
	readCh := make(chan readResult)
	done := make(chan struct{})
	defer close(done)
	go readLoop(r, readCh, done)

	for {
		select {
		case <-ctx.Done():
			return nil
		case res, ok := <-readCh:
			if !ok {
				return nil
			}
			if res.err != nil {
				if res.err == io.EOF {
					return nil
				}
				return res.err
			}
			for _, tok := range key.Split(string(res.data)) {
				if ctx.Err() != nil {
					return nil
				}
				onToken(tok)
			}
		}
	}
}

// readLoop forwards reads on ch until done is closed or r fails.
func readLoop(r io.Reader, ch chan<- readResult, done <-chan struct{}) {
	defer close(ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := r.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			select {
			case ch <- readResult{data: data}:
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case ch <- readResult{err: err}:
			case <-done:
			}
			return
		}
	}
}
