package input

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"time"
)

// DefaultEscWait is how long a trailing ESC waits for the rest of its
// sequence before it is passed on as a lone Escape keypress.
const DefaultEscWait = 50 * time.Millisecond

const keyEscape = 0x1b

type chunk struct {
	data []byte
	err  error
}

// Reader sits between a key stream and the key decoder. It holds back a
// read that stops partway through an escape sequence until the rest
// arrives or the wait runs out, so an arrow key split across reads is
// not taken for Escape followed by letters.
type Reader struct {
	chunks  chan chunk
	wait    time.Duration
	pending []byte
	err     error

	closed    chan struct{}
	closeOnce sync.Once
}

// NewReader starts reading r in the background.
func NewReader(r io.Reader, wait time.Duration) *Reader {
	in := &Reader{
		chunks: make(chan chunk),
		wait:   wait,
		closed: make(chan struct{}),
	}
	go in.pump(r)
	return in
}

func (in *Reader) pump(r io.Reader) {
	for {
		buf := make([]byte, 256)
		n, err := r.Read(buf)
		if n > 0 {
			in.chunks <- chunk{data: buf[:n]}
		}
		if err != nil {
			in.chunks <- chunk{err: err}
			return
		}
	}
}

// Closed is closed once Read has returned io.EOF.
func (in *Reader) Closed() <-chan struct{} { return in.closed }

func (in *Reader) Read(p []byte) (int, error) {
	if len(in.pending) == 0 && in.err == nil {
		in.take(<-in.chunks)
		in.completeEscape()
	}
	if len(in.pending) > 0 {
		n := copy(p, in.pending)
		in.pending = in.pending[n:]
		return n, nil
	}
	if errors.Is(in.err, io.EOF) {
		in.closeOnce.Do(func() { close(in.closed) })
	}
	return 0, in.err
}

func (in *Reader) take(c chunk) {
	if c.err != nil {
		in.err = c.err
		return
	}
	in.pending = append(in.pending, c.data...)
}

// completeEscape keeps reading while the pending bytes end inside an
// escape sequence, for at most the configured wait.
func (in *Reader) completeEscape() {
	if in.err != nil || !incompleteEscape(in.pending) {
		return
	}
	timer := time.NewTimer(in.wait)
	defer timer.Stop()
	for in.err == nil && incompleteEscape(in.pending) {
		select {
		case c := <-in.chunks:
			in.take(c)
		case <-timer.C:
			return
		}
	}
}

// incompleteEscape reports whether b ends with ESC, ESC O, or a CSI
// sequence (ESC [) that has not reached its final byte.
func incompleteEscape(b []byte) bool {
	i := bytes.LastIndexByte(b, keyEscape)
	if i < 0 {
		return false
	}
	tail := b[i+1:]
	switch {
	case len(tail) == 0:
		return true
	case tail[0] == 'O':
		return len(tail) == 1
	case tail[0] == '[':
		for _, c := range tail[1:] {
			if c < 0x20 || c >= 0x40 {
				return false
			}
		}
		return true
	}
	return false
}
