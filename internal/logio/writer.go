package logio

import (
	"bytes"
	"sync"
)

// Writer logs everything written to it with one Logf call per line; line
// feeds are not passed on. A trailing partial line waits for more writes, or
// for Flush. It is safe for concurrent use.
type Writer struct {
	Logf func(mess string, args ...interface{})

	mu      sync.Mutex
	partial []byte
}

func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	n := len(p)
	for {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			break
		}
		lw.emit(p[:i])
		p = p[i+1:]
	}
	lw.partial = append(lw.partial, p...)
	return n, nil
}

// Flush logs any pending partial line.
func (lw *Writer) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.partial) > 0 {
		lw.emit(nil)
	}
	return nil
}

// Close flushes; the Writer remains usable.
func (lw *Writer) Close() error { return lw.Flush() }

func (lw *Writer) emit(tail []byte) {
	line := tail
	if len(lw.partial) > 0 {
		line = append(lw.partial, tail...)
		lw.partial = lw.partial[:0]
	}
	lw.Logf("%s", line)
}
