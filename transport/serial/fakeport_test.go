package serial

import (
	"bytes"
	"strings"
	"time"
)

// fakePort answers writes with scripted device output. Each Read hands out
// at most one queued chunk; an empty queue behaves like a read timeout.
type fakePort struct {
	replies map[string][]string
	queue   [][]byte
	written bytes.Buffer
	closed  bool
}

func newFakePort(replies map[string][]string, pending ...string) *fakePort {
	p := &fakePort{replies: replies}
	for _, chunk := range pending {
		p.queue = append(p.queue, []byte(chunk))
	}
	return p
}

func (p *fakePort) Read(b []byte) (int, error) {
	if len(p.queue) == 0 {
		return 0, nil
	}
	n := copy(b, p.queue[0])
	if n < len(p.queue[0]) {
		p.queue[0] = p.queue[0][n:]
	} else {
		p.queue = p.queue[1:]
	}
	return n, nil
}

func (p *fakePort) Write(b []byte) (int, error) {
	p.written.Write(b)
	command := strings.TrimRight(string(b), "\r")
	for _, line := range p.replies[command] {
		p.queue = append(p.queue, []byte(line+"\r\n"))
	}
	return len(b), nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func (p *fakePort) SetReadTimeout(time.Duration) error {
	return nil
}
