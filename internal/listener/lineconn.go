package listener

import (
	"bytes"
	"io"
)

// lineConn adapts a client connection to the session's "\n" lines. Reads
// turn "\r\n", "\r\x00" and a lone "\r" into "\n": telnet clients send the
// first two, ssh clients with a pty the last. Writes send "\r\n".
type lineConn struct {
	rw io.ReadWriter
	// cr is set when the previous read ended in "\r", so a "\n" or NUL
	// opening the next read belongs to the same line ending.
	cr bool
}

func newLineConn(rw io.ReadWriter) *lineConn {
	return &lineConn{rw: rw}
}

func (c *lineConn) Read(p []byte) (int, error) {
	n, err := c.rw.Read(p)
	out := p[:0]
	for _, b := range p[:n] {
		if c.cr && (b == '\n' || b == 0) {
			c.cr = false
			continue
		}
		c.cr = b == '\r'
		if c.cr {
			b = '\n'
		}
		out = append(out, b)
	}
	return len(out), err
}

func (c *lineConn) Write(p []byte) (int, error) {
	converted := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	if _, err := c.rw.Write(converted); err != nil {
		return 0, err
	}
	return len(p), nil
}
