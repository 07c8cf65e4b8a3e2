// Package scratch manages the two ephemeral files backing the left and
// right text buffers. The files live for exactly one process: created
// empty at startup, truncated on clear, removed when the session closes.
package scratch

import (
	"fmt"
	"os"
)

// Buffer is a named handle to one scratch file. Its content is mutated
// only by an external editor process or by Clear.
type Buffer struct {
	name string
	path string
}

// Session owns the left and right buffers exclusively.
type Session struct {
	left  *Buffer
	right *Buffer
}

// NewSession creates two fresh, empty, uniquely named scratch files.
func NewSession() (*Session, error) {
	left, err := newBuffer("left")
	if err != nil {
		return nil, err
	}
	right, err := newBuffer("right")
	if err != nil {
		left.remove()
		return nil, err
	}
	return &Session{left: left, right: right}, nil
}

func newBuffer(name string) (*Buffer, error) {
	f, err := os.CreateTemp("", "diffur-"+name+"-*.txt")
	if err != nil {
		return nil, fmt.Errorf("creating %s buffer: %w", name, err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("closing %s buffer: %w", name, err)
	}
	return &Buffer{name: name, path: path}, nil
}

// Left returns the left buffer.
func (s *Session) Left() *Buffer { return s.left }

// Right returns the right buffer.
func (s *Session) Right() *Buffer { return s.right }

// ClearAll truncates both buffers. Both are always attempted; the first
// failure is returned.
func (s *Session) ClearAll() error {
	errLeft := s.left.Clear()
	errRight := s.right.Clear()
	if errLeft != nil {
		return errLeft
	}
	return errRight
}

// Close removes both backing files.
func (s *Session) Close() error {
	errLeft := s.left.remove()
	errRight := s.right.remove()
	if errLeft != nil {
		return errLeft
	}
	return errRight
}

// Name returns the buffer's name ("left" or "right").
func (b *Buffer) Name() string { return b.name }

// Path returns the backing file's path, for handing to external processes.
func (b *Buffer) Path() string { return b.path }

// Clear truncates the buffer to zero length.
func (b *Buffer) Clear() error {
	if err := os.Truncate(b.path, 0); err != nil {
		return fmt.Errorf("clearing %s buffer: %w", b.name, err)
	}
	return nil
}

// Read returns the buffer's full content. A missing or unreadable file
// reads as empty; the renderer must never fail on it.
func (b *Buffer) Read() string {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return ""
	}
	return string(data)
}

func (b *Buffer) remove() error {
	if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s buffer: %w", b.name, err)
	}
	return nil
}
