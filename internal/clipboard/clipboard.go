package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

func (System) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// Supported reports whether a system clipboard backend was found.
func Supported() bool {
	return !clipboard.Unsupported
}

// Memory keeps the last written text. It is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
	err    error
	done   chan struct{}
}

// NewMemory creates a Memory clipboard. A non-nil err makes every write fail
// after recording the attempt.
func NewMemory(err error) *Memory {
	return &Memory{err: err, done: make(chan struct{}, 64)}
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	m.writes++
	if m.err == nil {
		m.text = text
	}
	err := m.err
	m.mu.Unlock()

	select {
	case m.done <- struct{}{}:
	default:
	}
	return err
}

// Text returns the last successfully written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns the number of write attempts.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Written signals once per write attempt.
func (m *Memory) Written() <-chan struct{} {
	return m.done
}
