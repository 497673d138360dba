// Package terminal hosts a view in an interactive terminal: it mounts the
// view, draws its fields as text, maps keys to focus moves, clicks and edits,
// and tears the view down on quit.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/common-nighthawk/go-figure"

	"github.com/vaultpass/passgen/internal/dom"
	"github.com/vaultpass/passgen/internal/page"
)

const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyBackspace = 0x08
	keyTab       = 0x09
	keyLF        = 0x0a
	keyCR        = 0x0d
	keyEsc       = 0x1b
	keyDelete    = 0x7f

	clearScreen = "\x1b[H\x1b[2J"
)

// Host draws a mounted view and feeds it keyboard input.
type Host struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger

	// Banner is drawn above the form when non-empty.
	Banner string
	// Clear emits an ANSI clear before each frame.
	Clear bool

	root      *dom.Element
	focusable []*dom.Element
	focus     int
	status    string
}

// New creates a Host reading keys from in and drawing to out.
func New(in io.Reader, out io.Writer, logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{in: bufio.NewReader(in), out: out, logger: logger}
}

// Banner renders title as ASCII art.
func Banner(title string) string {
	return figure.NewFigure(title, "", true).String()
}

// Notify shows msg on the status line until the next key press.
func (h *Host) Notify(msg string) {
	h.status = msg
}

// Run mounts v and processes keys until the user quits, the input ends or
// ctx is cancelled, even while waiting for a key. The view is torn down
// before Run returns.
func (h *Host) Run(ctx context.Context, v page.View) error {
	body, app := page.NewDocument()
	if err := page.Mount(app, v); err != nil {
		return fmt.Errorf("mount view: %w", err)
	}
	defer func() {
		v.Teardown()
		h.logger.Debug("view torn down")
	}()

	h.root = body
	h.focusable = focusables(v.Root())
	h.focus = 0
	h.logger.Debug("view mounted", "fields", len(h.focusable))

	if err := h.draw(); err != nil {
		return err
	}

	keys := make(chan keyRead)
	done := make(chan struct{})
	defer close(done)
	go h.readKeys(keys, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, err := h.next(ctx, keys)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		h.status = ""
		if quit := h.handle(ctx, keys, b); quit {
			return nil
		}
		if err := h.draw(); err != nil {
			return err
		}
	}
}

type keyRead struct {
	b   byte
	err error
}

// readKeys forwards bytes from the input until a read fails or done closes.
// A read that is blocked when done closes ends with the next byte or EOF.
func (h *Host) readKeys(keys chan<- keyRead, done <-chan struct{}) {
	for {
		b, err := h.in.ReadByte()
		select {
		case keys <- keyRead{b: b, err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

// next waits for a key or for ctx to end.
func (h *Host) next(ctx context.Context, keys <-chan keyRead) (byte, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case k := <-keys:
		if k.err != nil && !errors.Is(k.err, io.EOF) {
			return 0, fmt.Errorf("read key: %w", k.err)
		}
		return k.b, k.err
	}
}

func (h *Host) handle(ctx context.Context, keys <-chan keyRead, b byte) (quit bool) {
	switch b {
	case 'q', keyCtrlC, keyCtrlD:
		return true
	case keyTab, 'j':
		h.move(1)
	case 'k':
		h.move(-1)
	case keyCR, keyLF, ' ':
		h.focused().Click()
	case keyBackspace, keyDelete:
		if el := h.focused(); isNumber(el) && el.Value() != "" {
			v := el.Value()
			el.SetValue(v[:len(v)-1])
		}
	case keyEsc:
		h.escape(ctx, keys)
	default:
		if el := h.focused(); isNumber(el) && b >= '0' && b <= '9' {
			el.SetValue(el.Value() + string(b))
		}
	}
	return false
}

// escape handles CSI arrow and back-tab sequences.
func (h *Host) escape(ctx context.Context, keys <-chan keyRead) {
	if next, err := h.next(ctx, keys); err != nil || next != '[' {
		return
	}
	code, err := h.next(ctx, keys)
	if err != nil {
		return
	}
	switch code {
	case 'A', 'Z':
		h.move(-1)
	case 'B':
		h.move(1)
	}
}

func (h *Host) move(delta int) {
	n := len(h.focusable)
	if n == 0 {
		return
	}
	h.focus = ((h.focus+delta)%n + n) % n
}

func (h *Host) focused() *dom.Element {
	if len(h.focusable) == 0 {
		return dom.NewElement("span")
	}
	return h.focusable[h.focus]
}

func (h *Host) draw() error {
	var sb strings.Builder
	if h.Clear {
		sb.WriteString(clearScreen)
	}
	sb.WriteString(h.Frame())
	_, err := io.WriteString(h.out, sb.String())
	return err
}

// Frame returns the current screen as text with CRLF line endings, which a
// raw-mode terminal needs.
func (h *Host) Frame() string {
	var lines []string
	if h.Banner != "" {
		lines = append(lines, strings.Split(strings.TrimRight(h.Banner, "\n"), "\n")...)
		lines = append(lines, "")
	}

	for i, el := range h.focusable {
		marker := "  "
		if i == h.focus {
			marker = "> "
		}
		lines = append(lines, marker+h.widget(el))
	}

	lines = append(lines, "", "tab/j/k move · space/enter activate · 0-9 edit length · q quit")
	if h.status != "" {
		lines = append(lines, "", h.status)
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

func (h *Host) widget(el *dom.Element) string {
	label := h.labelFor(el)
	switch {
	case el.Tag() == "button":
		return "< " + el.Text() + " >"
	case el.Type() == "checkbox":
		mark := " "
		if el.Checked() {
			mark = "x"
		}
		return fmt.Sprintf("[%s] %s", mark, label)
	case isNumber(el):
		return fmt.Sprintf("%s: [%s]", label, el.Value())
	default:
		if label == "" {
			label = "Password"
		}
		return fmt.Sprintf("%s: %s", label, el.Value())
	}
}

func (h *Host) labelFor(el *dom.Element) string {
	id := el.ID()
	if id == "" {
		return ""
	}
	var text string
	h.root.Walk(func(l *dom.Element) bool {
		if l.Tag() == "label" && l.Attr("for") == id {
			text = l.Text()
			return false
		}
		return true
	})
	return text
}

func focusables(root *dom.Element) []*dom.Element {
	var out []*dom.Element
	root.Walk(func(el *dom.Element) bool {
		if el.Tag() == "input" || el.Tag() == "button" {
			out = append(out, el)
		}
		return true
	})
	return out
}

func isNumber(el *dom.Element) bool {
	return el.Tag() == "input" && el.Type() == "number"
}
