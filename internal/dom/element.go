// Package dom is a headless element tree with the small slice of browser
// behaviour the widgets rely on: ids and class lists, input state, click
// dispatch with native checkbox and label activation, removable listeners,
// text selection and HTML serialisation.
//
// A tree is owned by a single goroutine. Nothing in this package locks.
package dom

import (
	"strings"
)

type attr struct {
	key, val string
}

// Element is a node of the tree.
type Element struct {
	tag      string
	attrs    []attr
	classes  []string
	text     string
	value    string
	checked  bool
	selStart int
	selEnd   int

	parent   *Element
	children []*Element

	listeners map[string][]listener
	nextBind  uint64
}

// NewElement creates a detached element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{tag: strings.ToLower(tag)}
}

func (e *Element) Tag() string { return e.tag }

// ID returns the id attribute.
func (e *Element) ID() string { return e.Attr("id") }

// Type returns the type attribute of an input or button.
func (e *Element) Type() string { return e.Attr("type") }

// ReadOnly reports whether the readonly attribute is present.
func (e *Element) ReadOnly() bool { return e.HasAttr("readonly") }

// Attr returns the value of the named attribute, or "" when it is absent.
func (e *Element) Attr(key string) string {
	for _, a := range e.attrs {
		if a.key == key {
			return a.val
		}
	}
	return ""
}

func (e *Element) HasAttr(key string) bool {
	for _, a := range e.attrs {
		if a.key == key {
			return true
		}
	}
	return false
}

// SetAttr sets an attribute, keeping first-insertion order for rendering.
// The class attribute is routed to the class list.
func (e *Element) SetAttr(key, val string) *Element {
	if key == "class" {
		return e.SetClass(val)
	}
	for i := range e.attrs {
		if e.attrs[i].key == key {
			e.attrs[i].val = val
			return e
		}
	}
	e.attrs = append(e.attrs, attr{key: key, val: val})
	return e
}

func (e *Element) RemoveAttr(key string) {
	for i, a := range e.attrs {
		if a.key == key {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// SetClass replaces the class list. Each argument may hold several
// space-separated tokens; empty tokens are dropped.
func (e *Element) SetClass(tokens ...string) *Element {
	e.classes = e.classes[:0]
	for _, t := range tokens {
		e.classes = append(e.classes, strings.Fields(t)...)
	}
	return e
}

// ClassName returns the class list joined by single spaces.
func (e *Element) ClassName() string { return strings.Join(e.classes, " ") }

// ClassList returns a copy of the class tokens.
func (e *Element) ClassList() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

func (e *Element) HasClass(token string) bool {
	for _, c := range e.classes {
		if c == token {
			return true
		}
	}
	return false
}

// Text returns the element's own text content, excluding children.
func (e *Element) Text() string { return e.text }

func (e *Element) SetText(s string) *Element {
	e.text = s
	return e
}

// Value is the live value of an input, distinct from its value attribute.
func (e *Element) Value() string { return e.value }

// SetValue replaces the live value and collapses the selection.
func (e *Element) SetValue(v string) {
	e.value = v
	e.selStart, e.selEnd = len(v), len(v)
}

func (e *Element) Checked() bool { return e.checked }

func (e *Element) SetChecked(v bool) { e.checked = v }

// Select selects the whole value.
func (e *Element) Select() {
	e.SetSelectionRange(0, len(e.value))
}

// SetSelectionRange selects value[start:end]. Bounds are clamped to the value.
func (e *Element) SetSelectionRange(start, end int) {
	n := len(e.value)
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	e.selStart, e.selEnd = start, end
}

// Selection returns the current selection bounds.
func (e *Element) Selection() (start, end int) { return e.selStart, e.selEnd }

// SelectedText returns the selected part of the value.
func (e *Element) SelectedText() string { return e.value[e.selStart:e.selEnd] }

// Append adds children in order, detaching each from any previous parent.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Remove()
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

// Remove detaches e from its parent.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == e {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// Root returns the topmost ancestor of e, or e itself when detached.
func (e *Element) Root() *Element {
	r := e
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Walk visits e and its descendants in document order until fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// ByID returns the first element in e's subtree whose id is id.
func (e *Element) ByID(id string) *Element {
	return e.find(func(el *Element) bool { return el.ID() == id })
}

// ByClass returns the first element in e's subtree carrying the class token.
func (e *Element) ByClass(token string) *Element {
	return e.find(func(el *Element) bool { return el.HasClass(token) })
}

// ByTag returns every element in e's subtree with the given tag.
func (e *Element) ByTag(tag string) []*Element {
	var out []*Element
	e.Walk(func(el *Element) bool {
		if el.tag == tag {
			out = append(out, el)
		}
		return true
	})
	return out
}

func (e *Element) find(match func(*Element) bool) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if match(el) {
			found = el
			return false
		}
		return true
	})
	return found
}
