package dom

// Event is delivered to listeners. Events do not bubble.
type Event struct {
	Type   string
	Target *Element
}

type listener struct {
	id uint64
	fn func(*Event)
}

// Binding identifies a listener installed with AddEventListener.
type Binding struct {
	el  *Element
	typ string
	id  uint64
}

// AddEventListener installs fn for events of the given type on e.
func (e *Element) AddEventListener(typ string, fn func(*Event)) Binding {
	if e.listeners == nil {
		e.listeners = make(map[string][]listener)
	}
	e.nextBind++
	e.listeners[typ] = append(e.listeners[typ], listener{id: e.nextBind, fn: fn})
	return Binding{el: e, typ: typ, id: e.nextBind}
}

// RemoveEventListener uninstalls the listener behind b. Removing a listener
// twice, or a zero Binding, is a no-op.
func (e *Element) RemoveEventListener(b Binding) {
	if b.el != e {
		return
	}
	ls := e.listeners[b.typ]
	for i, l := range ls {
		if l.id == b.id {
			e.listeners[b.typ] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Remove uninstalls the listener from the element it was added to.
func (b Binding) Remove() {
	if b.el != nil {
		b.el.RemoveEventListener(b)
	}
}

// ListenerCount reports how many listeners of typ are installed on e.
func (e *Element) ListenerCount(typ string) int {
	return len(e.listeners[typ])
}

// Dispatch delivers an event of typ to e's listeners in installation order.
// Listeners added or removed during dispatch take effect on the next event.
func (e *Element) Dispatch(typ string) {
	ls := e.listeners[typ]
	if len(ls) == 0 {
		return
	}
	snapshot := make([]listener, len(ls))
	copy(snapshot, ls)

	ev := &Event{Type: typ, Target: e}
	for _, l := range snapshot {
		l.fn(ev)
	}
}

// Click simulates a user click. A checkbox toggles before listeners run; a
// label with a for attribute then forwards the click to its control, looked
// up within the label's own tree.
func (e *Element) Click() {
	if e.HasAttr("disabled") {
		return
	}
	if e.tag == "input" && e.Type() == "checkbox" {
		e.checked = !e.checked
	}

	e.Dispatch("click")

	if e.tag == "label" {
		if id := e.Attr("for"); id != "" {
			if control := e.Root().ByID(id); control != nil && control != e && control.tag != "label" {
				control.Click()
			}
		}
	}
}
