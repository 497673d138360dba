package page

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/vaultpass/passgen/internal/charset"
	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/dom"
	"github.com/vaultpass/passgen/internal/random"
)

type recorder struct {
	msgs []string
}

func (r *recorder) Notify(msg string) { r.msgs = append(r.msgs, msg) }

func render(t *testing.T, deps Deps) (*PasswordGenerator, *dom.Element) {
	t.Helper()
	p := New(deps)
	body, app := NewDocument()
	if err := Mount(app, p); err != nil {
		t.Fatalf("Mount() unexpected error: %v", err)
	}
	t.Cleanup(p.Teardown)
	return p, body
}

func TestRender(t *testing.T) {
	p, body := render(t, Deps{})

	root := p.Root()
	if root.Tag() != "main" || root.ClassName() != "password-generator-page" {
		t.Errorf("root = <%s class=%q>", root.Tag(), root.ClassName())
	}
	if root.Parent() != body.ByID(AppID) {
		t.Error("view should be mounted inside the app container")
	}

	out := body.ByID(OutputID)
	if out == nil || !out.ReadOnly() || !out.HasClass("card__form-input") {
		t.Fatalf("output field missing or not readonly: %v", out)
	}

	btn := body.ByID(GenerateID)
	if btn == nil || btn.Attr("aria-label") != "generate password" || btn.Text() != "Generate Password" {
		t.Fatalf("generate button missing: %v", btn)
	}

	var labels []string
	for _, l := range body.ByTag("label") {
		labels = append(labels, l.Text())
	}
	want := "Password Length|Contain Uppercase Letters|Contain Lowercase Letters|Contain Numbers|Contain Symbols"
	if got := strings.Join(labels, "|"); got != want {
		t.Errorf("labels = %s, want %s", got, want)
	}

	for _, c := range charset.Classes() {
		if p.Checkbox(c) != body.ByID(c.ElementID()) {
			t.Errorf("checkbox reference for %s does not match the tree", c)
		}
	}
	if p.LengthInput() != body.ByID(LengthID) {
		t.Error("length reference does not match the tree")
	}
}

func TestGenerate_NoSelection(t *testing.T) {
	for _, length := range []string{"", "10", "abc", "-1", "999999999999"} {
		p, _ := render(t, Deps{})
		p.LengthInput().SetValue(length)
		p.GenerateButton().Click()
		if got := p.Output().Value(); got != "Use any check." {
			t.Errorf("length %q: output = %q, want sentinel", length, got)
		}
	}
}

func TestGenerate_SingleClass(t *testing.T) {
	tests := []struct {
		class   charset.Class
		pattern string
	}{
		{charset.Uppercase, `^[A-Z]{10}$`},
		{charset.Lowercase, `^[a-z]{10}$`},
		{charset.Digits, `^[0-9]{10}$`},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			p, _ := render(t, Deps{})
			p.LengthInput().SetValue("10")
			p.Checkbox(tt.class).Click()
			p.GenerateButton().Click()

			if got := p.Output().Value(); !regexp.MustCompile(tt.pattern).MatchString(got) {
				t.Errorf("output %q does not match %s", got, tt.pattern)
			}
		})
	}
}

func TestGenerate_MixedClasses(t *testing.T) {
	p, body := render(t, Deps{})
	p.LengthInput().SetValue("15")
	body.ByID("checkBoxUpper").Click()
	body.ByID("checkBoxLower").Click()
	body.ByID("checkBoxNumbers").Click()
	p.GenerateButton().Click()

	got := p.Output().Value()
	if len(got) != 15 || !regexp.MustCompile(`^[A-Za-z0-9]+$`).MatchString(got) {
		t.Errorf("output %q, want 15 alphanumerics", got)
	}
}

func TestGenerate_AllClassesUnion(t *testing.T) {
	p, _ := render(t, Deps{})
	p.LengthInput().SetValue("64")
	for _, c := range charset.Classes() {
		p.Checkbox(c).Click()
	}
	p.Generate()

	pool := strings.Join(charset.Pool(charset.Classes()...), "")
	got := p.Output().Value()
	if len(got) != 64 {
		t.Fatalf("length = %d, want 64", len(got))
	}
	for _, ch := range got {
		if !strings.ContainsRune(pool, ch) {
			t.Errorf("unexpected character %q", ch)
		}
	}
}

func TestGenerate_StubbedPicker(t *testing.T) {
	p, _ := render(t, Deps{Picker: random.New(func() float64 { return 0 })})
	p.LengthInput().SetValue("3")
	p.Checkbox(charset.Uppercase).Click()
	p.GenerateButton().Click()

	if got := p.Output().Value(); got != "AAA" {
		t.Errorf("output = %q, want AAA", got)
	}
}

func TestGenerate_DefaultLength(t *testing.T) {
	p, _ := render(t, Deps{})
	p.Checkbox(charset.Lowercase).Click()
	p.Generate()
	if got := p.Output().Value(); len(got) != 12 {
		t.Errorf("empty length field: output %q, want 12 characters", got)
	}

	p, _ = render(t, Deps{DefaultLength: 20})
	p.Checkbox(charset.Lowercase).Click()
	p.LengthInput().SetValue("not a number")
	p.Generate()
	if got := p.Output().Value(); len(got) != 20 {
		t.Errorf("configured default: output %q, want 20 characters", got)
	}
}

func TestGenerate_LongLengthWithDefaults(t *testing.T) {
	p, _ := render(t, Deps{})
	p.Checkbox(charset.Uppercase).Click()
	p.LengthInput().SetValue("5000")
	p.GenerateButton().Click()

	if got := p.Output().Value(); !regexp.MustCompile(`^[A-Z]{5000}$`).MatchString(got) {
		t.Errorf("expected 5000 uppercase characters, got %d characters", len(got))
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	p, _ := render(t, Deps{MaxLength: 32})
	p.Checkbox(charset.Digits).Click()
	p.LengthInput().SetValue("33")
	p.Generate()
	if got := p.Output().Value(); got != "Use a length up to 32." {
		t.Errorf("output = %q", got)
	}
}

func TestGenerate_ReplacesPreviousValue(t *testing.T) {
	p, _ := render(t, Deps{})
	p.LengthInput().SetValue("5")
	p.Checkbox(charset.Digits).Click()
	p.Generate()
	first := p.Output().Value()

	p.Checkbox(charset.Digits).Click()
	p.Generate()
	if got := p.Output().Value(); got != "Use any check." || first == got {
		t.Errorf("output = %q after %q", got, first)
	}
}

func TestCopyOutput(t *testing.T) {
	clip := clipboard.NewMemory(nil)
	notes := &recorder{}
	p, _ := render(t, Deps{Clipboard: clip, Notifier: notes, Picker: random.New(func() float64 { return 0 })})

	p.LengthInput().SetValue("4")
	p.Checkbox(charset.Digits).Click()
	p.GenerateButton().Click()
	p.Output().Click()

	select {
	case <-clip.Written():
	case <-time.After(time.Second):
		t.Fatal("clipboard write never happened")
	}
	if clip.Text() != "0000" {
		t.Errorf("clipboard = %q, want 0000", clip.Text())
	}
	if len(notes.msgs) != 1 || notes.msgs[0] != "Copied the text: 0000" {
		t.Errorf("notifications = %q", notes.msgs)
	}
	if got := p.Output().SelectedText(); got != "0000" {
		t.Errorf("selection = %q, want the whole value", got)
	}
}

func TestCopyOutput_ClipboardFailureStillNotifies(t *testing.T) {
	clip := clipboard.NewMemory(errors.New("permission denied"))
	notes := &recorder{}
	p, _ := render(t, Deps{Clipboard: clip, Notifier: notes})

	p.Output().SetValue("abc")
	p.CopyOutput()

	if len(notes.msgs) != 1 || notes.msgs[0] != "Copied the text: abc" {
		t.Errorf("notifications = %q", notes.msgs)
	}
	<-clip.Written()
	if clip.Writes() != 1 {
		t.Errorf("writes = %d, want 1", clip.Writes())
	}
}

func TestCopyOutput_EmptyOutput(t *testing.T) {
	notes := &recorder{}
	p, _ := render(t, Deps{Notifier: notes})
	p.Output().Click()
	if len(notes.msgs) != 1 || notes.msgs[0] != "Copied the text: " {
		t.Errorf("notifications = %q", notes.msgs)
	}
}

func TestTeardown(t *testing.T) {
	notes := &recorder{}
	p, _ := render(t, Deps{Notifier: notes})

	p.Teardown()
	p.Teardown()

	p.Checkbox(charset.Uppercase).Click()
	p.GenerateButton().Click()
	p.Output().Click()

	if got := p.Output().Value(); got != "" {
		t.Errorf("output changed after teardown: %q", got)
	}
	if len(notes.msgs) != 0 {
		t.Errorf("notified after teardown: %q", notes.msgs)
	}
	if p.GenerateButton().ListenerCount("click") != 0 || p.Output().ListenerCount("click") != 0 {
		t.Error("listeners still installed after teardown")
	}

	var d Disposable = p
	d.Teardown()
}

func TestIndependentInstances(t *testing.T) {
	a, _ := render(t, Deps{})
	b, _ := render(t, Deps{})

	a.Checkbox(charset.Uppercase).Click()
	a.LengthInput().SetValue("6")
	b.GenerateButton().Click()
	a.GenerateButton().Click()

	if b.Output().Value() != "Use any check." {
		t.Errorf("instance b output = %q", b.Output().Value())
	}
	if len(a.Output().Value()) != 6 {
		t.Errorf("instance a output = %q", a.Output().Value())
	}
}

func TestMountWithoutContainer(t *testing.T) {
	p := New(Deps{})
	defer p.Teardown()
	if err := Mount(nil, p); !errors.Is(err, ErrNoContainer) {
		t.Errorf("expected ErrNoContainer, got %v", err)
	}
}
