// Package page composes the password generator view and owns its two
// behaviours: generating into the output field and copying it out.
package page

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vaultpass/passgen/internal/charset"
	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/component"
	"github.com/vaultpass/passgen/internal/dom"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/random"
	"github.com/vaultpass/passgen/internal/service"
)

const (
	OutputID   = "inputText"
	LengthID   = "inputTextLength"
	GenerateID = "btnGeneratePassword"

	copiedPrefix = "Copied the text: "
)

// Disposable releases the event bindings a view installed.
type Disposable interface {
	Teardown()
}

// View is a mountable widget.
type View interface {
	Disposable
	Root() *dom.Element
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }

// Deps are the collaborators of a PasswordGenerator. Zero values select
// defaults: a math/rand picker, no clipboard, a discarded notification,
// model.DefaultLength and no length limit.
type Deps struct {
	Picker        service.IndexPicker
	Clipboard     clipboard.Writer
	Notifier      Notifier
	DefaultLength int
	MaxLength     int
	Logger        *slog.Logger
}

// PasswordGenerator is the generator card. It keeps direct references to the
// elements it builds and never looks outside its own subtree.
type PasswordGenerator struct {
	root     *dom.Element
	output   *dom.Element
	length   *dom.Element
	checks   map[charset.Class]*dom.Element
	generate *dom.Element

	gen           *service.GeneratorService
	clip          clipboard.Writer
	notifier      Notifier
	defaultLength int
	logger        *slog.Logger

	bindings []dom.Binding
}

var _ View = (*PasswordGenerator)(nil)

// New composes the view and binds the generate button and the output field.
func New(deps Deps) *PasswordGenerator {
	if deps.Picker == nil {
		deps.Picker = random.Default()
	}
	if deps.Notifier == nil {
		deps.Notifier = NotifierFunc(func(string) {})
	}
	if deps.DefaultLength <= 0 {
		deps.DefaultLength = model.DefaultLength
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	p := &PasswordGenerator{
		checks:        make(map[charset.Class]*dom.Element, 4),
		gen:           service.NewGeneratorService(deps.Picker, deps.MaxLength),
		clip:          deps.Clipboard,
		notifier:      deps.Notifier,
		defaultLength: deps.DefaultLength,
		logger:        deps.Logger,
	}
	p.compose()

	p.bindings = append(p.bindings,
		p.output.AddEventListener("click", func(*dom.Event) { p.CopyOutput() }),
		p.generate.AddEventListener("click", func(*dom.Event) { p.Generate() }),
	)
	return p
}

func (p *PasswordGenerator) compose() {
	p.root = dom.NewElement("main").SetClass("password-generator-page")

	p.output = dom.NewElement("input").
		SetAttr("type", "text").
		SetAttr("id", OutputID).
		SetClass("card__form-input").
		SetAttr("readonly", "")
	form := dom.NewElement("form").SetClass("card__form").Append(p.output)

	lengthField := component.OptionNumber(component.NumberProps{
		ID:             LengthID,
		Label:          "Password Length",
		ClassNameLabel: "card__options-label-password",
	})
	p.length = lengthField.ByID(LengthID)

	options := dom.NewElement("div").SetClass("card__options").Append(lengthField)
	for _, c := range charset.Classes() {
		field := component.OptionCheckbox(component.CheckboxProps{ID: c.ElementID(), Label: c.Label()})
		p.checks[c] = field.ByID(c.ElementID())
		options.Append(field)
	}

	p.generate = dom.NewElement("button").
		SetAttr("type", "button").
		SetAttr("id", GenerateID).
		SetAttr("aria-label", "generate password").
		SetClass("card__btn-generate-password").
		SetText("Generate Password")
	buttons := dom.NewElement("div").SetClass("card__btns").Append(p.generate)

	card := dom.NewElement("article").SetClass("card").Append(form, options, buttons)
	p.root.Append(dom.NewElement("section").SetClass("card-wrapper").Append(card))
}

// Root returns the element to mount into a host container.
func (p *PasswordGenerator) Root() *dom.Element { return p.root }

// Output returns the read-only field the result is written to.
func (p *PasswordGenerator) Output() *dom.Element { return p.output }

// LengthInput returns the password length field.
func (p *PasswordGenerator) LengthInput() *dom.Element { return p.length }

// Checkbox returns the toggle bound to c, or nil for an unknown class.
func (p *PasswordGenerator) Checkbox(c charset.Class) *dom.Element { return p.checks[c] }

// GenerateButton returns the trigger bound to Generate.
func (p *PasswordGenerator) GenerateButton() *dom.Element { return p.generate }

// Generate reads the form, builds a password and writes it, or the sentinel
// message when no class is checked, to the output field.
func (p *PasswordGenerator) Generate() {
	req := model.GenerateRequest{
		Length:    model.ParseLength(p.length.Value(), p.defaultLength),
		Uppercase: p.checks[charset.Uppercase].Checked(),
		Lowercase: p.checks[charset.Lowercase].Checked(),
		Numbers:   p.checks[charset.Digits].Checked(),
		Symbols:   p.checks[charset.Symbols].Checked(),
	}

	resp, err := p.gen.Generate(req)
	switch {
	case errors.Is(err, service.ErrNoCharacterTypes):
		p.output.SetValue(model.Sentinel)
		return
	case errors.Is(err, service.ErrLengthTooLong):
		p.output.SetValue(fmt.Sprintf("Use a length up to %d.", p.gen.MaxLength()))
		return
	case err != nil:
		p.logger.Error("password generation failed", "error", err)
		return
	}

	p.output.SetValue(resp.Password)
}

// CopyOutput selects the output, hands its value to the clipboard without
// waiting for the write, and notifies the user. Clipboard failures are not
// observed.
func (p *PasswordGenerator) CopyOutput() {
	p.output.Select()
	p.output.SetSelectionRange(0, 99999)

	value := p.output.Value()
	if p.clip != nil {
		go func(w clipboard.Writer) { _ = w.WriteText(value) }(p.clip)
	}

	p.notifier.Notify(copiedPrefix + value)
}

// Teardown removes the generate and copy bindings. It is safe to call more
// than once.
func (p *PasswordGenerator) Teardown() {
	for _, b := range p.bindings {
		b.Remove()
	}
	p.bindings = nil
}
