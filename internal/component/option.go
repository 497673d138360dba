// Package component builds the reusable labeled form fields.
package component

import "github.com/vaultpass/passgen/internal/dom"

// CheckboxProps configures OptionCheckbox.
type CheckboxProps struct {
	ID        string
	Label     string
	ClassName string
}

// NumberProps configures OptionNumber.
type NumberProps struct {
	ID             string
	Label          string
	ClassName      string
	ClassNameLabel string
}

// OptionCheckbox returns a container holding a label bound to an unchecked
// checkbox with the given id.
func OptionCheckbox(p CheckboxProps) *dom.Element {
	root := dom.NewElement("div").SetClass("option-checkbox", p.ClassName)

	label := dom.NewElement("label").
		SetAttr("for", p.ID).
		SetClass("option-checkbox__label").
		SetText(p.Label)

	check := dom.NewElement("input").
		SetAttr("type", "checkbox").
		SetClass("option-checkbox__check").
		SetAttr("value", "off").
		SetAttr("id", p.ID)

	return root.Append(label, check)
}

// OptionNumber returns a container holding a label bound to an empty number
// input with the given id.
func OptionNumber(p NumberProps) *dom.Element {
	root := dom.NewElement("div").SetClass("option-number", p.ClassName)

	label := dom.NewElement("label").
		SetAttr("for", p.ID).
		SetClass("option-number__label", p.ClassNameLabel).
		SetText(p.Label)

	input := dom.NewElement("input").
		SetAttr("type", "number").
		SetAttr("id", p.ID).
		SetClass("option-number__input")

	return root.Append(label, input)
}
