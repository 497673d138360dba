package charset

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Class is a category of characters offered as an independent toggle.
type Class int

const (
	Uppercase Class = iota
	Lowercase
	Digits
	Symbols
)

var (
	classes = []Class{Uppercase, Lowercase, Digits, Symbols}

	sets = map[Class][]string{
		Uppercase: split(uppercaseChars),
		Lowercase: split(lowercaseChars),
		Digits:    split(digitChars),
		Symbols:   split(symbolChars),
	}
)

// Classes returns every class in pool order.
func Classes() []Class {
	out := make([]Class, len(classes))
	copy(out, classes)
	return out
}

func (c Class) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	}
	return "unknown"
}

// Label is the text shown next to the class toggle.
func (c Class) Label() string {
	switch c {
	case Uppercase:
		return "Contain Uppercase Letters"
	case Lowercase:
		return "Contain Lowercase Letters"
	case Digits:
		return "Contain Numbers"
	case Symbols:
		return "Contain Symbols"
	}
	return ""
}

// ElementID is the id of the checkbox bound to the class.
func (c Class) ElementID() string {
	switch c {
	case Uppercase:
		return "checkBoxUpper"
	case Lowercase:
		return "checkBoxLower"
	case Digits:
		return "checkBoxNumbers"
	case Symbols:
		return "checkBoxSymbols"
	}
	return ""
}

// Chars returns a copy of the ordered character set of c.
func (c Class) Chars() []string {
	set := sets[c]
	out := make([]string, len(set))
	copy(out, set)
	return out
}

// Pool concatenates the sets of the selected classes in Uppercase, Lowercase,
// Digits, Symbols order, regardless of argument order. It is empty iff no
// known class is selected.
func Pool(selected ...Class) []string {
	want := make(map[Class]bool, len(selected))
	for _, c := range selected {
		want[c] = true
	}

	var pool []string
	for _, c := range classes {
		if want[c] {
			pool = append(pool, sets[c]...)
		}
	}
	return pool
}

func split(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
