package model

import (
	"strconv"
	"strings"

	"github.com/vaultpass/passgen/internal/charset"
)

// DefaultLength is used when the length field holds no number.
const DefaultLength = 12

// Sentinel is shown instead of a password when no class is selected.
const Sentinel = "Use any check."

// GenerateRequest represents a password generation request.
type GenerateRequest struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// Classes returns the selected character classes in pool order.
func (r GenerateRequest) Classes() []charset.Class {
	var out []charset.Class
	if r.Uppercase {
		out = append(out, charset.Uppercase)
	}
	if r.Lowercase {
		out = append(out, charset.Lowercase)
	}
	if r.Numbers {
		out = append(out, charset.Digits)
	}
	if r.Symbols {
		out = append(out, charset.Symbols)
	}
	return out
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string
	Length   int
}

// ParseLength reads the leading base-10 integer of raw, ignoring surrounding
// whitespace and anything after the digits. It returns fallback when raw
// starts with no digits.
func ParseLength(raw string, fallback int) int {
	s := strings.TrimSpace(raw)

	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}

	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end == -1 {
		end = len(s)
	}
	if end == 0 {
		return fallback
	}

	n, err := strconv.Atoi(sign + s[:end])
	if err != nil {
		// Out of int range: keep the sign, saturate the magnitude.
		if sign == "-" {
			return -int(^uint(0) >> 1)
		}
		return int(^uint(0) >> 1)
	}
	return n
}
