package model

import (
	"reflect"
	"testing"

	"github.com/vaultpass/passgen/internal/charset"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "15", want: 15},
		{raw: "  20 ", want: 20},
		{raw: "12abc", want: 12},
		{raw: "+7", want: 7},
		{raw: "-4", want: -4},
		{raw: "0", want: 0},
		{raw: "", want: DefaultLength},
		{raw: "abc", want: DefaultLength},
		{raw: "-", want: DefaultLength},
		{raw: "1.9", want: 1},
		{raw: "99999999999999999999999", want: int(^uint(0) >> 1)},
	}

	for _, tt := range tests {
		if got := ParseLength(tt.raw, DefaultLength); got != tt.want {
			t.Errorf("ParseLength(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestGenerateRequestClasses(t *testing.T) {
	req := GenerateRequest{Symbols: true, Uppercase: true}
	want := []charset.Class{charset.Uppercase, charset.Symbols}
	if got := req.Classes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Classes() = %v, want %v", got, want)
	}

	if got := (GenerateRequest{}).Classes(); len(got) != 0 {
		t.Errorf("Classes() on empty request = %v, want none", got)
	}
}
