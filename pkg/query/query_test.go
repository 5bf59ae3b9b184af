package query

import (
	"reflect"
	"strings"
	"testing"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"João da Silva", "joao da silva"},
		{"  ACME   Corp.  ", "acme corp"},
		{"ação-política!", "acao-politica"},
		{"C6 Bank", "c6 bank"},
		{"", ""},
	}

	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Fatalf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestVariantsFocusBigram(t *testing.T) {
	got := Variants("quem foi Santos Dumont aviador")
	want := []string{"santos dumont", "quem foi Santos Dumont aviador", "santos dumont aviador"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Variants = %#v, want %#v", got, want)
	}
}

func TestVariantsSkipsGenericBigram(t *testing.T) {
	// "empresa" is generic, so the focus must come from the specific tokens.
	got := Variants("empresa acme")
	if len(got) == 0 {
		t.Fatal("expected variants")
	}
	if got[0] != "acme" {
		t.Fatalf("focus = %q, want %q", got[0], "acme")
	}
}

func TestVariantsSingleToken(t *testing.T) {
	// The folded focus and the original term collapse into one variant.
	got := Variants("OpenBSD")
	want := []string{"openbsd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Variants = %#v, want %#v", got, want)
	}
}

func TestVariantsEmptyTerm(t *testing.T) {
	if got := Variants("   "); got != nil {
		t.Fatalf("expected nil for blank term, got %#v", got)
	}
}

func TestVariantsDedupeIsCaseInsensitive(t *testing.T) {
	got := Variants("acme corp")
	for i, a := range got {
		for j, b := range got {
			if i != j && strings.EqualFold(a, b) {
				t.Fatalf("duplicate variants %q and %q in %#v", a, b, got)
			}
		}
	}
}

func TestVariantsMinimumLength(t *testing.T) {
	for _, v := range Variants("x acme") {
		if len(v) < 2 {
			t.Fatalf("variant %q shorter than 2 chars", v)
		}
	}
}
