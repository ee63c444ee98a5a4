package token

import (
	"errors"
	"reflect"
	"testing"
)

func TestLexMarkers(t *testing.T) {
	tests := []struct {
		src  string
		want []Token
	}{
		{":", []Token{Sep()}},
		{"::", []Token{Reset()}},
		{":ext", []Token{Ext()}},
		{":prefix", []Token{Keyword("prefix")}},
		{":prefix \"SPC\"", []Token{Keyword("prefix"), Value("SPC")}},
		{": ::", []Token{Sep(), Reset()}},
	}

	for _, tt := range tests {
		got, err := Lex(tt.src)
		if err != nil {
			t.Errorf("Lex(%q) error = %v", tt.src, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lex(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestLexValues(t *testing.T) {
	tests := []struct {
		src  string
		want any
	}{
		{`"g d"`, "g d"},
		{`"a\nb"`, "a\nb"},
		{"leader-map", Symbol("leader-map")},
		{"'cmd-a", Symbol("cmd-a")},
		{"'true", Symbol("true")},
		{"42", 42},
		{"1.5", 1.5},
		{"true", true},
		{"false", false},
		{`("f f" file.find)`, List{"f f", Symbol("file.find")}},
		{`'("f f" file.find)`, List{"f f", Symbol("file.find")}},
		{`[C-x C-s]`, Vector{Symbol("C-x"), Symbol("C-s")}},
		{`(a (b c))`, List{Symbol("a"), List{Symbol("b"), Symbol("c")}}},
	}

	for _, tt := range tests {
		got, err := Lex(tt.src)
		if err != nil {
			t.Errorf("Lex(%q) error = %v", tt.src, err)
			continue
		}
		if len(got) != 1 {
			t.Errorf("Lex(%q) produced %d tokens, want 1", tt.src, len(got))
			continue
		}
		if got[0].Kind != KindValue {
			t.Errorf("Lex(%q) kind = %v, want KindValue", tt.src, got[0].Kind)
		}
		if !reflect.DeepEqual(got[0].Value, tt.want) {
			t.Errorf("Lex(%q) value = %#v, want %#v", tt.src, got[0].Value, tt.want)
		}
	}
}

func TestLexStream(t *testing.T) {
	src := `leader-map : "g d" goto.definition :: other "x" del # trailing note`
	want := []Token{
		Value(Symbol("leader-map")),
		Sep(),
		Value("g d"),
		Value(Symbol("goto.definition")),
		Reset(),
		Value(Symbol("other")),
		Value("x"),
		Value(Symbol("del")),
	}

	got, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lex() = %v, want %v", got, want)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"unterminated string", `"abc`, ErrUnterminatedString},
		{"unterminated escape", `"abc\`, ErrUnterminatedString},
		{"open list", `(a b`, ErrUnmatchedDelimiter},
		{"stray close", `a )`, ErrUnmatchedDelimiter},
		{"stray bracket", `]`, ErrUnmatchedDelimiter},
		{"triple colon", `:::`, ErrMalformedMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Lex(tt.src); !errors.Is(err, tt.wantErr) {
				t.Errorf("Lex(%q) error = %v, want %v", tt.src, err, tt.wantErr)
			}
		})
	}
}

func TestPositional(t *testing.T) {
	tests := []struct {
		name     string
		tok      Token
		want     bool
		wantDwim bool
	}{
		{"symbol", Value(Symbol("leader-map")), true, true},
		{"list", Value(List{Symbol("a")}), true, true},
		{"string", Value("g d"), true, false},
		{"vector", Value(Vector{Symbol("C-x")}), true, false},
		{"number", Value(42), true, false},
		{"nil value", Value(nil), false, false},
		{"keyword", Keyword("prefix"), false, false},
		{"separator", Sep(), false, false},
		{"reset", Reset(), false, false},
		{"ext marker", Ext(), false, false},
	}

	for _, tt := range tests {
		if got := Positional(tt.tok, false); got != tt.want {
			t.Errorf("Positional(%s, false) = %v, want %v", tt.name, got, tt.want)
		}
		if got := Positional(tt.tok, true); got != tt.wantDwim {
			t.Errorf("Positional(%s, true) = %v, want %v", tt.name, got, tt.wantDwim)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Keyword("prefix"), ":prefix"},
		{Sep(), ":"},
		{Reset(), "::"},
		{Ext(), ":ext"},
		{Value("g d"), `"g d"`},
		{Value(Symbol("leader-map")), "leader-map"},
		{Value(42), "42"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
