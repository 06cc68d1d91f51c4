package dialect

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// letters is a minimal dialect used to exercise the helpers without
// importing concrete dialects.
type letters struct {
	name   string
	quotes string
}

func (l letters) Name() string { return l.name }

func (l letters) IsDelimitedIdentifierStart(ch rune) bool {
	for _, q := range l.quotes {
		if q == ch {
			return true
		}
	}
	return false
}

func (l letters) IsIdentifierStart(ch rune) bool { return IsASCIILetter(ch) || ch == '_' }

func (l letters) IsIdentifierPart(ch rune) bool {
	return l.IsIdentifierStart(ch) || IsASCIIDigit(ch)
}

// digitStart violates the start rules on purpose.
type digitStart struct{ letters }

func (digitStart) IsIdentifierStart(ch rune) bool { return unicode.IsLetter(ch) || IsASCIIDigit(ch) }

// narrowPart accepts '#' as a start rune but not as a part rune.
type narrowPart struct{ letters }

func (narrowPart) IsIdentifierStart(ch rune) bool { return IsASCIILetter(ch) || ch == '#' }

func TestClosingQuote(t *testing.T) {
	assert.Equal(t, ']', ClosingQuote('['))
	assert.Equal(t, '`', ClosingQuote('`'))
	assert.Equal(t, '"', ClosingQuote('"'))
}

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		quotes string
		ident  string
		want   string
	}{
		{"double quote", `"`, "my col", `"my col"`},
		{"escape double quote", `"`, `a"b`, `"a""b"`},
		{"backtick", "`", "my col", "`my col`"},
		{"escape backtick", "`", "a`b", "`a``b`"},
		{"bracket", "[", "my col", "[my col]"},
		{"escape bracket", "[", "a]b", "[a]]b]"},
		{"prefers double quote", "`\"", "x", `"x"`},
		{"no delimiter", "", "x y", "x y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := letters{name: "test", quotes: tt.quotes}
			assert.Equal(t, tt.want, QuoteIdentifier(d, tt.ident))
		})
	}
}

func TestIsBareIdentifier(t *testing.T) {
	d := letters{name: "test"}
	assert.True(t, IsBareIdentifier(d, "users"))
	assert.True(t, IsBareIdentifier(d, "_t1"))
	assert.False(t, IsBareIdentifier(d, "1t"))
	assert.False(t, IsBareIdentifier(d, "my col"))
	assert.False(t, IsBareIdentifier(d, ""))
}

func TestCheckIdentifierRules(t *testing.T) {
	require.NoError(t, CheckIdentifierRules(letters{name: "ok"}))

	err := CheckIdentifierRules(digitStart{letters{name: "digits"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digit")

	err = CheckIdentifierRules(narrowPart{letters{name: "narrow"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "U+0023")
}

func TestRegistry(t *testing.T) {
	Register(letters{name: "Registry_Test"})

	d, ok := Get("registry_test")
	require.True(t, ok)
	assert.Equal(t, "Registry_Test", d.Name())

	d, ok = Get("REGISTRY_TEST")
	require.True(t, ok)
	assert.NotNil(t, d)

	assert.Contains(t, List(), "registry_test")
	assert.False(t, Intercepts(d))
}

func TestLookup(t *testing.T) {
	Register(letters{name: "lookup_test"})

	d, err := Lookup("lookup_test")
	require.NoError(t, err)
	assert.Equal(t, "lookup_test", d.Name())

	_, err = Lookup("")
	require.ErrorIs(t, err, ErrDialectRequired)

	_, err = Lookup("no_such_dialect")
	require.ErrorIs(t, err, ErrUnknownDialect)
	assert.Contains(t, err.Error(), "lookup_test")
}
