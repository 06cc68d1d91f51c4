package dialect

import "fmt"

// IsASCIILetter reports whether ch is in a-z or A-Z.
func IsASCIILetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// IsASCIIDigit reports whether ch is in 0-9.
func IsASCIIDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// CheckIdentifierRules verifies the lexical invariants of d over every
// rune of the Basic Multilingual Plane: no digit starts an identifier,
// every digit continues one, and every start rune is also a part rune.
func CheckIdentifierRules(d Dialect) error {
	for ch := rune(0); ch <= 0xFFFF; ch++ {
		start, part := d.IsIdentifierStart(ch), d.IsIdentifierPart(ch)
		switch {
		case IsASCIIDigit(ch) && start:
			return fmt.Errorf("dialect %s: digit %q accepted as identifier start", d.Name(), ch)
		case IsASCIIDigit(ch) && !part:
			return fmt.Errorf("dialect %s: digit %q rejected as identifier part", d.Name(), ch)
		case start && !part:
			return fmt.Errorf("dialect %s: %U starts but cannot continue an identifier", d.Name(), ch)
		}
	}
	return nil
}
