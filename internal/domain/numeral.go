package domain

// Symbols lists the characters a Roman numeral is normally written with.
// Nothing in the tool enforces it: a Numeral is an opaque string.
const Symbols = "IVXLCDM"

// Numeral is a Roman numeral token. It is never parsed or validated.
type Numeral string

func (n Numeral) String() string { return string(n) }

// Add returns the augend followed by the addend.
//
// This is concatenation, not numeric addition: Add("I", "II") is "III" but
// Add("V", "V") is "VV". Callers must not rely on anything else.
func Add(augend, addend Numeral) Numeral {
	return augend + addend
}
