package domain

import (
	"time"
	"unicode/utf8"
)

// Sum is the outcome of a single Add call.
type Sum struct {
	Augend Numeral `json:"augend"`
	Addend Numeral `json:"addend"`
	Result Numeral `json:"result"`
}

func NewSum(augend, addend Numeral) Sum {
	return Sum{
		Augend: augend,
		Addend: addend,
		Result: Add(augend, addend),
	}
}

// Raw returns the exact bytes of s when any field is not valid UTF-8, and nil
// otherwise. JSON strings replace invalid bytes with U+FFFD, so encoders store
// this alongside the Sum to keep operands byte-exact.
func (s Sum) Raw() *RawSum {
	if utf8.ValidString(string(s.Augend)) &&
		utf8.ValidString(string(s.Addend)) &&
		utf8.ValidString(string(s.Result)) {
		return nil
	}
	return &RawSum{
		Augend: []byte(s.Augend),
		Addend: []byte(s.Addend),
		Result: []byte(s.Result),
	}
}

// RawSum is a Sum as bytes (base64 in JSON).
type RawSum struct {
	Augend []byte `json:"augend"`
	Addend []byte `json:"addend"`
	Result []byte `json:"result"`
}

func (r *RawSum) Sum() Sum {
	return Sum{
		Augend: Numeral(r.Augend),
		Addend: Numeral(r.Addend),
		Result: Numeral(r.Result),
	}
}

// SumRecord is a Sum as kept in the history. Raw is only set on disk.
type SumRecord struct {
	ID         string    `json:"id"`
	RecordedAt time.Time `json:"recorded_at"`
	Sum        Sum       `json:"sum"`
	Raw        *RawSum   `json:"raw,omitempty"`
}

// HistoryEntry is a single line of the history index.
type HistoryEntry struct {
	ID         string    `json:"id"`
	File       string    `json:"file"`
	Augend     Numeral   `json:"augend"`
	Addend     Numeral   `json:"addend"`
	Result     Numeral   `json:"result"`
	RecordedAt time.Time `json:"recorded_at"`
	Raw        *RawSum   `json:"raw,omitempty"`
}

func (e HistoryEntry) Sum() Sum {
	return Sum{Augend: e.Augend, Addend: e.Addend, Result: e.Result}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
