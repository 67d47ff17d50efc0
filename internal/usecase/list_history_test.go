package usecase

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/romancalc/internal/domain"
)

func TestListHistory_PassesLimit(t *testing.T) {
	r := &fakeReader{entries: []domain.HistoryEntry{{ID: "a", Result: "II"}}}

	got, err := NewListHistory(r).Execute(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.lastLimit != 5 {
		t.Fatalf("expected limit 5, got %d", r.lastLimit)
	}
	if diff := cmp.Diff(r.entries, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestListHistory_NilReaderIsEmpty(t *testing.T) {
	got, err := NewListHistory(nil).Execute(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestListHistory_PropagatesError(t *testing.T) {
	readErr := errors.New("boom")
	_, err := NewListHistory(&fakeReader{err: readErr}).Execute(0)
	if !errors.Is(err, readErr) {
		t.Fatalf("expected readErr, got %v", err)
	}
}
