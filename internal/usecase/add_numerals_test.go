package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/romancalc/internal/domain"
)

func TestAddNumerals_ComputesConcatenation(t *testing.T) {
	cases := []struct {
		augend, addend domain.Numeral
		want           domain.Numeral
	}{
		{"I", "I", "II"},
		{"I", "II", "III"},
		{"X", "V", "XV"},
	}

	uc := NewAddNumerals(nil)
	for _, c := range cases {
		sum, id, err := uc.Execute(context.Background(), c.augend, c.addend)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "" {
			t.Fatalf("expected no id without recorder, got %q", id)
		}
		if sum.Result != c.want {
			t.Errorf("Execute(%q, %q) = %q, want %q", c.augend, c.addend, sum.Result, c.want)
		}
	}
}

func TestAddNumerals_RecordsSum(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("x", 3600))
	rec := &fakeRecorder{}
	uc := NewAddNumerals(rec,
		WithClock(func() time.Time { return at }),
		WithIDGenerator(func() string { return "r1" }),
	)

	sum, id, err := uc.Execute(context.Background(), "I", "II")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "hist-r1" {
		t.Fatalf("expected recorder id, got %q", id)
	}

	want := []domain.SumRecord{{
		ID:         "r1",
		RecordedAt: at.UTC(),
		Sum:        domain.Sum{Augend: "I", Addend: "II", Result: "III"},
	}}
	if diff := cmp.Diff(want, rec.saved); diff != "" {
		t.Fatalf("saved records mismatch (-want +got):\n%s", diff)
	}
	if sum != want[0].Sum {
		t.Fatalf("expected returned sum to match recorded sum, got %+v", sum)
	}
}

func TestAddNumerals_DefaultIDsAreUnique(t *testing.T) {
	rec := &fakeRecorder{}
	uc := NewAddNumerals(rec)

	for i := 0; i < 2; i++ {
		if _, _, err := uc.Execute(context.Background(), "I", "I"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(rec.saved) != 2 {
		t.Fatalf("expected 2 records, got %d", len(rec.saved))
	}
	if rec.saved[0].ID == "" || rec.saved[0].ID == rec.saved[1].ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", rec.saved[0].ID, rec.saved[1].ID)
	}
}

func TestAddNumerals_RecorderErrorKeepsSum(t *testing.T) {
	saveErr := errors.New("disk full")
	uc := NewAddNumerals(errRecorder{err: saveErr})

	sum, id, err := uc.Execute(context.Background(), "V", "I")
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected saveErr, got %v", err)
	}
	if !errors.Is(err, ErrNotRecorded) {
		t.Fatalf("expected ErrNotRecorded, got %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}
	if sum.Result != "VI" {
		t.Fatalf("expected computed sum despite error, got %q", sum.Result)
	}
}

func TestAddNumerals_ContextCancelled(t *testing.T) {
	rec := &fakeRecorder{}
	uc := NewAddNumerals(rec)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := uc.Execute(ctx, "I", "I")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(rec.saved) != 0 {
		t.Fatalf("expected nothing recorded, got %d", len(rec.saved))
	}
	if errors.Is(err, ErrNotRecorded) {
		t.Fatal("a cancelled add computed nothing and must not report ErrNotRecorded")
	}
}
