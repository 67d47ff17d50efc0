package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/romancalc/internal/domain"
	"github.com/aalvaropc/romancalc/internal/ports"
)

// ErrNotRecorded marks an error where the sum was computed but could not be
// saved to history.
var ErrNotRecorded = errors.New("sum not recorded")

type AddNumerals struct {
	recorder ports.SumRecorder
	log      *slog.Logger
	now      func() time.Time
	newID    func() string
}

type AddOption func(*AddNumerals)

func WithLogger(log *slog.Logger) AddOption {
	return func(uc *AddNumerals) {
		if log != nil {
			uc.log = log
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) AddOption {
	return func(uc *AddNumerals) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithIDGenerator replaces the random record id source.
func WithIDGenerator(newID func() string) AddOption {
	return func(uc *AddNumerals) {
		if newID != nil {
			uc.newID = newID
		}
	}
}

// NewAddNumerals builds the use case. A nil recorder disables history.
func NewAddNumerals(recorder ports.SumRecorder, opts ...AddOption) *AddNumerals {
	uc := &AddNumerals{
		recorder: recorder,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute adds two numerals and records the sum when a recorder is set.
// The returned id is empty when nothing was recorded. On a recording failure
// the computed sum is still returned alongside an error wrapping ErrNotRecorded.
func (uc *AddNumerals) Execute(ctx context.Context, augend, addend domain.Numeral) (domain.Sum, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.Sum{}, "", err
	}

	sum := domain.NewSum(augend, addend)
	uc.log.Debug("sum.computed",
		"augend", string(sum.Augend),
		"addend", string(sum.Addend),
		"result", string(sum.Result),
	)

	if uc.recorder == nil {
		return sum, "", nil
	}

	rec := domain.SumRecord{
		ID:         uc.newID(),
		RecordedAt: uc.now().UTC(),
		Sum:        sum,
	}

	id, err := uc.recorder.SaveSum(rec)
	if err != nil {
		uc.log.Error("sum.record_failed", "record_id", rec.ID, "err", err)
		return sum, "", fmt.Errorf("%w: %w", ErrNotRecorded, err)
	}

	uc.log.Info("sum.recorded", "id", id, "record_id", rec.ID, "result", string(sum.Result))
	return sum, id, nil
}
