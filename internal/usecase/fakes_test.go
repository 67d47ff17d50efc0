package usecase

import (
	"github.com/aalvaropc/romancalc/internal/domain"
	"github.com/aalvaropc/romancalc/internal/ports"
)

// --- fakes shared by the use case tests ---

type fakeRecorder struct {
	saved []domain.SumRecord
}

func (r *fakeRecorder) SaveSum(rec domain.SumRecord) (string, error) {
	r.saved = append(r.saved, rec)
	return "hist-" + rec.ID, nil
}

type errRecorder struct{ err error }

func (r errRecorder) SaveSum(_ domain.SumRecord) (string, error) {
	return "", r.err
}

type fakeReader struct {
	entries   []domain.HistoryEntry
	err       error
	lastLimit int
}

func (r *fakeReader) ListHistory(limit int) ([]domain.HistoryEntry, error) {
	r.lastLimit = limit
	return r.entries, r.err
}

type fakeLoader struct {
	records map[string]domain.SumRecord
	lastID  string
}

func (l *fakeLoader) LoadSum(id string) (domain.SumRecord, error) {
	l.lastID = id
	rec, ok := l.records[id]
	if !ok {
		return domain.SumRecord{}, &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return rec, nil
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (i *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	i.spec = spec
	i.force = force
	return i.err
}

var (
	_ ports.SumRecorder          = (*fakeRecorder)(nil)
	_ ports.SumRecorder          = errRecorder{}
	_ ports.HistoryReader        = (*fakeReader)(nil)
	_ ports.SumLoader            = (*fakeLoader)(nil)
	_ ports.WorkspaceInitializer = (*fakeInitializer)(nil)
)
