package historystore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aalvaropc/romancalc/internal/domain"
	"github.com/aalvaropc/romancalc/internal/ports"
)

const (
	defaultHistoryDir = "history"
	indexFile         = "index.jsonl"
	maxCollisions     = 1000
	maxSlugLen        = 48
)

type JSONStore struct {
	rootDir    string
	historyDir string
	now        func() time.Time
}

type Option func(*JSONStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.History.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaultHistoryDir
	}

	s := &JSONStore{
		rootDir:    root,
		historyDir: dir,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ ports.SumRecorder   = (*JSONStore)(nil)
	_ ports.HistoryReader = (*JSONStore)(nil)
	_ ports.SumLoader     = (*JSONStore)(nil)
)

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.historyDir)
}

func (s *JSONStore) SaveSum(rec domain.SumRecord) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "historystore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := rec.RecordedAt
	if ts.IsZero() {
		ts = s.now()
	}
	rec.RecordedAt = ts.UTC()
	rec.Raw = rec.Sum.Raw()

	slug := slugify(string(rec.Sum.Result))
	if slug == "" {
		slug = "sum"
	}
	base := fmt.Sprintf("%s_%s", rec.RecordedAt.Format("20060102T150405Z"), slug)

	id, path, err := uniquePath(dir, base)
	if err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "historystore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "historystore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "historystore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if err := s.appendIndex(dir, domain.HistoryEntry{
		ID:         id,
		File:       filepath.Base(path),
		Augend:     rec.Sum.Augend,
		Addend:     rec.Sum.Addend,
		Result:     rec.Sum.Result,
		RecordedAt: rec.RecordedAt,
		Raw:        rec.Raw,
	}); err != nil {
		return id, &domain.OpError{
			Op:   "historystore.index",
			Kind: domain.KindExecution,
			Path: filepath.Join(dir, indexFile),
			Err:  err,
		}
	}

	return id, nil
}

// LoadSum reads a single record back by history id. Operands that were not
// valid UTF-8 come back byte-exact from the record's raw field.
func (s *JSONStore) LoadSum(id string) (domain.SumRecord, error) {
	path := filepath.Join(s.dir(), id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.SumRecord{}, &domain.OpError{
			Op:   "historystore.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var rec domain.SumRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.SumRecord{}, &domain.OpError{
			Op:   "historystore.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	if rec.Raw != nil {
		rec.Sum = rec.Raw.Sum()
		rec.Raw = nil
	}
	return rec, nil
}

// ListHistory returns index entries newest first. A missing index is an empty
// history and malformed lines are skipped.
func (s *JSONStore) ListHistory(limit int) ([]domain.HistoryEntry, error) {
	path := filepath.Join(s.dir(), indexFile)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.HistoryEntry{}, nil
		}
		return nil, &domain.OpError{
			Op:   "historystore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	var out []domain.HistoryEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var e domain.HistoryEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			continue
		}
		if e.Raw != nil {
			raw := e.Raw.Sum()
			e.Augend, e.Addend, e.Result = raw.Augend, raw.Addend, raw.Result
			e.Raw = nil
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "historystore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Index is append-only, so reverse order is newest first; the stable sort
	// only matters for hand-edited files.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []domain.HistoryEntry{}
	}
	return out, nil
}

func (s *JSONStore) appendIndex(dir string, e domain.HistoryEntry) error {
	line, err := json.Marshal(e)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

func uniquePath(dir, base string) (string, string, error) {
	id := base
	for n := 2; n <= maxCollisions+1; n++ {
		path := filepath.Join(dir, id+".json")
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return id, path, nil
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
	return "", "", &domain.OpError{
		Op:   "historystore.unique",
		Kind: domain.KindExecution,
		Path: filepath.Join(dir, base+".json"),
		Err:  fmt.Errorf("too many records for %s: %w", base, domain.ErrExecution),
	}
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	out := strings.Trim(b.String(), "-")
	if len(out) > maxSlugLen {
		out = strings.TrimRight(out[:maxSlugLen], "-")
	}
	return out
}
