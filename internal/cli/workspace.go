package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/romancalc/internal/domain"
	"github.com/aalvaropc/romancalc/internal/infra/historystore"
	"github.com/aalvaropc/romancalc/internal/infra/workspacefinder"
	"github.com/aalvaropc/romancalc/internal/ports"
)

// workspaceCtx is what a command needs from the workspace. root is empty when
// no workspace was found; commands then run with defaults and no history.
type workspaceCtx struct {
	cwd   string
	root  string
	cfg   domain.Config
	store *historystore.JSONStore
	err   error

	// found is set once a workspace root was located, even when its config
	// then failed to load. Such an error must not be treated as "no workspace".
	found bool
}

// openWorkspace never fails: a missing workspace degrades to defaults and the
// reason is kept in err for commands that require one. A workspace with a
// broken config keeps its err too, with found set; see configErr.
func openWorkspace(workspaceFlag string) *workspaceCtx {
	ws := &workspaceCtx{cfg: domain.DefaultConfig()}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	ws.cwd, _ = filepath.Abs(wd)

	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		ws.err = err
		return ws
	}

	ws.found = true

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		ws.err = err
		return ws
	}

	ws.root = root
	ws.cfg = cfg
	ws.store = historystore.NewJSONStore(root, cfg)
	return ws
}

// recorder returns nil when history is disabled or unavailable.
func (ws *workspaceCtx) recorder() ports.SumRecorder {
	if ws.store == nil || !ws.cfg.History.Enabled {
		return nil
	}
	return ws.store
}

func (ws *workspaceCtx) reader() ports.HistoryReader {
	if ws.store == nil {
		return nil
	}
	return ws.store
}

func (ws *workspaceCtx) loader() ports.SumLoader {
	if ws.store == nil {
		return nil
	}
	return ws.store
}

// configErr is the error of a workspace that exists but cannot be used.
func (ws *workspaceCtx) configErr() error {
	if !ws.found {
		return nil
	}
	return ws.err
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		if !workspacefinder.NewFinder().IsWorkspace(abs) {
			return "", &domain.OpError{
				Op:   "cli.workspace",
				Kind: domain.KindNotFound,
				Path: abs,
				Err: fmt.Errorf("not a romancalc workspace: no %s (tip: run `romancalc init --path %s`): %w",
					workspacefinder.ConfigFile, abs, domain.ErrNotFound),
			}
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `romancalc init`): %w", wd, err)
	}
	return root, nil
}

// outputFormat picks the flag value when set, else the workspace default.
func outputFormat(flag string, ws *workspaceCtx) (domain.OutputFormat, error) {
	if strings.TrimSpace(flag) == "" {
		return ws.cfg.Output.Format, nil
	}
	return domain.ParseOutputFormat(flag)
}
