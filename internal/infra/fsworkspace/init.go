package fsworkspace

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/romancalc/internal/domain"
	"github.com/aalvaropc/romancalc/internal/ports"
)

//go:embed templates/romancalc.yaml
var templatesFS embed.FS

const gitignoreHeader = "# romancalc"

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	cfg := domain.DefaultConfig()

	dirs := []string{
		filepath.Join(root, cfg.History.Dir),
		filepath.Join(root, ".romancalc", "logs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return &domain.OpError{Op: "fsworkspace.mkdir", Kind: domain.KindExecution, Path: d, Err: err}
		}
	}

	gitignore := filepath.Join(root, ".gitignore")
	if err := ensureGitignore(gitignore, []string{".romancalc/", cfg.History.Dir + "/"}); err != nil {
		return &domain.OpError{Op: "fsworkspace.gitignore", Kind: domain.KindExecution, Path: gitignore, Err: err}
	}

	dst := filepath.Join(root, "romancalc.yaml")
	if !force {
		if _, statErr := os.Stat(dst); statErr == nil {
			return nil
		}
	}

	b, err := templatesFS.ReadFile("templates/romancalc.yaml")
	if err != nil {
		return &domain.OpError{Op: "fsworkspace.template", Kind: domain.KindExecution, Err: err}
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return &domain.OpError{Op: "fsworkspace.write", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	return nil
}

// ensureGitignore appends the entries missing from path, creating it if needed.
func ensureGitignore(path string, entries []string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{gitignoreHeader}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[gitignoreHeader] {
		out.WriteString(gitignoreHeader)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
