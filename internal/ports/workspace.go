package ports

import "github.com/aalvaropc/romancalc/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
