package ports

import "github.com/aalvaropc/romancalc/internal/domain"

// SumRecorder persists computed sums so they can be listed later.
type SumRecorder interface {
	SaveSum(rec domain.SumRecord) (id string, err error)
}
