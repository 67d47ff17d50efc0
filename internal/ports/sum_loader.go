package ports

import "github.com/aalvaropc/romancalc/internal/domain"

// SumLoader reads back a single recorded sum by its history id.
type SumLoader interface {
	LoadSum(id string) (domain.SumRecord, error)
}
