package usecase

import (
	"strings"

	"github.com/aalvaropc/romancalc/internal/domain"
	"github.com/aalvaropc/romancalc/internal/ports"
)

type ShowSum struct {
	loader ports.SumLoader
}

func NewShowSum(loader ports.SumLoader) *ShowSum {
	return &ShowSum{loader: loader}
}

// Execute loads the record saved under id. A trailing ".json" is accepted so
// file names can be pasted as ids; ids never contain path separators.
func (uc *ShowSum) Execute(id string) (domain.SumRecord, error) {
	id = strings.TrimSuffix(strings.TrimSpace(id), ".json")
	if id == "" || strings.ContainsAny(id, `/\`) {
		return domain.SumRecord{}, &domain.OpError{
			Op:   "usecase.showsum",
			Kind: domain.KindNotFound,
			Err:  domain.ErrNotFound,
		}
	}
	if uc.loader == nil {
		return domain.SumRecord{}, &domain.OpError{
			Op:   "usecase.showsum",
			Kind: domain.KindNotFound,
			Path: id,
			Err:  domain.ErrNotFound,
		}
	}
	return uc.loader.LoadSum(id)
}
