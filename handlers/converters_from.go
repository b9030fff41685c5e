package handlers

import (
	"mypodinfo/service"
)

const maxPodsLimit = 1000

// fromGetPodsParams returns the effective pods limit.
// Returns service.BadParameterError when limit is outside 1..1000.
func fromGetPodsParams(params GetPodsParams) (int, error) {
	if params.Limit == nil {
		return DefaultPodsLimit, nil
	}

	limit := service.Value(params.Limit)
	if limit < 1 || limit > maxPodsLimit {
		return 0, service.NewBadParameterError("limit must be between 1 and 1000", nil)
	}
	return limit, nil
}
