package location

import (
	"sort"

	"courierledger/internal/core/domain/model/kernel"
)

// TrajectoryDistance sums the great-circle length of each consecutive segment
// of the path, in timestamp order. Fewer than two points give 0.
func TrajectoryDistance(records []*Record) (float64, error) {
	if len(records) < 2 {
		return 0, nil
	}

	path := append([]*Record(nil), records...)
	sort.SliceStable(path, func(i, j int) bool { return path[i].timestamp.Before(path[j].timestamp) })

	var total float64
	for i := 1; i < len(path); i++ {
		d, err := kernel.Distance(path[i-1].coordinates, path[i].coordinates)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// ClampHistoryLimit applies the default and the upper bound to a requested page size.
func ClampHistoryLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}
