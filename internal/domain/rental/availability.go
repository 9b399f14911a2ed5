package rental

import (
	"fmt"
)

type CapacityExceededError struct {
	Type      TypeName
	Requested int
	Available int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: requested %d, available %d", e.Type, e.Requested, e.Available)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// MaxSelectable is the highest count a selector for the type may reach.
// Unknown and non-rentable types have no capacity.
func MaxSelectable(name TypeName, snapshot Snapshot) int {
	rate, ok := snapshot.Lookup(name)
	if !ok || rate.AvailableUnits < 0 {
		return 0
	}
	return rate.AvailableUnits
}

// CheckAvailability compares against the snapshot only; the backend has the final say.
func CheckAvailability(name TypeName, count int, snapshot Snapshot) error {
	available := MaxSelectable(name, snapshot)
	if count > available {
		return &CapacityExceededError{Type: name, Requested: count, Available: available}
	}
	return nil
}

// CheckAll sums the requested counts per type before checking, in order of first appearance.
// Types missing from the snapshot are left to the quote's unknown types.
func CheckAll(requests []RentalLineRequest, snapshot Snapshot) []*CapacityExceededError {
	totals := make(map[TypeName]int, len(requests))
	order := make([]TypeName, 0, len(requests))
	for _, req := range requests {
		if req.Count <= 0 {
			continue
		}
		if _, known := snapshot.Lookup(req.Type); !known {
			continue
		}
		if _, seen := totals[req.Type]; !seen {
			order = append(order, req.Type)
		}
		totals[req.Type] = addCount(totals[req.Type], req.Count)
	}

	var issues []*CapacityExceededError
	for _, name := range order {
		if err := CheckAvailability(name, totals[name], snapshot); err != nil {
			issues = append(issues, err.(*CapacityExceededError))
		}
	}
	return issues
}
