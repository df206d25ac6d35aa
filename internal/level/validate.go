package level

import "fmt"

// ValidationError contains details about a level validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks structural consistency of a level. Call after Normalize.
// Checks:
//   - container IDs present and unique
//   - item placements inside the container's slot/row bounds
//   - at most one item per (slot, row) cell
//   - slot stacks have no gaps (a row r item requires every row below it)
//   - locked containers carry a positive unlock threshold
func (l *Level) Validate() error {
	seen := make(map[string]bool, len(l.Containers))

	for i := range l.Containers {
		c := &l.Containers[i]

		if c.ID == "" {
			return ValidationError{
				Code:    "MISSING_ID",
				Message: fmt.Sprintf("container at index %d has no id", i),
			}
		}
		if seen[c.ID] {
			return ValidationError{
				Code:    "DUPLICATE_ID",
				Message: fmt.Sprintf("container id %q appears more than once", c.ID),
			}
		}
		seen[c.ID] = true

		if c.IsLocked && c.UnlockMatchesRequired <= 0 {
			return ValidationError{
				Code:    "INVALID_LOCK",
				Message: fmt.Sprintf("container %q is locked but unlock_matches_required is %d", c.ID, c.UnlockMatchesRequired),
			}
		}

		occupied := make(map[[2]int]bool, len(c.InitialItems))
		for _, item := range c.InitialItems {
			if item.Slot < 0 || item.Slot >= c.SlotCount || item.Row < 0 || item.Row >= c.MaxRowsPerSlot {
				return ValidationError{
					Code:    "ITEM_OUT_OF_RANGE",
					Message: fmt.Sprintf("container %q: item %q at slot=%d row=%d outside %dx%d", c.ID, item.ID, item.Slot, item.Row, c.SlotCount, c.MaxRowsPerSlot),
				}
			}
			cell := [2]int{item.Slot, item.Row}
			if occupied[cell] {
				return ValidationError{
					Code:    "CELL_CONFLICT",
					Message: fmt.Sprintf("container %q: slot=%d row=%d holds more than one item", c.ID, item.Slot, item.Row),
				}
			}
			occupied[cell] = true
		}

		// A back-row item with an empty cell in front of it cannot occur in
		// generator output; reject it instead of guessing an order.
		for cell := range occupied {
			for r := 0; r < cell[1]; r++ {
				if !occupied[[2]int{cell[0], r}] {
					return ValidationError{
						Code:    "ROW_GAP",
						Message: fmt.Sprintf("container %q: slot=%d row=%d occupied but row=%d is empty", c.ID, cell[0], cell[1], r),
					}
				}
			}
		}
	}

	return nil
}
