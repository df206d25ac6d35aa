// Package level defines the static level description consumed by the
// solver: containers with slot stacks, lock and despawn rules, and the
// presentation attributes (movement, imagery, timers) that are carried
// through for fidelity but never consulted by solving logic.
package level

// Position is a container's placement on the play field. Presentation only.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// ItemPlacement assigns an item type to a (slot, row) cell of a container.
// Row 0 is the front of the slot stack; higher rows sit behind it.
type ItemPlacement struct {
	ID   string `json:"id" yaml:"id"`
	Slot int    `json:"slot" yaml:"slot"`
	Row  int    `json:"row" yaml:"row"`
}

// Container describes one container in a level.
type Container struct {
	ID            string   `json:"id" yaml:"id"`
	Position      Position `json:"position" yaml:"position"`
	ContainerType string   `json:"container_type" yaml:"container_type"`

	SlotCount      int `json:"slot_count" yaml:"slot_count"`
	MaxRowsPerSlot int `json:"max_rows_per_slot" yaml:"max_rows_per_slot"`

	IsLocked              bool `json:"is_locked" yaml:"is_locked"`
	UnlockMatchesRequired int  `json:"unlock_matches_required" yaml:"unlock_matches_required"`

	DespawnOnMatch bool `json:"despawn_on_match" yaml:"despawn_on_match"`

	// Presentation attributes. The solver never reads these.
	ContainerImage   string  `json:"container_image" yaml:"container_image"`
	LockOverlayImage string  `json:"lock_overlay_image" yaml:"lock_overlay_image"`
	UnlockAnimation  string  `json:"unlock_animation" yaml:"unlock_animation"`
	IsMoving         bool    `json:"is_moving" yaml:"is_moving"`
	MoveType         string  `json:"move_type" yaml:"move_type"`
	MoveDirection    string  `json:"move_direction" yaml:"move_direction"`
	MoveSpeed        float64 `json:"move_speed" yaml:"move_speed"`
	MoveDistance     float64 `json:"move_distance" yaml:"move_distance"`
	TrackID          string  `json:"track_id" yaml:"track_id"`
	IsFalling        bool    `json:"is_falling" yaml:"is_falling"`
	FallSpeed        float64 `json:"fall_speed" yaml:"fall_speed"`
	FallTargetY      float64 `json:"fall_target_y" yaml:"fall_target_y"`

	InitialItems []ItemPlacement `json:"initial_items" yaml:"initial_items"`
}

// MovingTrack describes a shared movement path. Presentation only.
type MovingTrack struct {
	ID     string     `json:"id" yaml:"id"`
	Points []Position `json:"points" yaml:"points"`
	Speed  float64    `json:"speed" yaml:"speed"`
}

// Level is a complete level description as emitted by the generator.
type Level struct {
	ID                 int           `json:"id" yaml:"id"`
	WorldID            string        `json:"world_id" yaml:"world_id"`
	Name               string        `json:"name" yaml:"name"`
	StarMoveThresholds []int         `json:"star_move_thresholds" yaml:"star_move_thresholds"`
	TimeLimitSeconds   int           `json:"time_limit_seconds" yaml:"time_limit_seconds"`
	ConstructionMoves  int           `json:"construction_moves,omitempty" yaml:"construction_moves,omitempty"`
	Containers         []Container   `json:"containers" yaml:"containers"`
	MovingTracks       []MovingTrack `json:"moving_tracks" yaml:"moving_tracks"`
}

// defaults applied by Normalize, matching the generator's conventions.
const (
	DefaultSlotCount      = 3
	DefaultMaxRowsPerSlot = 4
)

// Normalize replaces non-positive slot counts and row depths with the
// generator's defaults. Parsers call it after decoding.
func (l *Level) Normalize() {
	for i := range l.Containers {
		c := &l.Containers[i]
		if c.SlotCount <= 0 {
			c.SlotCount = DefaultSlotCount
		}
		if c.MaxRowsPerSlot <= 0 {
			c.MaxRowsPerSlot = DefaultMaxRowsPerSlot
		}
	}
}

// ItemCounts returns the number of placed items per item type.
func (l *Level) ItemCounts() map[string]int {
	counts := make(map[string]int)
	for i := range l.Containers {
		for _, item := range l.Containers[i].InitialItems {
			counts[item.ID]++
		}
	}
	return counts
}

// TotalItems returns the total number of placed items.
func (l *Level) TotalItems() int {
	total := 0
	for i := range l.Containers {
		total += len(l.Containers[i].InitialItems)
	}
	return total
}
