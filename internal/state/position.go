package state

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/username/holiday-clock/internal/clock"
	"github.com/username/holiday-clock/internal/style"
)

// Position is the persisted placement of the widget
type Position struct {
	PosX        float64 `json:"posX"`
	PosY        float64 `json:"posY"`
	DragEnabled bool    `json:"dragEnabled"`
}

// PositionOf extracts the position fields from a clock state
func PositionOf(s clock.State) Position {
	return Position{PosX: s.PosX, PosY: s.PosY, DragEnabled: s.DragEnabled}
}

// ApplyTo copies the position onto a clock state
func (p Position) ApplyTo(s *clock.State) {
	s.PosX = p.PosX
	s.PosY = p.PosY
	s.DragEnabled = p.DragEnabled
}

// positionFile allows partial blobs: absent fields keep their current values
type positionFile struct {
	PosX        *float64 `json:"posX"`
	PosY        *float64 `json:"posY"`
	DragEnabled *bool    `json:"dragEnabled"`
}

// PositionStore persists the widget position as a small JSON blob
type PositionStore struct {
	path     string
	position Position
	logger   *zap.Logger
}

// NewPositionStore creates a store starting from initial
func NewPositionStore(path string, initial Position, logger *zap.Logger) *PositionStore {
	return &PositionStore{
		path:     path,
		position: initial,
		logger:   logger,
	}
}

// Load overlays the saved position. A missing file keeps the initial position.
func (ps *PositionStore) Load() error {
	data, err := os.ReadFile(ps.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read position file: %w", err)
	}

	var saved positionFile
	if err := json.Unmarshal(data, &saved); err != nil {
		return fmt.Errorf("failed to parse position file: %w", err)
	}

	if saved.PosX != nil {
		ps.position.PosX = *saved.PosX
	}
	if saved.PosY != nil {
		ps.position.PosY = *saved.PosY
	}
	if saved.DragEnabled != nil {
		ps.position.DragEnabled = *saved.DragEnabled
	}

	ps.logger.Debug("Position loaded",
		zap.Float64("pos_x", ps.position.PosX),
		zap.Float64("pos_y", ps.position.PosY))

	return nil
}

// Save writes the current position
func (ps *PositionStore) Save() error {
	data, err := json.Marshal(ps.position)
	if err != nil {
		return fmt.Errorf("failed to marshal position: %w", err)
	}

	if err := os.WriteFile(ps.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write position file: %w", err)
	}

	ps.logger.Debug("Position saved",
		zap.Float64("pos_x", ps.position.PosX),
		zap.Float64("pos_y", ps.position.PosY))

	return nil
}

// SetPosition clamps x and y to [0,1] and saves
func (ps *PositionStore) SetPosition(x, y float64) error {
	ps.position.PosX = style.Clamp01(x)
	ps.position.PosY = style.Clamp01(y)
	return ps.Save()
}

// SetDragEnabled toggles dragging and saves
func (ps *PositionStore) SetDragEnabled(enabled bool) error {
	ps.position.DragEnabled = enabled
	return ps.Save()
}

// Position returns the current position
func (ps *PositionStore) Position() Position {
	return ps.position
}
