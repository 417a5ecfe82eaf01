package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/username/holiday-clock/internal/clock"
)

// ErrPresetNotFound is returned for unknown preset ids
var ErrPresetNotFound = errors.New("preset not found")

// Preset is a named snapshot of the widget settings
type Preset struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	State     clock.State `json:"state"`
	CreatedAt int64       `json:"createdAt"` // unix milliseconds
}

// importedPreset keeps the raw state so missing fields fall back to defaults
type importedPreset struct {
	Name  string          `json:"name"`
	State json.RawMessage `json:"state"`
}

// PresetStore manages saved presets in a JSON file
type PresetStore struct {
	path    string
	presets []Preset
	now     func() time.Time
	logger  *zap.Logger
}

// NewPresetStore creates a new preset store
func NewPresetStore(path string, logger *zap.Logger) *PresetStore {
	return &PresetStore{
		path:   path,
		now:    time.Now,
		logger: logger,
	}
}

// Load reads presets from file. A missing file means no presets.
func (ps *PresetStore) Load() error {
	data, err := os.ReadFile(ps.path)
	if err != nil {
		if os.IsNotExist(err) {
			ps.presets = nil
			return nil
		}
		return fmt.Errorf("failed to read presets file: %w", err)
	}

	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return fmt.Errorf("failed to parse presets file: %w", err)
	}

	ps.presets = presets
	ps.logger.Info("Presets loaded", zap.Int("count", len(presets)))

	return nil
}

// Save writes all presets to file
func (ps *PresetStore) Save() error {
	data, err := ps.Export()
	if err != nil {
		return err
	}

	if err := os.WriteFile(ps.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write presets file: %w", err)
	}

	return nil
}

// List returns a copy of all presets in creation order
func (ps *PresetStore) List() []Preset {
	out := make([]Preset, len(ps.presets))
	copy(out, ps.presets)
	return out
}

// Create stores a new preset and saves. Nothing changes if saving fails.
func (ps *PresetStore) Create(name string, s clock.State) (Preset, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Preset{}, fmt.Errorf("failed to generate preset id: %w", err)
	}

	preset := Preset{
		ID:        id.String(),
		Name:      name,
		State:     s,
		CreatedAt: ps.now().UnixMilli(),
	}
	prev := ps.presets
	ps.presets = append(slices.Clone(prev), preset)

	if err := ps.Save(); err != nil {
		ps.presets = prev
		return Preset{}, err
	}

	ps.logger.Info("Preset created",
		zap.String("id", preset.ID),
		zap.String("name", name))

	return preset, nil
}

// Get returns the preset with the given id
func (ps *PresetStore) Get(id string) (Preset, error) {
	i := ps.index(id)
	if i < 0 {
		return Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, id)
	}
	return ps.presets[i], nil
}

// Delete removes a preset and saves
func (ps *PresetStore) Delete(id string) error {
	i := ps.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPresetNotFound, id)
	}

	prev := ps.presets
	ps.presets = append(slices.Clone(prev[:i]), prev[i+1:]...)

	if err := ps.Save(); err != nil {
		ps.presets = prev
		return err
	}
	return nil
}

// Rename changes a preset name and saves
func (ps *PresetStore) Rename(id, name string) error {
	i := ps.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPresetNotFound, id)
	}

	prevName := ps.presets[i].Name
	ps.presets[i].Name = name

	if err := ps.Save(); err != nil {
		ps.presets[i].Name = prevName
		return err
	}
	return nil
}

// Export returns all presets as indented JSON
func (ps *PresetStore) Export() ([]byte, error) {
	presets := ps.presets
	if presets == nil {
		presets = []Preset{}
	}

	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal presets: %w", err)
	}
	return data, nil
}

// Import adds every entry of a JSON array that has a name and a state.
// Imported presets get fresh ids; fields missing from a state take default values.
func (ps *PresetStore) Import(data []byte) (int, error) {
	var entries []importedPreset
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("failed to parse presets: %w", err)
	}

	imported := 0
	for _, entry := range entries {
		if entry.Name == "" || len(entry.State) == 0 || string(entry.State) == "null" {
			continue
		}

		s := clock.DefaultState()
		if err := json.Unmarshal(entry.State, &s); err != nil {
			ps.logger.Warn("Skipping preset with invalid state",
				zap.String("name", entry.Name),
				zap.Error(err))
			continue
		}

		if _, err := ps.Create(entry.Name, s); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (ps *PresetStore) index(id string) int {
	for i, p := range ps.presets {
		if p.ID == id {
			return i
		}
	}
	return -1
}
