package state

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/username/holiday-clock/internal/clock"
)

func TestPositionStore_LoadMissingKeepsInitial(t *testing.T) {
	initial := PositionOf(clock.DefaultState())
	store := NewPositionStore(filepath.Join(t.TempDir(), "position.json"), initial, zap.NewNop())

	require.NoError(t, store.Load())
	assert.Equal(t, initial, store.Position())
}

func TestPositionStore_SetPositionClampsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "position.json")
	store := NewPositionStore(path, Position{PosX: 0.5, PosY: 0.5}, zap.NewNop())

	require.NoError(t, store.SetPosition(1.7, -0.2))
	assert.Equal(t, Position{PosX: 1, PosY: 0}, store.Position())

	require.NoError(t, store.SetDragEnabled(true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"posX":1,"posY":0,"dragEnabled":true}`, string(data))

	reloaded := NewPositionStore(path, Position{PosX: 0.5, PosY: 0.5}, zap.NewNop())
	require.NoError(t, reloaded.Load())
	assert.Equal(t, Position{PosX: 1, PosY: 0, DragEnabled: true}, reloaded.Position())
}

func TestPositionStore_PartialBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "position.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"posY":0.25}`), 0644))

	store := NewPositionStore(path, Position{PosX: 0.5, PosY: 0.5, DragEnabled: true}, zap.NewNop())
	require.NoError(t, store.Load())
	assert.Equal(t, Position{PosX: 0.5, PosY: 0.25, DragEnabled: true}, store.Position())
}

func TestPositionStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "position.json")
	require.NoError(t, os.WriteFile(path, []byte(`{posX`), 0644))

	initial := Position{PosX: 0.3, PosY: 0.7}
	store := NewPositionStore(path, initial, zap.NewNop())
	assert.Error(t, store.Load())
	assert.Equal(t, initial, store.Position())
}

func TestPositionApplyTo(t *testing.T) {
	s := clock.DefaultState()
	Position{PosX: 0.1, PosY: 0.9, DragEnabled: true}.ApplyTo(&s)

	assert.Equal(t, 0.1, s.PosX)
	assert.Equal(t, 0.9, s.PosY)
	assert.True(t, s.DragEnabled)
	assert.Equal(t, Position{PosX: 0.1, PosY: 0.9, DragEnabled: true}, PositionOf(s))
}

func newTestPresetStore(t *testing.T) *PresetStore {
	t.Helper()
	store := NewPresetStore(filepath.Join(t.TempDir(), "presets.json"), zap.NewNop())
	store.now = func() time.Time { return time.UnixMilli(1735000000000) }
	require.NoError(t, store.Load())
	return store
}

func TestPresetStore_CreateGetRenameDelete(t *testing.T) {
	store := newTestPresetStore(t)
	assert.Empty(t, store.List())

	s := clock.DefaultState()
	s.ShowHoliday = true

	preset, err := store.Create("Holiday mode", s)
	require.NoError(t, err)
	_, err = uuid.Parse(preset.ID)
	assert.NoError(t, err, "preset id is a uuid")
	assert.Equal(t, int64(1735000000000), preset.CreatedAt)

	got, err := store.Get(preset.ID)
	require.NoError(t, err)
	assert.True(t, got.State.ShowHoliday)

	require.NoError(t, store.Rename(preset.ID, "Festive"))
	got, _ = store.Get(preset.ID)
	assert.Equal(t, "Festive", got.Name)

	reloaded := NewPresetStore(store.path, zap.NewNop())
	require.NoError(t, reloaded.Load())
	require.Len(t, reloaded.List(), 1)
	assert.Equal(t, "Festive", reloaded.List()[0].Name)

	require.NoError(t, store.Delete(preset.ID))
	assert.Empty(t, store.List())

	err = store.Delete(preset.ID)
	assert.True(t, errors.Is(err, ErrPresetNotFound))
	_, err = store.Get("missing")
	assert.True(t, errors.Is(err, ErrPresetNotFound))
	assert.True(t, errors.Is(store.Rename("missing", "x"), ErrPresetNotFound))
}

func TestPresetStore_FailedSaveLeavesPresetsUnchanged(t *testing.T) {
	store := newTestPresetStore(t)
	preset, err := store.Create("Kept", clock.DefaultState())
	require.NoError(t, err)

	store.path = filepath.Join(t.TempDir(), "missing-dir", "presets.json")

	_, err = store.Create("Lost", clock.DefaultState())
	assert.Error(t, err)
	assert.Len(t, store.List(), 1)

	assert.Error(t, store.Rename(preset.ID, "Renamed"))
	got, err := store.Get(preset.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kept", got.Name)

	assert.Error(t, store.Delete(preset.ID))
	require.Len(t, store.List(), 1)
	assert.Equal(t, preset.ID, store.List()[0].ID)
}

func TestPresetStore_ExportImport(t *testing.T) {
	source := newTestPresetStore(t)
	s := clock.DefaultState()
	s.TimeFormat = 12
	_, err := source.Create("Twelve", s)
	require.NoError(t, err)

	exported, err := source.Export()
	require.NoError(t, err)

	target := newTestPresetStore(t)
	n, err := target.Import(exported)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	presets := target.List()
	require.Len(t, presets, 1)
	assert.Equal(t, "Twelve", presets[0].Name)
	assert.Equal(t, 12, presets[0].State.TimeFormat)
	assert.NotEqual(t, source.List()[0].ID, presets[0].ID, "imported presets get fresh ids")
}

func TestPresetStore_ImportPartialAndInvalid(t *testing.T) {
	store := newTestPresetStore(t)

	n, err := store.Import([]byte(`[
		{"name": "Seconds", "state": {"showSeconds": true}},
		{"name": "", "state": {"showSeconds": true}},
		{"name": "No state"},
		{"name": "Bad state", "state": "oops"}
	]`))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	presets := store.List()
	require.Len(t, presets, 1)
	assert.True(t, presets[0].State.ShowSeconds)
	assert.Equal(t, clock.DefaultState().FontSize, presets[0].State.FontSize, "missing fields take defaults")

	_, err = store.Import([]byte(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestPresetStore_ExportEmpty(t *testing.T) {
	data, err := newTestPresetStore(t).Export()
	require.NoError(t, err)

	var presets []Preset
	require.NoError(t, json.Unmarshal(data, &presets))
	assert.Empty(t, presets)
	assert.Equal(t, "[]", string(data))
}
