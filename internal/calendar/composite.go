package calendar

import (
	"fmt"

	"go.uber.org/zap"
)

// Loader is implemented by sources backed by a file
type Loader interface {
	Load() error
}

// CompositeSource merges several sources into one catalog.
// The first source to define a name wins; later duplicates are dropped.
type CompositeSource struct {
	sources []Source
	logger  *zap.Logger
}

// NewCompositeSource creates a new CompositeSource
func NewCompositeSource(logger *zap.Logger, sources ...Source) *CompositeSource {
	return &CompositeSource{
		sources: sources,
		logger:  logger,
	}
}

// Name implements Source
func (cs *CompositeSource) Name() string {
	return "composite"
}

// Holidays implements Source
func (cs *CompositeSource) Holidays() []Holiday {
	seen := make(map[string]string)
	var out []Holiday

	for _, src := range cs.sources {
		for _, h := range src.Holidays() {
			if owner, dup := seen[h.Name]; dup {
				cs.logger.Debug("Duplicate holiday name, keeping first",
					zap.String("holiday", h.Name),
					zap.String("kept_from", owner),
					zap.String("dropped_from", src.Name()))
				continue
			}
			seen[h.Name] = src.Name()
			out = append(out, h)
		}
	}

	return out
}

// Load loads every file-backed source. The built-in catalog always works,
// so a failing source is logged and dropped rather than aborting startup.
// The returned error reports the first failure.
func (cs *CompositeSource) Load() error {
	var firstErr error
	kept := cs.sources[:0]

	for _, src := range cs.sources {
		loader, ok := src.(Loader)
		if !ok {
			kept = append(kept, src)
			continue
		}

		if err := loader.Load(); err != nil {
			cs.logger.Warn("Failed to load holiday source, skipping",
				zap.String("source", src.Name()),
				zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to load %s source: %w", src.Name(), err)
			}
			continue
		}

		cs.logger.Info("Holiday source loaded",
			zap.String("source", src.Name()),
			zap.Int("holidays", len(src.Holidays())))
		kept = append(kept, src)
	}

	cs.sources = kept
	return firstErr
}
