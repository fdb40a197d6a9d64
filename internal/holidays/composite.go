package holidays

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type compositeEntry struct {
	source   Source
	optional bool
}

// CompositeSource merges several sources. A failing optional source is
// logged and skipped; a failing required source fails the whole load.
type CompositeSource struct {
	entries []compositeEntry
	logger  *zap.Logger
}

// NewCompositeSource creates a new CompositeSource
func NewCompositeSource(logger *zap.Logger) *CompositeSource {
	return &CompositeSource{logger: logger}
}

// Add registers a required source
func (cs *CompositeSource) Add(src Source) *CompositeSource {
	cs.entries = append(cs.entries, compositeEntry{source: src})
	return cs
}

// AddOptional registers a source whose failure is tolerated
func (cs *CompositeSource) AddOptional(src Source) *CompositeSource {
	cs.entries = append(cs.entries, compositeEntry{source: src, optional: true})
	return cs
}

func (cs *CompositeSource) Name() string {
	return "composite"
}

// Load loads every registered source in order
func (cs *CompositeSource) Load(ctx context.Context) (*Set, error) {
	merged := &Set{}

	for _, entry := range cs.entries {
		set, err := entry.source.Load(ctx)
		if err != nil {
			if !entry.optional {
				return nil, fmt.Errorf("failed to load holidays from %s: %w", entry.source.Name(), err)
			}
			cs.logger.Warn("Optional holiday source failed, skipping",
				zap.String("source", entry.source.Name()),
				zap.Error(err))
			continue
		}

		cs.logger.Debug("Holiday source loaded",
			zap.String("source", entry.source.Name()),
			zap.Int("specific", len(set.Specific)),
			zap.Int("recurring", len(set.Recurring)),
			zap.Int("entries", set.Len()))
		merged.Merge(set)
	}

	return merged, nil
}
