package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"cashbook/internal/domain"
)

// HistoryKey is the store key holding the JSON array of history entries, most recent first.
const HistoryKey = "cashHistory"

// HistoryLog keeps exported ledger snapshots, most recent first, and writes the
// whole sequence back to the store after every mutation.
type HistoryLog struct {
	store   KeyValueStore
	entries []domain.HistoryEntry
	logger  *slog.Logger
}

// NewHistoryLog creates an empty log. Call Load to read the persisted entries.
func NewHistoryLog(store KeyValueStore, logger *slog.Logger) *HistoryLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryLog{
		store:   store,
		entries: make([]domain.HistoryEntry, 0),
		logger:  logger,
	}
}

// Load replaces the in-memory log with the persisted one. A missing key yields an
// empty log. An unreadable or malformed value also yields an empty log; the cause
// is returned so it can be reported, but the log remains usable.
func (h *HistoryLog) Load(ctx context.Context) error {
	h.entries = make([]domain.HistoryEntry, 0)

	raw, err := h.store.Get(ctx, HistoryKey)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		h.logger.Warn("history not readable, starting empty", "error", err)
		return fmt.Errorf("could not read history: %w", err)
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		h.logger.Warn("history malformed, starting empty", "error", err)
		return fmt.Errorf("could not decode history: %w", err)
	}
	if entries != nil {
		h.entries = entries
	}
	h.logger.Debug("history loaded", "entries", len(h.entries))
	return nil
}

// Append prepends entry and persists the log.
func (h *HistoryLog) Append(ctx context.Context, entry domain.HistoryEntry) error {
	entry.Counts = slices.Clone(entry.Counts)
	updated := make([]domain.HistoryEntry, 0, len(h.entries)+1)
	updated = append(updated, entry)
	h.entries = append(updated, h.entries...)
	return h.persist(ctx)
}

// Remove drops the entry with the given id and persists the log.
// An unknown id leaves the log unchanged and is not an error.
func (h *HistoryLog) Remove(ctx context.Context, id int64) error {
	h.entries = slices.DeleteFunc(h.entries, func(e domain.HistoryEntry) bool {
		return e.ID == id
	})
	return h.persist(ctx)
}

// Clear empties the log and persists an empty sequence.
func (h *HistoryLog) Clear(ctx context.Context) error {
	h.entries = make([]domain.HistoryEntry, 0)
	return h.persist(ctx)
}

// Replace swaps the whole log, e.g. after importing a backup, and persists it.
func (h *HistoryLog) Replace(ctx context.Context, entries []domain.HistoryEntry) error {
	h.entries = cloneEntries(entries)
	return h.persist(ctx)
}

// Entries returns a copy of the log, most recent first.
func (h *HistoryLog) Entries() []domain.HistoryEntry {
	return cloneEntries(h.entries)
}

// Get looks up an entry by id.
func (h *HistoryLog) Get(id int64) (domain.HistoryEntry, bool) {
	for _, e := range h.entries {
		if e.ID == id {
			e.Counts = slices.Clone(e.Counts)
			return e, true
		}
	}
	return domain.HistoryEntry{}, false
}

// Len returns the number of entries.
func (h *HistoryLog) Len() int { return len(h.entries) }

// MaxID returns the largest entry id, or zero for an empty log.
func (h *HistoryLog) MaxID() int64 {
	var highest int64
	for _, e := range h.entries {
		if e.ID > highest {
			highest = e.ID
		}
	}
	return highest
}

func (h *HistoryLog) persist(ctx context.Context) error {
	data, err := json.Marshal(h.entries)
	if err != nil {
		return fmt.Errorf("%w: could not encode history: %w", domain.ErrPersistence, err)
	}
	if err := h.store.Set(ctx, HistoryKey, string(data)); err != nil {
		h.logger.Warn("history not saved", "entries", len(h.entries), "error", err)
		return fmt.Errorf("%w: could not write history: %w", domain.ErrPersistence, err)
	}
	return nil
}

func cloneEntries(entries []domain.HistoryEntry) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(entries))
	for i, e := range entries {
		e.Counts = slices.Clone(e.Counts)
		out[i] = e
	}
	return out
}
