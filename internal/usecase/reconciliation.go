package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"cashbook/internal/currency"
	"cashbook/internal/domain"
)

// Store keys for the working count, restored when a ledger is created.
const (
	CountsKey = "cashCounts"
	TallyKey  = "cashTally"
)

// exportSeparator sits between the denomination lines and the totals.
const exportSeparator = "============="

// CashLedger reconciles a counted cash drawer against a tally figure.
// It owns the working count for a session and is not safe for concurrent use.
type CashLedger struct {
	denominations []domain.Denomination
	counts        []string
	tally         string

	store     KeyValueStore
	history   *HistoryLog
	clipboard ClipboardWriter
	formatter *currency.Formatter

	now      func() time.Time
	location *time.Location
	lastID   int64
	logger   *slog.Logger
}

// LedgerOption customizes a CashLedger.
type LedgerOption func(*CashLedger)

// WithClock overrides the clock used for history ids and timestamps.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *CashLedger) { l.now = now }
}

// WithLocation sets the time zone history timestamps are rendered in.
func WithLocation(loc *time.Location) LedgerOption {
	return func(l *CashLedger) { l.location = loc }
}

// WithLogger sets the logger used for non-fatal failures.
func WithLogger(logger *slog.Logger) LedgerOption {
	return func(l *CashLedger) { l.logger = logger }
}

// NewCashLedger creates a ledger over the default denomination table and restores
// the last working count from store. Unusable stored state is ignored.
func NewCashLedger(ctx context.Context, store KeyValueStore, history *HistoryLog, clipboard ClipboardWriter, opts ...LedgerOption) *CashLedger {
	denominations := domain.DefaultDenominations()
	l := &CashLedger{
		denominations: denominations,
		counts:        make([]string, len(denominations)),
		store:         store,
		history:       history,
		clipboard:     clipboard,
		formatter:     currency.NewRupeeFormatter(),
		now:           time.Now,
		location:      time.Local,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.restore(ctx)
	return l
}

// Denominations returns the denomination table.
func (l *CashLedger) Denominations() []domain.Denomination {
	return slices.Clone(l.denominations)
}

// Formatter returns the money formatter the ledger renders with.
func (l *CashLedger) Formatter() *currency.Formatter { return l.formatter }

// SetCount stores the digits of raw as the count for the denomination at index.
func (l *CashLedger) SetCount(ctx context.Context, index int, raw string) error {
	if index < 0 || index >= len(l.denominations) {
		return fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	l.counts[index] = NormalizeDigits(raw)
	return l.persistState(ctx)
}

// SetTally stores the digits of raw as the tally.
func (l *CashLedger) SetTally(ctx context.Context, raw string) error {
	l.tally = NormalizeDigits(raw)
	return l.persistState(ctx)
}

// Reset clears every count and the tally. History is left alone.
func (l *CashLedger) Reset(ctx context.Context) error {
	l.counts = make([]string, len(l.denominations))
	l.tally = ""
	return l.persistState(ctx)
}

// State returns a copy of the working count.
func (l *CashLedger) State() domain.LedgerState {
	return domain.LedgerState{Counts: slices.Clone(l.counts), Tally: l.tally}
}

// LineItems returns one row per denomination, in table order.
func (l *CashLedger) LineItems() []domain.LineItem {
	items := make([]domain.LineItem, len(l.denominations))
	for i, d := range l.denominations {
		n := ParseCount(l.counts[i])
		items[i] = domain.LineItem{
			Denomination: d,
			CountText:    l.counts[i],
			Count:        n,
			LineTotal:    n * d.FaceValue,
		}
	}
	return items
}

// Totals derives amount, note count and the reconciliation difference.
// It has no side effects.
func (l *CashLedger) Totals() domain.Totals {
	var amount, notes int64
	for i, d := range l.denominations {
		n := ParseCount(l.counts[i])
		amount += n * d.FaceValue
		notes += n
	}
	difference := ParseCount(l.tally) - amount
	return domain.Totals{
		TotalAmount:   amount,
		TotalNotes:    notes,
		Difference:    difference,
		Direction:     domain.DirectionOf(difference),
		AmountInWords: l.formatter.Words(amount),
	}
}

// ExportText renders the breakdown that is copied and kept in history.
// Denominations without a positive count are left out.
func (l *CashLedger) ExportText() string {
	var b strings.Builder
	for _, item := range l.LineItems() {
		if item.Count <= 0 {
			continue
		}
		fmt.Fprintf(&b, "%d×%d=%d\n", item.Denomination.FaceValue, item.Count, item.LineTotal)
	}
	totals := l.Totals()
	b.WriteString(exportSeparator + "\n")
	fmt.Fprintf(&b, "Total %s%d\n", l.formatter.Symbol(), totals.TotalAmount)
	fmt.Fprintf(&b, "[Total %d Notes]", totals.TotalNotes)
	return b.String()
}

// Export records the current count in history and copies its text to the clipboard.
// The two steps are independent: a failure in one does not skip the other.
func (l *CashLedger) Export(ctx context.Context) domain.ExportResult {
	text := l.ExportText()
	totals := l.Totals()
	now := l.now()

	entry := domain.HistoryEntry{
		ID:          l.nextID(now),
		Timestamp:   now.In(l.location).Format(domain.TimestampLayout),
		Counts:      slices.Clone(l.counts),
		TotalAmount: totals.TotalAmount,
		TotalNotes:  totals.TotalNotes,
		Tally:       l.tally,
		Details:     text,
	}

	result := domain.ExportResult{Text: text, Entry: entry}
	result.PersistErr = l.history.Append(ctx, entry)
	result.CopyErr = CopyText(ctx, l.clipboard, text)
	if result.CopyErr != nil {
		l.logger.Warn("export not copied", "entry", entry.ID, "error", result.CopyErr)
	}
	return result
}

// CopyEntry copies the details of a stored history entry again.
func (l *CashLedger) CopyEntry(ctx context.Context, id int64) (string, error) {
	entry, ok := l.history.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %d", domain.ErrEntryNotFound, id)
	}
	return entry.Details, CopyText(ctx, l.clipboard, entry.Details)
}

// nextID derives an id from the clock, kept strictly above every id already handed
// out or present in the history log.
func (l *CashLedger) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	floor := max(l.lastID, l.history.MaxID())
	if id <= floor {
		id = floor + 1
	}
	l.lastID = id
	return id
}

func (l *CashLedger) restore(ctx context.Context) {
	raw, err := l.store.Get(ctx, CountsKey)
	switch {
	case errors.Is(err, domain.ErrKeyNotFound):
	case err != nil:
		l.logger.Warn("saved counts not readable", "error", err)
	default:
		var counts []string
		if err := json.Unmarshal([]byte(raw), &counts); err != nil || len(counts) != len(l.denominations) {
			l.logger.Warn("saved counts ignored", "value", raw)
			break
		}
		for i, c := range counts {
			l.counts[i] = NormalizeDigits(c)
		}
	}

	tally, err := l.store.Get(ctx, TallyKey)
	switch {
	case errors.Is(err, domain.ErrKeyNotFound):
	case err != nil:
		l.logger.Warn("saved tally not readable", "error", err)
	default:
		l.tally = NormalizeDigits(tally)
	}
}

func (l *CashLedger) persistState(ctx context.Context) error {
	data, err := json.Marshal(l.counts)
	if err != nil {
		return fmt.Errorf("%w: could not encode counts: %w", domain.ErrPersistence, err)
	}
	err = errors.Join(
		l.store.Set(ctx, CountsKey, string(data)),
		l.store.Set(ctx, TallyKey, l.tally),
	)
	if err != nil {
		l.logger.Warn("working count not saved", "error", err)
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}
