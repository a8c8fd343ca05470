package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cashbook/internal/domain"
)

// countsSeparator joins per-denomination counts inside a single CSV cell.
const countsSeparator = "|"

var historyHeader = []string{"id", "timestamp", "total_amount", "total_notes", "tally", "counts", "details"}

// CSVHistoryRepository exports and imports the history log as CSV files.
type CSVHistoryRepository struct{}

// NewCSVHistoryRepository creates a new repository instance.
func NewCSVHistoryRepository() *CSVHistoryRepository {
	return &CSVHistoryRepository{}
}

// WriteHistory writes entries to the file at path, replacing it.
func (r *CSVHistoryRepository) WriteHistory(ctx context.Context, path string, entries []domain.HistoryEntry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create history file %s: %w", path, err)
	}
	defer file.Close()

	if err := r.EncodeHistory(ctx, file, entries); err != nil {
		return fmt.Errorf("failed to write history file %s: %w", path, err)
	}
	return file.Close()
}

// EncodeHistory writes a header row followed by one row per entry.
func (r *CSVHistoryRepository) EncodeHistory(_ context.Context, w io.Writer, entries []domain.HistoryEntry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(historyHeader); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Timestamp,
			strconv.FormatInt(e.TotalAmount, 10),
			strconv.FormatInt(e.TotalNotes, 10),
			e.Tally,
			strings.Join(e.Counts, countsSeparator),
			e.Details,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadHistory reads and parses a history file written by WriteHistory.
func (r *CSVHistoryRepository) ReadHistory(ctx context.Context, path string) ([]domain.HistoryEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file %s: %w", path, err)
	}
	defer file.Close()

	entries, err := r.DecodeHistory(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read history file %s: %w", path, err)
	}
	return entries, nil
}

// DecodeHistory parses CSV rows, skipping the header.
func (r *CSVHistoryRepository) DecodeHistory(_ context.Context, rd io.Reader) ([]domain.HistoryEntry, error) {
	reader := csv.NewReader(rd)
	reader.FieldsPerRecord = len(historyHeader)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var entries []domain.HistoryEntry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}

		id, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse id '%s': %w", record[0], err)
		}

		amount, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse total_amount '%s': %w", record[2], err)
		}

		notes, err := strconv.ParseInt(record[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse total_notes '%s': %w", record[3], err)
		}

		entries = append(entries, domain.HistoryEntry{
			ID:          id,
			Timestamp:   record[1],
			TotalAmount: amount,
			TotalNotes:  notes,
			Tally:       record[4],
			Counts:      strings.Split(record[5], countsSeparator),
			Details:     record[6],
		})
	}
	return entries, nil
}
