package domain

// TimestampLayout renders history timestamps the en-IN way, e.g. "19/10/2026, 3:04 pm".
const TimestampLayout = "02/01/2006, 3:04 pm"

// LedgerState is the editable part of a cash count. Counts are index-aligned with
// the denomination table; "" means unset and counts as zero.
type LedgerState struct {
	Counts []string `json:"counts"`
	Tally  string   `json:"tally"`
}

// HistoryEntry is an immutable snapshot taken when a count is exported.
// The JSON shape matches what earlier versions kept under the cashHistory key.
type HistoryEntry struct {
	ID          int64    `json:"id" yaml:"id"`
	Timestamp   string   `json:"timestamp" yaml:"timestamp"`
	Counts      []string `json:"counts" yaml:"counts"`
	TotalAmount int64    `json:"totalAmount" yaml:"total_amount"`
	TotalNotes  int64    `json:"totalNotes" yaml:"total_notes"`
	Tally       string   `json:"tally" yaml:"tally"`
	Details     string   `json:"details" yaml:"details"`
}

// ExportResult reports the two independent side effects of an export.
type ExportResult struct {
	Text       string
	Entry      HistoryEntry
	PersistErr error // history append could not be saved
	CopyErr    error // neither clipboard tier accepted the text
}
