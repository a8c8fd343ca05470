package domain

import "errors"

// Sentinel errors shared by the engines and their collaborators.
var (
	// ErrIndexOutOfRange is a programmer error: the denomination index is not in the table.
	ErrIndexOutOfRange = errors.New("cashbook: denomination index out of range")

	// ErrEntryNotFound is returned when a history entry id is not in the log.
	ErrEntryNotFound = errors.New("cashbook: history entry not found")

	// ErrKeyNotFound is returned by key-value stores when a key has never been set.
	ErrKeyNotFound = errors.New("cashbook: key not found")

	// ErrPersistence marks a failed durable write. The in-memory state stays authoritative.
	ErrPersistence = errors.New("cashbook: state not saved")

	// ErrCopyFailed is returned when neither clipboard tier accepted the text.
	ErrCopyFailed = errors.New("cashbook: copy failed")

	// ErrClipboardUnavailable is returned by a clipboard tier that cannot run on this platform.
	ErrClipboardUnavailable = errors.New("cashbook: clipboard not available")
)
