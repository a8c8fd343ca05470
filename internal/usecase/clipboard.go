package usecase

import (
	"context"
	"errors"
	"fmt"

	"cashbook/internal/domain"
)

// CopyText places text on the clipboard, trying the primary mechanism first and
// the fallback second. The returned error wraps domain.ErrCopyFailed and both causes.
func CopyText(ctx context.Context, w ClipboardWriter, text string) error {
	if w == nil {
		return fmt.Errorf("%w: %w", domain.ErrCopyFailed, domain.ErrClipboardUnavailable)
	}

	primaryErr := w.TryPrimary(ctx, text)
	if primaryErr == nil {
		return nil
	}

	fallbackErr := w.TryFallback(ctx, text)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", domain.ErrCopyFailed, errors.Join(
		fmt.Errorf("primary: %w", primaryErr),
		fmt.Errorf("fallback: %w", fallbackErr),
	))
}
