package gateway

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"cashbook/internal/domain"
	"cashbook/internal/usecase"
)

// SystemClipboard writes to the OS clipboard and falls back to an OSC 52 escape
// sequence, which most terminal emulators turn into a clipboard write.
type SystemClipboard struct {
	terminal io.Writer
}

// NewSystemClipboard uses terminal for the fallback tier. A nil terminal disables it.
func NewSystemClipboard(terminal io.Writer) *SystemClipboard {
	return &SystemClipboard{terminal: terminal}
}

// TryPrimary uses the platform clipboard tool (pbcopy, xclip, xsel, wl-copy, clip.exe).
func (c *SystemClipboard) TryPrimary(_ context.Context, text string) error {
	if clipboard.Unsupported {
		return domain.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// TryFallback emits the text as an OSC 52 sequence on the terminal writer.
func (c *SystemClipboard) TryFallback(_ context.Context, text string) error {
	if c.terminal == nil {
		return domain.ErrClipboardUnavailable
	}
	if _, err := osc52.New(text).WriteTo(c.terminal); err != nil {
		return fmt.Errorf("terminal clipboard: %w", err)
	}
	return nil
}

var _ usecase.ClipboardWriter = (*SystemClipboard)(nil)
