package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyToClipboard places the artifact on the system clipboard.
func CopyToClipboard(artifact string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("failed to copy: no clipboard utility available")
	}
	if err := clipboard.WriteAll(artifact); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}
	return nil
}
