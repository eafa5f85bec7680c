package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/minimal-wallet/internal/common"
	"github.com/Veraticus/minimal-wallet/internal/model"
)

// validateContext ensures the context is usable.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return common.ErrNilContext
	}
	return ctx.Err()
}

// validateEntry checks the rules a newly entered transaction must satisfy.
// Bulk replacement deliberately skips this.
func validateEntry(e model.Entry) error {
	if !e.Type.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidType, e.Type)
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", common.ErrInvalidAmount, e.Amount.String())
	}
	return nil
}

// blank reports whether s has no visible characters.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
