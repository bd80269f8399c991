package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/notice-board/internal/domain"
)

// Seed writes initial values for any of the three collection keys that are
// absent: the default category list and empty user/notice sequences. Existing
// data is never overwritten, so running Seed again is a no-op. It must run
// before any repository operation.
func Seed(ctx context.Context, store Store, logger *zap.Logger) error {
	seeded := 0

	var categories []string
	ok, err := store.Read(ctx, KeyCategories, &categories)
	if err != nil {
		return fmt.Errorf("read %s: %w", KeyCategories, err)
	}
	if !ok {
		if err := store.Write(ctx, KeyCategories, domain.DefaultCategories()); err != nil {
			return fmt.Errorf("seed %s: %w", KeyCategories, err)
		}
		seeded++
	}

	var users []json.RawMessage
	ok, err = store.Read(ctx, KeyUsers, &users)
	if err != nil {
		return fmt.Errorf("read %s: %w", KeyUsers, err)
	}
	if !ok {
		if err := store.Write(ctx, KeyUsers, []domain.User{}); err != nil {
			return fmt.Errorf("seed %s: %w", KeyUsers, err)
		}
		seeded++
	}

	var notices []json.RawMessage
	ok, err = store.Read(ctx, KeyNotices, &notices)
	if err != nil {
		return fmt.Errorf("read %s: %w", KeyNotices, err)
	}
	if !ok {
		if err := store.Write(ctx, KeyNotices, []domain.Notice{}); err != nil {
			return fmt.Errorf("seed %s: %w", KeyNotices, err)
		}
		seeded++
	}

	logger.Info("store seeded", zap.Int("keys_written", seeded))
	return nil
}
