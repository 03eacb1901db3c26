// Package focus implements the daily focus selection: a small, size-diverse
// sample of a user's pending tasks. Selection is ephemeral; nothing about a
// task changes when it is selected, and every call may return a different
// set.
package focus

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/domain"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/store"
)

// SelectionSize is the number of tasks a focus selection aims for. Fewer
// are returned only when the user has fewer pending tasks.
const SelectionSize = 3

// Selector draws focus selections from a user's pending tasks.
type Selector struct {
	taskStore store.TaskStore
	rng       *rand.Rand
	logger    *slog.Logger
}

// NewSelector creates a new Selector backed by the given task store.
// rng drives the random draws; pass a seeded source in tests for
// deterministic selections. If rng is nil a time-seeded source is used.
// If logger is nil, a default logger will be used.
func NewSelector(taskStore store.TaskStore, rng *rand.Rand, logger *slog.Logger) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Selector{
		taskStore: taskStore,
		rng:       rng,
		logger:    logger.With(slog.String("component", "focus_selector")),
	}
}

// Select returns up to SelectionSize of the user's pending tasks, chosen to
// span as many distinct sizes as possible: one task is drawn uniformly at
// random from each size bucket that has any pending tasks, then the
// selection is filled from the remaining pending tasks in random order.
// No task appears twice. An empty pending list yields an empty selection.
func (s *Selector) Select(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	pending, err := s.taskStore.ListByStatus(ctx, userID, domain.TaskStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending tasks: %w", err)
	}

	return s.pick(pending), nil
}

// pick applies the bucket-then-fill draw to the given pending tasks.
func (s *Selector) pick(pending []*domain.Task) []*domain.Task {
	if len(pending) == 0 {
		return []*domain.Task{}
	}

	buckets := make(map[domain.TaskSize][]*domain.Task)
	for _, t := range pending {
		buckets[t.Size] = append(buckets[t.Size], t)
	}

	selected := make([]*domain.Task, 0, SelectionSize)
	chosen := make(map[int64]bool)

	// One representative per non-empty bucket, in a fixed bucket order so
	// only the within-bucket draw is random.
	for _, size := range []domain.TaskSize{domain.TaskSizeTiny, domain.TaskSizeMedium, domain.TaskSizeBig} {
		bucket := buckets[size]
		if len(bucket) == 0 || len(selected) == SelectionSize {
			continue
		}
		t := bucket[s.rng.Intn(len(bucket))]
		selected = append(selected, t)
		chosen[t.ID] = true
	}

	if len(selected) < SelectionSize {
		rest := make([]*domain.Task, 0, len(pending)-len(selected))
		for _, t := range pending {
			if !chosen[t.ID] {
				rest = append(rest, t)
			}
		}
		s.rng.Shuffle(len(rest), func(i, j int) {
			rest[i], rest[j] = rest[j], rest[i]
		})
		for _, t := range rest {
			if len(selected) == SelectionSize {
				break
			}
			selected = append(selected, t)
		}
	}

	return selected
}
