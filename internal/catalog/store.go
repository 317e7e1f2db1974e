// AngelaMos | 2026
// store.go

package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/carterperez-dev/creatorcash/internal/core"
)

type Store interface {
	Get(ctx context.Context, username string) (*Creator, error)
	Update(ctx context.Context, creator *Creator) error
}

// MemoryStore holds the seeded creator profiles. Reads return deep copies so
// callers never share mutable state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	creators map[string]*Creator
}

func NewMemoryStore(creators ...*Creator) *MemoryStore {
	s := &MemoryStore{creators: make(map[string]*Creator, len(creators))}
	for _, c := range creators {
		s.creators[c.Username] = c
	}
	return s
}

func (s *MemoryStore) Get(
	ctx context.Context,
	username string,
) (*Creator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	creator, ok := s.creators[username]
	if !ok {
		return nil, fmt.Errorf("get creator %q: %w", username, core.ErrNotFound)
	}

	return copyCreator(creator), nil
}

func (s *MemoryStore) Update(ctx context.Context, creator *Creator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.creators[creator.Username]; !ok {
		return fmt.Errorf(
			"update creator %q: %w",
			creator.Username,
			core.ErrNotFound,
		)
	}

	s.creators[creator.Username] = copyCreator(creator)
	return nil
}

func copyCreator(c *Creator) *Creator {
	dup := *c

	dup.QuestionResponseOptions = append(
		[]QuestionResponseOption(nil),
		c.QuestionResponseOptions...,
	)
	dup.Products = append([]Product(nil), c.Products...)
	dup.ShoutoutOptions = append([]ShoutoutOption(nil), c.ShoutoutOptions...)
	dup.HireServices = append([]HireService(nil), c.HireServices...)
	dup.Favorites = append([]Favorite(nil), c.Favorites...)

	dup.PrivateGroups = make([]PrivateGroup, len(c.PrivateGroups))
	for i, g := range c.PrivateGroups {
		g.Benefits = append([]string(nil), g.Benefits...)
		dup.PrivateGroups[i] = g
	}

	if c.WaitlistConfig != nil {
		wc := *c.WaitlistConfig
		wc.InterestCategories = append(
			[]string(nil),
			c.WaitlistConfig.InterestCategories...,
		)
		wc.CustomQuestions = append(
			[]CustomQuestion(nil),
			c.WaitlistConfig.CustomQuestions...,
		)
		dup.WaitlistConfig = &wc
	}

	return &dup
}
