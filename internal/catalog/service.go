// AngelaMos | 2026
// service.go

package catalog

import (
	"context"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// GetCreator looks up a creator by exact username. Callers strip any
// leading "@" before the lookup; no other normalization is applied.
func (s *Service) GetCreator(
	ctx context.Context,
	username string,
) (*Creator, error) {
	return s.store.Get(ctx, username)
}

// UpdateSettings merges only the flags present in the patch into the
// creator's settings and returns the updated profile.
func (s *Service) UpdateSettings(
	ctx context.Context,
	username string,
	patch SettingsPatch,
) (*Creator, error) {
	creator, err := s.store.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	patch.Apply(&creator.Settings)

	if err := s.store.Update(ctx, creator); err != nil {
		return nil, err
	}

	return creator, nil
}
