package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/smartreturn/storefront-service/internal/repository"
)

// DefaultTheme is served when an owner has no stored preference.
const DefaultTheme = "light"

// PreferencesService stores per-owner presentation preferences. Currently
// the only slot is the theme.
type PreferencesService interface {
	GetTheme(ctx context.Context, ownerID string) (string, error)
	SetTheme(ctx context.Context, ownerID, theme string) error
}

// PreferencesServiceImpl implements PreferencesService with best-effort
// persistence backed by an in-memory overlay.
type PreferencesServiceImpl struct {
	mu     sync.RWMutex
	themes map[string]string
	repo   repository.PreferencesRepositoryInterface
}

// NewPreferencesService creates a new preferences service. The repository
// may be nil; preferences are then memory-only.
func NewPreferencesService(repo repository.PreferencesRepositoryInterface) *PreferencesServiceImpl {
	return &PreferencesServiceImpl{
		themes: make(map[string]string),
		repo:   repo,
	}
}

// GetTheme returns the owner's theme, falling back to the default when
// nothing is stored or the repository read fails.
func (s *PreferencesServiceImpl) GetTheme(ctx context.Context, ownerID string) (string, error) {
	s.mu.RLock()
	theme, ok := s.themes[ownerID]
	s.mu.RUnlock()
	if ok {
		return theme, nil
	}

	if s.repo == nil {
		return DefaultTheme, nil
	}

	theme, err := s.repo.GetTheme(ctx, ownerID)
	if err == repository.ErrNotFound {
		return DefaultTheme, nil
	}
	if err != nil {
		log.Warn().Err(err).Str("owner_id", ownerID).Msg("Failed to read theme preference")
		return DefaultTheme, nil
	}

	s.mu.Lock()
	s.themes[ownerID] = theme
	s.mu.Unlock()
	return theme, nil
}

// SetTheme stores the owner's theme. A failed repository write keeps the
// in-memory value and is not surfaced as an error.
func (s *PreferencesServiceImpl) SetTheme(ctx context.Context, ownerID, theme string) error {
	s.mu.Lock()
	s.themes[ownerID] = theme
	s.mu.Unlock()

	if s.repo == nil {
		return nil
	}
	if err := s.repo.SetTheme(ctx, ownerID, theme); err != nil {
		log.Warn().Err(err).Str("owner_id", ownerID).Msg("Failed to persist theme preference")
	}
	return nil
}
