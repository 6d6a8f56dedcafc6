package impl

import (
	"log/slog"

	"pos/config"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/usecase"
)

type navigationService struct {
	rejectUnknown bool
	logger        *slog.Logger
}

// NewNavigationService creates the role routing use case.
func NewNavigationService(cfg *config.Config, logger *slog.Logger) usecase.NavigationUsecase {
	return &navigationService{
		rejectUnknown: cfg.Navigation.UnknownRole == config.UnknownRoleReject,
		logger:        logger,
	}
}

// Resolve returns the navigation for a session role.
func (s *navigationService) Resolve(role entity.Role) (*entity.Navigation, error) {
	if !role.IsValid() {
		if s.rejectUnknown {
			return nil, domainerrors.ErrRoleNotPermitted
		}
		s.logger.Debug("Unknown role, falling back to customer navigation", slog.String("role", role.String()))
	}

	return buildNavigation(role), nil
}

// Preview returns the navigation a role would get.
func (s *navigationService) Preview(role entity.Role) *entity.Navigation {
	return buildNavigation(role)
}

func buildNavigation(role entity.Role) *entity.Navigation {
	hrefs := make(map[entity.Tab]*string, len(entity.AllTabs()))
	for _, tab := range entity.AllTabs() {
		if href, ok := TabHref(role, tab); ok {
			hrefs[tab] = &href
		} else {
			hrefs[tab] = nil
		}
	}

	return &entity.Navigation{
		Role:         role,
		InitialRoute: InitialRouteForRole(role),
		Tabs:         TabsForRole(role),
		TabHrefs:     hrefs,
	}
}
