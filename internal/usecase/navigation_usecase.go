package usecase

import "pos/internal/domain/entity"

// NavigationUsecase derives what a signed-in user lands on and which tabs they see.
type NavigationUsecase interface {
	// Resolve returns the navigation for a session role, applying the unknown-role policy.
	Resolve(role entity.Role) (*entity.Navigation, error)

	// Preview returns the navigation a role would get, without applying any policy.
	Preview(role entity.Role) *entity.Navigation
}
