package handler

import (
	"log/slog"
	"net/http"

	"pos/internal/delivery/api/middleware"
	"pos/internal/delivery/api/response"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
	Logger       *slog.Logger
}

// NavigationHandler serves role based navigation.
type NavigationHandler struct {
	navigationUC usecase.NavigationUsecase
	logger       *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{
		navigationUC: params.NavigationUC,
		logger:       params.Logger,
	}
}

// GetNavigation returns the initial route and visible tabs of the caller.
func (h *NavigationHandler) GetNavigation(c echo.Context) error {
	role, ok := middleware.GetRole(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Role missing from session")
	}

	navigation, err := h.navigationUC.Resolve(role)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Navigation denied",
			slog.String("role", string(role)),
			slog.Any("error", err),
		)

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, navigation)
}

// PreviewNavigation returns the navigation of the role in the path. Unrecognized roles
// preview the fallback navigation.
func (h *NavigationHandler) PreviewNavigation(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.navigationUC.Preview(entity.ParseRole(c.Param("role"))))
}
