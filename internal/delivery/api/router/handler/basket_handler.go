package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pos/internal/delivery/api/middleware"
	"pos/internal/delivery/api/response"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BasketHandlerParams holds dependencies for BasketHandler, injected by Fx.
type BasketHandlerParams struct {
	fx.In

	BasketUC usecase.BasketUsecase
	Logger   *slog.Logger
}

// BasketHandler holds dependencies for basket handlers
type BasketHandler struct {
	basketUC usecase.BasketUsecase
	logger   *slog.Logger
}

// NewBasketHandler is the constructor for BasketHandler
func NewBasketHandler(params BasketHandlerParams) *BasketHandler {
	return &BasketHandler{
		basketUC: params.BasketUC,
		logger:   params.Logger,
	}
}

// AddBasketItemRequest represents the request body for adding a product to the basket
type AddBasketItemRequest struct {
	ProductID int     `json:"product_id" validate:"gte=0"`
	Name      string  `json:"name" validate:"required,max=200"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"gte=0"`
	Image     string  `json:"image" validate:"omitempty,max=2048"`
	Points    int     `json:"points" validate:"gte=0"`
}

// UpdateQuantityRequest represents the request body for changing a line quantity.
// A quantity of zero or less removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// RemoveSelectedRequest represents the request body for removing several lines
type RemoveSelectedRequest struct {
	IDs []int `json:"ids" validate:"required"`
}

// GetBasket returns the caller's basket and its summary.
func (h *BasketHandler) GetBasket(c echo.Context) error {
	owner, ok := basketOwner(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	basket, err := h.basketUC.GetBasket(c.Request().Context(), owner)
	if err != nil {
		return h.fail(c, "get", err)
	}

	return response.Success(c, http.StatusOK, basket)
}

// AddItem adds a product to the caller's basket.
func (h *BasketHandler) AddItem(c echo.Context) error {
	owner, ok := basketOwner(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddBasketItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid basket item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Validation(c, err)
	}

	basket, err := h.basketUC.AddToBasket(c.Request().Context(), owner, usecase.AddBasketItemInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Image:     req.Image,
		Points:    req.Points,
	})
	if err != nil {
		return h.fail(c, "add", err)
	}

	return response.Success(c, http.StatusOK, basket)
}

// UpdateQuantity sets the quantity of one line.
func (h *BasketHandler) UpdateQuantity(c echo.Context) error {
	owner, ok := basketOwner(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid basket item ID")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Validation(c, err)
	}

	basket, err := h.basketUC.UpdateQuantity(c.Request().Context(), owner, id, *req.Quantity)
	if err != nil {
		return h.fail(c, "update_quantity", err)
	}

	return response.Success(c, http.StatusOK, basket)
}

// RemoveItem removes one line from the basket.
func (h *BasketHandler) RemoveItem(c echo.Context) error {
	owner, ok := basketOwner(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid basket item ID")
	}

	basket, err := h.basketUC.RemoveFromBasket(c.Request().Context(), owner, id)
	if err != nil {
		return h.fail(c, "remove", err)
	}

	return response.Success(c, http.StatusOK, basket)
}

// RemoveSelected removes several lines from the basket.
func (h *BasketHandler) RemoveSelected(c echo.Context) error {
	owner, ok := basketOwner(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RemoveSelectedRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid selection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Validation(c, err)
	}

	basket, err := h.basketUC.RemoveSelectedItems(c.Request().Context(), owner, req.IDs)
	if err != nil {
		return h.fail(c, "remove_selected", err)
	}

	return response.Success(c, http.StatusOK, basket)
}

// ClearBasket empties the basket.
func (h *BasketHandler) ClearBasket(c echo.Context) error {
	owner, ok := basketOwner(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	basket, err := h.basketUC.ClearBasket(c.Request().Context(), owner)
	if err != nil {
		return h.fail(c, "clear", err)
	}

	return response.Success(c, http.StatusOK, basket)
}

// fail logs a rejected basket operation and writes the error envelope.
func (h *BasketHandler) fail(c echo.Context, op string, err error) error {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Basket operation failed",
		slog.String("op", op),
		slog.Any("error", err),
	)

	return response.HandleAppError(c, err)
}

// basketOwner keys baskets by the authenticated user.
func basketOwner(c echo.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return "", false
	}

	return userID.String(), true
}
