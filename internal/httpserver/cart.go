package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crickmart/backend/internal/events"
	"github.com/crickmart/backend/internal/logging"
	"github.com/crickmart/backend/internal/service"
	"github.com/crickmart/backend/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	userID, ok := userIDFromContext(c)
	if !ok {
		l.Warn("add_to_cart_error", "status", 401)
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	var req transport.AddCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	productID, pErr := transport.Int64Value(req.ProductID)
	quantity, qErr := transport.Int64Value(req.Quantity)
	if pErr != nil || qErr != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "non-numeric input")
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid product or quantity"})
	}

	res, err := h.Svc.AddToCart(ctx, userID, productID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_to_cart_error", "status", 400, "reason", "invalid input")
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid product or quantity"})
		case errors.Is(err, service.ErrProductNotFound):
			l.Warn("add_to_cart_error", "status", 404, "reason", "product not found")
			return c.JSON(http.StatusNotFound, transport.ErrorResponse{Error: "product not found"})
		default:
			l.Error("add_to_cart_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
		}
	}

	publish(c, h.Producer, events.TopicCartEvents, userID, map[string]any{
		"type":       "cart_item_added",
		"user_id":    userID,
		"product_id": res.Item.ProductID,
		"quantity":   res.Item.Quantity,
	})

	if res.Created {
		l.Info("add_to_cart_success", "user_id", userID, "created", true)
		return c.JSON(http.StatusCreated, transport.CartItemResponse{
			Message:  "product added to cart",
			CartItem: res.Item,
		})
	}

	l.Info("add_to_cart_success", "user_id", userID, "created", false)
	return c.JSON(http.StatusOK, transport.CartItemResponse{
		Message:  "cart updated",
		CartItem: res.Item,
	})
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, ok := userIDFromContext(c)
	if !ok {
		l.Warn("get_cart_error", "status", 401)
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	items, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]any{"cart_items": items})
}
