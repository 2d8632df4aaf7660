package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crickmart/backend/internal/events"
	"github.com/crickmart/backend/internal/logging"
	"github.com/crickmart/backend/internal/search"
	"github.com/crickmart/backend/internal/service"
	"github.com/crickmart/backend/internal/transport"
	"github.com/crickmart/backend/internal/util"
)

type ProductHTTP struct {
	Svc      *service.CatalogService
	Producer *events.Producer
	Search   *search.Client
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	product, err := h.Svc.CreateProduct(ctx, req.Name, req.Description, req.Price, req.ImageURL)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("product_create_error", "status", 400, "reason", "missing fields")
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "all fields are required"})
		}
		l.Error("product_create_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	if h.Search != nil {
		if err := h.Search.IndexProduct(ctx, product); err != nil {
			l.Error("product_index_error", "product_id", product.ID, "error", err)
		}
	}

	publish(c, h.Producer, events.TopicProductEvents, product.ID, map[string]any{
		"type":       "product_created",
		"product_id": product.ID,
		"name":       product.Name,
	})

	l.Info("product_create_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "product added successfully",
		"product": product,
	})
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	items, err := h.Svc.ListProducts(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoProducts) {
			l.Warn("product_list_error", "status", 404, "reason", "catalog empty")
			return c.JSON(http.StatusNotFound, transport.ErrorResponse{Error: "no products found"})
		}
		l.Error("product_list_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]any{"products": items})
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	if h.Search == nil {
		return c.JSON(http.StatusServiceUnavailable, transport.ErrorResponse{Error: "search is not configured"})
	}

	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "query parameter q is required"})
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, products, err := h.Search.Search(ctx, q, from, limit)
	if err != nil {
		l.Error("product_search_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]any{"total": total, "products": products})
}
