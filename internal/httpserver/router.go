package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crickmart/backend/internal/middleware"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Backend is up and running"})
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api/v1")

	api.POST("/register", d.AuthHandler.Register)
	api.POST("/login", d.AuthHandler.Login)

	authed := api.Group("", middleware.RequireLogin(d.JWTSecret))

	authed.POST("/products", d.ProductHandler.CreateProduct)
	authed.GET("/products", d.ProductHandler.GetProducts)
	authed.GET("/products/search", d.ProductHandler.SearchProducts)

	authed.POST("/cart", d.CartHandler.AddToCart)
	authed.GET("/cart", d.CartHandler.GetCart)
}
