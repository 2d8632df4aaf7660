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

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *events.Producer
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	res, err := h.Svc.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("register_error", "status", 400, "reason", "missing fields")
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "all fields are required"})
		case errors.Is(err, service.ErrEmailTaken):
			l.Warn("register_error", "status", 400, "reason", "duplicate email")
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "email is already registered"})
		default:
			l.Error("register_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
		}
	}

	publish(c, h.Producer, events.TopicUserEvents, res.User.ID, map[string]any{
		"type":          "user_registered",
		"user_id":       res.User.ID,
		"assigned_team": res.User.AssignedTeam,
	})

	l.Info("register_success", "user_id", res.User.ID)
	return c.JSON(http.StatusCreated, transport.AuthResponse{
		Message: "registration successful",
		User:    transport.NewUserInfo(res.User),
		Token:   res.Token,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("login_error", "status", 400, "reason", "missing fields")
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "email and password are required"})
		case errors.Is(err, service.ErrInvalidCredentials):
			l.Warn("login_error", "status", 401, "reason", "bad credentials")
			return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "invalid email or password"})
		default:
			l.Error("login_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
		}
	}

	publish(c, h.Producer, events.TopicUserEvents, res.User.ID, map[string]any{
		"type":    "user_logged_in",
		"user_id": res.User.ID,
	})

	l.Info("login_success", "user_id", res.User.ID)
	return c.JSON(http.StatusOK, transport.AuthResponse{
		Message: "login successful",
		User:    transport.NewUserInfo(res.User),
		Token:   res.Token,
	})
}
