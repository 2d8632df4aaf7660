package transport

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/crickmart/backend/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserInfo struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	AssignedTeam string `json:"assigned_team"`
}

type AuthResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
	Token   string   `json:"token"`
}

func NewUserInfo(u *models.User) UserInfo {
	return UserInfo{ID: u.ID, Name: u.Name, AssignedTeam: u.AssignedTeam}
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

// AddCartRequest keeps product_id and quantity loose: clients send them as
// JSON numbers or numeric strings.
type AddCartRequest struct {
	ProductID any `json:"product_id"`
	Quantity  any `json:"quantity"`
}

type CartItemResponse struct {
	Message  string           `json:"message"`
	CartItem *models.CartItem `json:"cart_item"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Int64Value coerces a decoded JSON value to an integer.
func Int64Value(v any) (int64, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int64(n), nil
	case json.Number:
		return n.Int64()
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", n)
		}
		return i, nil
	case nil:
		return 0, fmt.Errorf("value is missing")
	default:
		return 0, fmt.Errorf("%T is not a number", v)
	}
}
