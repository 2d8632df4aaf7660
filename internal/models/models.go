package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name         string `gorm:"not null"                  json:"name"`
	Email        string `gorm:"uniqueIndex;not null"      json:"email"`
	PasswordHash string `gorm:"not null"                  json:"-"`
	AssignedTeam string `gorm:"not null"                  json:"assigned_team"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string  `gorm:"not null"                  json:"name"`
	Description string  `gorm:"not null"                  json:"description"`
	Price       float64 `gorm:"not null"                  json:"price"`
	ImageURL    string  `gorm:"not null"                  json:"image_url"`
}

// One row per (user, product); add-to-cart only ever grows Quantity.
type CartItem struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"                json:"id"`
	UserID    uint     `gorm:"uniqueIndex:idx_user_product;not null"   json:"user_id"`
	ProductID uint     `gorm:"uniqueIndex:idx_user_product;not null"   json:"product_id"`
	Quantity  int64    `gorm:"default:1;check:quantity>0"              json:"quantity"`
	Product   *Product `gorm:"foreignKey:ProductID"                    json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
