package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/crickmart/backend/internal/models"
)

// UpsertCartItem adds qty to the user's row for the product, creating the
// row if absent. Two requests can both observe "absent"; the insert carries
// an ON CONFLICT increment so the (user_id, product_id) unique index stays
// the final arbiter and neither request loses its quantity.
// created reports whether this call inserted the row.
func (r *GormRepo) UpsertCartItem(ctx context.Context, userID, productID uint, qty int64) (*models.CartItem, bool, error) {
	var item models.CartItem
	created := false

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Update("quantity", gorm.Expr("quantity + ?", qty))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			fresh := models.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
			if err := tx.Omit(clause.Associations).
				Clauses(clause.OnConflict{
					Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
					DoUpdates: clause.Assignments(map[string]any{
						"quantity": gorm.Expr("quantity + excluded.quantity"),
					}),
				}).
				Create(&fresh).Error; err != nil {
				return err
			}
			created = true
		}

		if err := tx.Where("user_id = ? AND product_id = ?", userID, productID).
			First(&item).Error; err != nil {
			return err
		}
		// A concurrent insert won the race when the "insert" landed as an
		// increment; report updated, not created.
		if created && item.Quantity != qty {
			created = false
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &item, created, nil
}

func (r *GormRepo) CartForUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
