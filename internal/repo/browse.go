package repo

import (
	"strings"

	"gorm.io/gorm"

	"storefront/internal/apperr"
	"storefront/internal/models"
)

// The three browse queries run inside a transaction for read consistency,
// mirroring the writes elsewhere in the schema.

// LowerPriced returns products sharing p's name with a strictly lower price,
// scoped to p's own store. Equal prices are excluded.
func (r *Repo) LowerPriced(p models.Product) ([]models.Product, error) {
	var ps []models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("name = ? AND price < ? AND store_id = ?", p.Name, p.Price, p.StoreID).
			Order("price").
			Find(&ps).Error
	})
	if err != nil {
		return nil, apperr.Wrap("compare prices", err)
	}
	return ps, nil
}

// ProductsForCategory filters by exact category name; empty name means all
// products. An unmatched name yields an empty list.
func (r *Repo) ProductsForCategory(name string) ([]models.Product, error) {
	var ps []models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		q := tx.Order("products.id desc")
		if name != "" {
			q = q.
				Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.name = ?", name)
		}
		return q.Find(&ps).Error
	})
	if err != nil {
		return nil, apperr.Wrap("filter by category", err)
	}
	return ps, nil
}

// SearchProducts matches a case-insensitive substring of the product name.
// Empty and absent queries both return everything.
func (r *Repo) SearchProducts(query string) ([]models.Product, error) {
	var ps []models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		q := tx.Order("id desc")
		if query != "" {
			pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
			q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
		}
		return q.Find(&ps).Error
	})
	if err != nil {
		return nil, apperr.Wrap("search products", err)
	}
	return ps, nil
}

// escapeLike quotes LIKE metacharacters so the query matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
