package repo

import (
	"storefront/internal/apperr"
	"storefront/internal/models"
)

// ProductInStore looks a product up by its own id and its parent store id.
// A mismatch on either key is plain not-found; ownership is checked
// separately by OwnedProduct.
func (r *Repo) ProductInStore(storeID, productID uint) (models.Product, error) {
	var p models.Product
	err := r.db.First(&p, "id = ? AND store_id = ?", productID, storeID).Error
	if err != nil {
		return p, notFoundOr("product not found", err)
	}
	return p, nil
}

// OwnedProduct is the mutation guard: dual-key lookup first (absent → 404),
// then the store owner compare (mismatch → 403).
func (r *Repo) OwnedProduct(storeID, productID, userID uint) (models.Product, error) {
	p, err := r.ProductInStore(storeID, productID)
	if err != nil {
		return p, err
	}
	if _, err := r.StoreOwnedBy(storeID, userID); err != nil {
		return p, err
	}
	return p, nil
}

func (r *Repo) CreateProduct(p *models.Product) error {
	if err := r.db.Create(p).Error; err != nil {
		return apperr.Wrap("create product", err)
	}
	return nil
}

func (r *Repo) UpdateProduct(p *models.Product) error {
	if err := r.db.Save(p).Error; err != nil {
		return apperr.Wrap("update product", err)
	}
	return nil
}

func (r *Repo) DeleteProduct(p *models.Product) error {
	if err := r.db.Delete(p).Error; err != nil {
		return apperr.Wrap("delete product", err)
	}
	return nil
}

func (r *Repo) ProductsForStore(storeID uint) ([]models.Product, error) {
	var ps []models.Product
	err := r.db.Where("store_id = ?", storeID).Order("id desc").Find(&ps).Error
	if err != nil {
		return nil, apperr.Wrap("list store products", err)
	}
	return ps, nil
}
