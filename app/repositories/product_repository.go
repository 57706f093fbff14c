package repositories

import (
	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/orm"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// All returns every product with tags loaded, ordered by name.
func (r *ProductRepository) All() ([]models.Product, error) {
	var ps []models.Product
	err := orm.DB().Model(&models.Product{}).Preload("Tags").Order("name asc").Get(&ps)
	return ps, err
}

// SearchByName returns products whose name may contain the fragment. The
// LIKE match is a broad prefilter; callers apply the exact case-sensitive
// containment check.
func (r *ProductRepository) SearchByName(fragment string) ([]models.Product, error) {
	var ps []models.Product
	err := orm.DB().Model(&models.Product{}).
		Preload("Tags").
		Where("name LIKE ?", "%"+fragment+"%").
		Order("name asc").
		Get(&ps)
	return ps, err
}

// Count returns the total number of products.
func (r *ProductRepository) Count() (int64, error) {
	return orm.DB().Model(&models.Product{}).Count()
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var p models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&p)
	return p, err
}

// Create persists a new product.
func (r *ProductRepository) Create(p *models.Product) error {
	return orm.DB().Create(p)
}
