package services

import (
	"strings"

	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/app/repositories"
)

type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{products: repositories.NewProductRepository()}
}

// List returns the full catalogue with tags loaded.
func (s *ProductService) List() ([]models.Product, error) {
	return s.products.All()
}

// Search returns products whose name contains the fragment, matched
// case-sensitively. An empty fragment matches every product.
func (s *ProductService) Search(fragment string) ([]models.Product, error) {
	if fragment == "" {
		return s.products.All()
	}

	// The LIKE prefilter may overmatch on case-insensitive collations, so the
	// exact containment check runs here.
	candidates, err := s.products.SearchByName(fragment)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Product, 0, len(candidates))
	for _, p := range candidates {
		if strings.Contains(p.Name, fragment) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
