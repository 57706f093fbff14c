package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedFathyMohamed10/crm-system/app/models"
	"github.com/AhmedFathyMohamed10/crm-system/app/services"
)

func productNames(ps []models.Product) []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

func TestSearchReturnsMatchingProducts(t *testing.T) {
	setupDB(t)
	svc := services.NewProductService()

	createProduct(t, "Ball")
	createProduct(t, "Beach Ball")
	createProduct(t, "Grill")
	// A customer with a matching name must never surface through product
	// search.
	createCustomer(t, "Ball Fan")

	got, err := svc.Search("Ball")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Ball", "Beach Ball"}, productNames(got))
}

func TestSearchMatchesSubstringCaseSensitively(t *testing.T) {
	setupDB(t)
	svc := services.NewProductService()

	createProduct(t, "Beach Ball")
	createProduct(t, "ballpoint pen")
	createProduct(t, "Football")

	// "Ball" matches anywhere in the name but never across case.
	got, err := svc.Search("Ball")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Beach Ball", "Football"}, productNames(got))

	got, err = svc.Search("ball")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ballpoint pen"}, productNames(got))
}

func TestSearchEmptyFragmentMatchesAll(t *testing.T) {
	setupDB(t)
	svc := services.NewProductService()

	createProduct(t, "Ball")
	createProduct(t, "Grill")

	got, err := svc.Search("")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSearchNoMatches(t *testing.T) {
	setupDB(t)
	svc := services.NewProductService()

	createProduct(t, "Ball")

	got, err := svc.Search("zzz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListReturnsFullCatalogue(t *testing.T) {
	setupDB(t)
	svc := services.NewProductService()

	createProduct(t, "Ball")
	createProduct(t, "Grill")

	got, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
