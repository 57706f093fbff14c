package controllers

import (
	"net/http"

	"github.com/AhmedFathyMohamed10/crm-system/app/services"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/view"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{products: services.NewProductService()}
}

// Index lists the full product catalogue.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.List()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(w, r, http.StatusOK, "products", view.Data{
		"Title":    "Products",
		"Products": products,
	})
}

// Search renders the product search page. GET shows the empty form; POST
// runs the name search and shows the matches with their count.
func (c *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	data := view.Data{"Title": "Search Products", "Searched": false, "Query": ""}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		query := r.PostFormValue("query")

		products, err := c.products.Search(query)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		data["Searched"] = true
		data["Query"] = query
		data["Products"] = products
		data["Count"] = len(products)
	}

	render(w, r, http.StatusOK, "search", data)
}
