package controllers

import (
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/stylevault/app/repositories"
	"github.com/shashiranjanraj/stylevault/app/services"
	"github.com/shashiranjanraj/stylevault/pkg/response"
	"github.com/shashiranjanraj/stylevault/pkg/router"
)

type ProductController struct {
	service *services.CatalogService
}

func NewProductController(service *services.CatalogService) *ProductController {
	return &ProductController{service: service}
}

// List serves the catalog page. All filters arrive as query parameters;
// unparseable numeric values are ignored rather than rejected, so a bad
// minPrice degrades to an unfiltered listing.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repositories.ProductFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Size:     q.Get("size"),
	}
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		filter.MaxPrice = &v
	}

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := c.service.List(r.Context(), filter, page, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	response.OK(w, result)
}

func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	product, err := c.service.Get(r.Context(), router.Param(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	response.OK(w, product)
}
