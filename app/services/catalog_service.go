package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/stylevault/app/models"
	"github.com/shashiranjanraj/stylevault/app/repositories"
	"github.com/shashiranjanraj/stylevault/pkg/cache"
	"github.com/shashiranjanraj/stylevault/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPage  = 1
	defaultLimit = 12

	listCacheTTL    = time.Minute
	productCacheTTL = 10 * time.Minute
)

// ProductPage is the catalog listing response.
type ProductPage struct {
	Products      []models.Product `json:"products"`
	CurrentPage   int              `json:"currentPage"`
	TotalPages    int              `json:"totalPages"`
	TotalProducts int64            `json:"totalProducts"`
	HasMore       bool             `json:"hasMore"`
}

// CatalogService serves filtered, paginated product queries. The catalog is
// read-only from the API, so results are cached in Redis with short TTLs;
// a nil cache disables caching entirely.
type CatalogService struct {
	products repositories.ProductStore
	cache    *cache.Cache
}

func NewCatalogService(products repositories.ProductStore, c *cache.Cache) *CatalogService {
	return &CatalogService{products: products, cache: c}
}

// List returns one page of products, newest first. Out-of-range page and
// limit values fall back to the defaults rather than erroring.
func (s *CatalogService) List(ctx context.Context, f repositories.ProductFilter, page, limit int) (*ProductPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	key := listCacheKey(f, page, limit)
	var cached ProductPage
	if s.cache.Get(ctx, key, &cached) {
		metrics.CatalogCache.WithLabelValues("hit").Inc()
		return &cached, nil
	}
	metrics.CatalogCache.WithLabelValues("miss").Inc()

	skip := int64(page-1) * int64(limit)

	products, err := s.products.Find(ctx, f, skip, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	total, err := s.products.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("catalog: count: %w", err)
	}

	result := &ProductPage{
		Products:      products,
		CurrentPage:   page,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
		TotalProducts: total,
		HasMore:       skip+int64(len(products)) < total,
	}

	// Cache failures never fail a read.
	_ = s.cache.Set(ctx, key, result, listCacheTTL)
	return result, nil
}

// Get returns one product by its hex id. A malformed id behaves like a
// missing product.
func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NotFound("Product not found")
	}

	key := "products:id:" + id
	var cached models.Product
	if s.cache.Get(ctx, key, &cached) {
		metrics.CatalogCache.WithLabelValues("hit").Inc()
		return &cached, nil
	}
	metrics.CatalogCache.WithLabelValues("miss").Inc()

	product, err := s.products.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("catalog: get: %w", err)
	}
	if product == nil {
		return nil, NotFound("Product not found")
	}

	_ = s.cache.Set(ctx, key, product, productCacheTTL)
	return product, nil
}

func listCacheKey(f repositories.ProductFilter, page, limit int) string {
	min, max := "", ""
	if f.MinPrice != nil {
		min = fmt.Sprintf("%g", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		max = fmt.Sprintf("%g", *f.MaxPrice)
	}
	return fmt.Sprintf("products:list:%s|%s|%s|%s|%s|%d|%d",
		f.Search, f.Category, f.Size, min, max, page, limit)
}
