package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shashiranjanraj/stylevault/app/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory store implementations. They back the test suites and are handy
// for running the server without a MongoDB instance; behavior mirrors the
// Mongo repositories (including the (nil, nil) not-found convention).

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: map[primitive.ObjectID]models.User{}}
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[id]; ok {
		user := u
		return &user, nil
	}
	return nil, nil
}

func (s *MemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID] = *user
	return nil
}

type MemoryProductStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{}
}

// Add inserts a product, assigning an id when absent.
func (s *MemoryProductStore) Add(product models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	s.products = append(s.products, product)
	return product
}

func matches(p models.Product, f ProductFilter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Size != "" && !p.HasSize(f.Size) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

func (s *MemoryProductStore) Find(_ context.Context, f ProductFilter, skip, limit int64) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Product{}
	for _, p := range s.products {
		if matches(p, f) {
			matched = append(matched, p)
		}
	}

	// Newest first, as the Mongo repository sorts.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if skip >= int64(len(matched)) {
		return []models.Product{}, nil
	}
	matched = matched[skip:]
	if limit > 0 && int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *MemoryProductStore) Count(_ context.Context, f ProductFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, p := range s.products {
		if matches(p, f) {
			total++
		}
	}
	return total, nil
}

func (s *MemoryProductStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, nil
}

type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[primitive.ObjectID]models.Cart // keyed by owning user
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: map[primitive.ObjectID]models.Cart{}}
}

func copyCart(c models.Cart) models.Cart {
	c.Items = append([]models.CartItem{}, c.Items...)
	return c
}

func (s *MemoryCartStore) FindByUser(_ context.Context, user primitive.ObjectID) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.carts[user]; ok {
		cart := copyCart(c)
		return &cart, nil
	}
	return nil, nil
}

func (s *MemoryCartStore) Create(_ context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	s.carts[cart.User] = copyCart(*cart)
	return nil
}

func (s *MemoryCartStore) Save(_ context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cart.User] = copyCart(*cart)
	return nil
}

type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{}
}

func (s *MemoryOrderStore) Create(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	s.orders = append(s.orders, *order)
	return nil
}

// Orders returns a copy of everything stored so far.
func (s *MemoryOrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order{}, s.orders...)
}
