package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tipsybean/tipsybean-backend-go/models"
)

// MemoryStore implements every store interface in memory. It exists so
// service tests run against real storage semantics without Mongo or Redis,
// and mirrors the per-record update behavior of the production stores.
type MemoryStore struct {
	mu       sync.Mutex
	users    map[string]models.User
	profiles map[string]models.Profile
	carts    map[string][]models.CartItem
	orders   []models.Order
	products []models.Product
	sessions map[string]models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]models.User),
		profiles: make(map[string]models.Profile),
		carts:    make(map[string][]models.CartItem),
		sessions: make(map[string]models.Session),
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Email]; exists {
		return ErrDuplicateEmail
	}
	s.users[user.Email] = user
	return nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) CountUsers(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

func (s *MemoryStore) GetProfile(_ context.Context, email string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[email]
	if !ok {
		return models.Profile{}, ErrNotFound
	}
	return profile, nil
}

func (s *MemoryStore) UpsertProfile(_ context.Context, profile models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.Email] = profile
	return nil
}

func (s *MemoryStore) GetCart(_ context.Context, email string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CartItem, len(s.carts[email]))
	copy(items, s.carts[email])
	return models.Cart{Email: email, Items: items}, nil
}

func (s *MemoryStore) AddItem(_ context.Context, email string, item models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[email]
	for i := range items {
		if items[i].ItemID == item.ItemID {
			items[i].Quantity += item.Quantity
			return nil
		}
	}
	s.carts[email] = append(items, item)
	return nil
}

func (s *MemoryStore) SetItemQuantity(_ context.Context, email, itemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[email]
	for i := range items {
		if items[i].ItemID == itemID {
			items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) RemoveItem(_ context.Context, email, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[email]
	filtered := items[:0]
	for _, item := range items {
		if item.ItemID != itemID {
			filtered = append(filtered, item)
		}
	}
	s.carts[email] = filtered
	return nil
}

func (s *MemoryStore) ClearCart(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[email] = nil
	return nil
}

func (s *MemoryStore) InsertOrder(_ context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return nil
}

func (s *MemoryStore) GetOrder(_ context.Context, id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (s *MemoryStore) ListOrders(_ context.Context, email string, status models.OrderStatus) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := []models.Order{}
	for _, order := range s.orders {
		if email != "" && order.Email != email {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		orders = append(orders, order)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *MemoryStore) UpdateOrderStatus(_ context.Context, id string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ListProducts(_ context.Context, query string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := []models.Product{}
	for _, product := range s.products {
		if query != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(query)) {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (s *MemoryStore) InsertProduct(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	s.products = append(s.products, *product)
	return nil
}

func (s *MemoryStore) SaveSession(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Email] = session
	return nil
}

func (s *MemoryStore) GetSession(_ context.Context, email string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[email]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *MemoryStore) DeleteSession(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, email)
	return nil
}

var _ interface {
	UserStore
	ProfileStore
	CartStore
	OrderStore
	ProductStore
	SessionStore
} = (*MemoryStore)(nil)
