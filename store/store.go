package store

import (
	"context"
	"errors"

	"github.com/tipsybean/tipsybean-backend-go/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// The store interfaces are the storage boundary: everything above them is
// medium-agnostic. Durable scope is backed by MongoDB, session scope by
// Redis, and both have in-memory implementations for tests.
//
// Reads of a missing collection return an empty value, never an error;
// reads of a missing single record return ErrNotFound.

type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, email string) (models.Profile, error)
	UpsertProfile(ctx context.Context, profile models.Profile) error
}

// CartStore mutates single cart lines in place rather than rewriting the
// whole cart, so interleaved writers cannot lose each other's updates.
type CartStore interface {
	GetCart(ctx context.Context, email string) (models.Cart, error)
	AddItem(ctx context.Context, email string, item models.CartItem) error
	SetItemQuantity(ctx context.Context, email, itemID string, quantity int) error
	RemoveItem(ctx context.Context, email, itemID string) error
	ClearCart(ctx context.Context, email string) error
}

type OrderStore interface {
	InsertOrder(ctx context.Context, order models.Order) error
	GetOrder(ctx context.Context, id string) (models.Order, error)
	// ListOrders returns orders newest-first. Empty email means all users;
	// empty status means all statuses.
	ListOrders(ctx context.Context, email string, status models.OrderStatus) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error
}

type ProductStore interface {
	// ListProducts returns the menu, optionally filtered by a
	// case-insensitive name query.
	ListProducts(ctx context.Context, query string) ([]models.Product, error)
	InsertProduct(ctx context.Context, product *models.Product) error
}

type SessionStore interface {
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns (nil, nil) when no session exists.
	GetSession(ctx context.Context, email string) (*models.Session, error)
	DeleteSession(ctx context.Context, email string) error
}
