package service

import (
	"context"

	"github.com/tipsybean/tipsybean-backend-go/models"
	"github.com/tipsybean/tipsybean-backend-go/store"
)

// CartService enforces the cart invariants: at most one line per item id,
// and no line with a non-positive quantity after any operation.
type CartService struct {
	carts store.CartStore
}

func NewCartService(carts store.CartStore) *CartService {
	return &CartService{carts: carts}
}

func (s *CartService) Cart(ctx context.Context, email string) (models.Cart, error) {
	return s.carts.GetCart(ctx, email)
}

// AddItem merges into an existing line for the same item id instead of
// duplicating it. A missing or non-positive quantity adds one.
func (s *CartService) AddItem(ctx context.Context, email, itemID, name string, price float64, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	return s.carts.AddItem(ctx, email, models.CartItem{
		ItemID:   itemID,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	})
}

// RemoveItem is idempotent: removing an id that is not in the cart is a
// no-op success.
func (s *CartService) RemoveItem(ctx context.Context, email, itemID string) error {
	return s.carts.RemoveItem(ctx, email, itemID)
}

// SetQuantity with a non-positive quantity removes the line.
func (s *CartService) SetQuantity(ctx context.Context, email, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.carts.RemoveItem(ctx, email, itemID)
	}
	return s.carts.SetItemQuantity(ctx, email, itemID, quantity)
}

func (s *CartService) Clear(ctx context.Context, email string) error {
	return s.carts.ClearCart(ctx, email)
}

// Count is the sum of line quantities.
func (s *CartService) Count(ctx context.Context, email string) (int, error) {
	cart, err := s.carts.GetCart(ctx, email)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}
	return count, nil
}

// Total is the sum of price×quantity over lines.
func (s *CartService) Total(ctx context.Context, email string) (float64, error) {
	cart, err := s.carts.GetCart(ctx, email)
	if err != nil {
		return 0, err
	}
	return cartSubtotal(cart.Items), nil
}

func cartSubtotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
