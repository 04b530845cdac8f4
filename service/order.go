package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/tipsybean/tipsybean-backend-go/metrics"
	"github.com/tipsybean/tipsybean-backend-go/models"
	"github.com/tipsybean/tipsybean-backend-go/notify"
	"github.com/tipsybean/tipsybean-backend-go/store"
)

// Fee constants applied at order creation. An order keeps the fees it was
// created with even if these change later.
const (
	DeliveryFee = 50.0
	ServiceFee  = 10.0
)

// Delivery estimate window, measured from order creation.
const (
	DeliveryEstimateMin = 30 * time.Minute
	DeliveryEstimateMax = 45 * time.Minute
)

// OrderService converts a cart and profile snapshot into an immutable
// order and drives its status over the defined set. Transitions are
// externally driven and unrestricted within the set.
type OrderService struct {
	orders    store.OrderStore
	carts     store.CartStore
	profiles  store.ProfileStore
	users     store.UserStore
	publisher notify.Publisher

	// overridable in tests
	now   func() time.Time
	newID func() string
}

func NewOrderService(orders store.OrderStore, carts store.CartStore, profiles store.ProfileStore, users store.UserStore, publisher notify.Publisher) *OrderService {
	return &OrderService{
		orders:    orders,
		carts:     carts,
		profiles:  profiles,
		users:     users,
		publisher: publisher,
		now:       time.Now,
		newID:     func() string { return "ORD-" + uuid.NewString() },
	}
}

// PlaceOrder snapshots the cart by value, fixes the fees and total, stores
// the order as pending and clears the cart. It fails without creating a
// record when the cart is empty or the profile has no street and city.
func (s *OrderService) PlaceOrder(ctx context.Context, email, additionalNotes, paymentMethod string) (models.Order, error) {
	cart, err := s.carts.GetCart(ctx, email)
	if err != nil {
		return models.Order{}, err
	}
	if len(cart.Items) == 0 {
		return models.Order{}, &PreconditionError{Message: "Your cart is empty"}
	}

	profile, err := s.profiles.GetProfile(ctx, email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return models.Order{}, err
	}
	if profile.Street == "" || profile.City == "" {
		return models.Order{}, &PreconditionError{Message: "Please add a delivery address"}
	}

	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)

	subtotal := cartSubtotal(items)
	order := models.Order{
		ID:              s.newID(),
		Email:           email,
		Items:           items,
		Address:         profile.Address,
		AdditionalNotes: additionalNotes,
		PaymentMethod:   paymentMethod,
		Subtotal:        subtotal,
		DeliveryFee:     DeliveryFee,
		ServiceFee:      ServiceFee,
		Total:           subtotal + DeliveryFee + ServiceFee,
		Status:          models.OrderStatusPending,
		CreatedAt:       s.now(),
	}

	if err := s.orders.InsertOrder(ctx, order); err != nil {
		return models.Order{}, err
	}

	if err := s.carts.ClearCart(ctx, email); err != nil {
		log.Printf("Failed to clear cart after order creation: %v", err)
	}

	s.publish(ctx, order)
	metrics.OrdersPlaced.Inc()
	return order, nil
}

// ListOrders returns the user's orders newest-first. An empty filter or
// "all" returns everything.
func (s *OrderService) ListOrders(ctx context.Context, email, filterStatus string) ([]models.Order, error) {
	status, err := parseFilter(filterStatus)
	if err != nil {
		return nil, err
	}
	return s.orders.ListOrders(ctx, email, status)
}

// ListAllOrders is the admin view across users.
func (s *OrderService) ListAllOrders(ctx context.Context, filterStatus string) ([]models.Order, error) {
	status, err := parseFilter(filterStatus)
	if err != nil {
		return nil, err
	}
	return s.orders.ListOrders(ctx, "", status)
}

func parseFilter(filterStatus string) (models.OrderStatus, error) {
	if filterStatus == "" || filterStatus == "all" {
		return "", nil
	}
	status := models.OrderStatus(filterStatus)
	if !status.Valid() {
		return "", &ValidationError{Field: "status", Message: "Unknown order status"}
	}
	return status, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (models.Order, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Order{}, &NotFoundError{Resource: "order", ID: id}
	}
	return order, err
}

// UpdateStatus overwrites the status in place. Any known status may be
// set from any other; only the value itself is checked. A missing order
// reports not-found without mutating anything.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, newStatus string) error {
	status := models.OrderStatus(newStatus)
	if !status.Valid() {
		return &ValidationError{Field: "status", Message: "Unknown order status"}
	}

	if err := s.orders.UpdateOrderStatus(ctx, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &NotFoundError{Resource: "order", ID: id}
		}
		return err
	}

	metrics.StatusUpdates.WithLabelValues(newStatus).Inc()
	if order, err := s.orders.GetOrder(ctx, id); err == nil {
		s.publish(ctx, order)
	}
	return nil
}

// EstimateDeliveryWindow is a fixed estimate from creation time,
// independent of the order's current status.
func (s *OrderService) EstimateDeliveryWindow(order models.Order) (earliest, latest time.Time) {
	return order.CreatedAt.Add(DeliveryEstimateMin), order.CreatedAt.Add(DeliveryEstimateMax)
}

// Stats summarizes the order book for the admin dashboard.
type Stats struct {
	TotalOrders     int     `json:"totalOrders"`
	DeliveredOrders int     `json:"deliveredOrders"`
	ActiveOrders    int     `json:"activeOrders"`
	Revenue         float64 `json:"revenue"`
	TotalUsers      int64   `json:"totalUsers"`
}

func (s *OrderService) Stats(ctx context.Context) (Stats, error) {
	orders, err := s.orders.ListOrders(ctx, "", "")
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalOrders: len(orders)}
	for _, order := range orders {
		stats.Revenue += order.Total
		switch order.Status {
		case models.OrderStatusDelivered:
			stats.DeliveredOrders++
		case models.OrderStatusPending, models.OrderStatusConfirmed,
			models.OrderStatusPreparing, models.OrderStatusOutForDelivery:
			stats.ActiveOrders++
		}
	}

	stats.TotalUsers, err = s.users.CountUsers(ctx)
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// publish is best-effort: a broker outage must not fail the user action.
func (s *OrderService) publish(ctx context.Context, order models.Order) {
	event := notify.Event{
		OrderID:   order.ID,
		Email:     order.Email,
		Status:    string(order.Status),
		Total:     order.Total,
		Timestamp: s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Failed to publish order event for %s: %v", order.ID, err)
	}
}
