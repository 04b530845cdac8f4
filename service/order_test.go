package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tipsybean/tipsybean-backend-go/models"
	"github.com/tipsybean/tipsybean-backend-go/notify"
	"github.com/tipsybean/tipsybean-backend-go/store"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event notify.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type orderFixture struct {
	store     *store.MemoryStore
	cart      *CartService
	profile   *ProfileService
	orders    *OrderService
	publisher *recordingPublisher
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	mem := store.NewMemoryStore()
	publisher := &recordingPublisher{}
	return &orderFixture{
		store:     mem,
		cart:      NewCartService(mem),
		profile:   NewProfileService(mem),
		orders:    NewOrderService(mem, mem, mem, mem, publisher),
		publisher: publisher,
	}
}

func (f *orderFixture) withAddress(t *testing.T) {
	t.Helper()
	_, err := f.profile.UpdateProfile(context.Background(), testEmail, ProfileUpdate{
		Street:     "123 Katipunan Ave",
		City:       "Quezon City",
		Province:   "Metro Manila",
		PostalCode: "1108",
		Country:    "Philippines",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
}

func TestPlaceOrderEndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.withAddress(t)

	if err := f.cart.AddItem(ctx, testEmail, "latte", "Latte", 120.00, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	order, err := f.orders.PlaceOrder(ctx, testEmail, "leave at the gate", "cash")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if order.Subtotal != 240.00 {
		t.Errorf("subtotal = %v, want 240.00", order.Subtotal)
	}
	if order.DeliveryFee != 50 || order.ServiceFee != 10 {
		t.Errorf("fees = %v/%v, want 50/10", order.DeliveryFee, order.ServiceFee)
	}
	if order.Total != 300.00 {
		t.Errorf("total = %v, want 300.00", order.Total)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if order.Address.Street != "123 Katipunan Ave" || order.Address.City != "Quezon City" {
		t.Errorf("address not snapshotted: %+v", order.Address)
	}
	if order.AdditionalNotes != "leave at the gate" || order.PaymentMethod != "cash" {
		t.Errorf("notes/payment = %q/%q", order.AdditionalNotes, order.PaymentMethod)
	}

	// Checkout clears the cart.
	cart, err := f.cart.Cart(ctx, testEmail)
	if err != nil {
		t.Fatalf("Cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("cart not empty after checkout: %+v", cart.Items)
	}

	// One created event published.
	if len(f.publisher.events) != 1 || f.publisher.events[0].OrderID != order.ID {
		t.Errorf("unexpected events: %+v", f.publisher.events)
	}
}

func TestPlaceOrderIDHasReadablePrefix(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.withAddress(t)

	if err := f.cart.AddItem(ctx, testEmail, "latte", "Latte", 120.00, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	order, err := f.orders.PlaceOrder(ctx, testEmail, "", "")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if len(order.ID) <= len("ORD-") || order.ID[:4] != "ORD-" {
		t.Errorf("order id %q does not carry ORD- prefix", order.ID)
	}
	if order.PaymentMethod != "cash" {
		t.Errorf("default payment method = %q, want cash", order.PaymentMethod)
	}
}

func TestPlaceOrderEmptyCartFails(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.withAddress(t)

	_, err := f.orders.PlaceOrder(ctx, testEmail, "", "cash")
	var preconditionErr *PreconditionError
	if !errors.As(err, &preconditionErr) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if preconditionErr.Message != "Your cart is empty" {
		t.Errorf("message = %q", preconditionErr.Message)
	}

	// Nothing was appended.
	orders, err := f.orders.ListOrders(ctx, testEmail, "all")
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("order collection not empty: %+v", orders)
	}
}

func TestPlaceOrderMissingAddressFails(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	if err := f.cart.AddItem(ctx, testEmail, "latte", "Latte", 120.00, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	_, err := f.orders.PlaceOrder(ctx, testEmail, "", "cash")
	var preconditionErr *PreconditionError
	if !errors.As(err, &preconditionErr) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if preconditionErr.Message != "Please add a delivery address" {
		t.Errorf("message = %q", preconditionErr.Message)
	}

	// The cart must survive a failed checkout.
	cart, err := f.cart.Cart(ctx, testEmail)
	if err != nil {
		t.Fatalf("Cart: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Errorf("cart mutated by failed checkout: %+v", cart.Items)
	}
}

func TestOrderSnapshotImmuneToLaterCartMutation(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.withAddress(t)

	if err := f.cart.AddItem(ctx, testEmail, "latte", "Latte", 120.00, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	placed, err := f.orders.PlaceOrder(ctx, testEmail, "", "cash")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	// Refill the cart with different lines; the order must not notice.
	if err := f.cart.AddItem(ctx, testEmail, "mocha", "Mocha", 999.00, 7); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	order, err := f.orders.GetOrder(ctx, placed.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if len(order.Items) != 1 || order.Items[0].ItemID != "latte" || order.Items[0].Quantity != 2 {
		t.Errorf("snapshot changed: %+v", order.Items)
	}
	if order.Subtotal != 240.00 || order.Total != 300.00 {
		t.Errorf("totals recomputed: subtotal=%v total=%v", order.Subtotal, order.Total)
	}
}

func TestOrderTotalIdentity(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.withAddress(t)

	if err := f.cart.AddItem(ctx, testEmail, "latte", "Latte", 120.00, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := f.cart.AddItem(ctx, testEmail, "croissant", "Croissant", 85.50, 3); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	order, err := f.orders.PlaceOrder(ctx, testEmail, "", "cash")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if order.Total != order.Subtotal+order.DeliveryFee+order.ServiceFee {
		t.Errorf("total %v != subtotal %v + fees %v + %v",
			order.Total, order.Subtotal, order.DeliveryFee, order.ServiceFee)
	}

	itemSum := 0.0
	for _, item := range order.Items {
		itemSum += item.Price * float64(item.Quantity)
	}
	if order.Subtotal != itemSum {
		t.Errorf("subtotal %v != item sum %v", order.Subtotal, itemSum)
	}
}

func TestUpdateStatusRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.withAddress(t)

	if err := f.cart.AddItem(ctx, testEmail, "latte", "Latte", 120.00, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	order, err := f.orders.PlaceOrder(ctx, testEmail, "", "cash")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	// Transitions are unrestricted: every status is reachable from any other.
	for _, status := range models.OrderStatuses {
		if err := f.orders.UpdateStatus(ctx, order.ID, string(status)); err != nil {
			t.Fatalf("UpdateStatus(%s): %v", status, err)
		}
		got, err := f.orders.GetOrder(ctx, order.ID)
		if err != nil {
			t.Fatalf("GetOrder: %v", err)
		}
		if got.Status != status {
			t.Errorf("status = %q, want %q", got.Status, status)
		}
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.withAddress(t)

	if err := f.cart.AddItem(ctx, testEmail, "latte", "Latte", 120.00, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	order, err := f.orders.PlaceOrder(ctx, testEmail, "", "cash")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	err = f.orders.UpdateStatus(ctx, "ORD-missing", "delivered")
	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	// The existing order is untouched.
	got, err := f.orders.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got.Status != models.OrderStatusPending {
		t.Errorf("status mutated by failed update: %q", got.Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	err := f.orders.UpdateStatus(ctx, "ORD-whatever", "teleported")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListOrdersNewestFirstAndFiltered(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.withAddress(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ids := []string{"ORD-a", "ORD-b", "ORD-c"}
	for i, id := range ids {
		id := id
		created := base.Add(time.Duration(i) * time.Hour)
		f.orders.newID = func() string { return id }
		f.orders.now = func() time.Time { return created }

		if err := f.cart.AddItem(ctx, testEmail, "latte", "Latte", 120.00, 1); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
		if _, err := f.orders.PlaceOrder(ctx, testEmail, "", "cash"); err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
	}

	if err := f.orders.UpdateStatus(ctx, "ORD-b", "delivered"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	orders, err := f.orders.ListOrders(ctx, testEmail, "all")
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i, want := range []string{"ORD-c", "ORD-b", "ORD-a"} {
		if orders[i].ID != want {
			t.Errorf("orders[%d] = %s, want %s", i, orders[i].ID, want)
		}
	}

	delivered, err := f.orders.ListOrders(ctx, testEmail, "delivered")
	if err != nil {
		t.Fatalf("ListOrders(delivered): %v", err)
	}
	if len(delivered) != 1 || delivered[0].ID != "ORD-b" {
		t.Errorf("delivered filter = %+v", delivered)
	}

	if _, err := f.orders.ListOrders(ctx, testEmail, "bogus"); err == nil {
		t.Error("expected error for unknown filter status")
	}
}

func TestEstimateDeliveryWindow(t *testing.T) {
	f := newOrderFixture(t)

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := models.Order{CreatedAt: created, Status: models.OrderStatusDelivered}

	earliest, latest := f.orders.EstimateDeliveryWindow(order)
	if !earliest.Equal(created.Add(30 * time.Minute)) {
		t.Errorf("earliest = %v", earliest)
	}
	if !latest.Equal(created.Add(45 * time.Minute)) {
		t.Errorf("latest = %v", latest)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.GetOrder(context.Background(), "ORD-missing")
	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.withAddress(t)

	for i := 0; i < 3; i++ {
		if err := f.cart.AddItem(ctx, testEmail, "latte", "Latte", 120.00, 1); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
		if _, err := f.orders.PlaceOrder(ctx, testEmail, "", "cash"); err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
	}

	orders, err := f.orders.ListOrders(ctx, testEmail, "")
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if err := f.orders.UpdateStatus(ctx, orders[0].ID, "delivered"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := f.orders.UpdateStatus(ctx, orders[1].ID, "cancelled"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	stats, err := f.orders.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalOrders != 3 {
		t.Errorf("TotalOrders = %d, want 3", stats.TotalOrders)
	}
	if stats.DeliveredOrders != 1 {
		t.Errorf("DeliveredOrders = %d, want 1", stats.DeliveredOrders)
	}
	if stats.ActiveOrders != 1 {
		t.Errorf("ActiveOrders = %d, want 1", stats.ActiveOrders)
	}
	if stats.Revenue != 3*180.00 {
		t.Errorf("Revenue = %v, want %v", stats.Revenue, 3*180.00)
	}
}
