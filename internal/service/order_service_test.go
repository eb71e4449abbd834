package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"support-chatbot-be/pkg/orders"
)

const orderServiceTestData = `{
  "orders": [
    {
      "order_id": "TM-2024-001234",
      "customer_name": "Sarah Johnson",
      "customer_email": "sarah.j@email.com",
      "status": "Shipped",
      "order_date": "2024-01-15",
      "items": [{"name": "TechMart Pro Laptop 15", "quantity": 1, "price": 1299.99}],
      "total": 1299.99,
      "shipping_method": "Express Shipping",
      "estimated_delivery": "2024-01-18",
      "tracking_number": "1Z999AA10123456784",
      "carrier": "UPS",
      "shipping_address": {"street": "123 Main St", "city": "Portland", "state": "OR", "zip": "97201"}
    }
  ],
  "tracking_carriers": {
    "UPS": {"tracking_url": "https://www.ups.com/track?tracknum=", "phone": "1-800-742-5877"}
  }
}`

func newOrderService(t *testing.T) IOrderService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte(orderServiceTestData), 0o644))

	store, err := orders.NewStore(path)
	require.NoError(t, err)
	return NewOrderService(store)
}

func TestGetOrder(t *testing.T) {
	svc := newOrderService(t)

	res, err := svc.GetOrder(context.Background(), "tm-2024-001234")
	require.NoError(t, err)

	assert.Equal(t, "TM-2024-001234", res.OrderId)
	assert.Equal(t, "sarah.j@email.com", res.Email)
	assert.Equal(t, 1299.99, res.TotalAmount)
	require.NotNil(t, res.ShippingAddress)
	assert.Equal(t, "Portland", res.ShippingAddress.City)
}

func TestGetOrder_NotFound(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.GetOrder(context.Background(), "TM-2024-999999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTracking(t *testing.T) {
	svc := newOrderService(t)

	res, err := svc.GetTracking(context.Background(), "1Z999AA10123456784")
	require.NoError(t, err)

	assert.Equal(t, "TM-2024-001234", res.OrderId)
	assert.Equal(t, "https://www.ups.com/track?tracknum=1Z999AA10123456784", res.TrackingURL)
}

func TestGetStatusSummary(t *testing.T) {
	svc := newOrderService(t)

	res, err := svc.GetStatusSummary(context.Background(), "TM-2024-001234")
	require.NoError(t, err)

	assert.Equal(t, "Your order has been shipped! Tracking: 1Z999AA10123456784", res.StatusMessage)
}

func TestSearchAndEmailLookups(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	byEmail, err := svc.GetOrdersByEmail(ctx, "SARAH.J@EMAIL.COM")
	require.NoError(t, err)
	assert.Equal(t, 1, byEmail.TotalCount)

	found, err := svc.SearchOrders(ctx, "johnson")
	require.NoError(t, err)
	assert.Equal(t, 1, found.TotalCount)

	missing, err := svc.SearchOrders(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, missing.TotalCount)
}

func TestGetChatFormat(t *testing.T) {
	svc := newOrderService(t)

	res, err := svc.GetChatFormat(context.Background(), "TM-2024-001234")
	require.NoError(t, err)

	assert.Equal(t, "TM-2024-001234", res.OrderId)
	assert.Contains(t, res.Formatted, "Status: Shipped")
}
