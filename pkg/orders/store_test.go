package orders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"support-chatbot-be/pkg/llm"
)

const testOrdersJSON = `{
  "orders": [
    {
      "order_id": "TM-2024-001234",
      "customer_name": "Sarah Johnson",
      "customer_email": "sarah.j@email.com",
      "status": "Shipped",
      "order_date": "2024-01-15",
      "items": [
        {"name": "TechMart Pro Laptop 15", "quantity": 1, "price": 1299.99},
        {"name": "Laptop Sleeve", "quantity": 1, "price": 29.99}
      ],
      "total": 1329.98,
      "shipping_method": "Express Shipping",
      "estimated_delivery": "2024-01-18",
      "tracking_number": "1Z999AA10123456784",
      "carrier": "UPS",
      "status_history": [
        {"status": "Processing", "timestamp": "2024-01-15T10:00:00Z"},
        {"status": "Shipped", "timestamp": "2024-01-16T14:30:00Z"}
      ]
    },
    {
      "order_id": "TM-2024-005678",
      "customer_name": "Mike Chen",
      "customer_email": "mike.chen@email.com",
      "status": "Return Initiated",
      "order_date": "2024-01-02",
      "items": [
        {"name": "TechMart Wireless Earbuds Pro", "quantity": 1, "price": 199.99}
      ],
      "total": 199.99,
      "shipping_method": "Standard Shipping",
      "estimated_delivery": "2024-01-08",
      "actual_delivery": "2024-01-07",
      "return_status": "Awaiting return shipment",
      "return_reason": "Defective left earbud",
      "refund_amount": 199.99
    }
  ],
  "tracking_carriers": {
    "UPS": {"tracking_url": "https://www.ups.com/track?tracknum=", "phone": "1-800-742-5877"}
  }
}`

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte(testOrdersJSON), 0o644))

	store, err := NewStore(path)
	require.NoError(t, err)
	return store
}

func TestNewStore_MissingFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestGet_Normalization(t *testing.T) {
	store := newTestStore(t)

	for _, id := range []string{
		"TM-2024-001234",
		"tm-2024-001234",
		"  TM-2024-001234  ",
		"2024-001234",
		"001234",
	} {
		order, ok := store.Get(id)
		require.True(t, ok, "lookup %q", id)
		assert.Equal(t, "TM-2024-001234", order.OrderID)
	}

	_, ok := store.Get("TM-2024-999999")
	assert.False(t, ok)
}

func TestGetByTracking(t *testing.T) {
	store := newTestStore(t)

	order, ok := store.GetByTracking("1z999aa10123456784")
	require.True(t, ok)
	assert.Equal(t, "TM-2024-001234", order.OrderID)

	_, ok = store.GetByTracking("1Z000000000000000X")
	assert.False(t, ok)
}

func TestOrdersByEmail(t *testing.T) {
	store := newTestStore(t)

	matches := store.OrdersByEmail("SARAH.J@EMAIL.COM")
	require.Len(t, matches, 1)
	assert.Equal(t, "TM-2024-001234", matches[0].OrderID)

	assert.Empty(t, store.OrdersByEmail("nobody@email.com"))
}

func TestSearch(t *testing.T) {
	store := newTestStore(t)

	assert.Len(t, store.Search("chen"), 1)
	assert.Len(t, store.Search("tm-2024"), 2)
	assert.Empty(t, store.Search("zzz"))
}

func TestTrackingURL(t *testing.T) {
	store := newTestStore(t)

	shipped, _ := store.Get("TM-2024-001234")
	assert.Equal(t, "https://www.ups.com/track?tracknum=1Z999AA10123456784", store.TrackingURL(shipped))

	returned, _ := store.Get("TM-2024-005678")
	assert.Empty(t, store.TrackingURL(returned))
}

func TestFormatForChat(t *testing.T) {
	store := newTestStore(t)

	block, ok := store.FormatForChat("TM-2024-001234")
	require.True(t, ok)

	assert.Contains(t, block, "Order TM-2024-001234")
	assert.Contains(t, block, "Status: Shipped")
	assert.Contains(t, block, "TechMart Pro Laptop 15 (x1) - $1299.99")
	assert.Contains(t, block, "Total: $1329.98")
	assert.Contains(t, block, "Tracking #: 1Z999AA10123456784")
	assert.Contains(t, block, "Track at: https://www.ups.com/track?tracknum=1Z999AA10123456784")

	_, ok = store.FormatForChat("TM-2024-999999")
	assert.False(t, ok)
}

func TestFormatForChat_ReturnInfo(t *testing.T) {
	store := newTestStore(t)

	block, ok := store.FormatForChat("TM-2024-005678")
	require.True(t, ok)

	assert.Contains(t, block, "Return Information:")
	assert.Contains(t, block, "Status: Awaiting return shipment")
	assert.Contains(t, block, "Refund: $199.99")
	assert.NotContains(t, block, "Tracking #:")
}

func TestExtractContext_CurrentMessage(t *testing.T) {
	store := newTestStore(t)

	got := store.ExtractContext("where is my order tm-2024-001234?", nil)
	assert.Contains(t, got, "Order Information:")
	assert.Contains(t, got, "Order TM-2024-001234")
}

func TestExtractContext_Tracking(t *testing.T) {
	store := newTestStore(t)

	got := store.ExtractContext("any update on 1Z999AA10123456784?", nil)
	assert.Contains(t, got, "Order Information (from tracking):")
	assert.Contains(t, got, "Order TM-2024-001234")
}

func TestExtractContext_HistoryFallback(t *testing.T) {
	store := newTestStore(t)

	history := []llm.Message{
		{Role: "user", Content: "I ordered with TM-2024-005678"},
		{Role: "assistant", Content: "Let me look that up."},
	}

	got := store.ExtractContext("has it shipped yet?", history)
	assert.Contains(t, got, "Previously mentioned order:")
	assert.Contains(t, got, "Order TM-2024-005678")
}

func TestExtractContext_CurrentMessageWins(t *testing.T) {
	store := newTestStore(t)

	history := []llm.Message{
		{Role: "user", Content: "checking on TM-2024-005678"},
	}

	got := store.ExtractContext("actually I meant TM-2024-001234", history)
	assert.Contains(t, got, "Order TM-2024-001234")
	assert.NotContains(t, got, "Previously mentioned order:")
}

func TestExtractContext_HistoryWindow(t *testing.T) {
	store := newTestStore(t)

	history := []llm.Message{
		{Role: "user", Content: "old mention TM-2024-001234"},
		{Role: "assistant", Content: "ok"},
		{Role: "user", Content: "filler"},
		{Role: "assistant", Content: "filler"},
		{Role: "user", Content: "filler"},
	}

	assert.Empty(t, store.ExtractContext("has it shipped?", history))
}

func TestExtractContext_NoMatch(t *testing.T) {
	store := newTestStore(t)
	assert.Empty(t, store.ExtractContext("do you sell laptops?", nil))
}
