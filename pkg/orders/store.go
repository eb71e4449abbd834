package orders

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	chatBlockTTL     = 5 * time.Minute
	chatBlockCleanup = 10 * time.Minute
	orderIDPrefix    = "TM-"
)

// Store serves order lookups from a JSON order database loaded at
// startup. Lookups are read-only, so no locking is needed after Load.
type Store struct {
	orders   map[string]Order
	carriers map[string]Carrier

	// chatBlocks caches formatted order blocks so repeated mentions of
	// the same order within a conversation do not re-render.
	chatBlocks *gocache.Cache
}

// NewStore loads the order database from path.
func NewStore(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read order database: %w", err)
	}

	var file ordersFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse order database: %w", err)
	}

	store := &Store{
		orders:     make(map[string]Order, len(file.Orders)),
		carriers:   file.TrackingCarriers,
		chatBlocks: gocache.New(chatBlockTTL, chatBlockCleanup),
	}
	for _, order := range file.Orders {
		store.orders[order.OrderID] = order
	}
	return store, nil
}

// Count returns the number of loaded orders.
func (s *Store) Count() int {
	return len(s.orders)
}

// Get looks up an order by ID. The ID is normalized to uppercase; a
// missing TM- prefix is filled in, and a bare suffix matches the order
// whose ID ends with it.
func (s *Store) Get(orderID string) (Order, bool) {
	orderID = strings.ToUpper(strings.TrimSpace(orderID))

	if order, ok := s.orders[orderID]; ok {
		return order, true
	}

	if !strings.HasPrefix(orderID, orderIDPrefix) {
		if order, ok := s.orders[orderIDPrefix+orderID]; ok {
			return order, true
		}
	}

	for id, order := range s.orders {
		if strings.Contains(id, orderID) || strings.HasSuffix(id, orderID) {
			return order, true
		}
	}

	return Order{}, false
}

// GetByTracking looks up an order by its shipment tracking number.
func (s *Store) GetByTracking(trackingNumber string) (Order, bool) {
	trackingNumber = strings.ToUpper(strings.TrimSpace(trackingNumber))

	for _, order := range s.orders {
		if strings.ToUpper(order.TrackingNumber) == trackingNumber {
			return order, true
		}
	}
	return Order{}, false
}

// OrdersByEmail returns all orders placed with the given email.
func (s *Store) OrdersByEmail(email string) []Order {
	email = strings.ToLower(strings.TrimSpace(email))

	var matches []Order
	for _, order := range s.orders {
		if strings.ToLower(order.CustomerEmail) == email {
			matches = append(matches, order)
		}
	}
	return matches
}

// Search matches orders by order ID, tracking number, customer name,
// or email substring.
func (s *Store) Search(query string) []Order {
	query = strings.ToLower(strings.TrimSpace(query))

	var matches []Order
	for _, order := range s.orders {
		if strings.Contains(strings.ToLower(order.OrderID), query) ||
			strings.Contains(strings.ToLower(order.TrackingNumber), query) ||
			strings.Contains(strings.ToLower(order.CustomerName), query) ||
			strings.Contains(strings.ToLower(order.CustomerEmail), query) {
			matches = append(matches, order)
		}
	}
	return matches
}

// Carrier returns the carrier record for a carrier name.
func (s *Store) Carrier(name string) (Carrier, bool) {
	carrier, ok := s.carriers[name]
	return carrier, ok
}

// TrackingURL builds the public tracking link for an order, or returns
// an empty string when the carrier is unknown or has no URL template.
func (s *Store) TrackingURL(order Order) string {
	if order.TrackingNumber == "" {
		return ""
	}
	carrier, ok := s.carriers[order.Carrier]
	if !ok || carrier.TrackingURL == "" {
		return ""
	}
	return carrier.TrackingURL + order.TrackingNumber
}
