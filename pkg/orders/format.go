package orders

import (
	"fmt"
	"strings"
)

// FormatForChat renders an order as the text block injected into the
// generation prompt. Repeated calls for the same order within the
// cache window return the cached rendering.
func (s *Store) FormatForChat(orderID string) (string, bool) {
	order, ok := s.Get(orderID)
	if !ok {
		return "", false
	}

	if cached, found := s.chatBlocks.Get(order.OrderID); found {
		return cached.(string), true
	}

	block := s.renderChatBlock(order)
	s.chatBlocks.SetDefault(order.OrderID, block)
	return block, true
}

func (s *Store) renderChatBlock(order Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order %s\n\n", order.OrderID)
	fmt.Fprintf(&b, "Status: %s\n", order.Status)
	fmt.Fprintf(&b, "Order Date: %s\n", order.OrderDate)
	fmt.Fprintf(&b, "Total: $%.2f\n\n", order.Total)

	b.WriteString("Items:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  - %s (x%d) - $%.2f\n", item.Name, item.Quantity, item.Price)
	}

	fmt.Fprintf(&b, "\nShipping: %s\n", order.ShippingMethod)
	fmt.Fprintf(&b, "Estimated Delivery: %s\n", order.EstimatedDelivery)

	if order.ActualDelivery != "" {
		fmt.Fprintf(&b, "Delivered: %s\n", order.ActualDelivery)
	}

	if order.TrackingNumber != "" {
		b.WriteString("\nTracking:\n")
		fmt.Fprintf(&b, "  - Carrier: %s\n", order.Carrier)
		fmt.Fprintf(&b, "  - Tracking #: %s\n", order.TrackingNumber)
		if url := s.TrackingURL(order); url != "" {
			fmt.Fprintf(&b, "  - Track at: %s\n", url)
		}
	}

	if order.Status == "Return Initiated" || order.Status == "Refund Processed" {
		b.WriteString("\nReturn Information:\n")
		fmt.Fprintf(&b, "  - Status: %s\n", order.ReturnStatus)
		if order.RefundAmount > 0 {
			fmt.Fprintf(&b, "  - Refund: $%.2f\n", order.RefundAmount)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
