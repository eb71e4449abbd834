package orders

import (
	"regexp"
	"strings"

	"support-chatbot-be/pkg/llm"
)

// historyScanWindow is how many trailing history messages are scanned
// when the current message mentions no order identifier.
const historyScanWindow = 4

var (
	orderIDPattern = regexp.MustCompile(`TM-\d{4}-\d{6}`)

	// Carrier tracking number formats: UPS, USPS/FedEx numeric, and
	// international postal.
	trackingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`1Z[A-Z0-9]{16}`),
		regexp.MustCompile(`\d{20,22}`),
		regexp.MustCompile(`[A-Z]{2}\d{9}[A-Z]{2}`),
	}
)

// ExtractContext scans the current message, then recent history, for
// order IDs and tracking numbers, and returns the formatted order
// blocks for the prompt. The empty string means no order was matched.
//
// The current message wins: history is only consulted when the message
// itself yields nothing, and the first historical hit ends the scan.
func (s *Store) ExtractContext(message string, history []llm.Message) string {
	var parts []string

	upper := strings.ToUpper(message)

	for _, orderID := range orderIDPattern.FindAllString(upper, -1) {
		if block, ok := s.FormatForChat(orderID); ok {
			parts = append(parts, "Order Information:\n"+block)
		}
	}

	for _, pattern := range trackingPatterns {
		for _, trackingNum := range pattern.FindAllString(upper, -1) {
			order, ok := s.GetByTracking(trackingNum)
			if !ok {
				continue
			}
			if block, ok := s.FormatForChat(order.OrderID); ok {
				parts = append(parts, "Order Information (from tracking):\n"+block)
			}
		}
	}

	if len(parts) == 0 {
		start := len(history) - historyScanWindow
		if start < 0 {
			start = 0
		}
	scan:
		for _, msg := range history[start:] {
			for _, orderID := range orderIDPattern.FindAllString(strings.ToUpper(msg.Content), -1) {
				if block, ok := s.FormatForChat(orderID); ok {
					parts = append(parts, "Previously mentioned order:\n"+block)
					break scan
				}
			}
		}
	}

	return strings.Join(parts, "\n\n")
}
