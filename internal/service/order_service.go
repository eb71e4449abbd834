package service

import (
	"context"
	"fmt"
	"strings"

	"support-chatbot-be/internal/dto"
	"support-chatbot-be/pkg/orders"
)

type IOrderService interface {
	GetOrder(ctx context.Context, orderId string) (*dto.OrderResponse, error)
	GetTracking(ctx context.Context, trackingNumber string) (*dto.OrderTrackingResponse, error)
	GetOrdersByEmail(ctx context.Context, email string) (*dto.OrderSearchResponse, error)
	SearchOrders(ctx context.Context, query string) (*dto.OrderSearchResponse, error)
	GetStatusSummary(ctx context.Context, orderId string) (*dto.OrderStatusSummaryResponse, error)
	GetChatFormat(ctx context.Context, orderId string) (*dto.OrderChatFormatResponse, error)
}

type orderService struct {
	store *orders.Store
}

func NewOrderService(store *orders.Store) IOrderService {
	return &orderService{store: store}
}

func (os *orderService) GetOrder(ctx context.Context, orderId string) (*dto.OrderResponse, error) {
	order, ok := os.store.Get(orderId)
	if !ok {
		return nil, fmt.Errorf("order '%s': %w", orderId, ErrNotFound)
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

func (os *orderService) GetTracking(ctx context.Context, trackingNumber string) (*dto.OrderTrackingResponse, error) {
	order, ok := os.store.GetByTracking(trackingNumber)
	if !ok {
		return nil, fmt.Errorf("tracking number '%s': %w", trackingNumber, ErrNotFound)
	}

	return &dto.OrderTrackingResponse{
		OrderId:           order.OrderID,
		Status:            order.Status,
		TrackingNumber:    order.TrackingNumber,
		Carrier:           order.Carrier,
		TrackingURL:       os.store.TrackingURL(order),
		EstimatedDelivery: order.EstimatedDelivery,
		ShippingAddress:   toAddressDTO(order.ShippingAddress),
	}, nil
}

func (os *orderService) GetOrdersByEmail(ctx context.Context, email string) (*dto.OrderSearchResponse, error) {
	return toSearchResponse(os.store.OrdersByEmail(email)), nil
}

func (os *orderService) SearchOrders(ctx context.Context, query string) (*dto.OrderSearchResponse, error) {
	return toSearchResponse(os.store.Search(query)), nil
}

func (os *orderService) GetStatusSummary(ctx context.Context, orderId string) (*dto.OrderStatusSummaryResponse, error) {
	order, ok := os.store.Get(orderId)
	if !ok {
		return nil, fmt.Errorf("order '%s': %w", orderId, ErrNotFound)
	}

	return &dto.OrderStatusSummaryResponse{
		OrderId:           order.OrderID,
		Status:            order.Status,
		StatusMessage:     statusMessage(order),
		TrackingNumber:    order.TrackingNumber,
		Carrier:           order.Carrier,
		EstimatedDelivery: order.EstimatedDelivery,
	}, nil
}

func (os *orderService) GetChatFormat(ctx context.Context, orderId string) (*dto.OrderChatFormatResponse, error) {
	formatted, ok := os.store.FormatForChat(orderId)
	if !ok {
		return nil, fmt.Errorf("order '%s': %w", orderId, ErrNotFound)
	}

	order, _ := os.store.Get(orderId)
	return &dto.OrderChatFormatResponse{
		OrderId:   order.OrderID,
		Formatted: formatted,
	}, nil
}

func statusMessage(order orders.Order) string {
	switch strings.ToLower(order.Status) {
	case "processing":
		return "Your order is being processed and will ship soon."
	case "shipped":
		tracking := order.TrackingNumber
		if tracking == "" {
			tracking = "N/A"
		}
		return "Your order has been shipped! Tracking: " + tracking
	case "out for delivery":
		return "Your order is out for delivery today!"
	case "delivered":
		return "Your order has been delivered."
	case "cancelled":
		return "This order has been cancelled."
	case "returned":
		return "This order has been returned."
	default:
		return "Order status: " + order.Status
	}
}

func toOrderResponse(order orders.Order) dto.OrderResponse {
	items := make([]dto.OrderItemDTO, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItemDTO{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return dto.OrderResponse{
		OrderId:           order.OrderID,
		CustomerName:      order.CustomerName,
		Email:             order.CustomerEmail,
		Status:            order.Status,
		OrderDate:         order.OrderDate,
		Items:             items,
		ShippingAddress:   toAddressDTO(order.ShippingAddress),
		TrackingNumber:    order.TrackingNumber,
		Carrier:           order.Carrier,
		EstimatedDelivery: order.EstimatedDelivery,
		TotalAmount:       order.Total,
	}
}

func toAddressDTO(addr *orders.ShippingAddress) *dto.ShippingAddressDTO {
	if addr == nil {
		return nil
	}
	return &dto.ShippingAddressDTO{
		Street: addr.Street,
		City:   addr.City,
		State:  addr.State,
		Zip:    addr.Zip,
	}
}

func toSearchResponse(matches []orders.Order) *dto.OrderSearchResponse {
	out := make([]dto.OrderResponse, len(matches))
	for i, order := range matches {
		out[i] = toOrderResponse(order)
	}
	return &dto.OrderSearchResponse{
		Orders:     out,
		TotalCount: len(out),
	}
}
