package dto

type OrderItemDTO struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type ShippingAddressDTO struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type OrderResponse struct {
	OrderId           string              `json:"order_id"`
	CustomerName      string              `json:"customer_name"`
	Email             string              `json:"email"`
	Status            string              `json:"status"`
	OrderDate         string              `json:"order_date"`
	Items             []OrderItemDTO      `json:"items"`
	ShippingAddress   *ShippingAddressDTO `json:"shipping_address,omitempty"`
	TrackingNumber    string              `json:"tracking_number,omitempty"`
	Carrier           string              `json:"carrier,omitempty"`
	EstimatedDelivery string              `json:"estimated_delivery,omitempty"`
	TotalAmount       float64             `json:"total_amount"`
}

type OrderTrackingResponse struct {
	OrderId           string              `json:"order_id"`
	Status            string              `json:"status"`
	TrackingNumber    string              `json:"tracking_number,omitempty"`
	Carrier           string              `json:"carrier,omitempty"`
	TrackingURL       string              `json:"tracking_url,omitempty"`
	EstimatedDelivery string              `json:"estimated_delivery,omitempty"`
	ShippingAddress   *ShippingAddressDTO `json:"shipping_address,omitempty"`
}

type OrderSearchResponse struct {
	Orders     []OrderResponse `json:"orders"`
	TotalCount int             `json:"total_count"`
}

type OrderStatusSummaryResponse struct {
	OrderId           string `json:"order_id"`
	Status            string `json:"status"`
	StatusMessage     string `json:"status_message"`
	TrackingNumber    string `json:"tracking_number,omitempty"`
	Carrier           string `json:"carrier,omitempty"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
}

type OrderChatFormatResponse struct {
	OrderId   string `json:"order_id"`
	Formatted string `json:"formatted"`
}
