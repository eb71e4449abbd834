package orders

// Order is a single customer order loaded from the order database file.
type Order struct {
	OrderID           string           `json:"order_id"`
	CustomerName      string           `json:"customer_name"`
	CustomerEmail     string           `json:"customer_email"`
	Status            string           `json:"status"`
	OrderDate         string           `json:"order_date"`
	Items             []OrderItem      `json:"items"`
	Total             float64          `json:"total"`
	ShippingMethod    string           `json:"shipping_method"`
	EstimatedDelivery string           `json:"estimated_delivery"`
	ActualDelivery    string           `json:"actual_delivery,omitempty"`
	TrackingNumber    string           `json:"tracking_number,omitempty"`
	Carrier           string           `json:"carrier,omitempty"`
	ShippingAddress   *ShippingAddress `json:"shipping_address,omitempty"`
	StatusHistory     []StatusEvent    `json:"status_history,omitempty"`
	ReturnTracking    string           `json:"return_tracking,omitempty"`
	ReturnStatus      string           `json:"return_status,omitempty"`
	ReturnReason      string           `json:"return_reason,omitempty"`
	RefundAmount      float64          `json:"refund_amount,omitempty"`
	RefundDate        string           `json:"refund_date,omitempty"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type ShippingAddress struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type StatusEvent struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Location  string `json:"location,omitempty"`
}

// Carrier holds contact and tracking info for a shipping carrier.
type Carrier struct {
	TrackingURL string `json:"tracking_url"`
	Phone       string `json:"phone"`
}

// ordersFile is the on-disk shape of the order database.
type ordersFile struct {
	Orders           []Order            `json:"orders"`
	TrackingCarriers map[string]Carrier `json:"tracking_carriers"`
}
