package dto

// OrderItemDTO línea de orden en el cuerpo JSON.
type OrderItemDTO struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// CreateOrderRequest entrada de POST /orders.
type CreateOrderRequest struct {
	UserID int            `json:"user_id"`
	Items  []OrderItemDTO `json:"items"`
}

// OrderResponse salida de una orden. Total es número JSON redondeado a dos
// decimales; CreatedAt viaja como cadena RFC 3339.
type OrderResponse struct {
	ID        string         `json:"id"`
	UserID    int            `json:"user_id"`
	Items     []OrderItemDTO `json:"items"`
	Total     float64        `json:"total"`
	CreatedAt string         `json:"created_at"`
}
