package dto

// ProductResponse salida de un producto. Price viaja como número JSON.
type ProductResponse struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// ProductFilter predicados reconocidos por GET /products.
// Los punteros en nil significan "sin filtrar".
type ProductFilter struct {
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
}
