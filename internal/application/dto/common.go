package dto

// ErrorResponse cuerpo de error HTTP del contrato: {"detail": "..."}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse cuerpo con mensaje simple: raíz, borrado de usuario, timeout.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse salida de GET /health, calculada en cada llamada.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// PageQuery paginación de listados: skip y limit se aplican después del
// filtrado. Limit se acota a [1,100]; skip fuera de rango da lista vacía.
type PageQuery struct {
	Skip  int
	Limit int
}

// Normalize acota skip a ≥ 0 y limit a [1,100]. El valor por defecto de
// limit (10) lo pone el handler cuando el parámetro no viene en la query.
func (p *PageQuery) Normalize() {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}
