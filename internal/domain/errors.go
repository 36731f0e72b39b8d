package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen al código de estado y al cuerpo {detail} que exige el contrato.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrOrderNotFound     = errors.New("orden no encontrada")
	ErrUsernameTaken     = errors.New("el username ya está registrado")
	ErrInvalidEmail      = errors.New("email inválido")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrEmptyOrder        = errors.New("la orden no tiene items")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// DetailError adjunta a un centinela el mensaje exacto que viaja en el campo
// {detail} de la respuesta. El centinela decide el código de estado vía
// errors.Is; Detail conserva datos del caso concreto (IDs, cantidades).
type DetailError struct {
	Err    error
	Detail string
}

func (e *DetailError) Error() string { return e.Detail }
func (e *DetailError) Unwrap() error { return e.Err }

// WithDetail envuelve err con el mensaje de cara al cliente.
func WithDetail(err error, detail string) error {
	return &DetailError{Err: err, Detail: detail}
}

// Detail extrae el mensaje de cliente de err; si no hay DetailError en la
// cadena devuelve fallback.
func Detail(err error, fallback string) string {
	var de *DetailError
	if errors.As(err, &de) {
		return de.Detail
	}
	return fallback
}
