package dto

// CreateUserRequest entrada para crear o actualizar un usuario.
// El contrato usa el mismo cuerpo en POST /users y PUT /users/{id}.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
}

// UserFilter predicados reconocidos por GET /users.
// Active en nil significa "sin filtrar".
type UserFilter struct {
	Active *bool
}
