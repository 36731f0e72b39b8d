package entity

// User representa un usuario del fixture de pruebas.
// El ID lo asigna el store desde un contador interno; Username es único
// (comparación sensible a mayúsculas) entre todos los usuarios.
type User struct {
	ID       int
	Username string
	Email    string
	Active   bool
}
