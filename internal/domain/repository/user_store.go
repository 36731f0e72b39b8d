package repository

import "github.com/jhoicas/sample-api/internal/domain/entity"

// UserStore define el puerto de almacenamiento para User (DIP).
// Las lecturas devuelven (nil, nil) cuando el registro no existe.
type UserStore interface {
	// Create asigna el siguiente ID del contador interno y persiste el
	// usuario. Verifica la unicidad del username (sensible a mayúsculas)
	// atómicamente con la inserción; si ya existe retorna
	// domain.ErrUsernameTaken sin insertar.
	Create(user *entity.User) error
	GetByID(id int) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// List devuelve todos los usuarios en orden de inserción.
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id int) error
	// Reset reemplaza el contenido por la semilla dada (aislamiento entre tests).
	Reset(seed []*entity.User)
}
