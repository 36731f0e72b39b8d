package memory

import (
	"sync"

	"github.com/jhoicas/sample-api/internal/domain"
	"github.com/jhoicas/sample-api/internal/domain/entity"
	"github.com/jhoicas/sample-api/internal/domain/repository"
)

var _ repository.UserStore = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserStore.
// Mantiene orden de inserción en un slice y asigna IDs desde un contador.
type UserRepo struct {
	mu     sync.RWMutex
	users  []*entity.User
	nextID int
}

// NewUserRepository construye el store con la semilla inicial.
func NewUserRepository(seed []*entity.User) *UserRepo {
	r := &UserRepo{}
	r.Reset(seed)
	return r
}

// Create asigna el siguiente ID y agrega el usuario al final. La verificación
// de unicidad del username ocurre aquí, bajo el mismo lock de escritura que la
// inserción: dos altas concurrentes con el mismo username nunca pueden pasar
// ambas la verificación.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByUsername obtiene un usuario por username exacto; (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todos los usuarios en orden de inserción.
func (r *UserRepo) List() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

// Update reemplaza el registro con el mismo ID; domain.ErrUserNotFound si no existe.
func (r *UserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			cp := *user
			r.users[i] = &cp
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// Delete elimina el registro con el ID dado; domain.ErrUserNotFound si no existe.
func (r *UserRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// Reset reemplaza el contenido por la semilla y reancla el contador de IDs
// justo después del mayor ID sembrado.
func (r *UserRepo) Reset(seed []*entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make([]*entity.User, 0, len(seed))
	maxID := 0
	for _, u := range seed {
		cp := *u
		r.users = append(r.users, &cp)
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	r.nextID = maxID + 1
}
