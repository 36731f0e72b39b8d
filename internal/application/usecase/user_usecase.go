package usecase

import (
	"errors"
	"strings"

	"github.com/jhoicas/sample-api/internal/application/dto"
	"github.com/jhoicas/sample-api/internal/domain"
	"github.com/jhoicas/sample-api/internal/domain/entity"
	"github.com/jhoicas/sample-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios.
type UserUseCase struct {
	repo repository.UserStore
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserStore) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un nuevo usuario con Active en true y el ID asignado por el
// store. Username debe ser único (sensible a mayúsculas) y el email debe
// contener "@". La unicidad la verifica el store atómicamente con la
// inserción, así dos altas concurrentes del mismo username no pueden pasar
// ambas.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := validateUserInput(in); err != nil {
		return nil, err
	}
	user := &entity.User{
		Username: in.Username,
		Email:    in.Email,
		Active:   true,
	}
	if err := uc.repo.Create(user); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, domain.WithDetail(domain.ErrUsernameTaken, "Username already exists")
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id int) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List lista usuarios aplicando primero el predicado `active` y después la
// paginación, en orden estable de inserción.
func (uc *UserUseCase) List(filter dto.UserFilter, page dto.PageQuery) ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if filter.Active != nil {
		users = filterSeq(users, func(u *entity.User) bool {
			return u.Active == *filter.Active
		})
	}
	users = paginate(users, page)
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Update modifica username y email; Active e ID no cambian.
// Devuelve (nil, nil) si el usuario no existe.
func (uc *UserUseCase) Update(id int, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := validateUserInput(in); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	user.Username = in.Username
	user.Email = in.Email
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario por ID; domain.ErrUserNotFound si no existe.
func (uc *UserUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

func validateUserInput(in dto.CreateUserRequest) error {
	if in.Username == "" || in.Email == "" {
		return domain.WithDetail(domain.ErrInvalidInput, "Missing required fields")
	}
	if !strings.Contains(in.Email, "@") {
		return domain.WithDetail(domain.ErrInvalidEmail, "email must contain @")
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Active:   u.Active,
	}
}
