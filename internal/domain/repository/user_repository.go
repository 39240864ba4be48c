package repository

import (
	"context"

	"github.com/jhoicas/marketing-crm-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay documento.
type UserRepository interface {
	// Create persiste la cuenta. Devuelve domain.ErrEmailAlreadyExists si el
	// email ya existe (respaldado por índice único en el store).
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// UpdateProfileWithLock aplica el perfil completo, incluido IDNumber, y
	// enciende el candado en la misma escritura condicional: solo toca
	// documentos con isIdNumberLocked=false. Devuelve true si hubo match.
	// La condición vive en el filtro para que la transición del candado sea
	// atómica bajo actualizaciones concurrentes de la misma cuenta.
	UpdateProfileWithLock(ctx context.Context, email string, p entity.Profile) (bool, error)

	// UpdateProfile aplica el perfil sin tocar IDNumber ni el candado
	// (el valor almacenado se preserva). Devuelve true si hubo match.
	UpdateProfile(ctx context.Context, email string, p entity.Profile) (bool, error)
}
