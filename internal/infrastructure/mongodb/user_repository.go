package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jhoicas/marketing-crm-api/internal/domain"
	"github.com/jhoicas/marketing-crm-api/internal/domain/entity"
	"github.com/jhoicas/marketing-crm-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre MongoDB.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create persiste una cuenta nueva. El índice único de email convierte un
// insert concurrente del mismo email en domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if err := insertOne(ctx, r.store.col(ColUsers), user); err != nil {
		if err == domain.ErrDuplicate {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

// FindByEmail devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return findOne[entity.User](ctx, r.store.col(ColUsers), bson.D{{Key: "email", Value: email}})
}

// FindByID devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return findOne[entity.User](ctx, r.store.col(ColUsers), bson.D{{Key: "_id", Value: id}})
}

// UpdateProfileWithLock escribe el perfil completo y enciende el candado en
// una sola operación condicional: el filtro exige isIdNumberLocked=false, de
// modo que dos actualizaciones concurrentes no pueden encender el candado con
// valores distintos de idNumber.
func (r *UserRepo) UpdateProfileWithLock(ctx context.Context, email string, p entity.Profile) (bool, error) {
	filter := bson.D{
		{Key: "email", Value: email},
		{Key: "isIdNumberLocked", Value: false},
	}
	set := bson.D{
		{Key: "name", Value: p.Name},
		{Key: "idType", Value: p.IDType},
		{Key: "idNumber", Value: p.IDNumber},
		{Key: "phone", Value: p.Phone},
		{Key: "address", Value: p.Address},
		{Key: "isIdNumberLocked", Value: true},
		{Key: "updated_at", Value: time.Now().UTC()},
	}
	res, err := r.store.col(ColUsers).UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return false, fmt.Errorf("actualizar perfil con candado: %w", wrapError(err))
	}
	return res.MatchedCount > 0, nil
}

// UpdateProfile escribe el perfil sin tocar idNumber ni el candado: el valor
// almacenado se preserva.
func (r *UserRepo) UpdateProfile(ctx context.Context, email string, p entity.Profile) (bool, error) {
	set := bson.D{
		{Key: "name", Value: p.Name},
		{Key: "idType", Value: p.IDType},
		{Key: "phone", Value: p.Phone},
		{Key: "address", Value: p.Address},
		{Key: "updated_at", Value: time.Now().UTC()},
	}
	res, err := r.store.col(ColUsers).UpdateOne(ctx, bson.D{{Key: "email", Value: email}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return false, fmt.Errorf("actualizar perfil: %w", wrapError(err))
	}
	return res.MatchedCount > 0, nil
}
