package repository

import (
	"context"

	"github.com/jhoicas/marketing-crm-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	// Insert persiste el pedido. Devuelve domain.ErrDuplicate si ya existe un
	// documento con el mismo order_id (índice único); el generador de IDs
	// reintenta con otro valor en ese caso.
	Insert(ctx context.Context, order *entity.Order) error

	// FindByOrderID devuelve (nil, nil) si no existe.
	FindByOrderID(ctx context.Context, orderID string) (*entity.Order, error)

	// ListByUserID pedidos del dueño, hasta limit documentos, en el orden de
	// iteración del store (no garantizado).
	ListByUserID(ctx context.Context, userID string, limit int) ([]*entity.Order, error)

	// ListAll todos los pedidos, hasta limit documentos.
	ListAll(ctx context.Context, limit int) ([]*entity.Order, error)

	// UpdateStatus fija el status del pedido. Devuelve true si hubo match.
	UpdateStatus(ctx context.Context, orderID, status string) (bool, error)
}
