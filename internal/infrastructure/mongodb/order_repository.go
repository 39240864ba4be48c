package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jhoicas/marketing-crm-api/internal/domain/entity"
	"github.com/jhoicas/marketing-crm-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// orderDoc representación BSON del pedido. Amount se persiste como string
// decimal exacto: decimal.Decimal no expone campos serializables por el
// driver y un double perdería precisión.
type orderDoc struct {
	OrderID     string              `bson:"order_id"`
	UserID      string              `bson:"user_id"`
	ClientName  string              `bson:"client_name"`
	ServiceType string              `bson:"serviceType"`
	Amount      string              `bson:"amount"`
	TransferID  string              `bson:"transfer_id"`
	Proof       entity.PaymentProof `bson:"file"`
	Status      string              `bson:"status"`
	CreatedAt   time.Time           `bson:"created_at"`
}

func toOrderDoc(o *entity.Order) *orderDoc {
	return &orderDoc{
		OrderID:     o.OrderID,
		UserID:      o.UserID,
		ClientName:  o.ClientName,
		ServiceType: o.ServiceType,
		Amount:      o.Amount.String(),
		TransferID:  o.TransferID,
		Proof:       o.Proof,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}

func (d *orderDoc) toEntity() (*entity.Order, error) {
	amount, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return nil, fmt.Errorf("monto almacenado inválido %q: %w", d.Amount, err)
	}
	return &entity.Order{
		OrderID:     d.OrderID,
		UserID:      d.UserID,
		ClientName:  d.ClientName,
		ServiceType: d.ServiceType,
		Amount:      amount,
		TransferID:  d.TransferID,
		Proof:       d.Proof,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
	}, nil
}

// OrderRepo implementación del puerto OrderRepository sobre MongoDB.
// El comprobante viaja embebido en el documento del pedido.
type OrderRepo struct {
	store *Store
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(store *Store) *OrderRepo {
	return &OrderRepo{store: store}
}

// Insert persiste el pedido. domain.ErrDuplicate indica colisión de order_id
// contra el índice único; el llamador sortea otro ID y reintenta.
func (r *OrderRepo) Insert(ctx context.Context, order *entity.Order) error {
	return insertOne(ctx, r.store.col(ColOrders), toOrderDoc(order))
}

// FindByOrderID devuelve (nil, nil) si no existe.
func (r *OrderRepo) FindByOrderID(ctx context.Context, orderID string) (*entity.Order, error) {
	doc, err := findOne[orderDoc](ctx, r.store.col(ColOrders), bson.D{{Key: "order_id", Value: orderID}})
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.toEntity()
}

// ListByUserID pedidos del dueño, hasta limit documentos.
func (r *OrderRepo) ListByUserID(ctx context.Context, userID string, limit int) ([]*entity.Order, error) {
	docs, err := findMany[orderDoc](ctx, r.store.col(ColOrders), bson.D{{Key: "user_id", Value: userID}}, limit)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos por usuario: %w", err)
	}
	return toEntities(docs)
}

// ListAll todos los pedidos, hasta limit documentos.
func (r *OrderRepo) ListAll(ctx context.Context, limit int) ([]*entity.Order, error) {
	docs, err := findMany[orderDoc](ctx, r.store.col(ColOrders), bson.D{}, limit)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	return toEntities(docs)
}

func toEntities(docs []*orderDoc) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(docs))
	for _, d := range docs {
		o, err := d.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// UpdateStatus fija el status; devuelve true si algún documento coincidió.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID, status string) (bool, error) {
	res, err := r.store.col(ColOrders).UpdateOne(ctx,
		bson.D{{Key: "order_id", Value: orderID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}},
	)
	if err != nil {
		return false, fmt.Errorf("actualizar estado: %w", wrapError(err))
	}
	return res.MatchedCount > 0, nil
}
