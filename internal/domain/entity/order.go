package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusProcessing estado inicial de todo pedido recién creado.
const StatusProcessing = "Procesando Pago"

// OrderIDMin y OrderIDMax delimitan el espacio de identificadores de pedido:
// cadenas numéricas de 4 dígitos.
const (
	OrderIDMin = 1000
	OrderIDMax = 9999
)

// PaymentProof comprobante de pago subido por el usuario. Los bytes se
// guardan embebidos en el documento del pedido y son inmutables.
type PaymentProof struct {
	Filename    string `bson:"filename"`
	ContentType string `bson:"content_type"`
	Data        []byte `bson:"data"`
}

// Order pedido de servicio. OrderID es inmutable una vez asignado;
// Status es el único campo que muta después de la creación (solo admin).
type Order struct {
	OrderID     string          `bson:"order_id"`    // 4 dígitos, único
	UserID      string          `bson:"user_id"`     // referencia suave a User.ID, sin cascada
	ClientName  string          `bson:"client_name"` // snapshot del nombre al momento de crear
	ServiceType string          `bson:"serviceType"`
	Amount      decimal.Decimal `bson:"amount"`
	TransferID  string          `bson:"transfer_id"`
	Proof       PaymentProof    `bson:"file"`
	Status      string          `bson:"status"`
	CreatedAt   time.Time       `bson:"created_at"`
}
