package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitOrderRequest campos del formulario multipart de POST /request-service.
// El comprobante llega aparte como archivo.
type SubmitOrderRequest struct {
	ServiceType string          `form:"serviceType" validate:"required"`
	Amount      decimal.Decimal `form:"amount" validate:"required"`
	TransferID  string          `form:"transfer_id" validate:"required"`
}

// SubmitOrderResponse confirmación con el ID asignado.
type SubmitOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// OrderSummary resumen de un pedido propio (GET /my-requests).
type OrderSummary struct {
	OrderID     string    `json:"order_id"`
	ServiceType string    `json:"serviceType"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminOrderSummary resumen para administradores (GET /orders): incluye
// cliente, transferencia y nombre del archivo del comprobante, nunca sus bytes.
type AdminOrderSummary struct {
	OrderID     string    `json:"order_id"`
	ClientName  string    `json:"client_name"`
	ServiceType string    `json:"serviceType"`
	TransferID  string    `json:"transfer_id"`
	FileName    string    `json:"file_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpdateStatusRequest cuerpo de PUT /orders/:order_id/update-status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
