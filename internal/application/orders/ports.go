package orders

import (
	"context"

	"github.com/jhoicas/marketing-crm-api/internal/domain/entity"
)

// InvoicePDFGenerator puerto de salida para renderizar el comprobante de
// pedido en PDF. Lo implementa infrastructure/pdf con Maroto; el use case
// solo conoce este contrato.
type InvoicePDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, client *entity.User) ([]byte, error)
}
