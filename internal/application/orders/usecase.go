package orders

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/marketing-crm-api/internal/application/dto"
	"github.com/jhoicas/marketing-crm-api/internal/domain"
	"github.com/jhoicas/marketing-crm-api/internal/domain/entity"
	"github.com/jhoicas/marketing-crm-api/internal/domain/repository"
)

// maxListResults tope de documentos por listado.
const maxListResults = 100

// OrderUseCase ciclo de vida de pedidos: creación con comprobante embebido,
// listados, cambio de estado y descarga/factura para administradores.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	pdfGen    InvoicePDFGenerator

	// drawID genera un candidato de order_id; reemplazable en tests.
	drawID func() string
}

// NewOrderUseCase construye el caso de uso de pedidos.
func NewOrderUseCase(orderRepo repository.OrderRepository, userRepo repository.UserRepository, pdfGen InvoicePDFGenerator) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		pdfGen:    pdfGen,
		drawID:    defaultDrawID,
	}
}

// defaultDrawID devuelve una cadena numérica uniforme en [1000, 9999].
func defaultDrawID() string {
	return strconv.Itoa(entity.OrderIDMin + rand.Intn(entity.OrderIDMax-entity.OrderIDMin+1))
}

// Submit valida el comprobante, resuelve la cuenta del subject y persiste el
// pedido con un order_id único de 4 dígitos y estado inicial "Procesando Pago".
//
// La unicidad del ID se garantiza con el índice único de order_id: se inserta
// directamente y ante colisión se sortea otro valor y se reintenta, sin
// pre-chequeo de existencia (cerraría mal la carrera check-then-insert).
// Con el espacio de 9000 valores agotado el bucle no termina; en la práctica
// la colección queda lejos de ese punto.
func (uc *OrderUseCase) Submit(ctx context.Context, email string, in dto.SubmitOrderRequest, proof entity.PaymentProof) (*dto.SubmitOrderResponse, error) {
	if !strings.HasPrefix(proof.ContentType, "image/") {
		return nil, domain.ErrInvalidProof
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("orders: buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	clientName := user.Name
	if clientName == "" {
		clientName = "Sin Nombre"
	}
	order := &entity.Order{
		UserID:      user.ID,
		ClientName:  clientName,
		ServiceType: in.ServiceType,
		Amount:      in.Amount,
		TransferID:  in.TransferID,
		Proof:       proof,
		Status:      entity.StatusProcessing,
		CreatedAt:   time.Now().UTC(),
	}

	for {
		order.OrderID = uc.drawID()
		err := uc.orderRepo.Insert(ctx, order)
		if err == nil {
			break
		}
		if err == domain.ErrDuplicate {
			continue // order_id ocupado, sortear otro
		}
		return nil, fmt.Errorf("orders: insertar pedido: %w", err)
	}

	return &dto.SubmitOrderResponse{
		Message: "Solicitud enviada con éxito",
		OrderID: order.OrderID,
	}, nil
}

// ListMine devuelve los pedidos del subject (resumen sin comprobante).
func (uc *OrderUseCase) ListMine(ctx context.Context, email string) ([]dto.OrderSummary, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("orders: buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	list, err := uc.orderRepo.ListByUserID(ctx, user.ID, maxListResults)
	if err != nil {
		return nil, fmt.Errorf("orders: listar pedidos propios: %w", err)
	}
	out := make([]dto.OrderSummary, 0, len(list))
	for _, o := range list {
		out = append(out, dto.OrderSummary{
			OrderID:     o.OrderID,
			ServiceType: o.ServiceType,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
		})
	}
	return out, nil
}

// ListAll devuelve todos los pedidos; solo administradores.
func (uc *OrderUseCase) ListAll(ctx context.Context, role string) ([]dto.AdminOrderSummary, error) {
	if role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	list, err := uc.orderRepo.ListAll(ctx, maxListResults)
	if err != nil {
		return nil, fmt.Errorf("orders: listar pedidos: %w", err)
	}
	out := make([]dto.AdminOrderSummary, 0, len(list))
	for _, o := range list {
		clientName := o.ClientName
		if clientName == "" {
			clientName = "Desconocido"
		}
		out = append(out, dto.AdminOrderSummary{
			OrderID:     o.OrderID,
			ClientName:  clientName,
			ServiceType: o.ServiceType,
			TransferID:  o.TransferID,
			FileName:    o.Proof.Filename,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
		})
	}
	return out, nil
}

// UpdateStatus fija el estado de un pedido; solo administradores.
// Un order_id que no coincide con ningún documento devuelve
// domain.ErrOrderNotFound, nunca un éxito silencioso.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, role, orderID, status string) error {
	if role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if status == "" {
		return domain.ErrInvalidInput
	}
	matched, err := uc.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return fmt.Errorf("orders: actualizar estado: %w", err)
	}
	if !matched {
		return domain.ErrOrderNotFound
	}
	return nil
}

// Invoice renderiza el PDF del pedido con los datos del cliente; solo
// administradores. El PDF se genera en memoria en cada llamada y nunca se
// escribe a una ruta compartida. Una referencia colgante de dueño se reporta
// como domain.ErrClientNotFound, no como pánico.
func (uc *OrderUseCase) Invoice(ctx context.Context, role, orderID string) (pdfBytes []byte, filename string, err error) {
	if role != entity.RoleAdmin {
		return nil, "", domain.ErrForbidden
	}
	order, err := uc.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("orders: buscar pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrOrderNotFound
	}

	client, err := uc.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("orders: buscar cliente: %w", err)
	}
	if client == nil {
		return nil, "", domain.ErrClientNotFound
	}

	pdfBytes, err = uc.pdfGen.GenerateOrderPDF(ctx, order, client)
	if err != nil {
		return nil, "", fmt.Errorf("orders: generar pdf: %w", err)
	}
	return pdfBytes, orderID + ".pdf", nil
}

// DownloadProof devuelve el comprobante embebido tal cual fue subido; solo
// administradores.
func (uc *OrderUseCase) DownloadProof(ctx context.Context, role, orderID string) (*entity.PaymentProof, error) {
	if role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	order, err := uc.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("orders: buscar pedido: %w", err)
	}
	if order == nil || len(order.Proof.Data) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	proof := order.Proof
	return &proof, nil
}
