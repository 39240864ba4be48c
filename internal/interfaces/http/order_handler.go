package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketing-crm-api/internal/application/dto"
	"github.com/jhoicas/marketing-crm-api/internal/application/orders"
	"github.com/jhoicas/marketing-crm-api/internal/domain"
	"github.com/jhoicas/marketing-crm-api/internal/domain/entity"
)

// OrderHandler maneja el ciclo de vida de pedidos.
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Submit registra un pedido con su comprobante de pago (multipart).
// POST /request-service
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	email := GetEmail(c)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	serviceType := c.FormValue("serviceType")
	amountStr := c.FormValue("amount")
	transferID := c.FormValue("transfer_id")
	if serviceType == "" || amountStr == "" || transferID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "serviceType, amount y transfer_id son requeridos"})
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser numérico"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el archivo de comprobante es requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return internalError(c)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return internalError(c)
	}
	proof := entity.PaymentProof{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}

	out, err := h.uc.Submit(c.Context(), email, dto.SubmitOrderRequest{
		ServiceType: serviceType,
		Amount:      amount,
		TransferID:  transferID,
	}, proof)
	if err != nil {
		if err == domain.ErrInvalidProof {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PROOF", Message: "solo se permiten imágenes"})
		}
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c)
	}
	return c.JSON(out)
}

// MyRequests lista los pedidos del subject.
// GET /my-requests
func (h *OrderHandler) MyRequests(c *fiber.Ctx) error {
	email := GetEmail(c)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.uc.ListMine(c.Context(), email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c)
	}
	return c.JSON(list)
}

// ListAll lista todos los pedidos; solo administradores.
// GET /orders
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.Context(), GetRole(c))
	if err != nil {
		if err == domain.ErrForbidden {
			return forbidden(c)
		}
		return internalError(c)
	}
	return c.JSON(list)
}

// UpdateStatus cambia el estado de un pedido; solo administradores.
// PUT /orders/:order_id/update-status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	orderID := c.Params("order_id")
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	if err := h.uc.UpdateStatus(c.Context(), GetRole(c), orderID, in.Status); err != nil {
		if err == domain.ErrForbidden {
			return forbidden(c)
		}
		if err == domain.ErrOrderNotFound {
			return orderNotFound(c)
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
		}
		return internalError(c)
	}
	return c.JSON(dto.AckResponse{Message: "Estado actualizado"})
}

// Invoice descarga el PDF del pedido; solo administradores.
// GET /orders/:order_id/invoice
func (h *OrderHandler) Invoice(c *fiber.Ctx) error {
	orderID := c.Params("order_id")
	pdfBytes, filename, err := h.uc.Invoice(c.Context(), GetRole(c), orderID)
	if err != nil {
		if err == domain.ErrForbidden {
			return forbidden(c)
		}
		if err == domain.ErrOrderNotFound {
			return orderNotFound(c)
		}
		if err == domain.ErrClientNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CLIENT_NOT_FOUND", Message: "cliente no encontrado"})
		}
		return internalError(c)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Send(pdfBytes)
}

// DownloadProof descarga el comprobante tal cual se subió; solo administradores.
// GET /admin/download-payment/:order_id
func (h *OrderHandler) DownloadProof(c *fiber.Ctx) error {
	orderID := c.Params("order_id")
	proof, err := h.uc.DownloadProof(c.Context(), GetRole(c), orderID)
	if err != nil {
		if err == domain.ErrForbidden {
			return forbidden(c)
		}
		if err == domain.ErrOrderNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: "pedido o comprobante no encontrado"})
		}
		return internalError(c)
	}
	c.Set(fiber.HeaderContentType, proof.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+proof.Filename)
	return c.Send(proof.Data)
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
}

func orderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: "pedido no encontrado"})
}
