package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketing-crm-api/internal/application/auth"
	"github.com/jhoicas/marketing-crm-api/internal/application/dto"
	"github.com/jhoicas/marketing-crm-api/internal/domain"
)

// AuthHandler maneja registro, login y refresh de tokens.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register crea una cuenta y devuelve el par de tokens.
// POST /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	tokens, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return internalError(c)
	}
	return c.JSON(tokens)
}

// Token login con credenciales de formulario (contrato OAuth2 password del
// frontend: campos username y password).
// POST /token
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	tokens, err := h.uc.Login(c.Context(), email, password)
	if err != nil {
		if err == domain.ErrUnauthorized {
			// Mismo error para cuenta inexistente y password incorrecto.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "email o password incorrectos"})
		}
		return internalError(c)
	}
	return c.JSON(tokens)
}

// RefreshToken emite un access token nuevo a partir de un refresh válido.
// POST /refresh-token
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "refresh_token es requerido"})
	}
	out, err := h.uc.Refresh(in.RefreshToken)
	if err != nil {
		if err == domain.ErrInvalidToken {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "refresh token inválido o expirado"})
		}
		return internalError(c)
	}
	return c.JSON(out)
}

// internalError respuesta 500 genérica: nunca se filtra el texto del error
// interno al cliente.
func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo completar la operación"})
}
