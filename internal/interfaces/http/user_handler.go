package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketing-crm-api/internal/application/auth"
	"github.com/jhoicas/marketing-crm-api/internal/application/dto"
	"github.com/jhoicas/marketing-crm-api/internal/domain"
)

// UserHandler maneja el perfil del usuario autenticado.
type UserHandler struct {
	uc *auth.AuthUseCase
}

// NewUserHandler construye el handler de perfil.
func NewUserHandler(uc *auth.AuthUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Me devuelve el perfil del subject del token.
// GET /users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	email := GetEmail(c)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	profile, err := h.uc.Me(c.Context(), email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			// La cuenta pudo haber sido eliminada después de emitir el token.
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c)
	}
	return c.JSON(profile)
}

// UpdateMe actualiza el perfil respetando el candado de IDNumber.
// PUT /users/me
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	email := GetEmail(c)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	profile, err := h.uc.UpdateProfile(c.Context(), email, in)
	if err != nil {
		if err == domain.ErrUpdateFailed {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPDATE_FAILED", Message: "no se pudo actualizar el perfil"})
		}
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c)
	}
	return c.JSON(profile)
}
