package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce a
// códigos de estado; los fallos del store se envuelven en ErrUnavailable para
// no filtrar detalles internos al cliente.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidProof       = errors.New("solo se permiten imágenes como comprobante")
	ErrOrderNotFound      = errors.New("pedido no encontrado")
	ErrClientNotFound     = errors.New("cliente no encontrado")
	ErrUpdateFailed       = errors.New("no se pudo actualizar el perfil")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnavailable        = errors.New("operación no disponible, intente más tarde")
)
