package dto

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// TokenPairResponse salida con access + refresh (contrato del frontend).
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"` // siempre "bearer"
}

// AccessTokenResponse salida de /refresh-token: solo un nuevo access token.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RefreshRequest entrada para /refresh-token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest entrada de PUT /users/me. El use case decide si
// IDNumber puede aplicarse según el candado de la cuenta.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	IDType   string `json:"idType"`
	IDNumber string `json:"idNumber"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// ProfileResponse proyección del perfil (sin password hash).
type ProfileResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	IsActive       bool   `json:"is_active"`
	Role           string `json:"role"`
	Name           string `json:"name"`
	IDType         string `json:"idType"`
	IDNumber       string `json:"idNumber"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	IDNumberLocked bool   `json:"isIdNumberLocked"`
}
