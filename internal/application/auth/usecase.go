package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/marketing-crm-api/internal/application/dto"
	"github.com/jhoicas/marketing-crm-api/internal/domain"
	"github.com/jhoicas/marketing-crm-api/internal/domain/entity"
	"github.com/jhoicas/marketing-crm-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/marketing-crm-api/pkg/jwt"
)

// AuthUseCase casos de uso de cuenta y sesión: registro, login, refresh,
// perfil propio y actualización con candado de IDNumber.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   pkgjwt.Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg pkgjwt.Config) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea una cuenta: hashea el password con bcrypt, persiste con rol
// "user" por defecto y devuelve el par de tokens. Devuelve
// domain.ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.TokenPairResponse, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("auth: buscar email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hashear password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// El índice único respalda el pre-chequeo ante registros concurrentes.
		if err == domain.ErrEmailAlreadyExists || err == domain.ErrDuplicate {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("auth: crear usuario: %w", err)
	}
	return uc.tokenPair(user.Email, user.Role)
}

// Login verifica email/password y devuelve un par de tokens nuevo.
// Cuenta inexistente y password incorrecto devuelven el mismo
// domain.ErrUnauthorized para no filtrar existencia de cuentas.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*dto.TokenPairResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth: buscar email: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.tokenPair(user.Email, user.Role)
}

// Refresh valida el refresh token y emite un access token nuevo con el mismo
// subject y rol. No rota ni revoca el refresh token: una reemisión pura, así
// que un refresh robado sigue siendo válido hasta su propia expiración.
func (uc *AuthUseCase) Refresh(refreshToken string) (*dto.AccessTokenResponse, error) {
	email, role, err := pkgjwt.Parse(uc.jwtCfg.Secret, refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	access, err := pkgjwt.GenerateAccess(uc.jwtCfg, email, role)
	if err != nil {
		return nil, fmt.Errorf("auth: generar access token: %w", err)
	}
	return &dto.AccessTokenResponse{AccessToken: access, TokenType: "bearer"}, nil
}

// Me devuelve la proyección del perfil del subject. domain.ErrUserNotFound
// cubre el caso de cuenta borrada después de emitir el token.
func (uc *AuthUseCase) Me(ctx context.Context, email string) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth: buscar email: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toProfileResponse(user), nil
}

// UpdateProfile aplica el perfil con la semántica del candado:
//
//   - IDNumber entrante no vacío y candado apagado: se aplica el set completo
//     y se enciende el candado en la misma escritura condicional (el filtro
//     exige isIdNumberLocked=false, sin ventana lectura-decisión-escritura).
//   - En cualquier otro caso el IDNumber almacenado se preserva y el resto de
//     campos se actualiza normalmente.
//
// Devuelve domain.ErrUpdateFailed si ninguna escritura encontró la cuenta.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, email string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	p := entity.Profile{
		Name:     in.Name,
		IDType:   in.IDType,
		IDNumber: in.IDNumber,
		Phone:    in.Phone,
		Address:  in.Address,
	}

	if in.IDNumber != "" {
		matched, err := uc.userRepo.UpdateProfileWithLock(ctx, email, p)
		if err != nil {
			return nil, fmt.Errorf("auth: actualizar perfil: %w", err)
		}
		if !matched {
			// Cuenta ya bloqueada (o inexistente): aplicar el resto de campos
			// dejando el IDNumber almacenado intacto.
			matched, err = uc.userRepo.UpdateProfile(ctx, email, p)
			if err != nil {
				return nil, fmt.Errorf("auth: actualizar perfil: %w", err)
			}
			if !matched {
				return nil, domain.ErrUpdateFailed
			}
		}
	} else {
		matched, err := uc.userRepo.UpdateProfile(ctx, email, p)
		if err != nil {
			return nil, fmt.Errorf("auth: actualizar perfil: %w", err)
		}
		if !matched {
			return nil, domain.ErrUpdateFailed
		}
	}

	return uc.Me(ctx, email)
}

func (uc *AuthUseCase) tokenPair(email, role string) (*dto.TokenPairResponse, error) {
	access, err := pkgjwt.GenerateAccess(uc.jwtCfg, email, role)
	if err != nil {
		return nil, fmt.Errorf("auth: generar access token: %w", err)
	}
	refresh, err := pkgjwt.GenerateRefresh(uc.jwtCfg, email, role)
	if err != nil {
		return nil, fmt.Errorf("auth: generar refresh token: %w", err)
	}
	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

func toProfileResponse(u *entity.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:             u.ID,
		Email:          u.Email,
		IsActive:       u.IsActive,
		Role:           u.Role,
		Name:           u.Name,
		IDType:         u.IDType,
		IDNumber:       u.IDNumber,
		Phone:          u.Phone,
		Address:        u.Address,
		IDNumberLocked: u.IDNumberLocked,
	}
}
