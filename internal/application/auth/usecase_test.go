package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketing-crm-api/internal/application/auth"
	"github.com/jhoicas/marketing-crm-api/internal/application/dto"
	"github.com/jhoicas/marketing-crm-api/internal/domain"
	"github.com/jhoicas/marketing-crm-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/marketing-crm-api/pkg/jwt"
)

var testJWTCfg = pkgjwt.Config{
	Secret:     "test-secret-key-for-unit-tests",
	Issuer:     "marketing-crm-test",
	AccessTTL:  15 * time.Minute,
	RefreshTTL: 7 * 24 * time.Hour,
}

// fakeUserRepo repositorio en memoria con la misma semántica condicional que
// el adaptador de MongoDB: candado en el filtro, no decidido por el llamador.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateProfileWithLock(_ context.Context, email string, p entity.Profile) (bool, error) {
	u, ok := r.byEmail[email]
	if !ok || u.IDNumberLocked {
		return false, nil
	}
	u.Name, u.IDType, u.IDNumber, u.Phone, u.Address = p.Name, p.IDType, p.IDNumber, p.Phone, p.Address
	u.IDNumberLocked = true
	return true, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, email string, p entity.Profile) (bool, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return false, nil
	}
	u.Name, u.IDType, u.Phone, u.Address = p.Name, p.IDType, p.Phone, p.Address
	return true, nil
}

func newUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return auth.NewAuthUseCase(repo, testJWTCfg), repo
}

func TestRegister_DevuelveTokensVerificables(t *testing.T) {
	uc, _ := newUseCase()

	tokens, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "superclave123",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", tokens.TokenType)

	email, role, err := pkgjwt.Parse(testJWTCfg.Secret, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
	assert.Equal(t, "user", role, "el rol por defecto debe ser user")

	email, role, err = pkgjwt.Parse(testJWTCfg.Secret, tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
	assert.Equal(t, "user", role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "superclave123"})
	require.NoError(t, err)
	first := repo.byEmail["ana@example.com"]

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "otraclave456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Same(t, first, repo.byEmail["ana@example.com"], "la primera cuenta no debe tocarse")
}

// Password incorrecto y cuenta inexistente devuelven exactamente el mismo
// error: el login no filtra qué cuentas existen.
func TestLogin_NoFiltraExistencia(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "superclave123"})
	require.NoError(t, err)

	_, errWrongPass := uc.Login(ctx, "ana@example.com", "incorrecta")
	_, errNoUser := uc.Login(ctx, "nadie@example.com", "cualquiera")

	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.Equal(t, errWrongPass, errNoUser)
}

func TestLogin_Correcto(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "superclave123", Role: "admin"})
	require.NoError(t, err)

	tokens, err := uc.Login(ctx, "ana@example.com", "superclave123")
	require.NoError(t, err)

	_, role, err := pkgjwt.Parse(testJWTCfg.Secret, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", role)
}

func TestRefresh_ReemiteAccessConMismosClaims(t *testing.T) {
	uc, _ := newUseCase()

	refresh, err := pkgjwt.GenerateRefresh(testJWTCfg, "ana@example.com", "admin")
	require.NoError(t, err)

	out, err := uc.Refresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)

	email, role, err := pkgjwt.Parse(testJWTCfg.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
	assert.Equal(t, "admin", role)
}

func TestRefresh_TokenInvalido(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Refresh("no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

// La cuenta pudo borrarse después de emitir el token: Me lo reporta como
// usuario no encontrado, no como fallo interno.
func TestMe_CuentaBorradaDespuesDelToken(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Me(context.Background(), "fantasma@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile_CandadoDeIDNumber(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "superclave123"})
	require.NoError(t, err)

	// Primer guardado de un IDNumber no vacío: aplica y enciende el candado.
	profile, err := uc.UpdateProfile(ctx, "ana@example.com", dto.UpdateProfileRequest{
		Name:     "Ana Pérez",
		IDType:   "CC",
		IDNumber: "123",
		Phone:    "3001234567",
		Address:  "Calle 1 # 2-3",
	})
	require.NoError(t, err)
	assert.Equal(t, "123", profile.IDNumber)
	assert.True(t, profile.IDNumberLocked)

	// Intento de sobreescritura: el IDNumber almacenado se preserva, el resto
	// de campos se actualiza normalmente.
	profile, err = uc.UpdateProfile(ctx, "ana@example.com", dto.UpdateProfileRequest{
		Name:     "Ana María Pérez",
		IDType:   "CC",
		IDNumber: "999",
		Phone:    "3009876543",
		Address:  "Calle 9 # 8-7",
	})
	require.NoError(t, err)
	assert.Equal(t, "123", profile.IDNumber, "el candado impide cambiar el IDNumber")
	assert.Equal(t, "Ana María Pérez", profile.Name)
	assert.Equal(t, "3009876543", profile.Phone)
	assert.True(t, profile.IDNumberLocked)
}

// IDNumber vacío nunca enciende el candado y preserva el valor almacenado.
func TestUpdateProfile_IDNumberVacioNoBloquea(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "superclave123"})
	require.NoError(t, err)

	profile, err := uc.UpdateProfile(ctx, "ana@example.com", dto.UpdateProfileRequest{Name: "Ana"})
	require.NoError(t, err)
	assert.False(t, profile.IDNumberLocked)
	assert.Empty(t, profile.IDNumber)
}

func TestUpdateProfile_CuentaInexistente(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.UpdateProfile(context.Background(), "nadie@example.com", dto.UpdateProfileRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrUpdateFailed)
}
