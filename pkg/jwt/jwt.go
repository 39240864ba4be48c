package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config parámetros de firma y vigencia. Se construye una vez en el arranque
// y se pasa explícitamente; no hay estado global mutable.
type Config struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration // defecto 15 minutos
	RefreshTTL time.Duration // defecto 7 días
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Subject lleva el email de la cuenta; Role permite al middleware RBAC decidir
// sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"` // "user" | "admin"
}

// GenerateAccess genera el access token de corta vida.
func GenerateAccess(cfg Config, email, role string) (string, error) {
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return generate(cfg, email, role, ttl)
}

// GenerateRefresh genera el refresh token de larga vida. Solo sirve para
// emitir nuevos access tokens; no se rota ni se revoca.
func GenerateRefresh(cfg Config, email, role string) (string, error) {
	ttl := cfg.RefreshTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return generate(cfg, email, role, ttl)
}

func generate(cfg Config, email, role string, ttl time.Duration) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// Parse valida el token y devuelve email y role.
// Retorna error si el token es inválido, expirado, tiene firma incorrecta,
// usa un método de firma distinto de HMAC o no trae subject.
func Parse(secret, tokenString string) (email, role string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" {
		return "", "", fmt.Errorf("token sin subject")
	}
	return claims.Subject, claims.Role, nil
}
