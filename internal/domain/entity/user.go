package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta del CRM: identidad, credencial y perfil.
// IDNumberLocked es un candado de una sola vía: se enciende la primera vez
// que se guarda un IDNumber no vacío y a partir de ahí el campo es inmutable
// por la ruta de actualización de perfil.
type User struct {
	ID             string    `bson:"_id"`
	Email          string    `bson:"email"`           // único, sensible a mayúsculas tal como se almacena
	PasswordHash   string    `bson:"hashed_password"` // bcrypt, nunca en claro después de persistir
	Role           string    `bson:"role"`            // user, admin
	IsActive       bool      `bson:"is_active"`
	Name           string    `bson:"name,omitempty"`
	IDType         string    `bson:"idType,omitempty"`
	IDNumber       string    `bson:"idNumber,omitempty"`
	Phone          string    `bson:"phone,omitempty"`
	Address        string    `bson:"address,omitempty"`
	IDNumberLocked bool      `bson:"isIdNumberLocked"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

// Profile campos editables por el propio usuario vía PUT /users/me.
type Profile struct {
	Name     string
	IDType   string
	IDNumber string
	Phone    string
	Address  string
}
