package admin

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	headerAuthorization = "Authorization"
	headerBearer        = "Bearer"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("admin not found")
)

type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Config struct {
	Email              string `mapstructure:"email"`
	Password           string `mapstructure:"password"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
}

type JWTClaims struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type AdminRepository interface {
	Create(a *Admin) error
	GetByEmail(email string) (*Admin, error)
	GetByID(id string) (*Admin, error)
	Count() (int, error)
}
