package admin

import (
	"crypto/rsa"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"golang.org/x/crypto/bcrypt"
)

type AdminService struct {
	repo       AdminRepository
	config     Config
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

func NewAdminService(repo AdminRepository, config Config, privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey) *AdminService {
	return &AdminService{
		repo:       repo,
		config:     config,
		privateKey: privateKey,
		publicKey:  publicKey,
	}
}

// Bootstrap creates the configured admin account when none exists yet.
func (as *AdminService) Bootstrap() error {
	count, err := as.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	if as.config.Email == "" || as.config.Password == "" {
		return fmt.Errorf("admin email and password must be configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(as.config.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	return as.repo.Create(&Admin{
		ID:           uuid.NewString(),
		Email:        as.config.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
}

// Login verifies the credentials and issues a signed JWT.
func (as *AdminService) Login(email, password string) (string, int64, error) {
	a, err := as.repo.GetByEmail(email)
	if err != nil {
		return "", 0, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	return as.GenerateJWT(a)
}

func (as *AdminService) GenerateJWT(a *Admin) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(as.config.JWTExpirationHours) * time.Hour).Unix()

	claims := JWTClaims{
		AdminID: a.ID,
		Email:   a.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Unix(expiresAt, 0)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenString, err := token.SignedString(as.privateKey)
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

func (as *AdminService) ValidateJWT(tokenString string) (*Admin, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return as.publicKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		a, err := as.repo.GetByID(claims.AdminID)
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func (as *AdminService) ValidateJWTFromRequest(ctx *fasthttp.RequestCtx) (*Admin, error) {
	authHeader := ctx.Request.Header.Peek(headerAuthorization)
	if authHeader == nil {
		return nil, fmt.Errorf("missing authorization header")
	}

	tokenString, err := extractJWTFromAuthorizationHeader(string(authHeader))
	if err != nil {
		return nil, fmt.Errorf("invalid authorization header: %w", err)
	}

	return as.ValidateJWT(tokenString)
}

// PublicKey exposes the verification key for the JWKS endpoint.
func (as *AdminService) PublicKey() *rsa.PublicKey {
	return as.publicKey
}

func extractJWTFromAuthorizationHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != headerBearer {
		return "", fmt.Errorf("invalid Authorization header format")
	}
	return parts[1], nil
}
