package auth

import (
	"context"
	"fmt"
	"time"

	"balloon-flights-backend/internal/database/models"
	"balloon-flights-backend/internal/policy"
	"balloon-flights-backend/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserStore is the part of the user service the authentication flow needs
type UserStore interface {
	Register(ctx context.Context, req *service.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// AuthService issues and validates bearer tokens for local accounts
type AuthService struct {
	config *AuthConfig
	users  UserStore
	now    func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   uuid.UUID `json:"user_id" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	Username string    `json:"username" example:"ana"`
	IsStaff  bool      `json:"is_staff" example:"false"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Actor converts the claims into the identity passed to services
func (c *AuthClaims) Actor() policy.Actor {
	return policy.Actor{UserID: c.UserID, Username: c.Username, IsStaff: c.IsStaff}
}

// LoginRequest represents the credentials posted to the login endpoint
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ana"`
	Password string `json:"password" binding:"required" example:"hot-air-123"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64     `json:"expiresIn" example:"86400"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	IsStaff     bool      `json:"is_staff"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users UserStore) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, users: users, now: time.Now}, nil
}

// Login checks the credentials and returns a signed token
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// Register creates a regular (non-staff) account and logs it in
func (s *AuthService) Register(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.users.Register(ctx, &service.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*LoginResponse, error) {
	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL.Seconds()),
		UserID:      user.ID,
		Username:    user.Username,
		IsStaff:     user.IsStaff,
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		IsStaff:  user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.UserID != uuid.Nil {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
