package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/config"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRevoked       = errors.New("token revoked")
)

// TokenType distinguishes learner, guest and admin tokens.
type TokenType string

const (
	TokenTypeUser  TokenType = "user"
	TokenTypeGuest TokenType = "guest"
	TokenTypeAdmin TokenType = "admin"
)

// Claims extends JWT standard claims with app-specific fields.
type Claims struct {
	jwt.RegisteredClaims
	TokenType   TokenType `json:"token_type"`
	UserID      int       `json:"user_id,omitempty"`     // User and admin tokens
	GuestID     string    `json:"guest_id,omitempty"`    // Guest only
	RoleID      int       `json:"role_id,omitempty"`     // Admin only
	Permissions []string  `json:"permissions,omitempty"` // Admin only
}

// AuthService handles authentication, JWT issuance, and the Redis token
// registry used for logout.
type AuthService struct {
	cfg *config.Config
	rdb *redis.Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, rdb *redis.Client) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateUserToken creates a JWT for a learner and registers its JTI in
// Redis so logout can revoke it.
func (s *AuthService) GenerateUserToken(ctx context.Context, userID int) (string, error) {
	jti := uuid.New().String()
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		TokenType: TokenTypeUser,
		UserID:    userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.rdb.Set(ctx, config.CacheKey.UserLoginKey(userID), jti, s.cfg.JWTExpiry).Err(); err != nil {
		return "", fmt.Errorf("register token: %w", err)
	}
	return signed, nil
}

// GenerateGuestToken creates a fresh guest identity and its JWT. Guest
// tokens are not registered; the free-trial counter keyed by guest id is the
// only server-side state they carry.
func (s *AuthService) GenerateGuestToken() (token string, guestID string, err error) {
	guestID = uuid.New().String()
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   guestID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.GuestJWTExpiry)),
		},
		TokenType: TokenTypeGuest,
		GuestID:   guestID,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("sign token: %w", err)
	}
	return token, guestID, nil
}

// GenerateAdminToken creates a JWT for an admin with permissions embedded
// and registers it in Redis.
func (s *AuthService) GenerateAdminToken(ctx context.Context, adminID, roleID int, permissions []string) (string, error) {
	jti := uuid.New().String()
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.Itoa(adminID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		TokenType:   TokenTypeAdmin,
		UserID:      adminID,
		RoleID:      roleID,
		Permissions: permissions,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.rdb.Set(ctx, config.CacheKey.AdminLoginKey(adminID), jti, s.cfg.JWTExpiry).Err(); err != nil {
		return "", fmt.Errorf("register token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// CheckRegistered verifies the token's JTI is still the registered one for
// its account. Guest tokens have no registry entry and always pass.
func (s *AuthService) CheckRegistered(ctx context.Context, claims *Claims) error {
	var key string
	switch claims.TokenType {
	case TokenTypeUser:
		key = config.CacheKey.UserLoginKey(claims.UserID)
	case TokenTypeAdmin:
		key = config.CacheKey.AdminLoginKey(claims.UserID)
	default:
		return nil
	}

	stored, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrTokenRevoked
		}
		return fmt.Errorf("check token registry: %w", err)
	}
	if stored != claims.ID {
		return ErrTokenRevoked
	}
	return nil
}

// RevokeToken removes the registry entry for a user or admin, invalidating
// their current token.
func (s *AuthService) RevokeToken(ctx context.Context, claims *Claims) error {
	switch claims.TokenType {
	case TokenTypeUser:
		return s.rdb.Del(ctx, config.CacheKey.UserLoginKey(claims.UserID)).Err()
	case TokenTypeAdmin:
		return s.rdb.Del(ctx, config.CacheKey.AdminLoginKey(claims.UserID)).Err()
	}
	return nil
}
