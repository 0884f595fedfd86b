package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sama-store/internal/domain"
	"sama-store/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the cost factor for hashing the configured admin credential.
	BcryptCost = 10

	// MinCustomerPassword is the minimum password length that grants the
	// customer role to an otherwise unknown email.
	MinCustomerPassword = 6

	// AdminDisplayName is shown for the store administrator.
	AdminDisplayName = "Store Manager"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims carried by a session token.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService derives a role from credentials and issues session tokens.
// This is deliberately not an identity provider: a single configured
// credential pair grants admin, any other email with a long-enough password
// grants customer, everything else is rejected.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user domain.User, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	store      *store.Store
	adminEmail string
	adminHash  []byte
	jwtSecret  string
	tokenTTL   time.Duration
}

// NewAuthService hashes the configured admin password once so logins compare
// against the hash, never the plaintext.
func NewAuthService(st *store.Store, adminEmail, adminPassword, jwtSecret string, tokenTTL time.Duration) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin credential: %w", err)
	}
	return &authService{
		store:      st,
		adminEmail: adminEmail,
		adminHash:  hash,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
	}, nil
}

// Login applies the role-derivation contract and audit-logs the attempt.
func (s *authService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	var user domain.User

	switch {
	case email == s.adminEmail && bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) == nil:
		user = domain.User{Email: email, Name: AdminDisplayName, Role: domain.RoleAdmin}
		s.store.Log(ctx, "admin login", email, domain.AuditAuth, domain.OutcomeSuccess)

	case email != "" && len(password) >= MinCustomerPassword:
		user = domain.User{Email: email, Name: domain.DisplayNameFor(email), Role: domain.RoleCustomer}
		s.store.Log(ctx, "customer login", email, domain.AuditAuth, domain.OutcomeSuccess)

	default:
		s.store.Log(ctx, "failed login attempt", email, domain.AuditAuth, domain.OutcomeError)
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}

// ValidateToken parses a session token and returns its claims.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) issueToken(user domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.Email,
		Name:   user.Name,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
