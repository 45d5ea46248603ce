package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin - единственная роль, допущенная к back office
const RoleAdmin = "admin"

// ErrNotAdmin возвращается для валидного токена без роли администратора
var ErrNotAdmin = errors.New("operator is not an admin")

// Claims - claims токена оператора, Subject содержит ID оператора
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Manager проверяет токены операторов, выпущенные внешним контекстом авторизации
type Manager struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewManager создает новый JWT manager
func NewManager(secretKey string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
	}
}

// Generate выпускает токен оператора. Используется в тестах и служебных утилитах.
func (m *Manager) Generate(operator domain.Operator, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: operator.Email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Validate валидирует токен и возвращает оператора
func (m *Manager) Validate(tokenString string) (domain.Operator, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем метод подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return domain.Operator{}, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Operator{}, fmt.Errorf("invalid token claims")
	}

	if claims.Subject == "" {
		return domain.Operator{}, fmt.Errorf("token has no subject")
	}
	if claims.Role != RoleAdmin {
		return domain.Operator{}, ErrNotAdmin
	}

	return domain.Operator{ID: claims.Subject, Email: claims.Email}, nil
}
