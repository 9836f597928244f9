package token

import (
	"errors"
	"time"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: expired token")
	ErrInvalidClaims = errors.New("token: invalid claims")
)

const (
	EDIT  = "edit"  // 비밀번호 확인 후 발급되는 글 수정 토큰
	ADMIN = "admin" // 관리자 대시보드 토큰
)

type Claims struct {
	ListingID string `json:"listing_id,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type Manager interface {
	GenerateEditToken(listingID string) (string, error)
	ValidateEditToken(tokenString string) (*Claims, error)
	GenerateAdminToken(subject string) (string, error)
	ValidateAdminToken(tokenString string) (*Claims, error)
}

type JWTManager struct {
	secret      []byte
	issuer      string
	editExpiry  time.Duration
	adminExpiry time.Duration
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		secret:      []byte(cfg.JWT.Secret),
		issuer:      cfg.App.Name,
		editExpiry:  cfg.JWT.EditTokenExpiry,
		adminExpiry: cfg.JWT.AdminExpiry,
	}
}

// GenerateEditToken issues a token scoped to a single listing. It is only
// handed out after the listing password was verified.
func (m *JWTManager) GenerateEditToken(listingID string) (string, error) {
	return m.sign(Claims{
		ListingID: listingID,
		TokenType: EDIT,
	}, listingID, m.editExpiry)
}

func (m *JWTManager) GenerateAdminToken(subject string) (string, error) {
	return m.sign(Claims{
		TokenType: ADMIN,
	}, subject, m.adminExpiry)
}

func (m *JWTManager) ValidateEditToken(tokenString string) (*Claims, error) {
	claims, err := m.validate(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != EDIT || claims.ListingID == "" {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

func (m *JWTManager) ValidateAdminToken(tokenString string) (*Claims, error) {
	claims, err := m.validate(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != ADMIN {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

func (m *JWTManager) sign(claims Claims, subject string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    m.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) validate(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
