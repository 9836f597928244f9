package testutil

import (
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/token"
)

// MockTokenManager is a mock implementation of token.Manager for testing
type MockTokenManager struct {
	GenerateEditTokenFunc  func(listingID string) (string, error)
	ValidateEditTokenFunc  func(tokenString string) (*token.Claims, error)
	GenerateAdminTokenFunc func(subject string) (string, error)
	ValidateAdminTokenFunc func(tokenString string) (*token.Claims, error)
}

var _ token.Manager = (*MockTokenManager)(nil)

func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{}
}

func (m *MockTokenManager) GenerateEditToken(listingID string) (string, error) {
	if m.GenerateEditTokenFunc != nil {
		return m.GenerateEditTokenFunc(listingID)
	}
	return "mock-edit-token-" + listingID, nil
}

func (m *MockTokenManager) ValidateEditToken(tokenString string) (*token.Claims, error) {
	if m.ValidateEditTokenFunc != nil {
		return m.ValidateEditTokenFunc(tokenString)
	}
	return nil, token.ErrInvalidToken
}

func (m *MockTokenManager) GenerateAdminToken(subject string) (string, error) {
	if m.GenerateAdminTokenFunc != nil {
		return m.GenerateAdminTokenFunc(subject)
	}
	return "mock-admin-token", nil
}

func (m *MockTokenManager) ValidateAdminToken(tokenString string) (*token.Claims, error) {
	if m.ValidateAdminTokenFunc != nil {
		return m.ValidateAdminTokenFunc(tokenString)
	}
	return nil, token.ErrInvalidToken
}
