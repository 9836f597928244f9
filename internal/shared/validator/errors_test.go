package validator_test

import (
	"errors"
	"testing"

	sharedValidator "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactRequest struct {
	Email string `json:"email" binding:"required,email"`
	Kakao string `json:"kakao_contact" binding:"kakao"`
}

func TestToErrorResponse_UsesJSONFieldName(t *testing.T) {
	require.NoError(t, sharedValidator.RegisterAll())

	// Given: an invalid email
	err := binding.Validator.ValidateStruct(contactRequest{Email: "not-mail"})

	// When
	resp, ok := sharedValidator.ToErrorResponse(err)

	// Then
	require.True(t, ok)
	assert.Equal(t, "email", resp.Field)
	assert.Equal(t, "이메일 형식이 올바르지 않습니다.", resp.Message)
}

func TestToErrorResponse_KakaoMessage(t *testing.T) {
	require.NoError(t, sharedValidator.RegisterAll())

	err := binding.Validator.ValidateStruct(contactRequest{Email: "a@b.com", Kakao: "ab"})

	resp, ok := sharedValidator.ToErrorResponse(err)
	require.True(t, ok)
	assert.Equal(t, "kakao_contact", resp.Field)
	assert.Equal(t, "카카오톡 ID 형식이 올바르지 않습니다.", resp.Message)
}

func TestToErrorResponse_NotValidationError(t *testing.T) {
	_, ok := sharedValidator.ToErrorResponse(errors.New("boom"))
	assert.False(t, ok)
}
