package validator_test

import (
	"testing"

	sharedValidator "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/validator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKakaoContact(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"tutor_kim", true},
		{"kim.math-01", true},
		{"https://open.kakao.com/o/sAbC123", true},
		{"abc", false},
		{"this_id_is_way_too_long_for_kakao", false},
		{"카톡아이디", false},
		{"http://open.kakao.com/o/abc", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, sharedValidator.IsKakaoContact(tc.input))
		})
	}
}

func TestValidateKakao_WithValidatorEngine(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation(sharedValidator.KakaoTag, sharedValidator.ValidateKakao))

	type contact struct {
		Kakao string `validate:"kakao"`
	}

	assert.NoError(t, v.Struct(contact{Kakao: ""}), "empty is allowed")
	assert.NoError(t, v.Struct(contact{Kakao: "tutor_kim"}))
	assert.Error(t, v.Struct(contact{Kakao: "no spaces allowed"}))
}
