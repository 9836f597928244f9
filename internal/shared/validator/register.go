package validator

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the engine gin binds requests with.
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll installs the shared validators on gin's engine and makes field
// errors report the JSON (or query) name the client actually sent.
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	v.RegisterTagNameFunc(requestFieldName)

	if err := v.RegisterValidation(KakaoTag, ValidateKakao); err != nil {
		return fmt.Errorf("kakao validator 등록 실패: %w", err)
	}

	slog.Debug("공통 Validator 등록 완료", "validators", KakaoTag)
	return nil
}

func requestFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
