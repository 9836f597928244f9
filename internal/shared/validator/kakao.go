package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// KakaoTag is the validation tag for a KakaoTalk contact.
const KakaoTag = "kakao"

var (
	// kakaoIDRegex matches a KakaoTalk ID (4~20자, 영문/숫자/._-)
	kakaoIDRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{4,20}$`)

	// kakaoOpenChatRegex matches an open chat link
	// Format: https://open.kakao.com/o/sAbCdEf
	kakaoOpenChatRegex = regexp.MustCompile(`^https://open\.kakao\.com/o/[A-Za-z0-9]+$`)
)

// IsKakaoContact reports whether s is a KakaoTalk ID or an open chat link.
func IsKakaoContact(s string) bool {
	s = strings.TrimSpace(s)
	return kakaoIDRegex.MatchString(s) || kakaoOpenChatRegex.MatchString(s)
}

// ValidateKakao validates a KakaoTalk contact. Empty values pass; use
// `required` or the contact rule to demand one.
func ValidateKakao(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if strings.TrimSpace(value) == "" {
		return true
	}
	return IsKakaoContact(value)
}
