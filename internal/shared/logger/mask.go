package logger

import "strings"

// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	// Keep only first character of username
	return username[:1] + "***@" + domain
}

// Example: tutor_kim -> tu***
// Open chat links keep only the host.
func MaskKakao(contact string) string {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return ""
	}
	if strings.HasPrefix(contact, "https://open.kakao.com/") {
		return "https://open.kakao.com/***"
	}
	runes := []rune(contact)
	if len(runes) <= 2 {
		return "***"
	}
	return string(runes[:2]) + "***"
}
