package credential_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/credential"
	"github.com/stretchr/testify/assert"
)

func sha(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestHash_TrimsBeforeDigest(t *testing.T) {
	assert.Equal(t, sha("pw1234"), credential.Hash("pw1234"))
	assert.Equal(t, sha("pw1234"), credential.Hash("  pw1234\n"))
	assert.Len(t, credential.Hash("anything"), 64)
}

func TestVerify(t *testing.T) {
	stored := credential.Hash("pw1234")

	testCases := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"correct password", "pw1234", stored, true},
		{"surrounding spaces", " pw1234 ", stored, true},
		{"wrong password", "pw12345", stored, false},
		{"case sensitive", "PW1234", stored, false},
		{"empty input against real hash", "", stored, false},
		{"empty input against empty digest", "", sha(""), true},
		{"listing without credential", "pw1234", "", false},
		{"uppercase stored hash", "pw1234", "ABC", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, credential.Verify(tc.password, tc.hash))
		})
	}
}
