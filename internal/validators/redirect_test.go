package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSafeRedirect(t *testing.T) {
	ok := []string{"/cita", "/encuesta/qr/abc", "/dashboard?x=1"}
	for _, p := range ok {
		assert.True(t, IsSafeRedirect(p), p)
	}

	bad := []string{"", "cita", "//evil.com", "/\\evil.com", "https://evil.com/x", "/x\r\nSet-Cookie: a=b"}
	for _, p := range bad {
		assert.False(t, IsSafeRedirect(p), p)
	}
}

func TestSafeRedirectOr(t *testing.T) {
	assert.Equal(t, "/cita", SafeRedirectOr("/cita", "/dashboard"))
	assert.Equal(t, "/dashboard", SafeRedirectOr("//evil.com", "/dashboard"))
}
