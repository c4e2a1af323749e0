package invite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := GenerateToken()
		assert.Len(t, token, 12)
		assert.True(t, ValidTokenFormat(token), "token %q should be alphanumeric", token)
		seen[token] = true
	}
	assert.Greater(t, len(seen), 90, "tokens should not collide in a small sample")
}

func TestBuildURL(t *testing.T) {
	url := BuildURL("https://districtclose.example.com", "Ab3dEf6hIj9k")
	assert.Equal(t, "https://districtclose.example.com/join?token=Ab3dEf6hIj9k", url)
}

func TestValidTokenFormat(t *testing.T) {
	assert.True(t, ValidTokenFormat("Ab3dEf6hIj9k"))
	assert.False(t, ValidTokenFormat(""))
	assert.False(t, ValidTokenFormat("short"))
	assert.False(t, ValidTokenFormat("Ab3dEf6hIj9kX"))
	assert.False(t, ValidTokenFormat("Ab3dEf6hIj9!"))
	assert.False(t, ValidTokenFormat("Ab3dEf6 Ij9k"))
}
