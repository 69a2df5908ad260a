package gnupg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPassphrase(t *testing.T) {
	assert.True(t, ValidPassphrase("correct horse battery staple"))
	assert.True(t, ValidPassphrase("p"))
	assert.True(t, ValidPassphrase(strings.Repeat("a", maxPassphraseLen)))
	assert.True(t, ValidPassphrase("pass:with:colons and spaces!"))

	assert.False(t, ValidPassphrase(""))
	assert.False(t, ValidPassphrase(strings.Repeat("a", maxPassphraseLen+1)))

	// every control byte collides with the status or colon protocol
	for c := byte(0); c < 0x20; c++ {
		assert.False(t, ValidPassphrase("abc"+string([]byte{c})+"def"), "control byte %#x", c)
	}
	assert.False(t, ValidPassphrase("abc\x7fdef"))
}

func TestCheckPassphrase(t *testing.T) {
	assert.NoError(t, checkPassphrase("good one", "passphrase"))

	err := checkPassphrase("bad\nphrase", "key passphrase")
	require.Error(t, err)
	assert.Equal(t, ErrPassphrase, ErrorKind(err))
	assert.Equal(t, "[PassphraseError] key passphrase invalid", err.Error())
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	wipe(b)
	assert.Equal(t, make([]byte, 6), b)
}
