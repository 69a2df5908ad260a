package gnupg

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *GPG {
	return &GPG{
		binary:    "gpg",
		homedir:   "/hd",
		outputDir: "/out",
		version:   Version{Major: 2, Minor: 4, Full: "2.4.6"},
	}
}

func TestEncryptArgsSymmetric(t *testing.T) {
	g := testConfig()
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	opt := NewSymmetricEncryptOption("secret phrase")
	args, err := g.encryptArgs(opt, now)
	require.NoError(t, err)

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "--symmetric --no-symkey-cache")
	assert.Contains(t, joined, "--output /out/pass_encrypted_file_")
	assert.Contains(t, joined, "--trust-model always")
	assert.NotContains(t, joined, "secret phrase")

	opt.SymmetricAlgo = "AES256"
	args, err = g.encryptArgs(opt, now)
	require.NoError(t, err)
	assert.Contains(t, strings.Join(args, " "), "--personal-cipher-preferences AES256")
}

func TestEncryptArgsRecipients(t *testing.T) {
	g := testConfig()
	g.armor = true
	now := time.Now()

	opt := NewEncryptOption("alice@example.com", "bob@example.com")
	opt.Sign = true
	opt.SignKey = "CCCC444455556666"
	args, err := g.encryptArgs(opt, now)
	require.NoError(t, err)

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "--encrypt --recipient alice@example.com --recipient bob@example.com")
	assert.Contains(t, joined, "--armor")
	assert.Contains(t, joined, "--sign --default-key CCCC444455556666")
	assert.Contains(t, joined, "--output /out/keys_encrypted_file_")
}

func TestEncryptArgsKeyAndSymmetric(t *testing.T) {
	g := testConfig()
	opt := NewKeyAndSymmetricEncryptOption("secret phrase", "alice@example.com")
	opt.Path = "/in/report.pdf"
	args, err := g.encryptArgs(opt, time.Now())
	require.NoError(t, err)

	joined := strings.Join(args, " ")
	// both modes are recorded in the generated name, and the input
	// extension is inherited
	assert.Contains(t, joined, "--output /out/pass_keys_encrypted_file_")
	assert.Contains(t, joined, ".pdf")
}

func TestEncryptArgsExplicitOutput(t *testing.T) {
	g := testConfig()
	opt := NewEncryptOption("alice@example.com")
	opt.Output = "/custom/out.gpg"
	opt.ExtraArgs = []string{"--compress-level", "0"}
	args, err := g.encryptArgs(opt, time.Now())
	require.NoError(t, err)

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "--yes --output /custom/out.gpg")
	// extra args come last so callers can override defaults
	assert.Equal(t, "0", args[len(args)-1])
	assert.Equal(t, "--compress-level", args[len(args)-2])
}

func TestEncryptValidation(t *testing.T) {
	g := testConfig()
	ctx := context.Background()

	// symmetric without a passphrase fails before any process is spawned
	_, err := g.Encrypt(ctx, &EncryptOption{Symmetric: true})
	require.Error(t, err)
	assert.Equal(t, ErrPassphrase, ErrorKind(err))

	// no mode selected
	_, err = g.Encrypt(ctx, &EncryptOption{})
	require.Error(t, err)
	assert.Equal(t, ErrInvalidArgument, ErrorKind(err))

	// passphrase with control bytes is rejected up front
	_, err = g.Encrypt(ctx, &EncryptOption{Symmetric: true, Passphrase: "a\x00b"})
	require.Error(t, err)
	assert.Equal(t, ErrPassphrase, ErrorKind(err))
}

func TestDecryptArgs(t *testing.T) {
	g := testConfig()
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	opt := NewDecryptOption("alice@example.com", "")
	opt.Path = "/in/data.txt.gpg"
	args := g.decryptArgs(opt, now)

	joined := strings.Join(args, " ")
	assert.True(t, strings.HasPrefix(joined, "--decrypt"))
	assert.Contains(t, joined, "--recipient alice@example.com")
	assert.Contains(t, joined, "--trust-model always")
	assert.Contains(t, joined, "--output /out/decrypted_file_")

	opt = NewSymmetricDecryptOption("secret phrase")
	opt.Output = "/custom/plain.txt"
	joined = strings.Join(g.decryptArgs(opt, now), " ")
	assert.Contains(t, joined, "--yes --output /custom/plain.txt")
	assert.NotContains(t, joined, "secret phrase")
}

func TestDecryptValidation(t *testing.T) {
	g := testConfig()

	_, err := g.Decrypt(context.Background(), &DecryptOption{KeyPassphrase: "bad\tpass"})
	require.Error(t, err)
	assert.Equal(t, ErrPassphrase, ErrorKind(err))
}
