package dataprotection_test

import (
	"context"
	"testing"

	"github.com/effective-security/xgpg/dataprotection"
	"github.com/effective-security/xgpg/gnupg"
	"github.com/effective-security/xgpg/testgpg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type state struct {
	Str string
	ID  int
}

func newEchoProvider(t *testing.T) dataprotection.Provider {
	t.Helper()
	dir := t.TempDir()
	bin, err := testgpg.New(dir, testgpg.Config{EchoStdin: true})
	require.NoError(t, err)

	g, err := gnupg.New(&gnupg.Config{Binary: bin, Homedir: dir, OutputDir: dir})
	require.NoError(t, err)

	p, err := dataprotection.NewGnuPG(g, "protection phrase")
	require.NoError(t, err)
	return p
}

func TestNewGnuPG(t *testing.T) {
	_, err := dataprotection.NewGnuPG(nil, "phrase")
	assert.EqualError(t, err, "gpg configuration not provided")

	dir := t.TempDir()
	bin, err := testgpg.New(dir, testgpg.Config{})
	require.NoError(t, err)
	g, err := gnupg.New(&gnupg.Config{Binary: bin, Homedir: dir, OutputDir: dir})
	require.NoError(t, err)

	_, err = dataprotection.NewGnuPG(g, "bad\nphrase")
	assert.EqualError(t, err, "invalid passphrase")

	p, err := dataprotection.NewGnuPG(g, "good phrase")
	require.NoError(t, err)
	assert.True(t, p.IsReady())
}

func TestProtectRoundTrip(t *testing.T) {
	// the fake tool echoes its input, so protected == plaintext; the
	// test exercises the plumbing, not the cipher
	p := newEchoProvider(t)
	ctx := context.Background()

	plaintext := []byte("small data")
	protected, err := p.Protect(ctx, plaintext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, protected)

	unprotected, err := p.Unprotect(ctx, protected)
	require.NoError(t, err)
	assert.Equal(t, plaintext, unprotected)

	_, err = p.Unprotect(ctx, nil)
	assert.EqualError(t, err, "invalid data")
}

func TestProtectObject(t *testing.T) {
	p := newEchoProvider(t)
	ctx := context.Background()

	s := state{Str: "hello", ID: 123}
	b64, err := dataprotection.ProtectObject(ctx, p, s)
	require.NoError(t, err)

	var s2 state
	err = dataprotection.UnprotectObject(ctx, p, b64, &s2)
	require.NoError(t, err)
	assert.Equal(t, s, s2)

	err = dataprotection.UnprotectObject(ctx, p, "!!not-base64!!", &s2)
	require.Error(t, err)
}
