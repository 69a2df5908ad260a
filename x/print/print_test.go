package print_test

import (
	"bytes"
	"testing"

	"github.com/effective-security/xgpg/gnupg"
	"github.com/effective-security/xgpg/x/print"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	w := bytes.NewBuffer([]byte{})
	err := print.JSON(w, map[string]any{"b": 2, "a": 1})
	require.NoError(t, err)
	// canonical field order
	assert.Contains(t, w.String(), `"a":`)
	assert.Less(t, bytes.IndexByte(w.Bytes(), 'a'), bytes.IndexByte(w.Bytes(), 'b'))
	assert.True(t, bytes.HasSuffix(w.Bytes(), []byte("\n")))
}

func TestListKeys(t *testing.T) {
	keys := []gnupg.ListKeyResult{
		{
			KeyID:        "AAAA111122223333",
			Fingerprint:  "FPR1PRIMARY",
			CreationDate: "1690000000",
			Trust:        gnupg.TrustUltimate,
			Keygrip:      "GRP1",
			UserIDs:      []string{"Alice <alice@example.com>"},
			Subkeys: []gnupg.Subkey{
				{KeyID: "BBBB111122223333", Fingerprint: "FPR1SUB", Capabilities: "e", Keygrip: "GRP2"},
			},
		},
	}

	w := bytes.NewBuffer([]byte{})
	print.ListKeys(w, keys)

	out := w.String()
	assert.Contains(t, out, "Key: AAAA111122223333")
	assert.Contains(t, out, "Fingerprint: FPR1PRIMARY")
	assert.Contains(t, out, "Trust: Ultimate")
	assert.Contains(t, out, "UID: Alice <alice@example.com>")
	assert.Contains(t, out, "Subkey: BBBB111122223333 [e]")
	assert.Contains(t, out, "Fingerprint: FPR1SUB")
	assert.Contains(t, out, "Keygrip: GRP2")
	assert.NotContains(t, out, "Expires:")
}
