package gnupg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	res := &CmdResult{
		Success:   true,
		Output:    []byte("cfg:group:\ncfg:version:2.4.6\ncfg:pubkey:1;16;17;18;19;22\n"),
		Operation: OpVerify,
	}
	v, err := parseVersion(res)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Major)
	assert.Equal(t, 4, v.Minor)
	assert.Equal(t, "2.4.6", v.Full)
	assert.Equal(t, "2.4.6", v.String())

	res.Output = []byte("cfg:version:1.4.23\n")
	v, err = parseVersion(res)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Major)
	assert.Equal(t, 4, v.Minor)
	assert.Equal(t, "1.4.23", v.Full)
}

func TestParseVersionErrors(t *testing.T) {
	res := &CmdResult{Success: true, Operation: OpVerify}

	_, err := parseVersion(res)
	require.Error(t, err)
	assert.Equal(t, ErrInit, ErrorKind(err))
	assert.Equal(t, res, ResultFromError(err))

	res.Output = []byte("cfg:version:two.four\n")
	_, err = parseVersion(res)
	require.Error(t, err)
	assert.Equal(t, ErrInit, ErrorKind(err))

	res.Output = []byte("cfg:version:2\n")
	_, err = parseVersion(res)
	require.Error(t, err)
	assert.Equal(t, ErrInit, ErrorKind(err))
}

func TestVersionAtLeast(t *testing.T) {
	v := Version{Major: 2, Minor: 1, Full: "2.1.11"}
	assert.True(t, v.AtLeast(2, 1))
	assert.True(t, v.AtLeast(2, 0))
	assert.True(t, v.AtLeast(1, 9))
	assert.False(t, v.AtLeast(2, 2))
	assert.False(t, v.AtLeast(3, 0))

	old := Version{Major: 1, Minor: 4, Full: "1.4.23"}
	assert.False(t, old.AtLeast(2, 1))
}
