// Package keyring decodes armored OpenPGP key material, such as the
// output of an export invocation, into parsed entity lists.
package keyring

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xgpg/metricskey"
	"github.com/effective-security/xlog"
	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/xgpg", "keyring")

// Decode reads an openpgp.EntityList from armored key material. The data
// may contain several concatenated armored blocks; non-key blocks are
// skipped.
func Decode(data []byte) (openpgp.EntityList, error) {
	defer metricskey.PerfKeyringDecode.MeasureSince(time.Now(), "bytes")

	keyring := make(openpgp.EntityList, 0)
	r := bufio.NewReader(bytes.NewReader(data))

	for {
		block, err := armor.Decode(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			if len(keyring) > 0 {
				// trailing garbage after valid blocks
				logger.KV(xlog.TRACE, "reason", "trailing_data", "err", err.Error())
				break
			}
			return nil, errors.WithStack(err)
		}

		if block.Type == openpgp.PublicKeyType || block.Type == openpgp.PrivateKeyType {
			el, err := openpgp.ReadKeyRing(block.Body)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			keyring = append(keyring, el...)
		} else {
			// the block body must be drained before the next Decode
			_, _ = io.Copy(io.Discard, block.Body)
		}
	}

	return keyring, nil
}

// DecodeFile reads an openpgp.EntityList from an armored key file.
func DecodeFile(path string) (openpgp.EntityList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	k, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return k, nil
}

// DecodeFiles reads an openpgp.EntityList from several armored key files
// and merges them into one list.
func DecodeFiles(files []string) (openpgp.EntityList, error) {
	keyring := make(openpgp.EntityList, 0)
	for _, path := range files {
		el, err := DecodeFile(path)
		if err != nil {
			return nil, err
		}

		keyring = append(keyring, el...)
	}

	return keyring, nil
}
