// Package print renders results for CLI output.
package print

import (
	"fmt"
	"io"

	"github.com/effective-security/xgpg/gnupg"
	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
)

var (
	// jsonEncPPHandle encodes human readable, pretty printed JSON with
	// fields serialized in a canonical order every time
	jsonEncPPHandle codec.JsonHandle
)

func init() {
	jsonEncPPHandle.BasicHandle.EncodeOptions.Canonical = true
	jsonEncPPHandle.Indent = -1
}

var newLine = []byte("\n")

// JSON prints value to out
func JSON(out io.Writer, value interface{}) error {
	var json []byte
	err := codec.NewEncoderBytes(&json, &jsonEncPPHandle).Encode(value)
	if err != nil {
		return errors.WithMessage(err, "failed to encode")
	}

	_, _ = out.Write(json)
	_, _ = out.Write(newLine)

	return nil
}

// ListKeys prints decoded key listings
func ListKeys(w io.Writer, keys []gnupg.ListKeyResult) {
	for _, key := range keys {
		fmt.Fprintf(w, "Key: %s\n", key.KeyID)
		fmt.Fprintf(w, "  Fingerprint: %s\n", key.Fingerprint)
		fmt.Fprintf(w, "  Trust: %s\n", key.Trust)
		if key.CreationDate != "" {
			fmt.Fprintf(w, "  Created: %s\n", key.CreationDate)
		}
		if key.ExpiryDate != "" {
			fmt.Fprintf(w, "  Expires: %s\n", key.ExpiryDate)
		}
		if key.Keygrip != "" {
			fmt.Fprintf(w, "  Keygrip: %s\n", key.Keygrip)
		}
		for _, uid := range key.UserIDs {
			fmt.Fprintf(w, "  UID: %s\n", uid)
		}
		for _, sub := range key.Subkeys {
			fmt.Fprintf(w, "  Subkey: %s [%s]\n", sub.KeyID, sub.Capabilities)
			if sub.Fingerprint != "" {
				fmt.Fprintf(w, "    Fingerprint: %s\n", sub.Fingerprint)
			}
			if sub.Keygrip != "" {
				fmt.Fprintf(w, "    Keygrip: %s\n", sub.Keygrip)
			}
		}
	}
}
