// Package dataprotection protects small objects at rest. A Provider
// encrypts and decrypts opaque blobs; this package adds the object
// plumbing around it: JSON serialization and URL-safe transport encoding.
package dataprotection

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

// Provider encrypts and decrypts opaque blobs.
type Provider interface {
	// Protect returns the protected blob.
	Protect(ctx context.Context, data []byte) ([]byte, error)
	// Unprotect returns the original data.
	Unprotect(ctx context.Context, protected []byte) ([]byte, error)
	// IsReady returns true when the provider is able to encrypt.
	IsReady() bool
}

// ProtectObject serializes v to JSON, protects it with p, and returns the
// result base64url encoded, safe for storage in text columns and URLs.
func ProtectObject(ctx context.Context, p Provider, v interface{}) (string, error) {
	js, err := json.Marshal(v)
	if err != nil {
		return "", errors.WithMessage(err, "failed to marshal")
	}
	protected, err := p.Protect(ctx, js)
	if err != nil {
		return "", errors.WithMessage(err, "failed to protect")
	}
	return base64.RawURLEncoding.EncodeToString(protected), nil
}

// UnprotectObject reverses ProtectObject: it decodes, unprotects and
// unmarshals into v.
func UnprotectObject(ctx context.Context, p Provider, protected string, v interface{}) error {
	raw, err := base64.RawURLEncoding.DecodeString(protected)
	if err != nil {
		return errors.WithMessage(err, "failed to base64 decode")
	}
	js, err := p.Unprotect(ctx, raw)
	if err != nil {
		return errors.WithMessage(err, "failed to unprotect data")
	}
	if err = json.Unmarshal(js, v); err != nil {
		return errors.WithMessage(err, "failed to unmarshal")
	}
	return nil
}
