package gnupg

import (
	"context"
	"fmt"
	"strings"
)

// ListMode selects which keys a listing enumerates.
type ListMode int

// Listing modes.
const (
	ListPublicKeys ListMode = iota
	ListSecretKeys
	ListSignatures
)

func (m ListMode) arg() string {
	switch m {
	case ListSecretKeys:
		return "--list-secret-keys"
	case ListSignatures:
		return "--list-sigs"
	default:
		return "--list-keys"
	}
}

// ListKeys enumerates keys in the configured home directory, optionally
// narrowed to the given key ids, and decodes the colon-format output.
func (g *GPG) ListKeys(ctx context.Context, mode ListMode, keys ...string) ([]ListKeyResult, error) {
	// --fingerprint twice also emits fingerprints for subkeys
	args := []string{mode.arg(), "--with-colons", "--fingerprint", "--fingerprint"}
	if g.version.AtLeast(2, 1) {
		args = append(args, "--with-keygrip")
	}
	args = append(args, keys...)

	res, err := g.run(ctx, &Request{Args: args, Operation: OpListKey})
	if err != nil {
		return nil, err
	}
	return DecodeListKeys(res), nil
}

// ImportKey imports key material from the given source.
func (g *GPG) ImportKey(ctx context.Context, req *Request) (*CmdResult, error) {
	if len(req.Input) == 0 && req.File == nil && req.Path == "" {
		return nil, NewError(ErrFileNotProvided, "no key material provided")
	}
	req.Args = []string{"--import"}
	req.Operation = OpImportKey
	return g.run(ctx, req)
}

// ExportPublicKeys exports the named public keys (all when empty) into
// the result output, armored per configuration.
func (g *GPG) ExportPublicKeys(ctx context.Context, keys ...string) (*CmdResult, error) {
	args := []string{"--export"}
	if g.armor {
		args = append(args, "--armor")
	}
	args = append(args, keys...)
	return g.run(ctx, &Request{Args: args, Operation: OpExportPublicKey})
}

// ExportSecretKeys exports the named secret keys. The key passphrase is
// required for protected keys from version 2.1 onward.
func (g *GPG) ExportSecretKeys(ctx context.Context, passphrase string, keys ...string) (*CmdResult, error) {
	if passphrase != "" {
		if err := checkPassphrase(passphrase, "key passphrase"); err != nil {
			return nil, err
		}
	}
	args := []string{"--export-secret-keys"}
	if g.armor {
		args = append(args, "--armor")
	}
	args = append(args, keys...)
	return g.run(ctx, &Request{
		Args:       args,
		Operation:  OpExportSecretKey,
		Passphrase: passphrase,
	})
}

// TrustKey assigns an ownertrust level to the key with the given
// fingerprint.
func (g *GPG) TrustKey(ctx context.Context, fingerprint string, level TrustLevel) (*CmdResult, error) {
	if level < TrustExpired || level > TrustUltimate {
		return nil, NewError(ErrInvalidArgument, "unknown trust level: %d", level)
	}
	record := fmt.Sprintf("%s:%d:\n", strings.ToUpper(fingerprint), level.Value())
	return g.run(ctx, &Request{
		Args:      []string{"--import-ownertrust"},
		Operation: OpTrustKey,
		Input:     []byte(record),
	})
}

// DeleteKeys removes the keys with the given fingerprints, secret keys
// first when secret is set. A subkey-targeted delete must reference the
// subkey fingerprint with a trailing "!"; a bare "!" suffix on a primary
// fingerprint is the caller confusing key and subkey.
func (g *GPG) DeleteKeys(ctx context.Context, fingerprints []string, secret bool) (*CmdResult, error) {
	if len(fingerprints) == 0 {
		return nil, NewError(ErrInvalidArgument, "no fingerprints provided")
	}
	for _, fpr := range fingerprints {
		if strings.HasSuffix(fpr, "!") {
			if err := g.checkIsSubkey(ctx, strings.TrimSuffix(fpr, "!")); err != nil {
				return nil, err
			}
		}
	}
	arg := "--delete-keys"
	if secret {
		arg = "--delete-secret-keys"
	}
	return g.run(ctx, &Request{
		Args:      append([]string{arg}, fingerprints...),
		Operation: OpDeleteKey,
	})
}

// checkIsSubkey confirms the fingerprint belongs to a subkey of some
// listed primary key.
func (g *GPG) checkIsSubkey(ctx context.Context, fpr string) error {
	keys, err := g.ListKeys(ctx, ListPublicKeys)
	if err != nil {
		return err
	}
	for _, key := range keys {
		for _, sub := range key.Subkeys {
			if strings.EqualFold(sub.Fingerprint, fpr) {
				return nil
			}
		}
	}
	return NewError(ErrKeyNotSubkey, "%q is not a subkey fingerprint", fpr)
}

// Revocation reason codes accepted by gpg --gen-revoke.
const (
	RevokeNoReason      = 0
	RevokeCompromised   = 1
	RevokeSuperseded    = 2
	RevokeNoLongerUsed  = 3
	maxRevokeReasonCode = RevokeNoLongerUsed
)

// GenRevoke produces a revocation certificate for the key. The reason
// code is validated before spawning; the interactive prompts are answered
// over the command channel.
func (g *GPG) GenRevoke(ctx context.Context, key string, reason int, passphrase string) (*CmdResult, error) {
	if reason < RevokeNoReason || reason > maxRevokeReasonCode {
		return nil, NewError(ErrInvalidReasonCode, "revocation reason code must be 0..3, got %d", reason)
	}
	if passphrase != "" {
		if err := checkPassphrase(passphrase, "key passphrase"); err != nil {
			return nil, err
		}
	}
	// answers: confirm revocation, reason code, empty description, confirm
	answers := fmt.Sprintf("y\n%d\n\ny\n", reason)
	return g.run(ctx, &Request{
		Args:       []string{"--command-fd", "0", "--gen-revoke", key},
		Operation:  OpRevokeKey,
		Input:      []byte(answers),
		Passphrase: passphrase,
	})
}

// SearchKeys queries a keyserver. The raw result is returned undecoded;
// availability depends on network and server state.
func (g *GPG) SearchKeys(ctx context.Context, keyserver, query string) (*CmdResult, error) {
	if query == "" {
		return nil, NewError(ErrInvalidArgument, "empty search query")
	}
	args := []string{"--with-colons"}
	if keyserver != "" {
		args = append(args, "--keyserver", keyserver)
	}
	args = append(args, "--search-keys", query)
	return g.run(ctx, &Request{Args: args, Operation: OpSearchKey})
}
