package dataprotection

import (
	"context"

	"github.com/effective-security/xgpg/gnupg"
	"github.com/pkg/errors"
)

type gpgProvider struct {
	gpg        *gnupg.GPG
	passphrase string
}

// NewGnuPG returns `Provider` backed by symmetric GnuPG encryption with
// the given passphrase. Every Protect and Unprotect call runs one gpg
// process.
func NewGnuPG(gpg *gnupg.GPG, passphrase string) (Provider, error) {
	if gpg == nil {
		return nil, errors.Errorf("gpg configuration not provided")
	}
	if !gnupg.ValidPassphrase(passphrase) {
		return nil, errors.Errorf("invalid passphrase")
	}
	return &gpgProvider{gpg: gpg, passphrase: passphrase}, nil
}

// Protect returns protected blob
func (p *gpgProvider) Protect(ctx context.Context, data []byte) ([]byte, error) {
	opt := gnupg.NewSymmetricEncryptOption(p.passphrase)
	opt.Input = data
	opt.Output = "-"

	res, err := p.gpg.Encrypt(ctx, opt)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to protect")
	}
	return res.Output, nil
}

// Unprotect returns unprotected data
func (p *gpgProvider) Unprotect(ctx context.Context, protected []byte) ([]byte, error) {
	if len(protected) == 0 {
		return nil, errors.Errorf("invalid data")
	}
	opt := gnupg.NewSymmetricDecryptOption(p.passphrase)
	opt.Input = protected
	opt.Output = "-"

	res, err := p.gpg.Decrypt(ctx, opt)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to unprotect")
	}
	return res.Output, nil
}

// IsReady returns true when provider has encryption keys
func (p *gpgProvider) IsReady() bool {
	return p.gpg != nil && p.passphrase != ""
}
