package gnupg

import (
	"context"
	"os"
	"time"
)

// EncryptOption assembles the intent of one encryption: the input source,
// the mode (recipients, symmetric, or both), optional signing, and the
// output destination.
type EncryptOption struct {
	// Input sources, precedence: Input bytes > File handle > Path.
	Input []byte
	File  *os.File
	Path  string

	// Recipients are key ids for public-key encryption.
	Recipients []string
	// Symmetric encrypts with a passphrase; Passphrase is then required.
	Symmetric bool
	// SymmetricAlgo overrides the cipher preference for symmetric mode.
	SymmetricAlgo string
	// Passphrase for symmetric encryption, or for unlocking a protected
	// signing key; it travels over the dedicated side channel.
	Passphrase string
	// Sign the output; SignKey selects the signing key.
	Sign    bool
	SignKey string
	// AlwaysTrust skips the trust model.
	AlwaysTrust bool
	// Output is the destination path; generated under the configured
	// output directory when empty.
	Output string
	// ExtraArgs are appended after all generated arguments.
	ExtraArgs []string
}

// NewEncryptOption returns a public-key encryption for the recipients
// with the trust model disabled.
func NewEncryptOption(recipients ...string) *EncryptOption {
	return &EncryptOption{Recipients: recipients, AlwaysTrust: true}
}

// NewSymmetricEncryptOption returns a passphrase-only encryption.
func NewSymmetricEncryptOption(passphrase string) *EncryptOption {
	return &EncryptOption{Symmetric: true, Passphrase: passphrase, AlwaysTrust: true}
}

// NewKeyAndSymmetricEncryptOption encrypts to the recipients and with a
// passphrase at the same time.
func NewKeyAndSymmetricEncryptOption(passphrase string, recipients ...string) *EncryptOption {
	return &EncryptOption{
		Recipients:  recipients,
		Symmetric:   true,
		Passphrase:  passphrase,
		AlwaysTrust: true,
	}
}

// Encrypt runs one encryption per the option. Mode selection and
// passphrase syntax are validated before any process is spawned.
func (g *GPG) Encrypt(ctx context.Context, opt *EncryptOption) (*CmdResult, error) {
	if opt.Passphrase != "" {
		if err := checkPassphrase(opt.Passphrase, "passphrase"); err != nil {
			return nil, err
		}
	}
	args, err := g.encryptArgs(opt, time.Now())
	if err != nil {
		return nil, err
	}
	return g.run(ctx, &Request{
		Args:       args,
		Operation:  OpEncrypt,
		Input:      opt.Input,
		File:       opt.File,
		Path:       opt.Path,
		Passphrase: opt.Passphrase,
	})
}

// encryptArgs builds the operation arguments. The generated default
// output name records which modes were used: pass_, keys_, or both.
func (g *GPG) encryptArgs(opt *EncryptOption, now time.Time) ([]string, error) {
	var args []string
	encryptType := ""

	if opt.Symmetric {
		if opt.Passphrase == "" {
			return nil, NewError(ErrPassphrase, "passphrase is required for symmetric encryption")
		}
		args = append(args, "--symmetric", "--no-symkey-cache")
		if opt.SymmetricAlgo != "" {
			args = append(args, "--personal-cipher-preferences", opt.SymmetricAlgo)
		}
		encryptType += "pass_"
	}
	if len(opt.Recipients) > 0 {
		args = append(args, "--encrypt")
		for _, r := range opt.Recipients {
			args = append(args, "--recipient", r)
		}
		encryptType += "keys_"
	}
	if len(args) == 0 {
		return nil, NewError(ErrInvalidArgument, "choose symmetric or recipient keys to encrypt")
	}

	if g.armor {
		args = append(args, "--armor")
	}
	if opt.Output != "" {
		args = setOutput(args, opt.Output)
	} else {
		out := defaultOutputPath(g.outputDir, encryptType+"encrypted", opt.Path, now)
		args = append(args, "--output", out)
	}

	if opt.Sign {
		args = append(args, "--sign")
		if opt.SignKey != "" {
			args = append(args, "--default-key", opt.SignKey)
		}
	}
	if opt.AlwaysTrust {
		args = append(args, "--trust-model", "always")
	}
	args = append(args, opt.ExtraArgs...)
	return args, nil
}
