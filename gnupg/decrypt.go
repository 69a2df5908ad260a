package gnupg

import (
	"context"
	"os"
	"time"
)

// DecryptOption assembles the intent of one decryption.
type DecryptOption struct {
	// Input sources, precedence: Input bytes > File handle > Path.
	Input []byte
	File  *os.File
	Path  string

	// Recipient narrows decryption to one key id.
	Recipient string
	// Passphrase decrypts symmetrically encrypted input.
	Passphrase string
	// KeyPassphrase unlocks a passphrase-protected secret key; it takes
	// precedence over Passphrase when both are set.
	KeyPassphrase string
	// AlwaysTrust skips the trust model.
	AlwaysTrust bool
	// Output is the destination path; generated under the configured
	// output directory when empty.
	Output string
	// ExtraArgs are appended after all generated arguments.
	ExtraArgs []string
}

// NewDecryptOption returns a secret-key decryption; keyPassphrase is
// required for passphrase-protected keys.
func NewDecryptOption(recipient, keyPassphrase string) *DecryptOption {
	return &DecryptOption{Recipient: recipient, KeyPassphrase: keyPassphrase, AlwaysTrust: true}
}

// NewSymmetricDecryptOption returns a passphrase decryption for
// symmetrically encrypted input.
func NewSymmetricDecryptOption(passphrase string) *DecryptOption {
	return &DecryptOption{Passphrase: passphrase, AlwaysTrust: true}
}

// Decrypt runs one decryption per the option.
func (g *GPG) Decrypt(ctx context.Context, opt *DecryptOption) (*CmdResult, error) {
	pass := ""
	switch {
	case opt.KeyPassphrase != "":
		if err := checkPassphrase(opt.KeyPassphrase, "key passphrase"); err != nil {
			return nil, err
		}
		pass = opt.KeyPassphrase
	case opt.Passphrase != "":
		if err := checkPassphrase(opt.Passphrase, "passphrase"); err != nil {
			return nil, err
		}
		pass = opt.Passphrase
	}

	return g.run(ctx, &Request{
		Args:       g.decryptArgs(opt, time.Now()),
		Operation:  OpDecrypt,
		Input:      opt.Input,
		File:       opt.File,
		Path:       opt.Path,
		Passphrase: pass,
	})
}

func (g *GPG) decryptArgs(opt *DecryptOption, now time.Time) []string {
	args := []string{"--decrypt"}
	if opt.Recipient != "" {
		args = append(args, "--recipient", opt.Recipient)
	}
	if opt.AlwaysTrust {
		args = append(args, "--trust-model", "always")
	}
	if opt.Output != "" {
		args = setOutput(args, opt.Output)
	} else {
		out := defaultOutputPath(g.outputDir, "decrypted", opt.Path, now)
		args = append(args, "--output", out)
	}
	args = append(args, opt.ExtraArgs...)
	return args
}
