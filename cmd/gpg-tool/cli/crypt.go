package cli

import (
	"github.com/effective-security/xgpg/gnupg"
	"github.com/pkg/errors"
)

// EncryptCmd specifies flags for the encrypt action
type EncryptCmd struct {
	In            string   `kong:"arg" required:"" help:"file to encrypt, or - for stdin"`
	Recipients    []string `short:"r" help:"recipient key ids"`
	Symmetric     bool     `help:"encrypt symmetrically with a passphrase"`
	SymmetricAlgo string   `help:"optional, cipher preference for symmetric mode"`
	Passphrase    string   `help:"passphrase for symmetric mode"`
	Sign          bool     `help:"also sign the output"`
	SignKey       string   `help:"optional, signing key id"`
	SignKeyPass   string   `help:"optional, passphrase of the signing key"`
	Out           string   `short:"o" help:"optional, output file"`
}

// Run the command
func (a *EncryptCmd) Run(ctx *Cli) error {
	g, err := ctx.GPG()
	if err != nil {
		return err
	}

	// one loopback channel: the signing key passphrase rides it when no
	// symmetric passphrase is set
	pass := a.Passphrase
	if pass == "" {
		pass = a.SignKeyPass
	}
	opt := &gnupg.EncryptOption{
		Recipients:    a.Recipients,
		Symmetric:     a.Symmetric,
		SymmetricAlgo: a.SymmetricAlgo,
		Passphrase:    pass,
		Sign:          a.Sign,
		SignKey:       a.SignKey,
		AlwaysTrust:   true,
		Output:        a.Out,
	}
	if a.In == "-" {
		opt.Input, err = ctx.ReadFile(a.In)
		if err != nil {
			return errors.WithMessage(err, "unable to read input")
		}
	} else {
		opt.Path = a.In
	}

	res, err := g.Encrypt(ctx.Context(), opt)
	if err != nil {
		return errors.WithMessage(err, "unable to encrypt")
	}
	return ctx.WriteJSON(res)
}

// DecryptCmd specifies flags for the decrypt action
type DecryptCmd struct {
	In            string `kong:"arg" required:"" help:"file to decrypt, or - for stdin"`
	Recipient     string `short:"r" help:"optional, recipient key id"`
	Passphrase    string `help:"passphrase for symmetrically encrypted input"`
	KeyPassphrase string `help:"passphrase of the secret key"`
	Out           string `short:"o" help:"optional, output file"`
}

// Run the command
func (a *DecryptCmd) Run(ctx *Cli) error {
	g, err := ctx.GPG()
	if err != nil {
		return err
	}

	opt := &gnupg.DecryptOption{
		Recipient:     a.Recipient,
		Passphrase:    a.Passphrase,
		KeyPassphrase: a.KeyPassphrase,
		AlwaysTrust:   true,
		Output:        a.Out,
	}
	if a.In == "-" {
		opt.Input, err = ctx.ReadFile(a.In)
		if err != nil {
			return errors.WithMessage(err, "unable to read input")
		}
	} else {
		opt.Path = a.In
	}

	res, err := g.Decrypt(ctx.Context(), opt)
	if err != nil {
		return errors.WithMessage(err, "unable to decrypt")
	}
	return ctx.WriteJSON(res)
}

// SignCmd specifies flags for the sign action
type SignCmd struct {
	In         string `kong:"arg" required:"" help:"file to sign, or - for stdin"`
	Key        string `help:"optional, signing key id"`
	Passphrase string `help:"optional, passphrase of the signing key"`
	Detach     bool   `help:"produce a detached signature"`
	Clear      bool   `help:"produce a cleartext signature"`
	Out        string `short:"o" help:"optional, output file"`
}

// Run the command
func (a *SignCmd) Run(ctx *Cli) error {
	g, err := ctx.GPG()
	if err != nil {
		return err
	}

	mode := gnupg.SignInline
	if a.Detach {
		mode = gnupg.SignDetached
	} else if a.Clear {
		mode = gnupg.SignClear
	}

	opt := &gnupg.SignOption{
		Mode:       mode,
		Key:        a.Key,
		Passphrase: a.Passphrase,
		Output:     a.Out,
	}
	if a.In == "-" {
		opt.Input, err = ctx.ReadFile(a.In)
		if err != nil {
			return errors.WithMessage(err, "unable to read input")
		}
	} else {
		opt.Path = a.In
	}

	res, err := g.Sign(ctx.Context(), opt)
	if err != nil {
		return errors.WithMessage(err, "unable to sign")
	}
	if a.Out == "" {
		_, err = ctx.Writer().Write(res.Output)
		return errors.WithStack(err)
	}
	return ctx.WriteJSON(res)
}

// VerifyCmd specifies flags for the verify action
type VerifyCmd struct {
	Sig  string `kong:"arg" required:"" help:"signature file"`
	Data string `kong:"arg" optional:"" help:"optional, signed data file for detached signatures"`
}

// Run the command
func (a *VerifyCmd) Run(ctx *Cli) error {
	g, err := ctx.GPG()
	if err != nil {
		return err
	}

	res, err := g.VerifyFile(ctx.Context(), nil, a.Sig, a.Data)
	if err != nil {
		return errors.WithMessage(err, "signature verification failed")
	}
	return ctx.WriteJSON(res)
}
