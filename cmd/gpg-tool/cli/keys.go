package cli

import (
	"fmt"

	"github.com/effective-security/xgpg/gnupg"
	"github.com/effective-security/xgpg/keyring"
	"github.com/effective-security/xgpg/x/print"
	"github.com/pkg/errors"
)

// GenKeyCmd specifies flags for the gen-key action
type GenKeyCmd struct {
	Name       string `help:"real name for the key uid"`
	Email      string `help:"email for the key uid"`
	KeyType    string `help:"key type, e.g. RSA or EDDSA"`
	KeyLength  string `help:"key length in bits"`
	KeyCurve   string `help:"key curve, e.g. ed25519"`
	Expire     string `help:"expiration, e.g. 1y or 0 for never"`
	Passphrase string `help:"optional, passphrase to protect the secret key"`
}

// Run the command
func (a *GenKeyCmd) Run(ctx *Cli) error {
	g, err := ctx.GPG()
	if err != nil {
		return err
	}

	params := map[string]string{}
	set := func(k, v string) {
		if v != "" {
			params[k] = v
		}
	}
	set("Name-Real", a.Name)
	set("Name-Email", a.Email)
	set("Key-Type", a.KeyType)
	set("Key-Length", a.KeyLength)
	set("Key-Curve", a.KeyCurve)
	set("Expire-Date", a.Expire)

	res, err := g.GenKey(ctx.Context(), a.Passphrase, params)
	if err != nil {
		return errors.WithMessage(err, "unable to generate key")
	}
	return ctx.WriteJSON(res)
}

// KeysCmd provides key management commands
type KeysCmd struct {
	List   KeysListCmd   `cmd:"" help:"list keys"`
	Export KeysExportCmd `cmd:"" help:"export keys"`
	Import KeysImportCmd `cmd:"" help:"import keys"`
	Delete KeysDeleteCmd `cmd:"" help:"delete keys"`
	Trust  KeysTrustCmd  `cmd:"" help:"assign ownertrust to a key"`
}

// KeysListCmd specifies flags for the list action
type KeysListCmd struct {
	Keys   []string `kong:"arg" optional:"" help:"optional, key ids to match"`
	Secret bool     `help:"list secret keys"`
	Sigs   bool     `help:"include signatures"`
	JSON   bool     `help:"output as JSON"`
}

// Run the command
func (a *KeysListCmd) Run(ctx *Cli) error {
	g, err := ctx.GPG()
	if err != nil {
		return err
	}

	mode := gnupg.ListPublicKeys
	if a.Secret {
		mode = gnupg.ListSecretKeys
	} else if a.Sigs {
		mode = gnupg.ListSignatures
	}

	keys, err := g.ListKeys(ctx.Context(), mode, a.Keys...)
	if err != nil {
		return errors.WithMessage(err, "unable to list keys")
	}
	if a.JSON {
		return ctx.WriteJSON(keys)
	}
	print.ListKeys(ctx.Writer(), keys)
	return nil
}

// KeysExportCmd specifies flags for the export action
type KeysExportCmd struct {
	Keys       []string `kong:"arg" optional:"" help:"optional, key ids to export"`
	Secret     bool     `help:"export secret keys"`
	Passphrase string   `help:"optional, key passphrase for protected secret keys"`
	Check      bool     `help:"decode the exported material and print the parsed identities"`
}

// Run the command
func (a *KeysExportCmd) Run(ctx *Cli) error {
	g, err := ctx.GPG()
	if err != nil {
		return err
	}

	var res *gnupg.CmdResult
	if a.Secret {
		res, err = g.ExportSecretKeys(ctx.Context(), a.Passphrase, a.Keys...)
	} else {
		res, err = g.ExportPublicKeys(ctx.Context(), a.Keys...)
	}
	if err != nil {
		return errors.WithMessage(err, "unable to export keys")
	}

	if a.Check {
		el, err := keyring.Decode(res.Output)
		if err != nil {
			return errors.WithMessage(err, "unable to decode exported keys")
		}
		for _, entity := range el {
			for name := range entity.Identities {
				fmt.Fprintf(ctx.Writer(), "%X: %s\n", entity.PrimaryKey.Fingerprint, name)
			}
		}
		return nil
	}

	_, err = ctx.Writer().Write(res.Output)
	return errors.WithStack(err)
}

// KeysImportCmd specifies flags for the import action
type KeysImportCmd struct {
	In string `kong:"arg" required:"" help:"key file to import, or - for stdin"`
}

// Run the command
func (a *KeysImportCmd) Run(ctx *Cli) error {
	g, err := ctx.GPG()
	if err != nil {
		return err
	}

	data, err := ctx.ReadFile(a.In)
	if err != nil {
		return errors.WithMessage(err, "unable to load key file")
	}

	res, err := g.ImportKey(ctx.Context(), &gnupg.Request{Input: data})
	if err != nil {
		return errors.WithMessage(err, "unable to import keys")
	}
	return ctx.WriteJSON(res)
}

// KeysDeleteCmd specifies flags for the delete action
type KeysDeleteCmd struct {
	Fingerprints []string `kong:"arg" required:"" help:"fingerprints of keys to delete"`
	Secret       bool     `help:"delete secret keys"`
}

// Run the command
func (a *KeysDeleteCmd) Run(ctx *Cli) error {
	g, err := ctx.GPG()
	if err != nil {
		return err
	}

	res, err := g.DeleteKeys(ctx.Context(), a.Fingerprints, a.Secret)
	if err != nil {
		return errors.WithMessage(err, "unable to delete keys")
	}
	return ctx.WriteJSON(res)
}

// KeysTrustCmd specifies flags for the trust action
type KeysTrustCmd struct {
	Fingerprint string `kong:"arg" required:"" help:"fingerprint of the key"`
	Level       int    `kong:"arg" required:"" help:"trust level, 1 (expired) to 6 (ultimate)"`
}

// Run the command
func (a *KeysTrustCmd) Run(ctx *Cli) error {
	g, err := ctx.GPG()
	if err != nil {
		return err
	}

	res, err := g.TrustKey(ctx.Context(), a.Fingerprint, gnupg.TrustLevel(a.Level))
	if err != nil {
		return errors.WithMessage(err, "unable to set ownertrust")
	}
	return ctx.WriteJSON(res)
}
