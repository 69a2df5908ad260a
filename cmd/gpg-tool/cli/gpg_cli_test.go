package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/effective-security/xgpg/testgpg"
)

type cliSuite struct {
	testSuite
}

const fakeListing = `pub:u:255:22:AAAA111122223333:1690000000:::u:::scESC:
fpr:::::::::FPR1PRIMARY000000000000000000000000000000:
uid:u::::1690000000::H1::Alice <alice@example.com>::::::::::0:
sub:u:255:18:BBBB111122223333:1690000000::::::e:
fpr:::::::::FPR1SUBKEY0000000000000000000000000000000:
`

func (s *cliSuite) TestKeysList() {
	s.setupFake(testgpg.Config{Stdout: []byte(fakeListing)})

	cmd := KeysListCmd{}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)

	out := s.Out.String()
	s.Contains(out, "Key: AAAA111122223333")
	s.Contains(out, "UID: Alice <alice@example.com>")
	s.Contains(out, "Subkey: BBBB111122223333 [e]")

	args, err := testgpg.Args(s.tmpdir)
	s.Require().NoError(err)
	s.Contains(args[len(args)-1], "--list-keys --with-colons --fingerprint --fingerprint")
}

func (s *cliSuite) TestKeysListJSON() {
	s.setupFake(testgpg.Config{Stdout: []byte(fakeListing)})

	cmd := KeysListCmd{JSON: true, Secret: true}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)

	out := s.Out.String()
	s.Contains(out, `"key_id": "AAAA111122223333"`)
	s.Contains(out, `"fingerprint": "FPR1PRIMARY000000000000000000000000000000"`)

	args, err := testgpg.Args(s.tmpdir)
	s.Require().NoError(err)
	s.Contains(args[len(args)-1], "--list-secret-keys")
}

func (s *cliSuite) TestGenKey() {
	cmd := GenKeyCmd{
		Name:     "Bob",
		Email:    "bob@example.com",
		KeyType:  "EDDSA",
		KeyCurve: "ed25519",
	}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.Contains(s.Out.String(), `"success": true`)

	args, err := testgpg.Args(s.tmpdir)
	s.Require().NoError(err)
	s.Contains(args[len(args)-1], "--gen-key")

	stdin, err := testgpg.Stdin(s.tmpdir)
	s.Require().NoError(err)
	s.True(strings.HasPrefix(string(stdin), "Key-Type: EDDSA\n"))
	s.Contains(string(stdin), "Key-Curve: ed25519\n")
	s.Contains(string(stdin), "Name-Real: Bob\n")
	s.Contains(string(stdin), "%no-protection\n")
}

func (s *cliSuite) TestEncryptFile() {
	in := filepath.Join(s.tmpdir, "plain.txt")
	s.Require().NoError(os.WriteFile(in, []byte("hello"), 0o644))

	cmd := EncryptCmd{
		In:         in,
		Recipients: []string{"alice@example.com"},
	}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.Contains(s.Out.String(), `"success": true`)

	args, err := testgpg.Args(s.tmpdir)
	s.Require().NoError(err)
	last := args[len(args)-1]
	s.Contains(last, "--encrypt --recipient alice@example.com")
	s.Contains(last, "--trust-model always")
	s.Contains(last, "keys_encrypted_file_")
}

func (s *cliSuite) TestEncryptSignedProtectedKey() {
	in := filepath.Join(s.tmpdir, "plain.txt")
	s.Require().NoError(os.WriteFile(in, []byte("hello"), 0o644))

	cmd := EncryptCmd{
		In:          in,
		Recipients:  []string{"alice@example.com"},
		Sign:        true,
		SignKey:     "CCCC444455556666",
		SignKeyPass: "key secret",
	}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)

	args, err := testgpg.Args(s.tmpdir)
	s.Require().NoError(err)
	last := args[len(args)-1]
	s.Contains(last, "--sign --default-key CCCC444455556666")
	s.Contains(last, "--passphrase-fd 3")
	s.NotContains(last, "key secret")

	// the signing key passphrase arrived on the side channel
	pass, err := testgpg.Passphrase(s.tmpdir)
	s.Require().NoError(err)
	s.Equal("key secret", pass)
}

func (s *cliSuite) TestEncryptSymmetricRequiresPassphrase() {
	in := filepath.Join(s.tmpdir, "plain.txt")
	s.Require().NoError(os.WriteFile(in, []byte("hello"), 0o644))

	cmd := EncryptCmd{In: in, Symmetric: true}
	err := cmd.Run(s.ctl)
	s.Require().Error(err)
	s.Contains(err.Error(), "passphrase is required for symmetric encryption")
}

func (s *cliSuite) TestDecryptStdin() {
	s.ctl.WithReader(strings.NewReader("ciphertext"))

	cmd := DecryptCmd{In: "-", Passphrase: "secret"}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.Contains(s.Out.String(), `"success": true`)

	args, err := testgpg.Args(s.tmpdir)
	s.Require().NoError(err)
	last := args[len(args)-1]
	s.Contains(last, "--decrypt")
	s.Contains(last, "--pinentry-mode loopback --passphrase-fd 3")

	stdin, err := testgpg.Stdin(s.tmpdir)
	s.Require().NoError(err)
	s.Equal("ciphertext", string(stdin))

	pass, err := testgpg.Passphrase(s.tmpdir)
	s.Require().NoError(err)
	s.Equal("secret", pass)
}

func (s *cliSuite) TestKeysTrust() {
	cmd := KeysTrustCmd{
		Fingerprint: "fpr1primary000000000000000000000000000000",
		Level:       5,
	}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)

	args, err := testgpg.Args(s.tmpdir)
	s.Require().NoError(err)
	s.Contains(args[len(args)-1], "--import-ownertrust")

	stdin, err := testgpg.Stdin(s.tmpdir)
	s.Require().NoError(err)
	s.Equal("FPR1PRIMARY000000000000000000000000000000:5:\n", string(stdin))
}

func (s *cliSuite) TestKeysImport() {
	s.ctl.WithReader(strings.NewReader("armored key material"))

	cmd := KeysImportCmd{In: "-"}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.Contains(s.Out.String(), `"success": true`)

	args, err := testgpg.Args(s.tmpdir)
	s.Require().NoError(err)
	s.Contains(args[len(args)-1], "--import")
}

func (s *cliSuite) TestKeysExport() {
	s.setupFake(testgpg.Config{Stdout: []byte("exported key block")})

	cmd := KeysExportCmd{Keys: []string{"AAAA111122223333"}}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.Equal("exported key block", s.Out.String())

	args, err := testgpg.Args(s.tmpdir)
	s.Require().NoError(err)
	s.Contains(args[len(args)-1], "--export AAAA111122223333")
}

func (s *cliSuite) TestSignToStdout() {
	s.setupFake(testgpg.Config{Stdout: []byte("SIGNED BLOCK")})
	in := filepath.Join(s.tmpdir, "plain.txt")
	s.Require().NoError(os.WriteFile(in, []byte("hello"), 0o644))

	cmd := SignCmd{In: in, Clear: true}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.Equal("SIGNED BLOCK", s.Out.String())

	args, err := testgpg.Args(s.tmpdir)
	s.Require().NoError(err)
	s.Contains(args[len(args)-1], "--clear-sign")
}

func (s *cliSuite) TestVerifyNoSignature() {
	sig := filepath.Join(s.tmpdir, "file.sig")
	s.Require().NoError(os.WriteFile(sig, []byte("not a signature"), 0o644))

	cmd := VerifyCmd{Sig: sig}
	err := cmd.Run(s.ctl)
	s.Require().Error(err)
	s.Contains(err.Error(), "no valid signature found")
}

func (s *cliSuite) TestVerifyGoodSignature() {
	s.setupFake(testgpg.Config{
		StatusLines: []string{
			"[GNUPG:] GOODSIG AAAA111122223333 Alice <alice@example.com>",
			"[GNUPG:] VALIDSIG FPR1PRIMARY000000000000000000000000000000",
		},
	})
	sig := filepath.Join(s.tmpdir, "file.sig")
	s.Require().NoError(os.WriteFile(sig, []byte("signature"), 0o644))

	cmd := VerifyCmd{Sig: sig}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.Contains(s.Out.String(), `"success": true`)
	s.Contains(s.Out.String(), "GOODSIG")
}

func (s *cliSuite) TestKeysDeleteBadFlag() {
	cmd := KeysDeleteCmd{Fingerprints: []string{"FPR1PRIMARY000000000000000000000000000000!"}}
	err := cmd.Run(s.ctl)
	s.Require().Error(err)
	s.Contains(err.Error(), "subkey")
}
