package gnupg

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/effective-security/xgpg/x/fileutil"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/xgpg", "gnupg")

// defaultBinary is the gpg executable name resolved on PATH when the
// configuration does not name one.
const defaultBinary = "gpg"

// Config describes a GPG instance. The zero value resolves the home and
// output directories under the user's home and probes gpg from PATH.
type Config struct {
	// Binary is the gpg executable; name or absolute path.
	Binary string `json:"binary" yaml:"binary"`
	// Homedir is the GnuPG home directory with the keyrings.
	Homedir string `json:"homedir" yaml:"homedir"`
	// OutputDir receives generated output files when the caller does not
	// name an explicit destination.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	// Armor selects ASCII-armored output.
	Armor bool `json:"armor" yaml:"armor"`
	// Keyrings, when set, replace the default keyring.
	Keyrings []string `json:"keyrings" yaml:"keyrings"`
	// SecretKeyrings name additional secret keyring files.
	SecretKeyrings []string `json:"secret_keyrings" yaml:"secret_keyrings"`
	// Options are extra arguments passed on every invocation.
	Options []string `json:"options" yaml:"options"`
	// Env variables are passed to every spawned process in addition to
	// the inherited environment.
	Env map[string]string `json:"env" yaml:"env"`
}

// GPG is the shared, immutable configuration for driving the external
// tool. It is created once by New and is safe for concurrent use; every
// operation spawns its own independent process.
type GPG struct {
	binary         string
	homedir        string
	outputDir      string
	armor          bool
	keyrings       []string
	secretKeyrings []string
	options        []string
	env            map[string]string
	version        Version
}

// New resolves the directories, locates the gpg binary and probes its
// version. Any failure here is fatal for the configuration: no operation
// can run without knowing which arguments the installed tool supports.
func New(cfg *Config) (*GPG, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	homedir, err := resolveDir(cfg.Homedir, defaultHomedir, ErrHomedir)
	if err != nil {
		return nil, err
	}
	outputDir, err := resolveDir(cfg.OutputDir, defaultOutputDir, ErrOutputDir)
	if err != nil {
		return nil, err
	}

	binary := cfg.Binary
	if binary == "" {
		binary = defaultBinary
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, NewError(ErrNotFound, "gpg binary not found: %q", binary).WithCause(err)
	}

	g := &GPG{
		binary:         path,
		homedir:        homedir,
		outputDir:      outputDir,
		armor:          cfg.Armor,
		keyrings:       cfg.Keyrings,
		secretKeyrings: cfg.SecretKeyrings,
		options:        cfg.Options,
		env:            cfg.Env,
	}

	res, err := g.run(context.Background(), &Request{
		Args:      []string{"--list-config", "--with-colons"},
		Operation: OpVerify,
	})
	if err != nil {
		return nil, NewError(ErrInit, "gpg config probe failed").WithResult(ResultFromError(err)).WithCause(err)
	}
	g.version, err = parseVersion(res)
	if err != nil {
		return nil, err
	}
	logger.KV(xlog.DEBUG, "homedir", homedir, "version", g.version.Full)
	return g, nil
}

// Version returns the probed tool version.
func (g *GPG) Version() Version {
	return g.version
}

// Homedir returns the pinned GnuPG home directory.
func (g *GPG) Homedir() string {
	return g.homedir
}

// OutputDir returns the directory for generated output files.
func (g *GPG) OutputDir() string {
	return g.outputDir
}

// resolveDir validates dir, or creates the fallback when dir is empty.
func resolveDir(dir string, fallback func() (string, error), kind ErrKind) (string, error) {
	if dir == "" {
		d, err := fallback()
		if err != nil {
			return "", NewError(kind, "unable to create directory").WithCause(err)
		}
		return d, nil
	}
	if err := fileutil.FolderExists(dir); err != nil {
		return "", NewError(kind, "%q is not a directory", dir).WithCause(err)
	}
	return dir, nil
}

// defaultHomedir returns ~/.gnupg, creating it with the permissions gpg
// insists on.
func defaultHomedir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".gnupg")
	if err := fileutil.Vfs.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// defaultOutputDir returns ~/gnupg_output.
func defaultOutputDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, "gnupg_output")
	if err := fileutil.Vfs.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
