// Package testgpg fabricates a fake gpg executable for tests, so the
// process driver and the CLI can be exercised without a real GnuPG
// install. The fake answers the version probe, replays canned stdout and
// status output, and records the arguments, stdin and passphrase it
// received.
package testgpg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/effective-security/xgpg/x/fileutil"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Config controls the fake tool behavior.
type Config struct {
	// Version reported on the --list-config probe; "2.4.6" when empty.
	Version string
	// Stdout is replayed on standard output.
	Stdout []byte
	// StatusLines are replayed on the status channel (stderr).
	StatusLines []string
	// ExitCode is the process exit code.
	ExitCode int
	// EchoStdin copies stdin straight to stdout instead of replaying
	// Stdout; used to exercise concurrent stream draining.
	EchoStdin bool
	// DropStdin exits without reading stdin, like a tool that fails
	// before consuming its input.
	DropStdin bool
	// SleepSeconds delays the fake before it produces output; used to
	// exercise deadlines.
	SleepSeconds int
}

const script = `#!/bin/sh
dir="$(dirname "$0")"
printf '%%s\n' "$*" >> "$dir/args.log"
haspass=""
for a in "$@"; do
	case "$a" in
	--list-config)
		printf 'cfg:version:%s\n'
		exit 0
		;;
	--passphrase-fd)
		haspass="1"
		;;
	esac
done
if [ -n "$haspass" ]; then
	cat <&3 > "$dir/pass.log"
fi
sleep %d >/dev/null 2>&1
if [ -f "$dir/status.txt" ]; then
	cat "$dir/status.txt" >&2
fi
case "%s" in
echo)
	cat
	;;
drop)
	;;
*)
	cat > "$dir/stdin.bin"
	if [ -f "$dir/stdout.bin" ]; then
		cat "$dir/stdout.bin"
	fi
	;;
esac
exit %d
`

// New writes the fake gpg executable and its fixture files into dir and
// returns the executable path.
func New(dir string, cfg Config) (string, error) {
	version := cfg.Version
	if version == "" {
		version = "2.4.6"
	}
	mode := "replay"
	if cfg.EchoStdin {
		mode = "echo"
	} else if cfg.DropStdin {
		mode = "drop"
	}

	if len(cfg.Stdout) > 0 {
		if err := afero.WriteFile(fileutil.Vfs, filepath.Join(dir, "stdout.bin"), cfg.Stdout, 0o644); err != nil {
			return "", errors.WithStack(err)
		}
	}
	if len(cfg.StatusLines) > 0 {
		status := strings.Join(cfg.StatusLines, "\n") + "\n"
		if err := afero.WriteFile(fileutil.Vfs, filepath.Join(dir, "status.txt"), []byte(status), 0o644); err != nil {
			return "", errors.WithStack(err)
		}
	}

	path := filepath.Join(dir, "gpg")
	body := fmt.Sprintf(script, version, cfg.SleepSeconds, mode, cfg.ExitCode)
	if err := afero.WriteFile(fileutil.Vfs, path, []byte(body), 0o755); err != nil {
		return "", errors.WithStack(err)
	}
	return path, nil
}

// Args returns the argument lines recorded by the fake, one per
// invocation.
func Args(dir string) ([]string, error) {
	b, err := os.ReadFile(filepath.Join(dir, "args.log"))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return strings.Split(strings.TrimSpace(string(b)), "\n"), nil
}

// Stdin returns the bytes the fake read from standard input.
func Stdin(dir string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(dir, "stdin.bin"))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

// Passphrase returns what the fake read from the passphrase descriptor.
func Passphrase(dir string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, "pass.log"))
	if err != nil {
		return "", errors.WithStack(err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}
