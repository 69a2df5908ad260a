package gnupg

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

// GenKey generates a key pair from a batch parameter block built out of
// params (keys use either `-` or `_` separators, e.g. "Key-Type" or
// "key_type"). Missing parameters get defaults: RSA 2048, no expiry, an
// auto-generated identity. A passphrase, when supplied, protects the
// secret key and is checked before the process is spawned.
func (g *GPG) GenKey(ctx context.Context, passphrase string, params map[string]string) (*CmdResult, error) {
	if passphrase != "" {
		if err := checkPassphrase(passphrase, "key passphrase"); err != nil {
			return nil, err
		}
	}
	input := GenKeyInput(params, passphrase != "")
	return g.run(ctx, &Request{
		Args:       []string{"--gen-key"},
		Operation:  OpGenerateKey,
		Input:      []byte(input),
		Passphrase: passphrase,
	})
}

// GenKeyInput renders the batch key-generation block:
//
//	Key-Type: RSA
//	Key-Length: 2048
//	Name-Real: Joe Tester
//	Name-Email: joe@foo.bar
//	Expire-Date: 0
//	%no-protection
//	%commit
//
// Key-Type is always the first line and %commit the last; %no-protection
// is present exactly when the key is not passphrase-protected. Parameters
// other than Key-Type are rendered in sorted order so the block is
// deterministic.
func GenKeyInput(params map[string]string, protected bool) string {
	p := map[string]string{}
	for k, v := range params {
		p[canonicalParamName(k)] = strings.TrimSpace(v)
	}
	if _, ok := p["Key-Type"]; !ok {
		p["Key-Type"] = "RSA"
	}
	if _, ok := p["Key-Curve"]; !ok {
		if _, ok := p["Key-Length"]; !ok {
			p["Key-Length"] = "2048"
		}
	}
	if _, ok := p["Expire-Date"]; !ok {
		p["Expire-Date"] = "0"
	}
	if _, ok := p["Name-Real"]; !ok {
		p["Name-Real"] = "AutoGenerated Key"
	}
	if _, ok := p["Name-Email"]; !ok {
		p["Name-Email"] = fmt.Sprintf("%s@%s", userName(), hostName())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Key-Type: %s\n", p["Key-Type"])
	delete(p, "Key-Type")

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s: %s\n", k, p[k])
	}

	if !protected {
		sb.WriteString("%no-protection\n")
	}
	sb.WriteString("%commit\n")
	return sb.String()
}

// canonicalParamName normalizes a batch parameter name to the dashed
// title case gpg expects, so "name_real" and "Name-Real" address the same
// parameter.
func canonicalParamName(k string) string {
	parts := strings.Split(strings.ReplaceAll(k, "_", "-"), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}
	return strings.Join(parts, "-")
}

func userName() string {
	for _, k := range []string{"LOGNAME", "USERNAME", "USER"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return "unspecified"
}

func hostName() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
