package gnupg

import (
	"strings"
)

// statusPrefix marks machine-readable records on the status channel.
const statusPrefix = "[GNUPG:] "

// StatusEvent is one tokenized record from the status channel.
type StatusEvent struct {
	// Token is the record kind, e.g. "BAD_PASSPHRASE", "GOODSIG".
	Token string
	// Args is the remainder of the line after the token.
	Args string
}

// decodeStatus tokenizes the raw status lines of a result. Lines without
// the status prefix are diagnostics and are not returned as events; they
// stay available verbatim in CmdResult.StatusLines. Unknown tokens are
// preserved as events rather than rejected, so newer tool versions keep
// decoding.
func decodeStatus(lines []string) []StatusEvent {
	var events []StatusEvent
	for _, line := range lines {
		if !strings.HasPrefix(line, statusPrefix) {
			continue
		}
		rec := strings.TrimPrefix(line, statusPrefix)
		token, args, _ := strings.Cut(rec, " ")
		if token == "" {
			continue
		}
		events = append(events, StatusEvent{Token: token, Args: args})
	}
	return events
}

// failureKind maps recognized terminal-failure tokens to an error kind.
// All other tokens are informational.
func failureKind(ev StatusEvent) ErrKind {
	switch ev.Token {
	case "BAD_PASSPHRASE", "MISSING_PASSPHRASE":
		return ErrPassphrase
	case "NO_SECKEY", "NO_PUBKEY":
		return ErrKeyNotFound
	case "DECRYPTION_FAILED":
		return ErrDecryptionFailed
	case "BADSIG", "ERRSIG":
		return ErrBadSignature
	case "INV_RECP", "INV_SGNR":
		return ErrInvalidArgument
	default:
		return ErrNone
	}
}

// classifyResult is the single funnel applied after every invocation.
// A failed exit becomes a generic process error unless the status channel
// reported a more specific terminal failure; the raw result is always
// attached for inspection.
func classifyResult(res *CmdResult) error {
	if res.Success {
		return nil
	}
	for _, ev := range decodeStatus(res.StatusLines) {
		if kind := failureKind(ev); kind != ErrNone {
			return NewError(kind, "%s failed: %s %s", res.Operation, ev.Token, strings.TrimSpace(ev.Args)).WithResult(res)
		}
	}
	return NewError(ErrProcess, "%s failed", res.Operation).WithResult(res)
}

// hasStatusToken reports whether the status channel emitted the token.
func hasStatusToken(res *CmdResult, token string) bool {
	for _, ev := range decodeStatus(res.StatusLines) {
		if ev.Token == token {
			return true
		}
	}
	return false
}
