package gnupg

// maxPassphraseLen bounds the accepted passphrase size.
const maxPassphraseLen = 1024

// ValidPassphrase reports whether a passphrase is safe to hand to the
// tool. Control bytes are rejected because they collide with the
// delimiters of the status and colon protocols (NUL, LF, CR); DEL is
// rejected with them.
func ValidPassphrase(passphrase string) bool {
	if len(passphrase) == 0 || len(passphrase) > maxPassphraseLen {
		return false
	}
	for i := 0; i < len(passphrase); i++ {
		c := passphrase[i]
		if c < 0x20 || c == 0x7f {
			return false
		}
	}
	return true
}

// checkPassphrase returns an argument error unless the passphrase is
// syntactically valid. It runs before any process is spawned.
func checkPassphrase(passphrase, what string) error {
	if !ValidPassphrase(passphrase) {
		return NewError(ErrPassphrase, "%s invalid", what)
	}
	return nil
}

// wipe clears secret bytes once they are no longer needed.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
