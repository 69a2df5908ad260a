// Package gnupg drives an external GnuPG binary to generate keys, list
// keyrings, encrypt, decrypt, sign and verify.
//
// The package does not implement OpenPGP itself. It spawns one gpg process
// per operation in batch mode, feeds input and passphrases through the
// correct channels, drains stdout and the machine-readable status channel
// concurrently, and decodes the results into typed values.
//
// A GPG value holds the shared, immutable configuration (home directory,
// output directory, environment, options, probed version) and is safe for
// concurrent use; every operation spawns an independent process.
//
// Passphrases are never placed on the command line and never interleaved
// with streamed content on stdin: they travel over a dedicated pipe passed
// to the child as an extra file descriptor, written once and discarded.
package gnupg
