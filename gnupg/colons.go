package gnupg

import (
	"strings"
)

// Colon-format listing records are one per line, fields separated by ':'.
// The records this parser consumes:
//
//	pub/sec  opens a new primary key
//	fpr      fingerprint of the most recently opened entity
//	uid      user id of the current primary key
//	sub/ssb  opens a subkey under the current primary key
//	grp      keygrip of the most recently opened entity
//
// A fingerprint or keygrip line carries no backward reference to the
// entity it describes; ownership is determined solely by which entity is
// currently open. The parser tracks that explicitly as a small state
// machine instead of a trailing pointer, so the transitions stay auditable.
type colonParserState int

const (
	stateNoKey colonParserState = iota
	stateInKey
	stateInSubkey
)

// Field positions within a colon record.
const (
	colType         = 0
	colValidity     = 1
	colKeyID        = 4
	colCreationDate = 5
	colExpiryDate   = 6
	colUserID       = 9
	colCapabilities = 11
)

func colField(fields []string, idx int) string {
	if idx < len(fields) {
		return fields[idx]
	}
	return ""
}

// DecodeListKeys decodes the stdout of a key-listing invocation into one
// ListKeyResult per primary key, in emission order. Record types unknown
// to the parser are skipped; a listing with no primary keys decodes to an
// empty slice.
func DecodeListKeys(res *CmdResult) []ListKeyResult {
	keys := []ListKeyResult{}
	state := stateNoKey

	for _, line := range strings.Split(res.Text(), "\n") {
		fields := strings.Split(line, ":")
		cur := func() *ListKeyResult { return &keys[len(keys)-1] }

		switch colField(fields, colType) {
		case "pub", "sec":
			keys = append(keys, ListKeyResult{
				KeyID:        colField(fields, colKeyID),
				CreationDate: colField(fields, colCreationDate),
				ExpiryDate:   colField(fields, colExpiryDate),
				Trust:        trustFromValidity(colField(fields, colValidity)),
			})
			state = stateInKey

		case "fpr":
			fpr := colField(fields, colUserID)
			switch state {
			case stateInKey:
				cur().Fingerprint = fpr
			case stateInSubkey:
				sub := &cur().Subkeys[len(cur().Subkeys)-1]
				// the subkey fpr record repeats after --fingerprint is
				// given twice; first one wins
				if sub.Fingerprint == "" {
					sub.Fingerprint = fpr
				}
			}

		case "uid":
			if state != stateNoKey {
				cur().UserIDs = append(cur().UserIDs, colField(fields, colUserID))
			}

		case "sub", "ssb":
			if state == stateNoKey {
				continue
			}
			cur().Subkeys = append(cur().Subkeys, Subkey{
				KeyID:        colField(fields, colKeyID),
				Capabilities: colField(fields, colCapabilities),
			})
			state = stateInSubkey

		case "grp":
			grp := colField(fields, colUserID)
			switch state {
			case stateInKey:
				cur().Keygrip = grp
			case stateInSubkey:
				sub := &cur().Subkeys[len(cur().Subkeys)-1]
				if sub.Keygrip == "" {
					sub.Keygrip = grp
				}
			}
		}
	}

	return keys
}
