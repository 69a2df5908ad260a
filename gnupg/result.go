package gnupg

// CmdResult is the raw outcome of one external invocation: exit indicator,
// captured stdout, and the ordered status/diagnostic lines from the status
// channel. It is immutable after construction and owned by the caller.
type CmdResult struct {
	// Success is true when the process exited with code zero.
	Success bool `json:"success"`
	// Output holds the captured stdout bytes.
	Output []byte `json:"-"`
	// StatusLines holds the raw lines read from the status channel,
	// in emission order.
	StatusLines []string `json:"status_lines,omitempty"`
	// Operation is the tag of the invocation that produced this result.
	Operation Operation `json:"operation"`
}

// Text returns the captured stdout as a string.
func (r *CmdResult) Text() string {
	return string(r.Output)
}

// Subkey describes one subkey of a listed primary key.
type Subkey struct {
	KeyID        string `json:"key_id"`
	Fingerprint  string `json:"fingerprint,omitempty"`
	Capabilities string `json:"capabilities,omitempty"`
	Keygrip      string `json:"keygrip,omitempty"`
}

// ListKeyResult describes one primary key from a key-listing invocation.
type ListKeyResult struct {
	KeyID        string     `json:"key_id"`
	Fingerprint  string     `json:"fingerprint,omitempty"`
	CreationDate string     `json:"creation_date,omitempty"`
	ExpiryDate   string     `json:"expiry_date,omitempty"`
	Trust        TrustLevel `json:"trust"`
	UserIDs      []string   `json:"uids,omitempty"`
	Subkeys      []Subkey   `json:"subkeys,omitempty"`
	Keygrip      string     `json:"keygrip,omitempty"`
}
