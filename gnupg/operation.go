package gnupg

// Operation tags the intent of a single external invocation. The tag is
// carried on the CmdResult so decoders and error messages can be selected
// over a closed set.
type Operation int

// Supported operations.
const (
	OpNotSet Operation = iota
	// OpVerify probes that gpg is installed and responding; verifying a
	// file signature is OpVerifyFile.
	OpVerify
	OpGenerateKey
	OpListKey
	OpSearchKey
	OpImportKey
	OpTrustKey
	OpExportPublicKey
	OpExportSecretKey
	OpEncrypt
	OpDecrypt
	OpSign
	OpVerifyFile
	OpDeleteKey
	OpRevokeKey
)

func (o Operation) String() string {
	switch o {
	case OpVerify:
		return "Verify"
	case OpGenerateKey:
		return "GenerateKey"
	case OpListKey:
		return "ListKey"
	case OpSearchKey:
		return "SearchKey"
	case OpImportKey:
		return "ImportKey"
	case OpTrustKey:
		return "TrustKey"
	case OpExportPublicKey:
		return "ExportPublicKey"
	case OpExportSecretKey:
		return "ExportSecretKey"
	case OpEncrypt:
		return "Encrypt"
	case OpDecrypt:
		return "Decrypt"
	case OpSign:
		return "Sign"
	case OpVerifyFile:
		return "VerifyFile"
	case OpDeleteKey:
		return "DeleteKey"
	case OpRevokeKey:
		return "RevokeKey"
	default:
		return "NotSet"
	}
}

// TrustLevel is the user-assigned confidence in a key's claimed ownership.
// The ordering is meaningful: Expired < Undefined < Never < Marginal <
// Fully < Ultimate.
type TrustLevel int

// Trust levels in ascending order.
const (
	TrustExpired TrustLevel = iota + 1
	TrustUndefined
	TrustNever
	TrustMarginal
	TrustFully
	TrustUltimate
)

// Value returns the numeric level. It matches the ownertrust code GnuPG
// uses in --import-ownertrust records.
func (t TrustLevel) Value() int {
	return int(t)
}

func (t TrustLevel) String() string {
	switch t {
	case TrustExpired:
		return "Expired"
	case TrustNever:
		return "Never"
	case TrustMarginal:
		return "Marginal"
	case TrustFully:
		return "Fully"
	case TrustUltimate:
		return "Ultimate"
	default:
		return "Undefined"
	}
}

// trustFromValidity maps the validity letter of a colon-format key record
// to a TrustLevel. Unknown letters map to Undefined.
func trustFromValidity(v string) TrustLevel {
	switch v {
	case "e":
		return TrustExpired
	case "n":
		return TrustNever
	case "m":
		return TrustMarginal
	case "f":
		return TrustFully
	case "u":
		return TrustUltimate
	default:
		return TrustUndefined
	}
}
