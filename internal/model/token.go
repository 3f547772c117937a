package model

// LookupKey identifies a token record. It is supplied by the caller as the
// publicKey query parameter and only has to be non-empty.
type LookupKey string

func (k LookupKey) String() string { return string(k) }

// TokenRecord is the value an external writer stored under a LookupKey.
// Data is opaque and is never parsed or re-encoded here.
type TokenRecord struct {
	Key  LookupKey
	Data []byte
}
