package service

import "errors"

var (
	ErrPublicKeyMissing = errors.New("public key parameter is missing")
	ErrTokenNotFound    = errors.New("token data not found")
	ErrStoreUnavailable = errors.New("token store unavailable")
)
