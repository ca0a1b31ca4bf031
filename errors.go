package inspect

import "errors"

var (
	// ErrMalformedLink is returned for an unknown prefix or invalid hex.
	ErrMalformedLink = errors.New("malformed inspect link")
	// ErrMalformedFormat is returned for a bad sentinel byte or a block that
	// cannot be decoded.
	ErrMalformedFormat = errors.New("malformed inspect payload")
	// ErrChecksumMismatch is returned when the integrity code does not match.
	ErrChecksumMismatch = errors.New("inspect link checksum mismatch")
	// ErrUnknownItem is returned when an id or decoded block does not resolve
	// to a catalog entry.
	ErrUnknownItem = errors.New("unknown item")
	// ErrInvalidAttachment is returned when an owned item carries
	// attachments its kind cannot hold in a preview block.
	ErrInvalidAttachment = errors.New("invalid attachment")
)
