package models

import "time"

// KeyDateType is a reference entry describing a kind of key date.
type KeyDateType struct {
	Code        string
	Description string
}

// Key date type codes with behaviour attached to them.
const (
	KeyDateSentenceExpiry = "SED"
)

// expiryAffecting lists codes whose change alters the computed sentence expiry.
var expiryAffecting = map[string]struct{}{
	KeyDateSentenceExpiry: {},
}

// AffectsSentenceExpiry reports whether changing this key date type alters the
// computed sentence expiry date.
func (t KeyDateType) AffectsSentenceExpiry() bool {
	_, ok := expiryAffecting[t.Code]
	return ok
}

// KeyDate is a typed date on a custody. Type code is unique per custody.
type KeyDate struct {
	Type          KeyDateType
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}
