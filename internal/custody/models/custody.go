package models

import (
	"time"

	id "casework/pkg/domain"
)

// Custody is the mutable custodial sub-record of a sentence event.
type Custody struct {
	ID                 id.CustodyID
	EventID            id.EventID
	Status             CustodialStatus
	Institution        *Institution
	BookingNumber      id.BookingNumber
	StatusChangeDate   *time.Time
	LocationChangeDate *time.Time
	KeyDates           []KeyDate
}

// IsInCustody is true only for StatusInCustody.
func (c *Custody) IsInCustody() bool {
	return c != nil && c.Status == StatusInCustody
}

// IsAboutToEnterCustody is true only for StatusSentencedAwaitingCustody.
func (c *Custody) IsAboutToEnterCustody() bool {
	return c != nil && c.Status == StatusSentencedAwaitingCustody
}

// IsPostSentenceSupervision is true only for StatusPostSentenceSupervision.
func (c *Custody) IsPostSentenceSupervision() bool {
	return c != nil && c.Status == StatusPostSentenceSupervision
}

// IsAtInstitution reports whether the custody is held at inst. A custody with
// no institution is never at one.
func (c *Custody) IsAtInstitution(inst *Institution) bool {
	if c.Institution == nil || inst == nil {
		return false
	}
	return c.Institution.ID == inst.ID
}

// MoveTo records a location change.
func (c *Custody) MoveTo(inst *Institution, now time.Time) {
	copied := *inst
	c.Institution = &copied
	c.LocationChangeDate = &now
}

// EnterCustody advances a sentenced-awaiting-custody record to in custody.
func (c *Custody) EnterCustody(now time.Time) {
	c.Status = StatusInCustody
	c.StatusChangeDate = &now
}

// KeyDate returns the key date with the given type code.
func (c *Custody) KeyDate(typeCode string) (KeyDate, bool) {
	for _, kd := range c.KeyDates {
		if kd.Type.Code == typeCode {
			return kd, true
		}
	}
	return KeyDate{}, false
}

// AddOrReplaceKeyDate sets the date for kdType. An existing entry keeps its
// created stamp; a new entry is stamped created and updated identically.
// Returns the stored key date and whether it was inserted.
func (c *Custody) AddOrReplaceKeyDate(kdType KeyDateType, date time.Time, actor string, now time.Time) (KeyDate, bool) {
	for i := range c.KeyDates {
		if c.KeyDates[i].Type.Code != kdType.Code {
			continue
		}
		c.KeyDates[i].Date = date
		c.KeyDates[i].LastUpdatedAt = now
		c.KeyDates[i].LastUpdatedBy = actor
		return c.KeyDates[i], false
	}
	kd := KeyDate{
		Type:          kdType,
		Date:          date,
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
	}
	c.KeyDates = append(c.KeyDates, kd)
	return kd, true
}

// Clone returns a deep copy.
func (c *Custody) Clone() *Custody {
	if c == nil {
		return nil
	}
	out := *c
	if c.Institution != nil {
		inst := *c.Institution
		out.Institution = &inst
	}
	if c.StatusChangeDate != nil {
		t := *c.StatusChangeDate
		out.StatusChangeDate = &t
	}
	if c.LocationChangeDate != nil {
		t := *c.LocationChangeDate
		out.LocationChangeDate = &t
	}
	out.KeyDates = append([]KeyDate(nil), c.KeyDates...)
	return &out
}
