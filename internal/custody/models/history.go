package models

import (
	"time"

	id "casework/pkg/domain"
)

// Custody history event type codes.
const (
	HistoryLocationChange = "TL"
	HistoryStatusChange   = "SC"
)

// AutoInCustodyDetail is recorded when a location update moves a sentenced
// record into custody.
const AutoInCustodyDetail = "DSS auto update in custody"

// CustodyEventType is a reference entry for a custody history row.
type CustodyEventType struct {
	Code        string
	Description string
}

// CustodyHistory is an append-only audit row. Rows are never updated.
type CustodyHistory struct {
	ID        int64
	CustodyID id.CustodyID
	CaseID    id.CaseID
	Detail    string
	When      time.Time
	EventType CustodyEventType
}
