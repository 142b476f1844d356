package keydate

import (
	"fmt"

	id "casework/pkg/domain"
)

type selectorKind int

const (
	selectNone selectorKind = iota
	selectByEvent
	selectByConviction
	selectByCase
	selectByCRN
	selectByNOMSNumber
)

// Selector chooses which custodies a key date is written to. Event based
// selectors target one event even when it is no longer active; case based
// selectors target every active custodial event of the case.
type Selector struct {
	kind    selectorKind
	eventID id.EventID
	caseID  id.CaseID
	crn     id.CRN
	noms    id.NOMSNumber
}

func ByEvent(eventID id.EventID) Selector {
	return Selector{kind: selectByEvent, eventID: eventID}
}

// ByConviction selects an event that must belong to the case with crn.
func ByConviction(crn id.CRN, eventID id.EventID) Selector {
	return Selector{kind: selectByConviction, crn: crn, eventID: eventID}
}

func ByCase(caseID id.CaseID) Selector {
	return Selector{kind: selectByCase, caseID: caseID}
}

func ByCRN(crn id.CRN) Selector {
	return Selector{kind: selectByCRN, crn: crn}
}

func ByNOMSNumber(noms id.NOMSNumber) Selector {
	return Selector{kind: selectByNOMSNumber, noms: noms}
}

func (s Selector) String() string {
	switch s.kind {
	case selectByEvent:
		return "event:" + s.eventID.String()
	case selectByConviction:
		return fmt.Sprintf("crn:%s/event:%s", s.crn, s.eventID)
	case selectByCase:
		return "case:" + s.caseID.String()
	case selectByCRN:
		return "crn:" + s.crn.String()
	case selectByNOMSNumber:
		return "noms:" + s.noms.String()
	default:
		return "none"
	}
}
