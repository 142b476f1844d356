package models

import (
	"fmt"

	dErrors "casework/pkg/domain-errors"
)

// CustodialStatus is the reference code of a custody's status. The empty
// value means no status has been recorded.
type CustodialStatus string

const (
	StatusNone                               CustodialStatus = ""
	StatusSentencedAwaitingCustody           CustodialStatus = "A"
	StatusInCustody                          CustodialStatus = "D"
	StatusReleasedOnLicence                  CustodialStatus = "B"
	StatusRecalled                           CustodialStatus = "C"
	StatusTerminated                         CustodialStatus = "T"
	StatusPostSentenceSupervision            CustodialStatus = "P"
	StatusMigratedData                       CustodialStatus = "-1"
	StatusInCustodyReleaseOnTemporaryLicence CustodialStatus = "R"
	StatusInCustodyImmigrationRemovalCentre  CustodialStatus = "I"
	StatusAutoTerminated                     CustodialStatus = "AT"
)

var statusDescriptions = map[CustodialStatus]string{
	StatusSentencedAwaitingCustody:           "Sentenced - In Custody",
	StatusInCustody:                          "In Custody",
	StatusReleasedOnLicence:                  "Released - On Licence",
	StatusRecalled:                           "Recall - Sentenced In Custody",
	StatusTerminated:                         "Sentence Terminated",
	StatusPostSentenceSupervision:            "Post Sentence Supervision",
	StatusMigratedData:                       "Migrated Data",
	StatusInCustodyReleaseOnTemporaryLicence: "In Custody - RoTL",
	StatusInCustodyImmigrationRemovalCentre:  "In Custody - IRC",
	StatusAutoTerminated:                     "Auto Terminated",
}

// ParseCustodialStatus validates a stored status code.
func ParseCustodialStatus(code string) (CustodialStatus, error) {
	s := CustodialStatus(code)
	if s == StatusNone {
		return StatusNone, nil
	}
	if _, ok := statusDescriptions[s]; !ok {
		return StatusNone, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("unknown custodial status %q", code))
	}
	return s, nil
}

// Description is the human readable reference description of the status.
func (s CustodialStatus) Description() string {
	if d, ok := statusDescriptions[s]; ok {
		return d
	}
	return "No status recorded"
}

func (s CustodialStatus) String() string {
	return string(s)
}
