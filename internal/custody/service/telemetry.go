package service

import "casework/internal/custody/models"

// Telemetry event names for the synchronous transfer endpoint.
const (
	EventTransferPrisonUpdated              = "P2PTransferPrisonUpdated"
	EventTransferPrisonUpdateIgnored        = "P2PTransferPrisonUpdateIgnored"
	EventTransferPrisonNotFound             = "P2PTransferPrisonNotFound"
	EventTransferBookingNumberNotFound      = "P2PTransferBookingNumberNotFound"
	EventTransferBookingNumberHasDuplicates = "P2PTransferBookingNumberHasDuplicates"
	EventTransferOffenderNotFound           = "P2PTransferOffenderNotFound"
	EventTransferMultipleOffendersFound     = "P2PTransferMultipleOffendersFound"
)

// Telemetry event names for the fire-and-forget location sync.
const (
	EventPOMLocationUpdated                   = "POMLocationUpdated"
	EventPOMLocationCorrect                   = "POMLocationCorrect"
	EventPOMLocationPrisonNotFound            = "POMLocationPrisonNotFound"
	EventPOMLocationCustodialStatusNotCorrect = "POMLocationCustodialStatusNotCorrect"
	EventPOMLocationNoEvents                  = "POMLocationNoEvents"
	EventPOMLocationMultipleEvents            = "POMLocationMultipleEvents"
	EventPOMLocationOffenderNotFound          = "POMLocationOffenderNotFound"
	EventPOMLocationMultipleOffenders         = "POMLocationMultipleOffenders"
)

// Telemetry event names for booking number assignment.
const (
	EventImprisonmentOffenderNotFound        = "P2PImprisonmentStatusOffenderNotFound"
	EventImprisonmentCustodyEventNotFound    = "P2PImprisonmentStatusCustodyEventNotFound"
	EventImprisonmentCustodyEventsDuplicates = "P2PImprisonmentStatusCustodyEventsHasDuplicates"
	EventImprisonmentBookingNumberAlreadySet = "P2PImprisonmentStatusBookingNumberAlreadySet"
	EventImprisonmentBookingNumberInserted   = "P2PImprisonmentStatusBookingNumberInserted"
	EventImprisonmentBookingNumberUpdated    = "P2PImprisonmentStatusBookingNumberUpdated"
)

var transferFailureEvents = map[models.Reason]string{
	models.ReasonTransferPrisonNotFound:                  EventTransferPrisonNotFound,
	models.ReasonCustodialSentenceNotFoundInCorrectState: EventTransferPrisonUpdateIgnored,
	models.ReasonConvictionNotFound:                      EventTransferBookingNumberNotFound,
	models.ReasonMultipleCustodialSentences:              EventTransferBookingNumberHasDuplicates,
	models.ReasonOffenderNotFound:                        EventTransferOffenderNotFound,
	models.ReasonMultipleOffendersFound:                  EventTransferMultipleOffendersFound,
}

var syncFailureEvents = map[models.Reason]string{
	models.ReasonTransferPrisonNotFound:                  EventPOMLocationPrisonNotFound,
	models.ReasonCustodialSentenceNotFoundInCorrectState: EventPOMLocationCustodialStatusNotCorrect,
	models.ReasonConvictionNotFound:                      EventPOMLocationNoEvents,
	models.ReasonMultipleCustodialSentences:              EventPOMLocationMultipleEvents,
	models.ReasonOffenderNotFound:                        EventPOMLocationOffenderNotFound,
	models.ReasonMultipleOffendersFound:                  EventPOMLocationMultipleOffenders,
}

var bookingFailureEvents = map[models.Reason]string{
	models.ReasonOffenderNotFound:           EventImprisonmentOffenderNotFound,
	models.ReasonMultipleOffendersFound:     EventImprisonmentOffenderNotFound,
	models.ReasonConvictionNotFound:         EventImprisonmentCustodyEventNotFound,
	models.ReasonMultipleCustodialSentences: EventImprisonmentCustodyEventsDuplicates,
}
