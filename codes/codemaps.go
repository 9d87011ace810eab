// Package codes holds the static mappings between supplier status/event
// codes and the standardized vocabulary. The tables are process-wide
// constants, loaded once and never mutated.
//
// The mapping follows table 9.2 of the supplier's API guide:
// https://apitest.bldss.bl.uk/docs/guide/appendix.html#orderlineUpdates
// It's not clear from the supplier docs what initiates some of these events,
// so there's some best guesses here.
package codes

import (
	"fmt"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/iso18626"
)

// UnmappedCodeError reports a miss on a table that is total over all codes
// the supplier is known to emit.
type UnmappedCodeError struct {
	Table string
	Code  string
}

func (e *UnmappedCodeError) Error() string {
	return fmt.Sprintf("unmapped supplier code %q in %s table", e.Code, e.Table)
}

var StatusMap = map[string]iso18626.TypeStatus{
	"0":   iso18626.TypeStatusRequestReceived,
	"1":   iso18626.TypeStatusRequestReceived,
	"5":   iso18626.TypeStatusUnfilled,
	"10":  iso18626.TypeStatusExpectToSupply,
	"11":  iso18626.TypeStatusLoaned,
	"12":  iso18626.TypeStatusWillSupply,
	"12a": iso18626.TypeStatusLoaned,
	"14":  iso18626.TypeStatusLoaned,
	"15":  iso18626.TypeStatusLoaned,
	"16":  iso18626.TypeStatusWillSupply,
	"17":  iso18626.TypeStatusExpectToSupply,
	"18a": iso18626.TypeStatusUnfilled,
	"18b": iso18626.TypeStatusUnfilled,
	"18c": iso18626.TypeStatusUnfilled,
	"18d": iso18626.TypeStatusUnfilled,
	"18e": iso18626.TypeStatusUnfilled,
	"18f": iso18626.TypeStatusUnfilled,
	"18g": iso18626.TypeStatusUnfilled,
	"18h": iso18626.TypeStatusUnfilled,
	"18i": iso18626.TypeStatusUnfilled,
	"18j": iso18626.TypeStatusUnfilled,
	"18k": iso18626.TypeStatusUnfilled,
	"19":  iso18626.TypeStatusCancelled,
	"1a":  iso18626.TypeStatusUnfilled,
	"20b": iso18626.TypeStatusExpectToSupply,
	"20c": iso18626.TypeStatusExpectToSupply,
	"20d": iso18626.TypeStatusWillSupply,
	"21":  iso18626.TypeStatusWillSupply,
	"21a": iso18626.TypeStatusRequestReceived,
	"21b": iso18626.TypeStatusUnfilled,
	"22a": iso18626.TypeStatusLoaned,
	"22b": iso18626.TypeStatusLoaned,
	"23":  iso18626.TypeStatusOverdue,
	"24":  iso18626.TypeStatusLoaned,
	"25":  iso18626.TypeStatusOverdue,
	"25a": iso18626.TypeStatusLoanCompleted,
	"26":  iso18626.TypeStatusLoaned,
	"27":  iso18626.TypeStatusLoaned,
	"28":  iso18626.TypeStatusRequestReceived,
	"29":  iso18626.TypeStatusRequestReceived,
	"2a":  iso18626.TypeStatusUnfilled,
	"2b":  iso18626.TypeStatusUnfilled,
	"2c":  iso18626.TypeStatusUnfilled,
	"2d":  iso18626.TypeStatusUnfilled,
	"2e":  iso18626.TypeStatusUnfilled,
	"2f":  iso18626.TypeStatusUnfilled,
	"3a":  iso18626.TypeStatusUnfilled,
	"4":   iso18626.TypeStatusRequestReceived,
	"47":  iso18626.TypeStatusRequestReceived,
	"48":  iso18626.TypeStatusLoaned,
	"49":  iso18626.TypeStatusLoaned,
	"4a":  iso18626.TypeStatusLoaned,
	"6":   iso18626.TypeStatusLoaned,
	"7a":  iso18626.TypeStatusRequestReceived,
	"7b":  iso18626.TypeStatusRequestReceived,
	"8":   iso18626.TypeStatusUnfilled,
	"9a":  iso18626.TypeStatusRequestReceived,
	"9b":  iso18626.TypeStatusRequestReceived,
	"9c":  iso18626.TypeStatusExpectToSupply,
	"9d":  iso18626.TypeStatusRequestReceived,
	"111": iso18626.TypeStatusUnfilled,
	"112": iso18626.TypeStatusRetryPossible,
	"113": iso18626.TypeStatusRetryPossible,
	"700": iso18626.TypeStatusRetryPossible,
	"701": iso18626.TypeStatusRetryPossible,
	"702": iso18626.TypeStatusRetryPossible,
	"703": iso18626.TypeStatusRetryPossible,
	"704": iso18626.TypeStatusRetryPossible,
	"705": iso18626.TypeStatusRetryPossible,
}

var ReasonForMessageMap = map[string]iso18626.TypeReasonForMessage{
	"newOrder": iso18626.TypeReasonForMessageRequestResponse,
	"1":        iso18626.TypeReasonForMessageRequestResponse,
	"10":       iso18626.TypeReasonForMessageRequestResponse,
	"11":       iso18626.TypeReasonForMessageNotification,
	"12":       iso18626.TypeReasonForMessageNotification,
	"12a":      iso18626.TypeReasonForMessageNotification,
	"13":       iso18626.TypeReasonForMessageNotification,
	"14":       iso18626.TypeReasonForMessageNotification,
	"15":       iso18626.TypeReasonForMessageNotification,
	"16":       iso18626.TypeReasonForMessageNotification,
	"17":       iso18626.TypeReasonForMessageNotification,
	"18a":      iso18626.TypeReasonForMessageNotification,
	"18b":      iso18626.TypeReasonForMessageNotification,
	"18c":      iso18626.TypeReasonForMessageNotification,
	"18d":      iso18626.TypeReasonForMessageNotification,
	"18e":      iso18626.TypeReasonForMessageNotification,
	"18f":      iso18626.TypeReasonForMessageNotification,
	"18g":      iso18626.TypeReasonForMessageNotification,
	"18h":      iso18626.TypeReasonForMessageNotification,
	"18i":      iso18626.TypeReasonForMessageNotification,
	"18j":      iso18626.TypeReasonForMessageNotification,
	"18k":      iso18626.TypeReasonForMessageNotification,
	"19":       iso18626.TypeReasonForMessageCancelResponse,
	"1a":       iso18626.TypeReasonForMessageRequestResponse,
	"20b":      iso18626.TypeReasonForMessageRequestResponse,
	"20c":      iso18626.TypeReasonForMessageNotification,
	"20d":      iso18626.TypeReasonForMessageNotification,
	"21":       iso18626.TypeReasonForMessageNotification,
	"21a":      iso18626.TypeReasonForMessageNotification,
	"21b":      iso18626.TypeReasonForMessageNotification,
	"22a":      iso18626.TypeReasonForMessageRenewResponse,
	"22b":      iso18626.TypeReasonForMessageNotification,
	"23":       iso18626.TypeReasonForMessageNotification,
	"24":       iso18626.TypeReasonForMessageRenewResponse,
	"25":       iso18626.TypeReasonForMessageNotification,
	"25a":      iso18626.TypeReasonForMessageNotification,
	"26":       iso18626.TypeReasonForMessageNotification,
	"27":       iso18626.TypeReasonForMessageRenewResponse,
	"28":       iso18626.TypeReasonForMessageCancelResponse,
	"29":       iso18626.TypeReasonForMessageNotification,
	"2a":       iso18626.TypeReasonForMessageRequestResponse,
	"2b":       iso18626.TypeReasonForMessageRequestResponse,
	"2c":       iso18626.TypeReasonForMessageRequestResponse,
	"2d":       iso18626.TypeReasonForMessageRequestResponse,
	"2e":       iso18626.TypeReasonForMessageRequestResponse,
	"2f":       iso18626.TypeReasonForMessageCancelResponse,
	"3a":       iso18626.TypeReasonForMessageRequestResponse,
	"4":        iso18626.TypeReasonForMessageRequestResponse,
	"47":       iso18626.TypeReasonForMessageNotification,
	"48":       iso18626.TypeReasonForMessageNotification,
	"49":       iso18626.TypeReasonForMessageNotification,
	"4a":       iso18626.TypeReasonForMessageNotification,
	"5":        iso18626.TypeReasonForMessageNotification,
	"6":        iso18626.TypeReasonForMessageNotification,
	"7a":       iso18626.TypeReasonForMessageNotification,
	"7b":       iso18626.TypeReasonForMessageNotification,
	"8":        iso18626.TypeReasonForMessageNotification,
	"9a":       iso18626.TypeReasonForMessageRequestResponse,
	"9b":       iso18626.TypeReasonForMessageRequestResponse,
	"9c":       iso18626.TypeReasonForMessageRequestResponse,
	"9d":       iso18626.TypeReasonForMessageNotification,
	"111":      iso18626.TypeReasonForMessageNotification,
	"112":      iso18626.TypeReasonForMessageNotification,
	"113":      iso18626.TypeReasonForMessageNotification,
	"700":      iso18626.TypeReasonForMessageNotification,
	"701":      iso18626.TypeReasonForMessageNotification,
	"702":      iso18626.TypeReasonForMessageNotification,
	"703":      iso18626.TypeReasonForMessageNotification,
	"704":      iso18626.TypeReasonForMessageNotification,
	"705":      iso18626.TypeReasonForMessageNotification,
}

// ReasonUnfilledMap is partial: absence means the code carries no
// reason-unfilled, not an error.
var ReasonUnfilledMap = map[string]iso18626.TypeReasonUnfilled{
	"5":   iso18626.TypeReasonUnfilledPolicyProblem,
	"18a": iso18626.TypeReasonUnfilledNotAvailableForIll,
	"18b": iso18626.TypeReasonUnfilledNotHeld,
	"18c": iso18626.TypeReasonUnfilledNotOnShelf,
	"18d": iso18626.TypeReasonUnfilledPolicyProblem,
	"18e": iso18626.TypeReasonUnfilledPolicyProblem,
	"18f": iso18626.TypeReasonUnfilledPolicyProblem,
	"18g": iso18626.TypeReasonUnfilledPolicyProblem,
	"18h": iso18626.TypeReasonUnfilledPolicyProblem,
	"18i": iso18626.TypeReasonUnfilledPolicyProblem,
	"18j": iso18626.TypeReasonUnfilledNotAvailableForIll,
	"18k": iso18626.TypeReasonUnfilledNotAvailableForIll,
	"21b": iso18626.TypeReasonUnfilledNotAvailableForIll,
	"111": iso18626.TypeReasonUnfilledNotHeld,
	"112": iso18626.TypeReasonUnfilledPolicyProblem,
	"113": iso18626.TypeReasonUnfilledPolicyProblem,
	"700": iso18626.TypeReasonUnfilledPolicyProblem,
	"701": iso18626.TypeReasonUnfilledPolicyProblem,
	"702": iso18626.TypeReasonUnfilledPolicyProblem,
	"703": iso18626.TypeReasonUnfilledPolicyProblem,
	"704": iso18626.TypeReasonUnfilledPolicyProblem,
	"705": iso18626.TypeReasonUnfilledPolicyProblem,
}

// ReasonRetryMap is partial; the same code may appear in both
// ReasonRetryMap and ReasonUnfilledMap.
var ReasonRetryMap = map[string]iso18626.TypeReasonRetry{
	"5":   iso18626.TypeReasonRetryNotFoundAsCited,
	"18a": iso18626.TypeReasonRetryNotFoundAsCited,
	"18b": iso18626.TypeReasonRetryNotCurrentAvailableForIll,
	"18c": iso18626.TypeReasonRetryNotCurrentAvailableForIll,
	"18d": iso18626.TypeReasonRetryNotCurrentAvailableForIll,
	"18e": iso18626.TypeReasonRetryNotCurrentAvailableForIll,
	"18f": iso18626.TypeReasonRetryCostExceedsMaxCost,
	"18g": iso18626.TypeReasonRetryNotCurrentAvailableForIll,
	"18h": iso18626.TypeReasonRetryNotCurrentAvailableForIll,
	"18i": iso18626.TypeReasonRetryNotCurrentAvailableForIll,
	"18j": iso18626.TypeReasonRetryNotCurrentAvailableForIll,
	"18k": iso18626.TypeReasonRetryNotCurrentAvailableForIll,
	"21b": iso18626.TypeReasonRetryNotCurrentAvailableForIll,
	"111": iso18626.TypeReasonRetryNotFoundAsCited,
}

var publicationTypeMap = map[iso18626.TypePublicationType]string{
	iso18626.TypePublicationTypeArticle:        "article",
	iso18626.TypePublicationTypeBook:           "book",
	iso18626.TypePublicationTypeJournal:        "journal",
	iso18626.TypePublicationTypeNewspaper:      "newspaper",
	iso18626.TypePublicationTypeConferenceProc: "conference",
	iso18626.TypePublicationTypeThesis:         "thesis",
	iso18626.TypePublicationTypeMusicScore:     "score",
}

// Status maps a supplier status/event code to the standardized status.
// The table is total over all codes the supplier is known to emit, so a
// miss is a hard error.
func Status(code string) (iso18626.TypeStatus, error) {
	status, ok := StatusMap[code]
	if !ok {
		return "", &UnmappedCodeError{Table: "status", Code: code}
	}
	return status, nil
}

// ReasonForMessage maps a supplier event code or response-type
// discriminator to the standardized reason-for-message.
func ReasonForMessage(code string) (iso18626.TypeReasonForMessage, error) {
	reason, ok := ReasonForMessageMap[code]
	if !ok {
		return "", &UnmappedCodeError{Table: "reason-for-message", Code: code}
	}
	return reason, nil
}

// ReasonUnfilled returns the reason-unfilled for a code, if any.
func ReasonUnfilled(code string) (iso18626.TypeReasonUnfilled, bool) {
	reason, ok := ReasonUnfilledMap[code]
	return reason, ok
}

// ReasonRetry returns the reason-retry for a code, if any.
func ReasonRetry(code string) (iso18626.TypeReasonRetry, bool) {
	reason, ok := ReasonRetryMap[code]
	return reason, ok
}

// PublicationTypeToSupplier maps a standardized publication type to the
// supplier's type vocabulary.
func PublicationTypeToSupplier(isoType iso18626.TypePublicationType) (string, error) {
	supplierType, ok := publicationTypeMap[isoType]
	if !ok {
		return "", &UnmappedCodeError{Table: "publication-type", Code: string(isoType)}
	}
	return supplierType, nil
}

// PublicationTypeFromSupplier maps a supplier type back to the
// standardized publication type.
func PublicationTypeFromSupplier(supplierType string) (iso18626.TypePublicationType, error) {
	for isoType, st := range publicationTypeMap {
		if st == supplierType {
			return isoType, nil
		}
	}
	return "", &UnmappedCodeError{Table: "publication-type", Code: supplierType}
}
