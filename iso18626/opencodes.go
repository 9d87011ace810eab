package iso18626

type TypeStatus string

const (
	TypeStatusRequestReceived TypeStatus = "RequestReceived"
	TypeStatusExpectToSupply  TypeStatus = "ExpectToSupply"
	TypeStatusWillSupply      TypeStatus = "WillSupply"
	TypeStatusLoaned          TypeStatus = "Loaned"
	TypeStatusOverdue         TypeStatus = "Overdue"
	TypeStatusRetryPossible   TypeStatus = "RetryPossible"
	TypeStatusUnfilled        TypeStatus = "Unfilled"
	TypeStatusCopyCompleted   TypeStatus = "CopyCompleted"
	TypeStatusLoanCompleted   TypeStatus = "LoanCompleted"
	TypeStatusCancelled       TypeStatus = "Cancelled"
)

type TypeReasonForMessage string

const (
	TypeReasonForMessageRequestResponse TypeReasonForMessage = "RequestResponse"
	TypeReasonForMessageStatusChange    TypeReasonForMessage = "StatusChange"
	TypeReasonForMessageRenewResponse   TypeReasonForMessage = "RenewResponse"
	TypeReasonForMessageCancelResponse  TypeReasonForMessage = "CancelResponse"
	TypeReasonForMessageNotification    TypeReasonForMessage = "Notification"
)

type TypeReasonUnfilled string

// a subset of https://illtransactions.org/opencode/2017/
const (
	TypeReasonUnfilledPolicyProblem      TypeReasonUnfilled = "PolicyProblem"
	TypeReasonUnfilledNotHeld            TypeReasonUnfilled = "NotHeld"
	TypeReasonUnfilledNotOnShelf         TypeReasonUnfilled = "NotOnShelf"
	TypeReasonUnfilledNotAvailableForIll TypeReasonUnfilled = "NotAvailableForIll"
)

type TypeReasonRetry string

const (
	TypeReasonRetryCostExceedsMaxCost        TypeReasonRetry = "CostExceedsMaxCost"
	TypeReasonRetryNotFoundAsCited           TypeReasonRetry = "NotFoundAsCited"
	TypeReasonRetryNotCurrentAvailableForIll TypeReasonRetry = "NotCurrentAvailableForIll"
)

type TypeYesNo string

const (
	TypeYesNoY TypeYesNo = "Y"
	TypeYesNoN TypeYesNo = "N"
)

type TypeSentVia string

const (
	TypeSentViaURL  TypeSentVia = "URL"
	TypeSentViaMail TypeSentVia = "Mail"
)

type TypePublicationType string

const (
	TypePublicationTypeArticle        TypePublicationType = "Article"
	TypePublicationTypeBook           TypePublicationType = "Book"
	TypePublicationTypeJournal        TypePublicationType = "Journal"
	TypePublicationTypeNewspaper      TypePublicationType = "Newspaper"
	TypePublicationTypeConferenceProc TypePublicationType = "ConferenceProc"
	TypePublicationTypeThesis         TypePublicationType = "Thesis"
	TypePublicationTypeMusicScore     TypePublicationType = "MusicScore"
)
