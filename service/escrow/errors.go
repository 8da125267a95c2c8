package escrow

import (
	"errors"
	"fmt"
)

// ErrorKind groups error codes by the class of condition they report
type ErrorKind int

const (
	// ErrorKindPrecondition ...
	ErrorKindPrecondition ErrorKind = iota + 1

	// ErrorKindAuthorization ...
	ErrorKindAuthorization

	// ErrorKindArithmetic ...
	ErrorKindArithmetic

	// ErrorKindResource ...
	ErrorKindResource

	// ErrorKindNotFound ...
	ErrorKindNotFound

	// ErrorKindInvalid ...
	ErrorKindInvalid
)

// Error is a rejection of an operation, nothing was persisted when it is returned
type Error struct {
	Code    string
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches errors with the same code
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// WithMessage returns a copy carrying a more specific message
func (e *Error) WithMessage(msg string) *Error {
	return &Error{
		Code:    e.Code,
		Kind:    e.Kind,
		Message: msg,
	}
}

func newError(kind ErrorKind, code string, msg string) *Error {
	return &Error{
		Code:    code,
		Kind:    kind,
		Message: msg,
	}
}

// State preconditions
var (
	// ErrCampaignNotActive ...
	ErrCampaignNotActive = newError(ErrorKindPrecondition, "CampaignNotActive", "campaign is not active")

	// ErrCampaignEnded ...
	ErrCampaignEnded = newError(ErrorKindPrecondition, "CampaignEnded", "campaign has ended")

	// ErrCampaignNotFunded ...
	ErrCampaignNotFunded = newError(ErrorKindPrecondition, "CampaignNotFunded", "campaign has not reached its goal")

	// ErrCampaignAlreadyFunded ...
	ErrCampaignAlreadyFunded = newError(ErrorKindPrecondition, "CampaignAlreadyFunded",
		"campaign reached its goal, refunds are not available")

	// ErrCampaignStillActive ...
	ErrCampaignStillActive = newError(ErrorKindPrecondition, "CampaignStillActive",
		"campaign deadline has not passed")

	// ErrRefundAlreadyClaimed ...
	ErrRefundAlreadyClaimed = newError(ErrorKindPrecondition, "RefundAlreadyClaimed", "refund already claimed")

	// ErrNftAlreadyMinted ...
	ErrNftAlreadyMinted = newError(ErrorKindPrecondition, "NftAlreadyMinted", "reward already claimed")

	// ErrMaxEditionsReached ...
	ErrMaxEditionsReached = newError(ErrorKindPrecondition, "MaxEditionsReached", "all editions are claimed")

	// ErrNftAlreadyInEscrow ...
	ErrNftAlreadyInEscrow = newError(ErrorKindPrecondition, "NftAlreadyInEscrow", "reward is already in escrow")

	// ErrNftNotInEscrow ...
	ErrNftNotInEscrow = newError(ErrorKindPrecondition, "NftNotInEscrow", "reward is not in escrow")

	// ErrAlreadyFunded is returned when the supporter already funded the campaign
	ErrAlreadyFunded = newError(ErrorKindPrecondition, "AlreadyFunded", "supporter already funded this campaign")

	// ErrCampaignAlreadyExists ...
	ErrCampaignAlreadyExists = newError(ErrorKindPrecondition, "CampaignAlreadyExists",
		"creator already has a campaign with this name")

	// ErrNothingToWithdraw ...
	ErrNothingToWithdraw = newError(ErrorKindPrecondition, "NothingToWithdraw", "campaign custody is empty")
)

// Authorization
var (
	// ErrUnauthorized ...
	ErrUnauthorized = newError(ErrorKindAuthorization, "Unauthorized", "caller is not allowed to perform this operation")
)

// Arithmetic, results are never saturated
var (
	// ErrArithmetic ...
	ErrArithmetic = newError(ErrorKindArithmetic, "ArithmeticError", "arithmetic error")

	// ErrAmountOverflow ...
	ErrAmountOverflow = newError(ErrorKindArithmetic, "AmountOverflow", "amount overflow")

	// ErrCountOverflow ...
	ErrCountOverflow = newError(ErrorKindArithmetic, "CountOverflow", "supporters count overflow")
)

// Resource
var (
	// ErrInsufficientFunds ...
	ErrInsufficientFunds = newError(ErrorKindResource, "InsufficientFunds", "insufficient funds")
)

// Lookup and input
var (
	// ErrCampaignNotFound ...
	ErrCampaignNotFound = newError(ErrorKindNotFound, "CampaignNotFound", "campaign not found")

	// ErrFundingNotFound ...
	ErrFundingNotFound = newError(ErrorKindNotFound, "FundingNotFound", "supporter funding not found")

	// ErrInvalidInput ...
	ErrInvalidInput = newError(ErrorKindInvalid, "InvalidInput", "invalid input")

	// ErrInvalidAmount ...
	ErrInvalidAmount = newError(ErrorKindInvalid, "InvalidAmount", "amount must be positive")

	// ErrDepositDisabled ...
	ErrDepositDisabled = newError(ErrorKindAuthorization, "DepositDisabled", "deposit is disabled")
)

// ErrorCode returns the code of an escrow error, empty for any other error
func ErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
