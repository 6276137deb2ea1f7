package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error. The HTTP adapter maps each kind onto a
// status code; storage adapters never return raw driver errors for the
// conditions covered here.
type Kind string

const (
	KindValidation           Kind = "validation"
	KindNotFound             Kind = "not_found"
	KindForbidden            Kind = "forbidden"
	KindConflict             Kind = "conflict"
	KindReferentialIntegrity Kind = "referential_integrity"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"
	CodeForbidden    Code = "FORBIDDEN"

	// Ledger conflicts
	CodeInvoiceAlreadyPaid      Code = "INVOICE_ALREADY_PAID"
	CodeInvoiceNotCovered       Code = "INVOICE_NOT_COVERED"
	CodeInvoiceOverpaid         Code = "INVOICE_OVERPAID"
	CodePaymentExceedsTotal     Code = "PAYMENT_EXCEEDS_TOTAL"
	CodePaymentAlreadyProcessed Code = "PAYMENT_ALREADY_PROCESSED"
	CodePaymentSettlesInvoice   Code = "PAYMENT_SETTLES_INVOICE"
	CodeConcurrentUpdate        Code = "CONCURRENT_UPDATE"

	// Approval conflicts
	CodeApprovalAlreadyFinalized Code = "APPROVAL_ALREADY_FINALIZED"

	// Referential integrity causes
	CodeInvoiceHasPayments  Code = "INVOICE_HAS_PAYMENTS"
	CodeInvoiceHasCampaigns Code = "INVOICE_HAS_CAMPAIGNS"
	CodeApprovalHasComments Code = "APPROVAL_HAS_COMMENTS"
	CodeReferenceUnknown    Code = "REFERENCE_UNKNOWN"
)

// Error is the structured error returned by the core for every rejected
// operation.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	// Field names the offending input for validation errors.
	Field string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Validation reports malformed or missing input.
func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Code: CodeInvalidInput, Message: msg, Field: field}
}

// NotFound reports that the referenced entity does not exist.
func NotFound(resource string, id fmt.Stringer) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNotFound, Message: fmt.Sprintf("%s %s not found", resource, id)}
}

// Forbidden reports an authenticated actor lacking rights on a resource.
func Forbidden(reason string) *Error {
	return &Error{Kind: KindForbidden, Code: CodeForbidden, Message: reason}
}

// Conflict reports a state-machine or invariant violation.
func Conflict(code Code, msg string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: msg}
}

// Referential reports a delete blocked by dependent rows. The code names
// the cause so callers can render an actionable message.
func Referential(code Code, msg string) *Error {
	return &Error{Kind: KindReferentialIntegrity, Code: code, Message: msg}
}

// KindOf returns the kind of a domain error, or "" for any other error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// CodeOf returns the code of a domain error, or "" for any other error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err is a domain error with the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
