// Package errors provides the error values returned by catalog operations.
package errors

import "errors"

// Kind classifies a business error for the transport boundary.
type Kind int

const (
	// KindUnknown is reported for errors that carry no business kind (infrastructure failures).
	KindUnknown Kind = iota
	// KindNotFound means the requested primary entity does not exist.
	KindNotFound
	// KindPreconditionFailed means a membership or field invariant does not hold.
	KindPreconditionFailed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindPreconditionFailed:
		return "PreconditionFailed"
	default:
		return "Unknown"
	}
}

// BusinessError is a logical failure with a stable message.
type BusinessError struct {
	Kind    Kind
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func newBusinessError(kind Kind, message string) *BusinessError {
	return &BusinessError{Kind: kind, Message: message}
}

var ErrProductNotFound = newBusinessError(KindNotFound, "product not found")
var ErrStoreNotFound = newBusinessError(KindNotFound, "store not found")

var ErrAssociationNotFound = newBusinessError(KindPreconditionFailed, "store is not associated with the product")
var ErrInvalidProductType = newBusinessError(KindPreconditionFailed, "product type must be Perishable or NonPerishable")
var ErrInvalidCityCode = newBusinessError(KindPreconditionFailed, "city code must be exactly 3 characters")

var ErrTransactionBegin = errors.New("failed to begin transaction")
var ErrTransactionCommit = errors.New("failed to commit transaction")
var ErrTransactionRollback = errors.New("failed to rollback transaction")

// KindOf returns the kind of the first BusinessError in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

// MessageOf returns the message of the first BusinessError in err's chain.
func MessageOf(err error) (string, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Message, true
	}
	return "", false
}
