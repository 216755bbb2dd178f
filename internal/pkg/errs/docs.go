// Package errs holds the error taxonomy shared by the domain, the use cases
// and the adapters.
//
// Input and lookup failures live in errs.go: ValueIsRequiredError,
// ValueIsInvalidError and ValueIsOutOfRangeError form the validation family
// (see IsValidation), ObjectNotFoundError reports a missing aggregate and
// VersionIsInvalidError a lost compare-and-swap on write.
//
// Business and access failures live in domain.go. They name the state that
// blocked the request, for example the current and requested shipment status
// of an InvalidTransitionError or the available balance of an
// InsufficientBalanceError. TransientError wraps persistence failures the
// caller may retry.
//
// Every kind pairs a sentinel (ErrXxx) with a struct whose Unwrap returns it,
// so callers branch with errors.Is and read details with errors.As.
package errs
