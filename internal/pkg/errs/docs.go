// Package errs holds the error taxonomy shared by the domain, application and adapter layers.
//
// Every error kind is a sentinel (ErrX) plus a struct (XError) built through NewXError or
// NewXErrorWithCause. The struct unwraps to its sentinel so callers classify with errors.Is:
//
//   - validation: ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange (all match ErrValidation)
//   - not found: ErrObjectNotFound
//   - conflict: ErrObjectAlreadyExists
//   - domain rule: ErrDomainRuleViolated
//   - optimistic locking: ErrConcurrentUpdate, ErrVersionIsInvalid
//
// The HTTP adapter maps these kinds to status codes; nothing below it knows about transport.
package errs
