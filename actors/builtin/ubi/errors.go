package ubi

import (
	"errors"

	"golang.org/x/xerrors"

	"github.com/ubi-network/ubi-core/actors/runtime/exitcode"
)

// Sentinel errors surfaced by the core (§7). Handlers return one of these,
// optionally wrapped with additional context via xerrors.Errorf("...: %w").
var (
	ErrNothingToClaim       = xerrors.New("nothing to claim")
	ErrInsufficientBalance  = xerrors.New("insufficient balance")
	ErrCannotBurnToSelf     = xerrors.New("cannot burn to self")
	ErrAmountMustBePositive = xerrors.New("amount must be positive")
	ErrTooManyBatches       = xerrors.New("too many batches")
	// ErrOverflow is reserved: arithmetic throughout is saturating (actors/abi/big),
	// so this is never raised by the current implementation.
	ErrOverflow = xerrors.New("overflow")
)

// ActorError pairs a sentinel error with the exitcode classification an
// admission predicate or external caller may want without string-matching
// the error text.
type ActorError struct {
	Code ExitCode
	err  error
}

// ExitCode is a local alias so callers of this package don't need to import
// actors/runtime/exitcode directly for the common case.
type ExitCode = exitcode.ExitCode

func newActorError(code ExitCode, err error) *ActorError {
	return &ActorError{Code: code, err: err}
}

func (e *ActorError) Error() string { return e.err.Error() }
func (e *ActorError) Unwrap() error { return e.err }

// classify inspects err's wrapping chain (xerrors/pkg-errors both preserve
// Unwrap) rather than comparing identity directly, since callers may pass a
// sentinel wrapped with additional context.
func classify(err error) ExitCode {
	switch {
	case errors.Is(err, ErrNothingToClaim):
		return exitcode.ErrIllegalState
	case errors.Is(err, ErrInsufficientBalance):
		return exitcode.ErrInsufficientFunds
	case errors.Is(err, ErrCannotBurnToSelf):
		return exitcode.ErrForbidden
	case errors.Is(err, ErrAmountMustBePositive):
		return exitcode.ErrIllegalArgument
	case errors.Is(err, ErrTooManyBatches):
		return exitcode.ErrIllegalState
	default:
		return exitcode.ErrIllegalArgument
	}
}

// wrapf classifies a sentinel error and attaches formatted context, mirroring
// the teacher's builtin.RequireNoErr message-annotation convention without
// the VM abort.
func wrapf(err error, format string, args ...interface{}) *ActorError {
	return newActorError(classify(err), xerrors.Errorf(format+": %w", append(args, err)...))
}
