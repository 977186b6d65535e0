package mpoly

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned when an argument is out of the domain of
	// an operation, such as a negative power or a non-positive dimension.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIncompatibleDimensions is returned when the dimensions of the
	// operands of an operation do not match.
	ErrIncompatibleDimensions = errors.New("incompatible dimensions")

	// ErrNotImplemented is returned when a supported operation is invoked in
	// a mode that has not been generalized yet.
	ErrNotImplemented = errors.New("not implemented")

	// ErrDivisionByZero is returned when an operation would divide by a
	// quantity that is numerically zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNonConvergence is returned when an iterative method exhausts its
	// iteration budget without converging.
	ErrNonConvergence = errors.New("did not converge")
)
