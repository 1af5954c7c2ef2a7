package rive

import (
	"errors"
	"log/slog"
)

// Contract violations. These are programmer errors in the calling engine.
// The offending call is ignored and the error is reported through the
// factory's or renderer's Err method.
var (
	// ErrRestoreWithoutSave is reported when Restore is called on an empty
	// save stack.
	ErrRestoreWithoutSave = errors.New("rive: restore without matching save")

	// ErrNoGradient is reported by AddStop and CompleteGradient when no
	// gradient is being built.
	ErrNoGradient = errors.New("rive: no active gradient")

	// ErrForeignPath is reported when a RenderPath was not created by a
	// SceneFactory.
	ErrForeignPath = errors.New("rive: path not created by this factory")

	// ErrForeignPaint is reported when a RenderPaint was not created by a
	// SceneFactory.
	ErrForeignPaint = errors.New("rive: paint not created by this factory")

	// ErrNilPath is reported when a nil path is passed.
	ErrNilPath = errors.New("rive: nil path")

	// ErrNilPaint is reported when a nil paint is passed.
	ErrNilPaint = errors.New("rive: nil paint")
)

// ContractError records which operation violated the calling contract.
type ContractError struct {
	Op  string // Operation name, e.g. "Restore"
	Err error  // One of the Err* sentinels
}

func (e *ContractError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying sentinel for errors.Is.
func (e *ContractError) Unwrap() error {
	return e.Err
}

// contract collects violations for one factory or renderer.
// It keeps the first violation; later ones are only logged.
type contract struct {
	strict bool
	logger *slog.Logger
	err    error
}

func newContract(o options) *contract {
	return &contract{strict: o.strict, logger: o.logger}
}

func (c *contract) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// violate reports a violation of op. In strict mode it panics.
func (c *contract) violate(op string, err error) {
	cerr := &ContractError{Op: op, Err: err}
	if c.strict {
		panic(cerr)
	}
	if c.err == nil {
		c.err = cerr
		c.log().Error("rive: contract violation", "op", op, "err", err)
		return
	}
	c.log().Warn("rive: contract violation", "op", op, "err", err)
}
