package ssd1331

// Every fallible operation fails with one of two error kinds: PinError when a
// control GPIO could not be driven, CommError when the bus transfer itself
// failed. The underlying transport error is wrapped, not replaced, so callers
// can match it with errors.Is or errors.As.

// PinError reports a failure driving a control GPIO pin (the data/command
// select line or the reset line).
type PinError struct {
	Err error
}

func (e *PinError) Error() string {
	return "ssd1331: pin: " + e.Err.Error()
}

// Unwrap returns the underlying gpio error.
func (e *PinError) Unwrap() error {
	return e.Err
}

// CommError reports a failure transmitting over the SPI bus.
type CommError struct {
	Err error
}

func (e *CommError) Error() string {
	return "ssd1331: comm: " + e.Err.Error()
}

// Unwrap returns the underlying bus error.
func (e *CommError) Unwrap() error {
	return e.Err
}
