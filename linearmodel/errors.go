package linearmodel

import "errors"

var (
	ErrInvalidInput    = errors.New("length mismatch or empty input")
	ErrDegenerateInput = errors.New("zero variance in independent variable")
)

const errSliceLenMismatch = "linearmodel: slice length mismatch"
