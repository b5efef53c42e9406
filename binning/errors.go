package binning

import "errors"

// Ошибки валидации входных данных. Возвращаются до построения результата,
// частичный Result никогда не отдается.
var (
	ErrDegenerateRange    = errors.New("degenerate range: all observations are equal")
	ErrDegenerateQuantile = errors.New("degenerate quantiles: duplicate bin boundaries")
	ErrLabelCountMismatch = errors.New("label count does not match bin count")
	ErrInvalidBoundary    = errors.New("boundaries must be strictly increasing")
	ErrInvalidCount       = errors.New("bin count must be positive")
)
