package util

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Is matches the error code, so errors.Is(err, ErrOutOfRange) holds for every error wrapped with that code.
func (e *Error) Is(target error) bool {
	return e.code != nil && e.code == target
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrOutOfRange          = errors.New("index out of range")
	ErrResource            = errors.New("resource unavailable or malformed")
	ErrInternalServerError = errors.New("internal Server Error")
	ErrNotFound            = errors.New("your requested Item is not found")
	ErrBadParamInput       = errors.New("given Param is not valid")
)

var MessageInternalServerError string = "internal server error"

func DegreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func RadiansToDegree(rad float64) float64 {
	return 180.0 * rad / math.Pi
}

func ReverseG[T any](arr []T) []T {
	copyArr := make([]T, len(arr)) // should do on the copy )
	copy(copyArr, arr)
	for i, j := 0, len(copyArr)-1; i < j; i, j = i+1, j-1 {
		copyArr[i], copyArr[j] = copyArr[j], copyArr[i]
	}
	return copyArr
}

func StopConcurrentOperation(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// CeilDiv. ceil(x/y) for x >= 0 and y > 0.
func CeilDiv(x, y int) (int, error) {
	if x < 0 || y <= 0 {
		return 0, WrapErrorf(nil, ErrInvalidArgument, "ceilDiv needs x >= 0 and y > 0, got x=%d y=%d", x, y)
	}
	return (x + y - 1) / y, nil
}

// Interpolate. value at x of the line through (0, y0) and (1, y1).
func Interpolate(y0, y1, x float64) float64 {
	return math.FMA(y1-y0, x, y0)
}

// Clamp restricts v to [min, max]. min must not be greater than max.
func Clamp[T constraints.Integer | constraints.Float](min, v, max T) T {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
