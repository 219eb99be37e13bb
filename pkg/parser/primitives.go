package parser

import (
	"fmt"
	"math"
	"time"

	"github.com/ib-77/ropparse/pkg/rop"
	"github.com/ib-77/ropparse/pkg/value"
)

var String = New(func(in value.Value) rop.Result[string] {
	if s, ok := in.AsString(); ok {
		return rop.Success(s)
	}
	return rop.Fail[string](newError(ErrWrongKind, in,
		fmt.Sprintf("Unable to parse %s as a string", in)))
})

// Number accepts any number except NaN.
var Number = New(func(in value.Value) rop.Result[float64] {
	if n, ok := in.AsNumber(); ok && !math.IsNaN(n) {
		return rop.Success(n)
	}
	return rop.Fail[float64](newError(ErrWrongKind, in,
		fmt.Sprintf("Unable to parse %s as a number", in)))
})

var Bool = New(func(in value.Value) rop.Result[bool] {
	if b, ok := in.AsBool(); ok {
		return rop.Success(b)
	}
	return rop.Fail[bool](newError(ErrWrongKind, in,
		fmt.Sprintf("Unable to parse %s as a boolean", in)))
})

// Int accepts numbers without a fractional part that fit in an int.
var Int = New(func(in value.Value) rop.Result[int] {
	n, ok := in.AsNumber()
	if ok && n == math.Trunc(n) && n >= math.MinInt64 && n < math.MaxInt64 {
		return rop.Success(int(n))
	}
	return rop.Fail[int](newError(ErrWrongKind, in,
		fmt.Sprintf("Unable to parse %s as an integer", in)))
})

// maxDateMillis bounds epoch milliseconds to 100,000,000 days either side of
// the epoch.
const maxDateMillis = 8.64e15

// DateLayouts are tried in order when Date parses a string.
var DateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
}

// Date accepts epoch milliseconds within 8.64e15 of the epoch, strings in one
// of DateLayouts and time values.
var Date = New(func(in value.Value) rop.Result[time.Time] {
	switch in.Kind() {
	case value.KindTime:
		t, _ := in.AsTime()
		return rop.Success(t)
	case value.KindNumber:
		n, _ := in.AsNumber()
		if math.IsNaN(n) || math.Abs(n) > maxDateMillis {
			return rop.Fail[time.Time](newError(ErrInvalidDate, in,
				fmt.Sprintf("%s isn't a valid Date", in)))
		}
		return rop.Success(time.UnixMilli(int64(n)).UTC())
	case value.KindString:
		s, _ := in.AsString()
		for _, layout := range DateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return rop.Success(t)
			}
		}
		return rop.Fail[time.Time](newError(ErrInvalidDate, in,
			fmt.Sprintf("%s isn't a valid Date", in)))
	}
	return rop.Fail[time.Time](newError(ErrWrongKind, in,
		fmt.Sprintf("Can't transform %s into a date", in)))
})
