package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/chamada/core/attendance"
)

var (
	dateParam      = "date"
	studentIDParam = "studentID"
	fromParam      = "from"
	toParam        = "to"
)

// bindPathDate reads the `:date` path parameter.
func bindPathDate(ctx echo.Context) (attendance.DateKey, error) {
	date, err := attendance.ParseDateKey(ctx.Param(dateParam))
	if err != nil {
		return "", fieldError(dateParam, err)
	}
	return date, nil
}

// bindQueryDate reads the `date` query parameter, `def` when absent.
func bindQueryDate(ctx echo.Context, def attendance.DateKey) (attendance.DateKey, error) {
	val := ctx.QueryParam(dateParam)
	if val == "" {
		return def, nil
	}
	date, err := attendance.ParseDateKey(val)
	if err != nil {
		return "", fieldError(dateParam, err)
	}
	return date, nil
}

// bindQueryRange reads the `from` & `to` query parameters. A missing bound takes the value of
// the other one; nil is returned when both are missing.
func bindQueryRange(ctx echo.Context) (*attendance.DateRange, error) {
	fromVal, toVal := ctx.QueryParam(fromParam), ctx.QueryParam(toParam)
	if fromVal == "" && toVal == "" {
		return nil, nil
	}
	if fromVal == "" {
		fromVal = toVal
	} else if toVal == "" {
		toVal = fromVal
	}

	from, err := attendance.ParseDateKey(fromVal)
	if err != nil {
		return nil, fieldError(fromParam, err)
	}
	to, err := attendance.ParseDateKey(toVal)
	if err != nil {
		return nil, fieldError(toParam, err)
	}
	rng, err := attendance.NewDateRange(from, to)
	if err != nil {
		return nil, fieldError(toParam, err)
	}
	return &rng, nil
}
