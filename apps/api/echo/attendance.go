package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/chamada/core/attendance"
)

type (
	SetStatusRequest struct {
		Status string `json:"status" validate:"required,attendance_status"`
	}

	SetPresenceRequest struct {
		Present *bool `json:"present" validate:"required"`
	}

	SetJustificationRequest struct {
		Justified *bool `json:"justified" validate:"required"`
	}

	attendanceApi struct {
		session  *attendance.Session
		validate *validator.Validate
	}
)

func registerAttendanceAPI(g *echo.Group, session *attendance.Session, validate *validator.Validate) {
	api := attendanceApi{
		session:  session,
		validate: validate,
	}

	ag := g.Group("/attendance")
	ag.GET("", api.list)

	// cell endpoints
	cg := ag.Group("/:date/:studentID")
	cg.PUT("", api.setStatus)
	cg.PUT("/presence", api.setPresence)
	cg.PUT("/justification", api.setJustification)

	g.GET("/calendar", api.calendar)
	g.GET("/stats", api.stats)
}

// Handlers

func (api *attendanceApi) list(ctx echo.Context) error {
	date, err := bindQueryDate(ctx, api.session.SelectedDate())
	if err != nil {
		return err
	}
	if err = api.session.OnDateChange(date); err != nil {
		return errors.Wrap(err, "changing date")
	}
	list, err := api.session.List(date)
	if err != nil {
		return errors.Wrap(err, "listing attendance")
	}
	return ctx.JSON(http.StatusOK, list)
}

func (api *attendanceApi) setStatus(ctx echo.Context) error {
	date, err := bindPathDate(ctx)
	if err != nil {
		return err
	}
	var data SetStatusRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SetStatusRequest")
	}
	if err = api.validate.Struct(data); err != nil {
		return err
	}
	status, err := attendance.ParseStatus(data.Status)
	if err != nil {
		return fieldError("status", err)
	}

	n, err := api.session.SetStatus(ctx.Param(studentIDParam), date, status)
	if err != nil {
		return errors.Wrap(err, "setting status")
	}
	return ctx.JSON(http.StatusOK, n)
}

func (api *attendanceApi) setPresence(ctx echo.Context) error {
	date, err := bindPathDate(ctx)
	if err != nil {
		return err
	}
	var data SetPresenceRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SetPresenceRequest")
	}
	if err = api.validate.Struct(data); err != nil {
		return err
	}

	id := ctx.Param(studentIDParam)
	status := api.session.SetAttendance(id, date, *data.Present)
	return ctx.JSON(http.StatusOK, attendance.Record{StudentID: id, Date: date, Status: status})
}

func (api *attendanceApi) setJustification(ctx echo.Context) error {
	date, err := bindPathDate(ctx)
	if err != nil {
		return err
	}
	var data SetJustificationRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SetJustificationRequest")
	}
	if err = api.validate.Struct(data); err != nil {
		return err
	}

	id := ctx.Param(studentIDParam)
	status := api.session.SetJustified(id, date, *data.Justified)
	return ctx.JSON(http.StatusOK, attendance.Record{StudentID: id, Date: date, Status: status})
}

func (api *attendanceApi) calendar(ctx echo.Context) error {
	rng, err := bindQueryRange(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.session.Calendar(rng))
}

func (api *attendanceApi) stats(ctx echo.Context) error {
	rng, err := bindQueryRange(ctx)
	if err != nil {
		return err
	}
	if rng == nil {
		day := attendance.SingleDay(api.session.SelectedDate())
		rng = &day
	}
	rep, err := api.session.Stats(*rng)
	if err != nil {
		return errors.Wrap(err, "computing stats")
	}
	return ctx.JSON(http.StatusOK, rep)
}
