package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/chamada/core/attendance"
	"github.com/trezcool/chamada/core/student"
)

type studentApi struct {
	session *attendance.Session
}

func registerStudentAPI(g *echo.Group, session *attendance.Session) {
	api := studentApi{session: session}

	sg := g.Group("/students")
	sg.GET("", api.query)
	sg.POST("", api.create)
}

func (api *studentApi) query(ctx echo.Context) error {
	students, err := api.session.Students()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	std, err := api.session.AddStudent(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, std)
}
