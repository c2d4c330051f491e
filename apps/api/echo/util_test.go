package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/chamada/apps/api/echo"
	"github.com/trezcool/chamada/core"
	"github.com/trezcool/chamada/core/attendance"
	logsvc "github.com/trezcool/chamada/services/logger"
	notifysvc "github.com/trezcool/chamada/services/notify"
	inmemdb "github.com/trezcool/chamada/storage/inmem"
)

const today = attendance.DateKey("2024-03-10")

type testApp struct {
	Server
	session  *attendance.Session
	notifier notifysvc.ConsoleService
}

func setup(t *testing.T) testApp {
	// set up roster
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	roster := inmemdb.NewStudentRepository(db)
	if err = inmemdb.Seed(roster); err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	// set up services
	validate := validator.New()
	translator := core.NewTranslator(core.LocalePTBR)
	core.InitValidators(validate, translator)
	attendance.InitValidators(validate, translator)
	if err = attendance.RegisterMessages(translator); err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	logger := logsvc.NewDiscardLogger()
	notifier := notifysvc.NewConsoleServiceMock()
	session := attendance.NewSession(
		attendance.SessionDeps{
			Roster:     roster,
			Notifier:   notifier,
			Logger:     logger,
			Validate:   validate,
			Translator: translator,
		},
		today,
	)

	// set up server
	srv := NewServer(
		&Deps{
			Conf:           &core.Config{AppName: "Chamada", TestMode: true},
			Logger:         logger,
			Session:        session,
			Validate:       validate,
			Translator:     translator,
			DisableReqLogs: true,
		},
	)
	return testApp{Server: srv, session: session, notifier: notifier}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, tt.wantCode, rec.Code, "code")
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app testApp, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newRequest(method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
