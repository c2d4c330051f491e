package logsvc

import "github.com/trezcool/chamada/core"

type discardLogger struct{}

var _ core.Logger = discardLogger{}

// NewDiscardLogger returns a logger that drops everything but Fatal; for tests.
func NewDiscardLogger() core.Logger { return discardLogger{} }

func (discardLogger) Debug(string, ...interface{}) {}
func (discardLogger) Info(string, ...interface{})  {}
func (discardLogger) Warn(string, ...interface{})  {}
func (discardLogger) Error(string, ...interface{}) {}
func (discardLogger) Fatal(msg string, _ ...interface{}) {
	panic(msg)
}
