package notifysvc

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/trezcool/chamada/core/attendance"
)

type consoleService struct {
	out    io.Writer
	prefix string

	mu   sync.Mutex
	sent []attendance.Notification
}

// ConsoleService prints notifications instead of pushing them to a front-end,
// and keeps the ones it sent.
type ConsoleService interface {
	attendance.Notifier
	Sent() []attendance.Notification
}

var _ ConsoleService = (*consoleService)(nil)

func NewConsoleService(appName string) ConsoleService {
	return &consoleService{out: os.Stdout, prefix: "[" + appName + "] "}
}

// NewConsoleServiceMock does not print anything.
func NewConsoleServiceMock() ConsoleService {
	return &consoleService{out: io.Discard}
}

func (svc *consoleService) Notify(n attendance.Notification) {
	svc.mu.Lock()
	svc.sent = append(svc.sent, n)
	svc.mu.Unlock()

	_, _ = fmt.Fprintf(svc.out, "%s %s%s", time.Now().Format(time.RFC3339), svc.prefix, n.Message)
	if n.Description != "" {
		_, _ = fmt.Fprintf(svc.out, " (%s)", n.Description)
	}
	_, _ = fmt.Fprintln(svc.out)
}

func (svc *consoleService) Sent() []attendance.Notification {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	sent := make([]attendance.Notification, len(svc.sent))
	copy(sent, svc.sent)
	return sent
}
