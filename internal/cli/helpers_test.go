package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"taskman/internal/config"
	"taskman/internal/domain"
)

// newTestApp builds an App over a mock BusinessAPI with scripted input.
// Output accumulates in the returned buffer.
func newTestApp(t *testing.T, input string) (*App, *mockBusinessAPI, *bytes.Buffer) {
	t.Helper()
	mockAPI := newMockBusinessAPI()
	out := &bytes.Buffer{}
	app := NewAppWithIO(mockAPI, config.NewConfig(), strings.NewReader(input), out)
	return app, mockAPI, out
}

func testTask(title, username string, completed bool) domain.Task {
	return domain.Task{
		Title:        title,
		Username:     username,
		Description:  "some work",
		AssignedDate: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		Completed:    completed,
	}
}
