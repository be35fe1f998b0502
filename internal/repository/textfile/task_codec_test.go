package textfile

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sampleTask() domain.Task {
	return domain.Task{
		Title:        "Write report",
		Username:     "alice",
		Description:  "Finish quarterly summary",
		AssignedDate: date(2025, time.December, 1),
		DueDate:      date(2025, time.December, 31),
		Completed:    false,
	}
}

func TestEncodeTasks_SingleBlock(t *testing.T) {
	encoded := EncodeTasks([]domain.Task{sampleTask()})

	expected := strings.Join([]string{
		SeparatorLine,
		"Task:               Write report",
		"Assigned to:        alice",
		"Date Assigned:      01-12-2025",
		"Due Date:           31-12-2025",
		"Completed:          No",
		"Task Description:   ",
		"Finish quarterly summary",
		SeparatorLine,
	}, "\n")

	assert.Equal(t, expected, encoded)
}

func TestEncodeTasks_Framing(t *testing.T) {
	t.Run("empty collection encodes to empty string", func(t *testing.T) {
		assert.Equal(t, "", EncodeTasks(nil))
	})

	t.Run("file ends on separator without trailing newline", func(t *testing.T) {
		encoded := EncodeTasks([]domain.Task{sampleTask()})
		assert.True(t, strings.HasSuffix(encoded, SeparatorLine))
		assert.False(t, strings.HasSuffix(encoded, "\n"))
	})

	t.Run("blocks joined by single newline", func(t *testing.T) {
		second := sampleTask()
		second.Title = "Fix bug"
		second.Completed = true

		encoded := EncodeTasks([]domain.Task{sampleTask(), second})

		// Closing separator of one block meets the opening separator of
		// the next across exactly one newline
		assert.Contains(t, encoded, SeparatorLine+"\n"+SeparatorLine)
		assert.Equal(t, 4, strings.Count(encoded, SeparatorLine))
	})
}

func TestDecodeTasks_RoundTrip(t *testing.T) {
	second := sampleTask()
	second.Title = "Fix bug"
	second.Username = "bob"
	second.Description = "Crash on startup"
	second.Completed = true

	third := sampleTask()
	third.Title = "Review PR"
	third.DueDate = date(2026, time.January, 15)

	original := []domain.Task{sampleTask(), second, third}
	decoded := DecodeTasks(EncodeTasks(original))

	require.Len(t, decoded, 3)
	for i := range original {
		assert.True(t, decoded[i].Equal(original[i]), "task %d should survive the round trip", i)
	}
}

func TestDecodeTasks_PartialBlockDropped(t *testing.T) {
	completed := sampleTask()
	completed.Completed = true
	incomplete := sampleTask()
	incomplete.Title = "Fix bug"

	encoded := EncodeTasks([]domain.Task{completed, incomplete})
	// Strip the Completed field from the second block
	broken := strings.Replace(encoded, "Completed:          No\n", "", 1)

	decoded := DecodeTasks(broken)

	require.Len(t, decoded, 1)
	assert.Equal(t, "Write report", decoded[0].Title)
	assert.True(t, decoded[0].Completed)
}

func TestDecodeTasks_LegacyLines(t *testing.T) {
	t.Run("semicolon records with ISO dates", func(t *testing.T) {
		content := "alice;Write report;Finish quarterly summary;2025-12-31;2025-12-01;No"

		decoded := DecodeTasks(content)

		require.Len(t, decoded, 1)
		assert.Equal(t, "alice", decoded[0].Username)
		assert.Equal(t, "Write report", decoded[0].Title)
		assert.Equal(t, "Finish quarterly summary", decoded[0].Description)
		assert.True(t, domain.SameDay(date(2025, time.December, 31), decoded[0].DueDate))
		assert.True(t, domain.SameDay(date(2025, time.December, 1), decoded[0].AssignedDate))
		assert.False(t, decoded[0].Completed)
	})

	t.Run("mixed date formats across lines", func(t *testing.T) {
		content := strings.Join([]string{
			"alice;Write report;Finish quarterly summary;2025-12-31;2025-12-01;No",
			"bob;Fix bug;Crash on startup;31-12-2025;01-12-2025;Yes",
		}, "\n")

		decoded := DecodeTasks(content)

		require.Len(t, decoded, 2)
		assert.True(t, domain.SameDay(decoded[0].DueDate, decoded[1].DueDate))
		assert.True(t, decoded[1].Completed)
	})

	t.Run("wrong field count skips the line only", func(t *testing.T) {
		content := strings.Join([]string{
			"alice;Write report;2025-12-31;2025-12-01;No",
			"bob;Fix bug;Crash on startup;2025-12-31;2025-12-01;Yes",
		}, "\n")

		decoded := DecodeTasks(content)

		require.Len(t, decoded, 1)
		assert.Equal(t, "bob", decoded[0].Username)
	})
}

func TestDecodeTasks_ResolvesToEmpty(t *testing.T) {
	t.Run("empty content", func(t *testing.T) {
		assert.Empty(t, DecodeTasks(""))
	})

	t.Run("whitespace only", func(t *testing.T) {
		assert.Empty(t, DecodeTasks("   \n\n  \n"))
	})

	t.Run("malformed date fails both strategies", func(t *testing.T) {
		encoded := EncodeTasks([]domain.Task{sampleTask()})
		broken := strings.Replace(encoded, "31-12-2025", "not-a-date", 1)

		assert.Empty(t, DecodeTasks(broken))
	})

	t.Run("unrecognized prose", func(t *testing.T) {
		assert.Empty(t, DecodeTasks("this file holds no tasks\njust some notes"))
	})
}

func TestDecodeTasks_BlockFormatPreferred(t *testing.T) {
	// A description containing semicolons must not be mistaken for a
	// legacy record
	task := sampleTask()
	task.Description = "a;b;c;d;e;f"

	decoded := DecodeTasks(EncodeTasks([]domain.Task{task}))

	require.Len(t, decoded, 1)
	assert.Equal(t, "a;b;c;d;e;f", decoded[0].Description)
}
