package library

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, opts ...Option) *LibraryManager {
	t.Helper()
	opts = append([]Option{WithClock(fakeClock())}, opts...)
	mgr, err := NewLibraryManager(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { mgr.Close() })
	return mgr
}

func TestManagerSession(t *testing.T) {
	mgr := newManager(t)

	require.True(t, mgr.AddBook("B1", "Dune", "Herbert").OK())
	require.True(t, mgr.AddMember("M1", "Alice", 30, "555-0001").OK())

	out := mgr.LendBook("B1", "M1")
	assert.Equal(t, "Alice borrowed Dune", out.Message)
	assert.Equal(t, "'Dune' is borrowed by Alice.", mgr.CheckAvailability("B1").Message)
	assert.Equal(t, "Dune", mgr.BorrowedBooks("M1").Message)

	out = mgr.LendBook("B1", "M1")
	assert.ErrorIs(t, out.Err, ErrUnavailable)

	out = mgr.ReturnBook("B1", "M1")
	assert.Equal(t, "Alice returned Dune", out.Message)
	assert.Equal(t, "'Dune' is available.", mgr.CheckAvailability("B1").Message)
	assert.Equal(t, "No borrowed books.", mgr.BorrowedBooks("M1").Message)

	lines, err := mgr.Activity("15:04:05")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"[09:04:00] Alice returned Dune",
		"[09:03:00] Dune is not available",
		"[09:02:00] Alice borrowed Dune",
		"[09:01:00] Member 'Alice' added.",
		"[09:00:00] Book 'Dune' added.",
	}, lines)
}

func TestManagerQueriesAreNotLogged(t *testing.T) {
	mgr := newManager(t)
	require.True(t, mgr.AddBook("B1", "Dune", "Herbert").OK())

	mgr.CheckAvailability("B1")
	mgr.CheckAvailability("B9")
	mgr.BorrowedBooks("M9")
	mgr.DisplayBooks()
	mgr.DisplayMembers()

	lines, err := mgr.Activity("15:04:05")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestManagerValidation(t *testing.T) {
	tests := []struct {
		name string
		run  func(*LibraryManager) Outcome
		want string
	}{
		{
			name: "book without title",
			run:  func(m *LibraryManager) Outcome { return m.AddBook("B1", "  ", "Herbert") },
			want: "title must be provided",
		},
		{
			name: "book without id or author",
			run:  func(m *LibraryManager) Outcome { return m.AddBook("", "Dune", "") },
			want: "author must be provided; id must be provided",
		},
		{
			name: "member with zero age",
			run:  func(m *LibraryManager) Outcome { return m.AddMember("M1", "Alice", 0, "555") },
			want: "age must be at least 1",
		},
		{
			name: "member without contact",
			run:  func(m *LibraryManager) Outcome { return m.AddMember("M1", "Alice", 30, "") },
			want: "contact must be provided",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := newManager(t)
			out := tt.run(mgr)
			assert.ErrorIs(t, out.Err, ErrInvalidInput)
			assert.Contains(t, out.Message, tt.want)
			assert.Zero(t, mgr.Library().BookCount())
			assert.Zero(t, mgr.Library().MemberCount())
		})
	}
}

func TestManagerTrimsInput(t *testing.T) {
	mgr := newManager(t)
	require.True(t, mgr.AddBook(" B1 ", " Dune ", " Herbert ").OK())
	require.True(t, mgr.AddMember(" M1", "Alice ", 30, " 555").OK())

	assert.True(t, mgr.LendBook("B1 ", " M1").OK())
	assert.Equal(t, "Dune", mgr.Library().FindBook("B1").Title)
}

func TestManagerUpdateContact(t *testing.T) {
	mgr := newManager(t)
	require.True(t, mgr.AddMember("M1", "Alice", 30, "555-0001").OK())

	out := mgr.UpdateContact("M1", "555-9999")
	assert.Equal(t, "Alice: Updated Contact Number: 555-9999", out.Message)
	assert.Equal(t, "555-9999", mgr.Library().FindMember("M1").ContactNumber)

	assert.ErrorIs(t, mgr.UpdateContact("M9", "1").Err, ErrNotFound)
	assert.ErrorIs(t, mgr.UpdateContact("M1", " ").Err, ErrInvalidInput)
	assert.Equal(t, "555-9999", mgr.Library().FindMember("M1").ContactNumber)
}

func TestManagerRemovals(t *testing.T) {
	mgr := newManager(t)
	require.True(t, mgr.AddBook("B1", "Dune", "Herbert").OK())
	require.True(t, mgr.AddMember("M1", "Alice", 30, "555-0001").OK())
	require.True(t, mgr.LendBook("B1", "M1").OK())

	assert.ErrorIs(t, mgr.RemoveBook("B1").Err, ErrStillBorrowed)
	assert.ErrorIs(t, mgr.RemoveMember("M1").Err, ErrHoldsBooks)
	assert.ErrorIs(t, mgr.RemoveBook("B9").Err, ErrNotFound)

	require.True(t, mgr.ReturnBook("B1", "M1").OK())
	assert.Equal(t, "Book 'Dune' removed.", mgr.RemoveBook("B1").Message)
	assert.Equal(t, "Member 'Alice' removed.", mgr.RemoveMember("M1").Message)
}

func TestManagerDeskLibrarian(t *testing.T) {
	mgr := newManager(t, WithDeskLibrarian(NewLibrarian("Rita", 41, "555-0100", "E1")))
	assert.Equal(t, "Rita", mgr.Desk().Name)
	assert.Equal(t, []string{"Name: Rita, Age: 41, Contact: 555-0100 (Employee ID: E1)"}, mgr.Librarians())
}

func TestManagerAddLibrarian(t *testing.T) {
	mgr := newManager(t)

	out := mgr.AddLibrarian(" E2 ", "Sam", 33, "555-0200")
	require.True(t, out.OK(), out.Message)
	assert.Equal(t, "Librarian 'Sam' registered.", out.Message)

	out = mgr.AddLibrarian("E3", "Kim", 29, "  ")
	assert.ErrorIs(t, out.Err, ErrInvalidInput)
	assert.Equal(t, "Please fill all fields: contact must be provided.", out.Message)

	out = mgr.AddLibrarian("E2", "Sam", 33, "555-0200")
	assert.ErrorIs(t, out.Err, ErrDuplicateID)

	assert.Equal(t, []string{
		"Name: Front Desk, Age: 30, Contact: n/a (Employee ID: LIB-0)",
		"Name: Sam, Age: 33, Contact: 555-0200 (Employee ID: E2)",
	}, mgr.Librarians())

	logs, err := mgr.Activity("15:04:05")
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}

func TestManagerLogsOutcomes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	mgr := newManager(t, WithLogger(logger))

	mgr.AddBook("B1", "Dune", "Herbert")
	mgr.LendBook("B1", "M9")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "op=add_book")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "op=lend_book")
	assert.Contains(t, out, "session=")
}

func TestLoadFixture(t *testing.T) {
	mgr := newManager(t)

	outcomes, err := mgr.LoadFixture(filepath.Join("testdata", "seed.json"))
	require.NoError(t, err)
	require.Len(t, outcomes, 6)
	for _, out := range outcomes {
		assert.True(t, out.OK(), out.Message)
	}

	assert.Equal(t, 3, mgr.Library().BookCount())
	assert.Equal(t, 2, mgr.Library().MemberCount())
	assert.Len(t, mgr.Library().Librarians(), 2)
	assert.Equal(t, "Frank Herbert", mgr.Library().FindBook("B1").Author)
}

func TestLoadFixtureRejects(t *testing.T) {
	mgr := newManager(t)

	outcomes, err := mgr.LoadFixture(filepath.Join("testdata", "rejects.json"))
	require.NoError(t, err)
	require.Len(t, outcomes, 5)

	assert.ErrorIs(t, outcomes[0].Err, ErrInvalidInput)
	assert.Equal(t, "Please fill all fields: contact must be provided.", outcomes[0].Message)
	assert.True(t, outcomes[1].OK())
	assert.ErrorIs(t, outcomes[2].Err, ErrDuplicateID)
	assert.ErrorIs(t, outcomes[3].Err, ErrInvalidInput)
	assert.ErrorIs(t, outcomes[4].Err, ErrInvalidInput)
	assert.Equal(t, "Dune", mgr.Library().FindBook("B1").Title)
	assert.Len(t, mgr.Library().Librarians(), 1)
}

func TestLoadFixtureErrors(t *testing.T) {
	mgr := newManager(t)

	_, err := mgr.LoadFixture("")
	assert.Error(t, err)

	_, err = mgr.LoadFixture(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"books": [`), 0o644))
	_, err = mgr.LoadFixture(bad)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "decode fixture"), err.Error())
}
