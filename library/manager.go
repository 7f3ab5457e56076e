package library

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"library-desk/internal/validator"
)

// LibraryManager is the session state behind the desk: the catalog, the
// activity log and the librarian who performs administrative changes.
type LibraryManager struct {
	lib      *Library
	activity *ActivityLog
	desk     *Librarian
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a LibraryManager.
type Option func(*LibraryManager)

// WithLogger sets the diagnostic logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(lm *LibraryManager) { lm.logger = logger }
}

// WithClock sets the clock used to timestamp activity entries.
func WithClock(now func() time.Time) Option {
	return func(lm *LibraryManager) { lm.now = now }
}

// WithDeskLibrarian sets the librarian on duty.
func WithDeskLibrarian(lb *Librarian) Option {
	return func(lm *LibraryManager) { lm.desk = lb }
}

// NewLibraryManager starts a session with an empty catalog.
func NewLibraryManager(opts ...Option) (*LibraryManager, error) {
	lm := &LibraryManager{
		lib:    NewLibrary(),
		desk:   NewLibrarian("Front Desk", 30, "n/a", "LIB-0"),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(lm)
	}

	activity, err := OpenActivityLog(lm.now)
	if err != nil {
		return nil, err
	}
	lm.activity = activity
	lm.logger = lm.logger.With("session", activity.Session())

	if out := lm.lib.RegisterLibrarian(lm.desk); !out.OK() {
		activity.Close()
		return nil, fmt.Errorf("register desk librarian: %w", out.Err)
	}
	lm.logger.Debug("session started", "librarian", lm.desk.Name, "employee_id", lm.desk.EmployeeID)
	return lm, nil
}

// Close ends the session and discards the activity log.
func (lm *LibraryManager) Close() error {
	lm.logger.Debug("session closed")
	return lm.activity.Close()
}

// Library exposes the catalog for read access.
func (lm *LibraryManager) Library() *Library { return lm.lib }

// Desk returns the librarian on duty.
func (lm *LibraryManager) Desk() *Librarian { return lm.desk }

// record writes the outcome to the activity log and the diagnostic logger.
func (lm *LibraryManager) record(op string, out Outcome) Outcome {
	if _, err := lm.activity.Record(out.Message, out.OK()); err != nil {
		lm.logger.Error("activity log write failed", "op", op, "err", err)
	}
	if out.OK() {
		lm.logger.Info(out.Message, "op", op)
	} else {
		lm.logger.Warn(out.Message, "op", op, "err", out.Err)
	}
	return out
}

// check validates in and returns the failed outcome to report, if any.
func check(in any) (Outcome, bool) {
	if err := validator.Struct(in); err != nil {
		return failed(ErrInvalidInput, "Please fill all fields: %s.", err), false
	}
	return Outcome{}, true
}

// ------------------ Book helpers ------------------

func (lm *LibraryManager) AddBook(id, title, author string) Outcome {
	in := BookInput{ID: id, Title: title, Author: author}.trimmed()
	if out, ok := check(in); !ok {
		return lm.record("add_book", out)
	}
	return lm.record("add_book", lm.desk.AddBook(NewBook(in.ID, in.Title, in.Author), lm.lib))
}

func (lm *LibraryManager) RemoveBook(id string) Outcome {
	return lm.record("remove_book", lm.desk.RemoveBook(strings.TrimSpace(id), lm.lib))
}

// CheckAvailability reports whether a single book can be borrowed. It is a
// read and is not written to the activity log.
func (lm *LibraryManager) CheckAvailability(bookID string) Outcome {
	bookID = strings.TrimSpace(bookID)
	b := lm.lib.FindBook(bookID)
	if b == nil {
		return failed(ErrNotFound, "No book with ID %s found.", bookID)
	}
	if b.CheckAvailability() {
		return succeeded("'%s' is available.", b.Title)
	}
	if holder := lm.lib.Holder(b.ID); holder != nil {
		return succeeded("'%s' is borrowed by %s.", b.Title, holder.Name)
	}
	return succeeded("'%s' is borrowed.", b.Title)
}

func (lm *LibraryManager) DisplayBooks() []string { return lm.lib.DisplayBooks() }

// ------------------ Member helpers ------------------

func (lm *LibraryManager) AddMember(id, name string, age int, contact string) Outcome {
	in := PersonInput{ID: id, Name: name, Age: age, Contact: contact}.trimmed()
	if out, ok := check(in); !ok {
		return lm.record("add_member", out)
	}
	return lm.record("add_member", lm.desk.AddMember(NewMember(in.Name, in.Age, in.Contact, in.ID), lm.lib))
}

func (lm *LibraryManager) RemoveMember(id string) Outcome {
	return lm.record("remove_member", lm.desk.RemoveMember(strings.TrimSpace(id), lm.lib))
}

// UpdateContact changes a member's contact number.
func (lm *LibraryManager) UpdateContact(memberID, contact string) Outcome {
	memberID, contact = strings.TrimSpace(memberID), strings.TrimSpace(contact)
	m := lm.lib.FindMember(memberID)
	if m == nil {
		return lm.record("update_contact", failed(ErrNotFound, "No member with ID %s.", memberID))
	}
	if contact == "" {
		return lm.record("update_contact", failed(ErrInvalidInput, "Please fill all fields: contact must be provided."))
	}
	return lm.record("update_contact", succeeded("%s: %s", m.Name, m.UpdateContact(contact)))
}

// BorrowedBooks lists what a member currently holds. Not logged.
func (lm *LibraryManager) BorrowedBooks(memberID string) Outcome {
	memberID = strings.TrimSpace(memberID)
	m := lm.lib.FindMember(memberID)
	if m == nil {
		return failed(ErrNotFound, "No member with ID %s.", memberID)
	}
	return succeeded("%s", m.ViewBorrowedBooks(lm.lib))
}

func (lm *LibraryManager) DisplayMembers() []string { return lm.lib.DisplayMembers() }

// AddLibrarian puts another librarian on the staff list. Librarians follow
// the same field rules as members.
func (lm *LibraryManager) AddLibrarian(employeeID, name string, age int, contact string) Outcome {
	in := PersonInput{ID: employeeID, Name: name, Age: age, Contact: contact}.trimmed()
	if out, ok := check(in); !ok {
		return lm.record("add_librarian", out)
	}
	return lm.record("add_librarian", lm.lib.RegisterLibrarian(NewLibrarian(in.Name, in.Age, in.Contact, in.ID)))
}

// Librarians renders the staff list.
func (lm *LibraryManager) Librarians() []string {
	var lines []string
	for _, lb := range lm.lib.Librarians() {
		lines = append(lines, fmt.Sprintf("%s (Employee ID: %s)", lb.GetDetails(), lb.EmployeeID))
	}
	return lines
}

// ------------------ Circulation ------------------

func (lm *LibraryManager) LendBook(bookID, memberID string) Outcome {
	return lm.record("lend_book", lm.lib.LendBook(strings.TrimSpace(bookID), strings.TrimSpace(memberID)))
}

func (lm *LibraryManager) ReturnBook(bookID, memberID string) Outcome {
	return lm.record("return_book", lm.lib.ReturnBook(strings.TrimSpace(bookID), strings.TrimSpace(memberID)))
}

// ------------------ Activity ------------------

// Activity returns the formatted activity log, most recent first.
func (lm *LibraryManager) Activity(layout string) ([]string, error) {
	entries, err := lm.activity.Entries()
	if err != nil {
		return nil, fmt.Errorf("read activity log: %w", err)
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Format(layout))
	}
	return lines, nil
}

// ------------------ Fixtures ------------------

// ApplyFixture adds everything in f through the usual operations and returns
// one outcome per item, librarians first, then books, then members.
func (lm *LibraryManager) ApplyFixture(f *Fixture) []Outcome {
	var outcomes []Outcome
	for _, p := range f.Librarians {
		outcomes = append(outcomes, lm.AddLibrarian(p.ID, p.Name, p.Age, p.Contact))
	}
	for _, b := range f.Books {
		outcomes = append(outcomes, lm.AddBook(b.ID, b.Title, b.Author))
	}
	for _, p := range f.Members {
		outcomes = append(outcomes, lm.AddMember(p.ID, p.Name, p.Age, p.Contact))
	}
	return outcomes
}

// LoadFixture reads the fixture at path (relative paths resolve from cwd) and
// applies it.
func (lm *LibraryManager) LoadFixture(path string) ([]Outcome, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("fixture path cannot be empty")
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fixture, err := DecodeFixture(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	outcomes := lm.ApplyFixture(fixture)
	lm.logger.Info("fixture loaded", "path", path, "items", len(outcomes))
	return outcomes, nil
}
