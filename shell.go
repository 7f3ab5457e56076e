package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"library-desk/library"
)

var commands = []struct{ name, help string }{
	{"add book", "add a book to the catalog"},
	{"remove book", "remove a book from the catalog"},
	{"add member", "register a member"},
	{"remove member", "deregister a member"},
	{"borrow", "lend a book to a member"},
	{"return", "take a book back from a member"},
	{"availability", "check whether a book can be borrowed"},
	{"borrowed", "list the books a member holds"},
	{"update contact", "change a member's contact number"},
	{"show books", "list all books"},
	{"show members", "list all members"},
	{"show librarians", "list the staff"},
	{"logs", "show the activity log, newest first"},
	{"help", "show this list"},
	{"exit", "leave the desk"},
}

// shell reads one command per line and prompts for its fields. Prompts and
// the banner are only written when a person is typing.
type shell struct {
	sc          *bufio.Scanner
	out         io.Writer
	mgr         *library.LibraryManager
	interactive bool
	timeLayout  string
}

func newShell(in io.Reader, out io.Writer, mgr *library.LibraryManager, interactive bool, timeLayout string) *shell {
	return &shell{
		sc:          bufio.NewScanner(in),
		out:         out,
		mgr:         mgr,
		interactive: interactive,
		timeLayout:  timeLayout,
	}
}

func (s *shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// ask prompts for a field and returns the trimmed answer. ok is false once
// input is exhausted.
func (s *shell) ask(label string) (string, bool) {
	if s.interactive {
		s.printf("%s: ", label)
	}
	if !s.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.sc.Text()), true
}

func (s *shell) run() error {
	if s.interactive {
		s.printf("Welcome to the Library Desk! On duty: %s.\n", s.mgr.Desk().Name)
		s.printHelp()
	}

	for {
		if s.interactive {
			s.printf("\n> ")
		}
		if !s.sc.Scan() {
			break
		}
		cmd := strings.ToLower(strings.Join(strings.Fields(s.sc.Text()), " "))

		switch cmd {
		case "":
			continue
		case "add book":
			s.handleAddBook()
		case "remove book":
			s.handleRemoveBook()
		case "add member":
			s.handleAddMember()
		case "remove member":
			s.handleRemoveMember()
		case "borrow":
			s.handleBorrow()
		case "return":
			s.handleReturn()
		case "availability":
			s.handleAvailability()
		case "borrowed":
			s.handleBorrowed()
		case "update contact":
			s.handleUpdateContact()
		case "show books":
			s.printLines(s.mgr.DisplayBooks())
		case "show members":
			s.printLines(s.mgr.DisplayMembers())
		case "show librarians":
			s.printLines(s.mgr.Librarians())
		case "logs":
			s.handleLogs()
		case "help":
			s.printHelp()
		case "exit":
			if s.interactive {
				s.printf("Goodbye!\n")
			}
			return nil
		default:
			s.printf("Unknown command %q. Type 'help' for the list.\n", cmd)
		}
	}
	return s.sc.Err()
}

func (s *shell) printHelp() {
	s.printf("Available commands:\n")
	for _, c := range commands {
		s.printf("  %-16s %s\n", c.name, c.help)
	}
}

func (s *shell) printLines(lines []string) {
	for _, l := range lines {
		s.printf("%s\n", l)
	}
}

func (s *shell) report(out library.Outcome) {
	if out.OK() {
		s.printf("%s\n", out.Message)
		return
	}
	s.printf("Error: %s\n", out.Message)
}

func (s *shell) handleAddBook() {
	id, ok := s.ask("Book ID")
	if !ok {
		return
	}
	title, ok := s.ask("Title")
	if !ok {
		return
	}
	author, ok := s.ask("Author")
	if !ok {
		return
	}
	s.report(s.mgr.AddBook(id, title, author))
}

func (s *shell) handleRemoveBook() {
	id, ok := s.ask("Book ID to remove")
	if !ok {
		return
	}
	s.report(s.mgr.RemoveBook(id))
}

func (s *shell) handleAddMember() {
	id, ok := s.ask("Member ID")
	if !ok {
		return
	}
	name, ok := s.ask("Name")
	if !ok {
		return
	}
	ageStr, ok := s.ask("Age")
	if !ok {
		return
	}
	contact, ok := s.ask("Contact")
	if !ok {
		return
	}
	// An unparsable age is left at zero so the manager rejects and logs it.
	age, _ := strconv.Atoi(strings.TrimSpace(ageStr))
	s.report(s.mgr.AddMember(id, name, age, contact))
}

func (s *shell) handleRemoveMember() {
	id, ok := s.ask("Member ID to remove")
	if !ok {
		return
	}
	s.report(s.mgr.RemoveMember(id))
}

// askPair reads the member and book ids used by borrow and return.
func (s *shell) askPair() (memberID, bookID string, ok bool) {
	if memberID, ok = s.ask("Member ID"); !ok {
		return "", "", false
	}
	if bookID, ok = s.ask("Book ID"); !ok {
		return "", "", false
	}
	return memberID, bookID, true
}

func (s *shell) handleBorrow() {
	memberID, bookID, ok := s.askPair()
	if !ok {
		return
	}
	s.report(s.mgr.LendBook(bookID, memberID))
}

func (s *shell) handleReturn() {
	memberID, bookID, ok := s.askPair()
	if !ok {
		return
	}
	s.report(s.mgr.ReturnBook(bookID, memberID))
}

func (s *shell) handleAvailability() {
	id, ok := s.ask("Book ID")
	if !ok {
		return
	}
	s.report(s.mgr.CheckAvailability(id))
}

func (s *shell) handleBorrowed() {
	id, ok := s.ask("Member ID")
	if !ok {
		return
	}
	s.report(s.mgr.BorrowedBooks(id))
}

func (s *shell) handleUpdateContact() {
	id, ok := s.ask("Member ID")
	if !ok {
		return
	}
	contact, ok := s.ask("New contact")
	if !ok {
		return
	}
	s.report(s.mgr.UpdateContact(id, contact))
}

func (s *shell) handleLogs() {
	lines, err := s.mgr.Activity(s.timeLayout)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if len(lines) == 0 {
		s.printf("No logs yet.\n")
		return
	}
	s.printLines(lines)
}
