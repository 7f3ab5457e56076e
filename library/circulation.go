package library

import (
	"slices"
	"strings"
)

// BookFinder resolves book IDs to catalog entries. *Library implements it.
type BookFinder interface {
	FindBook(id string) *Book
}

// BorrowBook lends book to m if it is available.
func (m *Member) BorrowBook(book *Book) Outcome {
	if !book.CheckAvailability() {
		return failed(ErrUnavailable, "%s is not available", book.Title)
	}
	m.Borrowed = append(m.Borrowed, book.ID)
	book.UpdateAvailability(false)
	return succeeded("%s borrowed %s", m.Name, book.Title)
}

// ReturnBook takes book back from m. Only the first matching entry is removed.
func (m *Member) ReturnBook(book *Book) Outcome {
	i := slices.Index(m.Borrowed, book.ID)
	if i < 0 {
		return failed(ErrNotHeld, "%s does not have %s", m.Name, book.Title)
	}
	m.Borrowed = slices.Delete(m.Borrowed, i, i+1)
	book.UpdateAvailability(true)
	return succeeded("%s returned %s", m.Name, book.Title)
}

// Holds reports whether bookID is in m's borrowed list.
func (m *Member) Holds(bookID string) bool {
	return slices.Contains(m.Borrowed, bookID)
}

// ViewBorrowedBooks lists the titles m currently holds, in borrow order.
func (m *Member) ViewBorrowedBooks(books BookFinder) string {
	if len(m.Borrowed) == 0 {
		return "No borrowed books."
	}
	titles := make([]string, 0, len(m.Borrowed))
	for _, id := range m.Borrowed {
		if b := books.FindBook(id); b != nil {
			titles = append(titles, b.Title)
		} else {
			titles = append(titles, id)
		}
	}
	return strings.Join(titles, ", ")
}

// LendBook lends the book to the member when both exist.
func (l *Library) LendBook(bookID, memberID string) Outcome {
	book, member, ok := l.resolve(bookID, memberID)
	if !ok {
		return failed(ErrNotFound, "Invalid book or member.")
	}
	return member.BorrowBook(book)
}

// ReturnBook takes the book back from the member when both exist.
func (l *Library) ReturnBook(bookID, memberID string) Outcome {
	book, member, ok := l.resolve(bookID, memberID)
	if !ok {
		return failed(ErrNotFound, "Invalid book or member.")
	}
	return member.ReturnBook(book)
}

func (l *Library) resolve(bookID, memberID string) (*Book, *Member, bool) {
	book := l.FindBook(bookID)
	if book == nil {
		return nil, nil, false
	}
	member := l.FindMember(memberID)
	if member == nil {
		return nil, nil, false
	}
	return book, member, true
}

// Holder returns the member currently holding bookID, or nil.
func (l *Library) Holder(bookID string) *Member {
	for _, m := range l.members.all() {
		if m.Holds(bookID) {
			return m
		}
	}
	return nil
}
