package library

// AddBook puts book into the catalog.
func (lb *Librarian) AddBook(book *Book, lib *Library) Outcome {
	if !lib.books.add(book.ID, book) {
		return failed(ErrDuplicateID, "Book with ID %s already exists.", book.ID)
	}
	return succeeded("Book '%s' added.", book.Title)
}

// RemoveBook takes a book out of the catalog. Borrowed books must be
// returned first.
func (lb *Librarian) RemoveBook(bookID string, lib *Library) Outcome {
	book := lib.FindBook(bookID)
	if book == nil {
		return failed(ErrNotFound, "No book with ID %s found.", bookID)
	}
	if !book.CheckAvailability() {
		return failed(ErrStillBorrowed, "Book '%s' is borrowed and cannot be removed.", book.Title)
	}
	lib.books.remove(bookID)
	return succeeded("Book '%s' removed.", book.Title)
}

func (lb *Librarian) AddMember(m *Member, lib *Library) Outcome {
	if !lib.members.add(m.ID, m) {
		return failed(ErrDuplicateID, "Member with ID %s already exists.", m.ID)
	}
	return succeeded("Member '%s' added.", m.Name)
}

func (lb *Librarian) RemoveMember(memberID string, lib *Library) Outcome {
	m := lib.FindMember(memberID)
	if m == nil {
		return failed(ErrNotFound, "No member with ID %s found.", memberID)
	}
	if len(m.Borrowed) > 0 {
		return failed(ErrHoldsBooks, "Member '%s' still holds %d book(s).", m.Name, len(m.Borrowed))
	}
	lib.members.remove(memberID)
	return succeeded("Member '%s' removed.", m.Name)
}
