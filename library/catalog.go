package library

import "slices"

// index keeps entries keyed by id while remembering insertion order.
type index[T any] struct {
	byID  map[string]T
	order []string
}

func newIndex[T any]() index[T] {
	return index[T]{byID: make(map[string]T)}
}

func (ix *index[T]) get(id string) (T, bool) {
	v, ok := ix.byID[id]
	return v, ok
}

func (ix *index[T]) add(id string, v T) bool {
	if _, exists := ix.byID[id]; exists {
		return false
	}
	ix.byID[id] = v
	ix.order = append(ix.order, id)
	return true
}

func (ix *index[T]) remove(id string) {
	delete(ix.byID, id)
	if i := slices.Index(ix.order, id); i >= 0 {
		ix.order = slices.Delete(ix.order, i, i+1)
	}
}

func (ix *index[T]) all() []T {
	out := make([]T, 0, len(ix.order))
	for _, id := range ix.order {
		out = append(out, ix.byID[id])
	}
	return out
}

func (ix *index[T]) len() int { return len(ix.order) }

// Library is the catalog: books, members and librarians.
type Library struct {
	books      index[*Book]
	members    index[*Member]
	librarians index[*Librarian]
}

// NewLibrary returns an empty catalog.
func NewLibrary() *Library {
	return &Library{
		books:      newIndex[*Book](),
		members:    newIndex[*Member](),
		librarians: newIndex[*Librarian](),
	}
}

// FindBook returns the book with the given id, or nil.
func (l *Library) FindBook(id string) *Book {
	b, _ := l.books.get(id)
	return b
}

// FindMember returns the member with the given id, or nil.
func (l *Library) FindMember(id string) *Member {
	m, _ := l.members.get(id)
	return m
}

// Books returns the books in the order they were added.
func (l *Library) Books() []*Book { return l.books.all() }

// Members returns the members in the order they registered.
func (l *Library) Members() []*Member { return l.members.all() }

// Librarians returns the staff in the order they registered.
func (l *Library) Librarians() []*Librarian { return l.librarians.all() }

func (l *Library) BookCount() int   { return l.books.len() }
func (l *Library) MemberCount() int { return l.members.len() }

// RegisterMember adds m to the membership.
func (l *Library) RegisterMember(m *Member) Outcome {
	if !l.members.add(m.ID, m) {
		return failed(ErrDuplicateID, "Member with ID %s already exists.", m.ID)
	}
	return succeeded("Member '%s' registered.", m.Name)
}

// DeregisterMember removes the member with the given id. A member who still
// holds books stays registered.
func (l *Library) DeregisterMember(id string) Outcome {
	m := l.FindMember(id)
	if m == nil {
		return failed(ErrNotFound, "No member with ID %s.", id)
	}
	if len(m.Borrowed) > 0 {
		return failed(ErrHoldsBooks, "Member '%s' still holds %d book(s).", m.Name, len(m.Borrowed))
	}
	l.members.remove(id)
	return succeeded("Member '%s' deregistered.", m.Name)
}

// RegisterLibrarian adds lb to the staff list. Employee IDs are unique.
func (l *Library) RegisterLibrarian(lb *Librarian) Outcome {
	if !l.librarians.add(lb.EmployeeID, lb) {
		return failed(ErrDuplicateID, "Librarian with ID %s already exists.", lb.EmployeeID)
	}
	return succeeded("Librarian '%s' registered.", lb.Name)
}

// DisplayBooks renders one line per book, or a single sentinel line when the
// catalog is empty.
func (l *Library) DisplayBooks() []string {
	if l.books.len() == 0 {
		return []string{"No books in library."}
	}
	lines := make([]string, 0, l.books.len())
	for _, b := range l.books.all() {
		status := "Available"
		if !b.Available {
			status = "Borrowed"
		}
		lines = append(lines, b.ID+" - "+b.Title+" by "+b.Author+" ("+status+")")
	}
	return lines
}

func (l *Library) DisplayMembers() []string {
	if l.members.len() == 0 {
		return []string{"No members."}
	}
	lines := make([]string, 0, l.members.len())
	for _, m := range l.members.all() {
		lines = append(lines, m.GetDetails())
	}
	return lines
}
