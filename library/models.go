package library

import "fmt"

// Person holds the identity fields shared by members and librarians.
type Person struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	ContactNumber string `json:"contact"`
}

// GetDetails renders the person for member and staff listings.
func (p *Person) GetDetails() string {
	return fmt.Sprintf("Name: %s, Age: %d, Contact: %s", p.Name, p.Age, p.ContactNumber)
}

// UpdateContact replaces the contact number.
func (p *Person) UpdateContact(contact string) string {
	p.ContactNumber = contact
	return fmt.Sprintf("Updated Contact Number: %s", p.ContactNumber)
}

// Book represents a catalog entry and its current availability.
type Book struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available bool   `json:"available"`
}

// NewBook returns an available book.
func NewBook(id, title, author string) *Book {
	return &Book{ID: id, Title: title, Author: author, Available: true}
}

// CheckAvailability reports whether the book is on the shelf.
func (b *Book) CheckAvailability() bool { return b.Available }

// UpdateAvailability sets the flag. Keeping it consistent with the members'
// borrowed lists is the caller's job.
func (b *Book) UpdateAvailability(status bool) { b.Available = status }

// Member is a registered borrower. Borrowed holds book IDs in borrow order.
type Member struct {
	Person
	ID       string   `json:"id"`
	Borrowed []string `json:"borrowed"`
}

// NewMember creates a member with no borrowed books.
func NewMember(name string, age int, contact, id string) *Member {
	return &Member{
		Person: Person{Name: name, Age: age, ContactNumber: contact},
		ID:     id,
	}
}

// Librarian is a staff member allowed to change the catalog.
type Librarian struct {
	Person
	EmployeeID string `json:"employee_id"`
}

// NewLibrarian creates a librarian identified by employeeID.
func NewLibrarian(name string, age int, contact, employeeID string) *Librarian {
	return &Librarian{
		Person:     Person{Name: name, Age: age, ContactNumber: contact},
		EmployeeID: employeeID,
	}
}
