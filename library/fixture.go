package library

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Fixture is a seed catalog loaded at start-up.
type Fixture struct {
	Books      []BookInput   `json:"books"`
	Members    []PersonInput `json:"members"`
	Librarians []PersonInput `json:"librarians"`
}

// BookInput is what the desk needs to catalog a book.
type BookInput struct {
	ID     string `json:"id" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
}

// PersonInput describes a member or a librarian; for librarians ID is the
// employee id.
type PersonInput struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Age     int    `json:"age" validate:"min=1"`
	Contact string `json:"contact" validate:"required"`
}

func (in BookInput) trimmed() BookInput {
	return BookInput{
		ID:     strings.TrimSpace(in.ID),
		Title:  strings.TrimSpace(in.Title),
		Author: strings.TrimSpace(in.Author),
	}
}

func (in PersonInput) trimmed() PersonInput {
	return PersonInput{
		ID:      strings.TrimSpace(in.ID),
		Name:    strings.TrimSpace(in.Name),
		Age:     in.Age,
		Contact: strings.TrimSpace(in.Contact),
	}
}

// DecodeFixture reads a JSON fixture from r.
func DecodeFixture(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(bufio.NewReader(r))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}
