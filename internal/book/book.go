package book

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals as
// "2006-01-02" and maps to a Postgres DATE column.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("date must be a %q string", dateLayout)
	}
	t, err := time.Parse(dateLayout, string(data[1:len(data)-1]))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// Book represents a book record.
type Book struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	ISBN            string  `json:"isbn"`
	PublicationDate Date    `json:"publicationDate"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
}

// Merge returns existing with every field except the id replaced by
// incoming's values.
func Merge(existing, incoming Book) Book {
	incoming.ID = existing.ID
	return incoming
}
