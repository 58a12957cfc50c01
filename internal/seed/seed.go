// Package seed populates an empty store with a fixed set of sample
// books at startup.
package seed

import (
	"context"
	"time"

	"booksvc/internal/book"
)

var sampleBooks = []book.Book{
	{
		Title:           "Clean Code",
		Author:          "Robert C. Martin",
		ISBN:            "978-0132350884",
		PublicationDate: book.NewDate(2008, time.August, 1),
		Description:     "A Handbook of Agile Software Craftsmanship",
		Price:           45.99,
	},
	{
		Title:           "Effective Java",
		Author:          "Joshua Bloch",
		ISBN:            "978-0134685991",
		PublicationDate: book.NewDate(2017, time.December, 27),
		Description:     "Best practices for the Java platform",
		Price:           52.99,
	},
	{
		Title:           "Spring in Action",
		Author:          "Craig Walls",
		ISBN:            "978-1617294945",
		PublicationDate: book.NewDate(2018, time.October, 2),
		Description:     "Covers Spring 5.0",
		Price:           59.99,
	},
	{
		Title:           "Java: The Complete Reference",
		Author:          "Herbert Schildt",
		ISBN:            "978-1260440232",
		PublicationDate: book.NewDate(2020, time.March, 27),
		Description:     "Comprehensive guide to Java programming",
		Price:           65.00,
	},
	{
		Title:           "Design Patterns",
		Author:          "Gang of Four",
		ISBN:            "978-0201633610",
		PublicationDate: book.NewDate(1994, time.October, 21),
		Description:     "Elements of Reusable Object-Oriented Software",
		Price:           54.95,
	},
}

// Run inserts the sample books when the store is empty and reports how
// many were inserted. A non-empty store is left untouched.
func Run(ctx context.Context, repo book.Repository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for i, b := range sampleBooks {
		if _, err := repo.Save(ctx, b); err != nil {
			return i, err
		}
	}
	return len(sampleBooks), nil
}
