package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	valid := Request{
		Title:           "Clean Code",
		Author:          "Robert C. Martin",
		ISBN:            "978-0132350884",
		PublicationDate: NewDate(2008, time.August, 1),
		Price:           45.99,
	}

	t.Run("valid request", func(t *testing.T) {
		assert.Nil(t, validateStruct(valid))
	})

	t.Run("missing required fields", func(t *testing.T) {
		req := valid
		req.Title = ""
		req.Author = ""

		details := validateStruct(req)

		assert.Len(t, details, 2)
		assert.Equal(t, "title", details[0].Field)
		assert.Equal(t, "author", details[1].Field)
	})

	t.Run("negative price", func(t *testing.T) {
		req := valid
		req.Price = -0.01

		details := validateStruct(req)

		assert.Len(t, details, 1)
		assert.Equal(t, "price", details[0].Field)
	})
}

func TestValidateISBN(t *testing.T) {
	valid := Request{
		Title:           "T",
		Author:          "A",
		PublicationDate: NewDate(2020, time.January, 1),
	}

	cases := []struct {
		isbn string
		ok   bool
	}{
		{"978-0132350884", true},
		{"9780132350884", true},
		{"0-13-235088-2", true},
		{"013235088X", true},
		{"978 0132350884", true},
		{"not-an-isbn", false},
		{"12345", false},
		{"978013235088", false},
		{"", false},
	}

	for _, tc := range cases {
		req := valid
		req.ISBN = tc.isbn
		details := validateStruct(req)
		if tc.ok {
			assert.Nil(t, details, "isbn %q should validate", tc.isbn)
		} else {
			assert.NotNil(t, details, "isbn %q should fail", tc.isbn)
		}
	}
}
