package book

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func testBook() Book {
	return Book{
		ID:              1,
		Title:           "Clean Code",
		Author:          "Robert C. Martin",
		ISBN:            "978-0132350884",
		PublicationDate: NewDate(2008, time.August, 1),
		Description:     "A Handbook of Agile Software Craftsmanship",
		Price:           45.99,
	}
}

func TestService_UpdateBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("not found signals absence without writing", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(Book{}, ErrNotFound)

		_, err := service.UpdateBook(context.Background(), 42, testBook())

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("replaces every field and keeps the id", func(t *testing.T) {
		existing := testBook()
		details := Book{
			Title:           "Refactoring",
			Author:          "Martin Fowler",
			ISBN:            "978-0134757599",
			PublicationDate: NewDate(2018, time.November, 19),
			Description:     "Improving the Design of Existing Code",
			Price:           49.99,
		}
		merged := Merge(existing, details)

		mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(existing, nil)
		mockRepo.EXPECT().Save(gomock.Any(), merged).Return(merged, nil)

		got, err := service.UpdateBook(context.Background(), existing.ID, details)

		assert.NoError(t, err)
		assert.Equal(t, existing.ID, got.ID)
		assert.Equal(t, details.Title, got.Title)
		assert.Equal(t, details.Author, got.Author)
		assert.Equal(t, details.ISBN, got.ISBN)
		assert.Equal(t, details.PublicationDate, got.PublicationDate)
		assert.Equal(t, details.Description, got.Description)
		assert.Equal(t, details.Price, got.Price)
	})
}

func TestService_DeleteBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("deletes when present", func(t *testing.T) {
		mockRepo.EXPECT().ExistsByID(gomock.Any(), int64(1)).Return(true, nil)
		mockRepo.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(nil)

		deleted, err := service.DeleteBook(context.Background(), 1)

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("no-op when absent", func(t *testing.T) {
		mockRepo.EXPECT().ExistsByID(gomock.Any(), int64(1)).Return(false, nil)

		deleted, err := service.DeleteBook(context.Background(), 1)

		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestService_ExistsByISBN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("true on match", func(t *testing.T) {
		mockRepo.EXPECT().FindByISBN(gomock.Any(), "978-0132350884").Return(testBook(), nil)

		exists, err := service.ExistsByISBN(context.Background(), "978-0132350884")

		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("false on miss", func(t *testing.T) {
		mockRepo.EXPECT().FindByISBN(gomock.Any(), "978-0000000000").Return(Book{}, ErrNotFound)

		exists, err := service.ExistsByISBN(context.Background(), "978-0000000000")

		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("store error propagates", func(t *testing.T) {
		mockRepo.EXPECT().FindByISBN(gomock.Any(), "978-0132350884").Return(Book{}, context.DeadlineExceeded)

		_, err := service.ExistsByISBN(context.Background(), "978-0132350884")

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestService_SearchBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	// the same term goes against both author and title, and a record
	// matching both comes back once
	match := testBook()
	mockRepo.EXPECT().SearchByAuthorOrTitle(gomock.Any(), "Martin").Return([]Book{match}, nil)

	books, err := service.SearchBooks(context.Background(), "Martin")

	assert.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, match, books[0])
}

func TestService_GetBooksByPriceRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("passes bounds through untouched", func(t *testing.T) {
		mockRepo.EXPECT().FindByPriceRange(gomock.Any(), 40.0, 60.0).Return([]Book{testBook()}, nil)

		books, err := service.GetBooksByPriceRange(context.Background(), 40, 60)

		assert.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("inverted range is not reordered", func(t *testing.T) {
		mockRepo.EXPECT().FindByPriceRange(gomock.Any(), 60.0, 40.0).Return(nil, nil)

		books, err := service.GetBooksByPriceRange(context.Background(), 60, 40)

		assert.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestService_Passthroughs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	b := testBook()

	mockRepo.EXPECT().FindAll(gomock.Any()).Return([]Book{b}, nil)
	all, err := service.GetAllBooks(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []Book{b}, all)

	mockRepo.EXPECT().FindByID(gomock.Any(), b.ID).Return(b, nil)
	byID, err := service.GetBookByID(context.Background(), b.ID)
	assert.NoError(t, err)
	assert.Equal(t, b, byID)

	mockRepo.EXPECT().FindByAuthor(gomock.Any(), b.Author).Return([]Book{b}, nil)
	byAuthor, err := service.GetBooksByAuthor(context.Background(), b.Author)
	assert.NoError(t, err)
	assert.Equal(t, []Book{b}, byAuthor)

	mockRepo.EXPECT().SearchByTitle(gomock.Any(), "clean").Return([]Book{b}, nil)
	byTitle, err := service.SearchBooksByTitle(context.Background(), "clean")
	assert.NoError(t, err)
	assert.Equal(t, []Book{b}, byTitle)
}
