package seed

import (
	"context"
	"testing"

	"booksvc/internal/book"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRun_EmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := book.NewMockRepository(ctrl)

	mockRepo.EXPECT().Count(gomock.Any()).Return(0, nil)

	var saved []book.Book
	mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b book.Book) (book.Book, error) {
			b.ID = int64(len(saved) + 1)
			saved = append(saved, b)
			return b, nil
		}).Times(5)

	inserted, err := Run(context.Background(), mockRepo)

	assert.NoError(t, err)
	assert.Equal(t, 5, inserted)
	assert.Equal(t, "Clean Code", saved[0].Title)
	assert.Equal(t, "978-0132350884", saved[0].ISBN)
	assert.Equal(t, "Design Patterns", saved[4].Title)
	assert.Equal(t, "Gang of Four", saved[4].Author)
}

func TestRun_NonEmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := book.NewMockRepository(ctrl)

	mockRepo.EXPECT().Count(gomock.Any()).Return(5, nil)

	inserted, err := Run(context.Background(), mockRepo)

	assert.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestRun_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := book.NewMockRepository(ctrl)

	mockRepo.EXPECT().Count(gomock.Any()).Return(0, context.DeadlineExceeded)

	_, err := Run(context.Background(), mockRepo)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
