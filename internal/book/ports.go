package book

import (
	"context"
)

// Repository defines the contract for book data storage.
type Repository interface {
	FindAll(ctx context.Context) ([]Book, error)
	FindByID(ctx context.Context, id int64) (Book, error)
	FindByISBN(ctx context.Context, isbn string) (Book, error)
	FindByAuthor(ctx context.Context, author string) ([]Book, error)
	SearchByTitle(ctx context.Context, fragment string) ([]Book, error)
	SearchByAuthorOrTitle(ctx context.Context, term string) ([]Book, error)
	FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]Book, error)
	Save(ctx context.Context, b Book) (Book, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
