package book

import (
	"context"
	"errors"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetAllBooks returns every book in store-native order.
func (s *Service) GetAllBooks(ctx context.Context) ([]Book, error) {
	return s.repo.FindAll(ctx)
}

// GetBookByID returns a book by its id.
func (s *Service) GetBookByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.FindByID(ctx, id)
}

// GetBookByISBN returns a book by its ISBN.
func (s *Service) GetBookByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.FindByISBN(ctx, isbn)
}

// GetBooksByAuthor returns books whose author matches exactly.
func (s *Service) GetBooksByAuthor(ctx context.Context, author string) ([]Book, error) {
	return s.repo.FindByAuthor(ctx, author)
}

// SearchBooksByTitle returns books whose title contains the fragment,
// case-insensitively.
func (s *Service) SearchBooksByTitle(ctx context.Context, fragment string) ([]Book, error) {
	return s.repo.SearchByTitle(ctx, fragment)
}

// SearchBooks returns books whose author or title contains the term.
func (s *Service) SearchBooks(ctx context.Context, term string) ([]Book, error) {
	return s.repo.SearchByAuthorOrTitle(ctx, term)
}

// GetBooksByPriceRange returns books with minPrice <= price <= maxPrice.
// The caller must ensure minPrice <= maxPrice; an inverted range simply
// yields no rows.
func (s *Service) GetBooksByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]Book, error) {
	return s.repo.FindByPriceRange(ctx, minPrice, maxPrice)
}

// SaveBook persists the book unconditionally. ISBN uniqueness is the
// caller's concern (see ExistsByISBN).
func (s *Service) SaveBook(ctx context.Context, b Book) (Book, error) {
	return s.repo.Save(ctx, b)
}

// UpdateBook overwrites every mutable field of the stored record with
// details' values, keeping the original id. Returns ErrNotFound when no
// record has the id.
func (s *Service) UpdateBook(ctx context.Context, id int64, details Book) (Book, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Book{}, err
	}
	return s.repo.Save(ctx, Merge(existing, details))
}

// DeleteBook removes the book with the given id. Returns false and does
// nothing when the id does not exist. The exists-then-delete pair is
// not atomic; a concurrent delete can turn the second step into a
// no-op.
func (s *Service) DeleteBook(ctx context.Context, id int64) (bool, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// ExistsByISBN reports whether any book carries the ISBN.
func (s *Service) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	_, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
