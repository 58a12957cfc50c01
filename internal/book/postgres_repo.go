package book

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = "id, title, author, isbn, publication_date, description, price"

// EnsureSchema creates the books table if it does not exist. ISBN
// uniqueness is a service-layer check, so no unique index is added.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS books (
			id               BIGSERIAL PRIMARY KEY,
			title            TEXT NOT NULL,
			author           TEXT NOT NULL,
			isbn             TEXT NOT NULL,
			publication_date DATE NOT NULL,
			description      TEXT NOT NULL DEFAULT '',
			price            DOUBLE PRECISION NOT NULL
		)`
	_, err := db.Exec(ctx, ddl)
	return err
}

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) queryBooks(ctx context.Context, sql string, args ...any) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.ISBN, &b.PublicationDate.Time, &b.Description, &b.Price,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) queryBook(ctx context.Context, sql string, args ...any) (Book, error) {
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, sql, args...).Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.PublicationDate.Time, &b.Description, &b.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) FindAll(ctx context.Context) ([]Book, error) {
	return r.queryBooks(ctx, "SELECT "+bookColumns+" FROM books")
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (Book, error) {
	return r.queryBook(ctx, "SELECT "+bookColumns+" FROM books WHERE id = $1", id)
}

// FindByISBN returns the store's first match when duplicates exist.
func (r *PostgresRepo) FindByISBN(ctx context.Context, isbn string) (Book, error) {
	return r.queryBook(ctx, "SELECT "+bookColumns+" FROM books WHERE isbn = $1 LIMIT 1", isbn)
}

func (r *PostgresRepo) FindByAuthor(ctx context.Context, author string) ([]Book, error) {
	return r.queryBooks(ctx, "SELECT "+bookColumns+" FROM books WHERE author = $1", author)
}

// likeEscaper neutralizes LIKE wildcards so a fragment matches
// literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *PostgresRepo) SearchByTitle(ctx context.Context, fragment string) ([]Book, error) {
	return r.queryBooks(ctx,
		"SELECT "+bookColumns+` FROM books WHERE title ILIKE $1 ESCAPE '\'`,
		"%"+likeEscaper.Replace(fragment)+"%")
}

// SearchByAuthorOrTitle is case-sensitive (LIKE, not ILIKE) and leaves
// wildcards in the term active. A row matching on both fields appears
// once: the OR sits in a single WHERE over one row set.
func (r *PostgresRepo) SearchByAuthorOrTitle(ctx context.Context, term string) ([]Book, error) {
	return r.queryBooks(ctx,
		"SELECT "+bookColumns+" FROM books WHERE author LIKE $1 OR title LIKE $1",
		"%"+term+"%")
}

func (r *PostgresRepo) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]Book, error) {
	return r.queryBooks(ctx,
		"SELECT "+bookColumns+" FROM books WHERE price BETWEEN $1 AND $2",
		minPrice, maxPrice)
}

// Save inserts when the id is unset and fully replaces the row
// otherwise. The persisted record is returned, with the assigned id on
// insert.
func (r *PostgresRepo) Save(ctx context.Context, b Book) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if b.ID == 0 {
		const sql = `
			INSERT INTO books (title, author, isbn, publication_date, description, price)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`
		err := r.db.QueryRow(timeoutCtx, sql,
			b.Title, b.Author, b.ISBN, b.PublicationDate.Time, b.Description, b.Price,
		).Scan(&b.ID)
		return b, err
	}

	const sql = `
		UPDATE books
		SET title = $1, author = $2, isbn = $3, publication_date = $4, description = $5, price = $6
		WHERE id = $7`
	_, err := r.db.Exec(timeoutCtx, sql,
		b.Title, b.Author, b.ISBN, b.PublicationDate.Time, b.Description, b.Price, b.ID,
	)
	return b, err
}

func (r *PostgresRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, "SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) DeleteByID(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, "DELETE FROM books WHERE id = $1", id)
	return err
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, "SELECT COUNT(*) FROM books").Scan(&total)
	return total, err
}
