package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"booksvc/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Request is the create/update body. The id is never taken from the
// body; creation assigns it and update takes it from the path.
type Request struct {
	Title           string  `json:"title" validate:"required"`
	Author          string  `json:"author" validate:"required"`
	ISBN            string  `json:"isbn" validate:"required,isbn"`
	PublicationDate Date    `json:"publicationDate" validate:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" validate:"gte=0"`
}

func (req Request) toBook() Book {
	return Book{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		PublicationDate: req.PublicationDate,
		Description:     req.Description,
		Price:           req.Price,
	}
}

// decodeRequest parses and validates the body, writing the 4xx response
// itself on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request) (Request, bool) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_BODY", "Request body is not valid JSON", nil)
		return Request{}, false
	}
	if details := validateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", details)
		return Request{}, false
	}
	return req, true
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_ID", "id must be an integer", nil)
		return 0, false
	}
	return id, true
}

func writeBooks(w http.ResponseWriter, books []Book) {
	if books == nil {
		books = []Book{}
	}
	httpx.JSON(w, http.StatusOK, books)
}

func writeInternalError(w http.ResponseWriter) {
	httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}

// List handles GET /api/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.GetAllBooks(r.Context())
	if err != nil {
		writeInternalError(w)
		return
	}
	writeBooks(w, books)
}

// GetByID handles GET /api/books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	b, err := h.service.GetBookByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		writeInternalError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// GetByISBN handles GET /api/books/isbn/{isbn}
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	b, err := h.service.GetBookByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "ISBN not found", nil)
			return
		}
		writeInternalError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// GetByAuthor handles GET /api/books/author/{author}
func (h *HTTPHandler) GetByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.GetBooksByAuthor(r.Context(), r.PathValue("author"))
	if err != nil {
		writeInternalError(w)
		return
	}
	writeBooks(w, books)
}

// Search handles GET /api/books/search?q=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("q") {
		httpx.JSONError(w, http.StatusBadRequest, "MISSING_PARAM", "query parameter q is required", nil)
		return
	}
	books, err := h.service.SearchBooks(r.Context(), query.Get("q"))
	if err != nil {
		writeInternalError(w)
		return
	}
	writeBooks(w, books)
}

// SearchByTitle handles GET /api/books/title?title=
func (h *HTTPHandler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("title") {
		httpx.JSONError(w, http.StatusBadRequest, "MISSING_PARAM", "query parameter title is required", nil)
		return
	}
	books, err := h.service.SearchBooksByTitle(r.Context(), query.Get("title"))
	if err != nil {
		writeInternalError(w)
		return
	}
	writeBooks(w, books)
}

// PriceRange handles GET /api/books/price-range?minPrice=&maxPrice=
// The range is boundary-inclusive; an inverted range returns an empty
// array, not an error.
func (h *HTTPHandler) PriceRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	minPrice, err := strconv.ParseFloat(query.Get("minPrice"), 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "MISSING_PARAM", "query parameter minPrice must be a number", nil)
		return
	}
	maxPrice, err := strconv.ParseFloat(query.Get("maxPrice"), 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "MISSING_PARAM", "query parameter maxPrice must be a number", nil)
		return
	}
	books, err := h.service.GetBooksByPriceRange(r.Context(), minPrice, maxPrice)
	if err != nil {
		writeInternalError(w)
		return
	}
	writeBooks(w, books)
}

// Create handles POST /api/books. The ISBN existence check and the
// insert are two store operations; concurrent creates with the same
// ISBN can both pass the check.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	exists, err := h.service.ExistsByISBN(r.Context(), req.ISBN)
	if err != nil {
		writeInternalError(w)
		return
	}
	if exists {
		httpx.JSONError(w, http.StatusConflict, "DUPLICATE_ISBN", "A book with this ISBN already exists", nil)
		return
	}
	saved, err := h.service.SaveBook(r.Context(), req.toBook())
	if err != nil {
		writeInternalError(w)
		return
	}
	httpx.JSON(w, http.StatusCreated, saved)
}

// Update handles PUT /api/books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	updated, err := h.service.UpdateBook(r.Context(), id, req.toBook())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		writeInternalError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	deleted, err := h.service.DeleteBook(r.Context(), id)
	if err != nil {
		writeInternalError(w)
		return
	}
	if !deleted {
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}
	httpx.NoContent(w)
}

// Register mounts every book route on the mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/books", h.List)
	mux.HandleFunc("GET /api/books/{id}", h.GetByID)
	mux.HandleFunc("GET /api/books/isbn/{isbn}", h.GetByISBN)
	mux.HandleFunc("GET /api/books/author/{author}", h.GetByAuthor)
	mux.HandleFunc("GET /api/books/search", h.Search)
	mux.HandleFunc("GET /api/books/title", h.SearchByTitle)
	mux.HandleFunc("GET /api/books/price-range", h.PriceRange)
	mux.HandleFunc("POST /api/books", h.Create)
	mux.HandleFunc("PUT /api/books/{id}", h.Update)
	mux.HandleFunc("DELETE /api/books/{id}", h.Delete)
}
