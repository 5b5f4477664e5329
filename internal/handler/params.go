package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/label-catalog/internal/domain"
)

// slugParam binds the {slug} path parameter.
func slugParam(r *http.Request) (string, error) {
	var slug string
	err := runtime.BindStyledParameterWithOptions("simple", "slug", chi.URLParam(r, "slug"), &slug,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", fmt.Errorf("invalid format for parameter slug: %w", err)
	}
	return slug, nil
}

// paginationParams binds the optional ?page= and ?limit= query parameters
// and applies the defaults and cap from domain.NewPaginationParams.
func paginationParams(r *http.Request) (domain.PaginationParams, error) {
	var page, limit *int
	q := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "page", q, &page); err != nil {
		return domain.PaginationParams{}, fmt.Errorf("invalid format for parameter page: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		return domain.PaginationParams{}, fmt.Errorf("invalid format for parameter limit: %w", err)
	}
	return domain.NewPaginationParams(page, limit), nil
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("can't decode JSON body: %w", err)
	}
	return nil
}

// paginationResponse builds the Pagination block for a list response.
func paginationResponse(p domain.PaginationParams, total int64) Pagination {
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      int(total),
		TotalPages: p.TotalPages(total),
	}
}

// artistRefToResponse converts a domain.ArtistRef into its wire form.
func artistRefToResponse(a domain.ArtistRef) ArtistRef {
	return ArtistRef{Id: a.ID, Slug: a.Slug, Name: a.Name}
}
