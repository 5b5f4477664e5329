package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

// NewOpenAPIValidator returns a middleware that checks each request against
// the OpenAPI document in spec before it reaches the router. Parameter
// errors are rejected with 400 and body errors with 422. A body cut off by
// http.MaxBytesReader is answered with 413. Requests matching
// no documented route pass through untouched so the router can answer
// 404 or 405 itself.
func NewOpenAPIValidator(spec []byte) (func(http.Handler) http.Handler, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("middleware.NewOpenAPIValidator: load: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("middleware.NewOpenAPIValidator: validate: %w", err)
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("middleware.NewOpenAPIValidator: router: %w", err)
	}

	opts := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					next.ServeHTTP(w, r)
					return
				}
				writeError(w, http.StatusBadRequest, "validation_error", err.Error())
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    opts,
			}
			if err := openapi3filter.ValidateRequest(context.WithoutCancel(r.Context()), input); err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body too large")
					return
				}
				status := http.StatusBadRequest
				var reqErr *openapi3filter.RequestError
				if errors.As(err, &reqErr) && reqErr.RequestBody != nil {
					status = http.StatusUnprocessableEntity
				}
				writeError(w, status, "validation_error", validationMessage(err))
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// validationMessage flattens a kin-openapi error into one line, preferring
// the reason and the offending parameter or body field over the full dump.
func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return err.Error()
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		field := "body"
		if p := schemaErr.JSONPointer(); len(p) > 0 {
			field = p[len(p)-1]
		}
		if reqErr.Parameter != nil {
			field = reqErr.Parameter.Name
		}
		return fmt.Sprintf("%s: %s", field, schemaErr.Reason)
	}

	if reqErr.Parameter != nil {
		return fmt.Sprintf("parameter %s: %s", reqErr.Parameter.Name, reqErr.Error())
	}
	if reqErr.Reason != "" {
		return reqErr.Reason
	}
	return reqErr.Error()
}
