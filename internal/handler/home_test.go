package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/label-catalog/internal/domain"
	"github.com/pkordes/label-catalog/internal/handler"
)

func TestGetHome_200(t *testing.T) {
	svc := &mockHomeServicer{
		home: func(context.Context) (domain.Home, error) {
			return domain.Home{
				FeaturedReleases: []domain.Release{releaseFixture()},
				FeaturedArtists:  []domain.Artist{artistFixture()},
			}, nil
		},
	}

	rec := serve(t, handler.NewServer(nil, nil, nil, svc), http.MethodGet, "/home", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"featured_releases":[{`)
	assert.Contains(t, body, `"upcoming_events":[]`, "empty sections are arrays, not null")
}

func TestGetHome_500(t *testing.T) {
	svc := &mockHomeServicer{
		home: func(context.Context) (domain.Home, error) {
			return domain.Home{}, errors.New("timeout")
		},
	}

	rec := serve(t, handler.NewServer(nil, nil, nil, svc), http.MethodGet, "/home", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
