package rng

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollParsesPlainTextInteger(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte("4\n"))
	}))
	defer srv.Close()

	c := New(srv.URL, 1, 6)
	value, err := c.Roll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, value)

	assert.Contains(t, gotQuery, "num=1")
	assert.Contains(t, gotQuery, "min=1")
	assert.Contains(t, gotQuery, "max=6")
	assert.Contains(t, gotQuery, "format=plain")
}

func TestRollRejectsNonInteger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Error: quota exceeded"))
	}))
	defer srv.Close()

	c := New(srv.URL, 1, 6)
	_, err := c.Roll(context.Background())
	assert.Error(t, err)
}

func TestRollRejectsOutOfRangeValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("42\n"))
	}))
	defer srv.Close()

	c := New(srv.URL, 1, 6)
	_, err := c.Roll(context.Background())
	assert.Error(t, err)
}

func TestRollSurfacesHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, 1, 6)
	_, err := c.Roll(context.Background())
	assert.Error(t, err)
}

func TestFaces(t *testing.T) {
	c := New("http://unused", 1, 6)
	min, max := c.Faces()
	assert.Equal(t, 1, min)
	assert.Equal(t, 6, max)
}
