package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maprojet/compte-client/internal/models"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestFactoryCachesClientPerFormat(t *testing.T) {
	f := NewFactory("http://localhost:8082", time.Second, newTestLogger())

	jsonClient := f.Client(FormatJSON)
	assert.Same(t, jsonClient, f.Client(FormatJSON), "same format must reuse the cached client")

	xmlClient := f.Client(FormatXML)
	assert.NotSame(t, jsonClient, xmlClient, "different format must build a new client")

	// Both entries stay cached independently.
	assert.Same(t, jsonClient, f.Client(FormatJSON))
	assert.Same(t, xmlClient, f.Client(FormatXML))
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{"JSON": FormatJSON, "xml": FormatXML, " Json ": FormatJSON} {
		got, err := ParseFormat(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("YAML")
	assert.Error(t, err)
}

func TestDoJSONRoundTrip(t *testing.T) {
	id := int64(3)
	want := models.Account{ID: &id, Balance: 150, Type: models.TypeCourant, CreationDate: "2024-01-01"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		var in models.Account
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Nil(t, in.ID)
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := NewFactory(srv.URL, time.Second, newTestLogger()).Client(FormatJSON)

	got := models.Account{}
	body := models.Account{Balance: 150, Type: models.TypeCourant, CreationDate: "2024-01-01"}
	require.NoError(t, c.Do(context.Background(), http.MethodPost, "/comptes", &body, &got))
	assert.Equal(t, want, got)
}

func TestDoXMLRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/xml", r.Header.Get("Accept"))
		assert.Equal(t, "application/xml", r.Header.Get("Content-Type"))

		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		in, err := models.UnmarshalAccountXML(data)
		require.NoError(t, err)

		id := int64(9)
		in.ID = &id
		out, err := in.MarshalXML()
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/xml")
		w.Write(out)
	}))
	defer srv.Close()

	c := NewFactory(srv.URL, time.Second, newTestLogger()).Client(FormatXML)

	got := models.Account{}
	body := models.Account{Balance: 75.5, Type: models.TypeEpargne, CreationDate: "2024-03-03"}
	require.NoError(t, c.Do(context.Background(), http.MethodPost, "/comptes", &body, &got))
	require.NotNil(t, got.ID)
	assert.Equal(t, int64(9), *got.ID)
	assert.Equal(t, 75.5, got.Balance)
}

func TestDoReturnsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "account not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewFactory(srv.URL, time.Second, newTestLogger()).Client(FormatJSON)

	err := c.Do(context.Background(), http.MethodGet, "/comptes/42", nil, &models.Account{})
	require.Error(t, err)

	statusErr := &StatusError{}
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, string(statusErr.Body), "account not found")
}

func TestDoTransportErrorIsNotStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewFactory(srv.URL, time.Second, newTestLogger()).Client(FormatJSON)

	err := c.Do(context.Background(), http.MethodGet, "/comptes", nil, nil)
	require.Error(t, err)

	statusErr := &StatusError{}
	assert.False(t, errors.As(err, &statusErr), "transport failures are a distinct category")
}

func TestDoNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewFactory(srv.URL, time.Second, newTestLogger()).Client(FormatJSON)
	assert.NoError(t, c.Do(context.Background(), http.MethodDelete, "/comptes/1", nil, nil))
}
