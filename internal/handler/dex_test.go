package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DexBinder_Go/internal/domain"
	"github.com/osse101/DexBinder_Go/internal/handler"
	"github.com/osse101/DexBinder_Go/internal/repository"
)

func newDexRouter(svc *MockDexService) *chi.Mux {
	h := handler.NewDexHandler(svc)
	r := chi.NewRouter()
	r.Get("/dex", h.HandleList)
	r.Post("/dex", h.HandleCreate)
	r.Get("/dex/{number}", h.HandleGet)
	r.Put("/dex/{number}", h.HandleUpdate)
	r.Delete("/dex/{number}", h.HandleDelete)
	return r
}

func fixtureEntry(number int, name string) *domain.CatalogEntry {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gen := 1
	return &domain.CatalogEntry{
		Number:     number,
		Name:       name,
		Types:      []string{"grass", "poison"},
		Generation: &gen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestDexHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockDexService{}
		mockSvc.On("Get", mock.Anything, 1).Return(fixtureEntry(1, "Bulbasaur"), nil)

		req := httptest.NewRequest(http.MethodGet, "/dex/1", nil)
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var entry domain.CatalogEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		assert.Equal(t, "Bulbasaur", entry.Name)
		assert.Equal(t, []string{"grass", "poison"}, entry.Types)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockSvc := &MockDexService{}
		mockSvc.On("Get", mock.Anything, 900).Return(nil, domain.ErrEntryNotFound)

		req := httptest.NewRequest(http.MethodGet, "/dex/900", nil)
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrMsgEntryNotFound)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Non-Integer Number", func(t *testing.T) {
		mockSvc := &MockDexService{}

		req := httptest.NewRequest(http.MethodGet, "/dex/eevee", nil)
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Get")
	})
}

func TestDexHandler_List(t *testing.T) {
	t.Run("Name And Type Filters", func(t *testing.T) {
		mockSvc := &MockDexService{}
		expected := repository.CatalogFilter{Name: "saur", Type: "grass"}
		mockSvc.On("List", mock.Anything, expected).
			Return([]domain.CatalogEntry{*fixtureEntry(1, "Bulbasaur")}, nil)

		req := httptest.NewRequest(http.MethodGet, "/dex?name=saur&type=grass", nil)
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var entries []domain.CatalogEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		assert.Len(t, entries, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Range Filter", func(t *testing.T) {
		mockSvc := &MockDexService{}
		expected := repository.CatalogFilter{From: intPtr(152), To: intPtr(251)}
		mockSvc.On("List", mock.Anything, expected).Return([]domain.CatalogEntry{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/dex?from=152&to=251", nil)
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Invalid Bound", func(t *testing.T) {
		mockSvc := &MockDexService{}

		req := httptest.NewRequest(http.MethodGet, "/dex?from=abc", nil)
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "List")
	})
}

func TestDexHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockDexService{}
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(e domain.CatalogEntry) bool {
			return e.Number == 25 && e.Name == "Pikachu" && len(e.Types) == 1
		})).Return(fixtureEntry(25, "Pikachu"), nil)

		body := []byte(`{"number":25,"name":"Pikachu","types":["electric"],"generation":1}`)
		req := httptest.NewRequest(http.MethodPost, "/dex", bytes.NewReader(body))
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockSvc := &MockDexService{}
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrEntryExists)

		body := []byte(`{"number":25,"name":"Pikachu"}`)
		req := httptest.NewRequest(http.MethodPost, "/dex", bytes.NewReader(body))
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Too Many Types", func(t *testing.T) {
		mockSvc := &MockDexService{}

		body := []byte(`{"number":6,"name":"Charizard","types":["fire","flying","dragon"]}`)
		req := httptest.NewRequest(http.MethodPost, "/dex", bytes.NewReader(body))
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"ValidationError"`)
		mockSvc.AssertNotCalled(t, "Create")
	})

	t.Run("Generation Out Of Range", func(t *testing.T) {
		mockSvc := &MockDexService{}

		body := []byte(`{"number":1,"name":"Bulbasaur","generation":12}`)
		req := httptest.NewRequest(http.MethodPost, "/dex", bytes.NewReader(body))
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Create")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		mockSvc := &MockDexService{}

		req := httptest.NewRequest(http.MethodPost, "/dex", bytes.NewReader([]byte(`{`)))
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Create")
	})
}

func TestDexHandler_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockDexService{}
		mockSvc.On("Update", mock.Anything, 1, mock.MatchedBy(func(p domain.CatalogEntryPatch) bool {
			return p.Name != nil && *p.Name == "Bulbasaur" && p.Generation == nil
		})).Return(fixtureEntry(1, "Bulbasaur"), nil)

		body := []byte(`{"name":"Bulbasaur"}`)
		req := httptest.NewRequest(http.MethodPut, "/dex/1", bytes.NewReader(body))
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockSvc := &MockDexService{}
		mockSvc.On("Update", mock.Anything, 650, mock.Anything).
			Return(nil, domain.ErrEntryNotFound)

		body := []byte(`{"name":"Chespin"}`)
		req := httptest.NewRequest(http.MethodPut, "/dex/650", bytes.NewReader(body))
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestDexHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockDexService{}
		mockSvc.On("Delete", mock.Anything, 1).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/dex/1", nil)
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockSvc := &MockDexService{}
		mockSvc.On("Delete", mock.Anything, 1).Return(domain.ErrEntryNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/dex/1", nil)
		w := httptest.NewRecorder()
		newDexRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockSvc.AssertExpectations(t)
	})
}
