package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eventbook/server/internal/config"
	"github.com/eventbook/server/internal/domain/events"
	"github.com/eventbook/server/internal/domain/users"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type memEventRepo struct {
	items  []events.Event
	nextID int
}

func (m *memEventRepo) FindAll(ctx context.Context) ([]events.Event, error) {
	return append([]events.Event(nil), m.items...), nil
}

func (m *memEventRepo) Insert(ctx context.Context, event events.Event) (events.Event, error) {
	m.nextID++
	event.ID = fmt.Sprintf("event-%d", m.nextID)
	m.items = append(m.items, event)
	return event, nil
}

type memUserRepo struct {
	items []users.User
}

func (m *memUserRepo) FindAll(ctx context.Context) ([]users.User, error) {
	return append([]users.User(nil), m.items...), nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (users.User, error) {
	for _, u := range m.items {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (m *memUserRepo) Insert(ctx context.Context, user users.User) (users.User, error) {
	user.ID = fmt.Sprintf("user-%d", len(m.items)+1)
	m.items = append(m.items, user)
	return user, nil
}

type memRepository struct {
	events *memEventRepo
	users  *memUserRepo
}

func (m *memRepository) Events() events.Repository      { return m.events }
func (m *memRepository) Users() users.Repository        { return m.users }
func (m *memRepository) Ping(ctx context.Context) error { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	repo := &memRepository{events: &memEventRepo{}, users: &memUserRepo{}}
	cfg := config.Config{Environment: "test"}
	handler, err := NewRouter(cfg, zerolog.Nop(), repo)
	require.NoError(t, err)
	return handler
}

func TestRouterServesGraphQL(t *testing.T) {
	router := newTestRouter(t)

	body := `{"query": "mutation { createEvent(input: {title: \"Meetup\", description: \"Tech talk\", price: 12.5, date: \"2024-05-01\"}) { id title price } }"}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var response struct {
		Data struct {
			CreateEvent struct {
				ID    string  `json:"id"`
				Title string  `json:"title"`
				Price float64 `json:"price"`
			} `json:"createEvent"`
		} `json:"data"`
		Errors []json.RawMessage `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Empty(t, response.Errors)
	require.Equal(t, "event-1", response.Data.CreateEvent.ID)
	require.Equal(t, 12.5, response.Data.CreateEvent.Price)
}

func TestRouterServesGraphiQL(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/graphql", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	require.Equal(t, "GET, POST", w.Header().Get("Allow"))
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
