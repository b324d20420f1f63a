// README: Handler tests for the account endpoints.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DHARAV-9/EzySafar/internal/http/handlers"
	"github.com/DHARAV-9/EzySafar/internal/modules/account"
	"github.com/DHARAV-9/EzySafar/internal/types"
)

// memStore is an in-memory account.Storage double with the real store's
// constraint behavior.
type memStore struct {
	users   map[types.ID]*account.User
	history map[types.ID][]account.SearchRecord
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[types.ID]*account.User{},
		history: map[types.ID][]account.SearchRecord{},
	}
}

func (m *memStore) CreateUser(_ context.Context, u *account.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email || existing.Phone == u.Phone {
			return account.ErrUserExists
		}
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memStore) GetByEmail(_ context.Context, email string) (*account.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, account.ErrNotFound
}

func (m *memStore) AppendSearch(_ context.Context, userID types.ID, rec account.SearchRecord) error {
	if _, ok := m.users[userID]; !ok {
		return account.ErrNotFound
	}
	m.history[userID] = append(m.history[userID], rec)
	return nil
}

func (m *memStore) ListHistory(_ context.Context, userID types.ID) ([]account.SearchRecord, error) {
	return m.history[userID], nil
}

func buildAccountRouter(store account.Storage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewAccountHandler(account.NewService(store))
	r.POST("/api/users/register", h.Register)
	r.POST("/api/users/login", h.Login)
	r.POST("/api/users/search-history", h.AppendSearchHistory)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerBody() map[string]any {
	return map[string]any{
		"firstName": "Asha",
		"lastName":  "Verma",
		"email":     "asha@example.com",
		"phone":     "9876543210",
		"password":  "supersecret",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	r := buildAccountRouter(newMemStore())

	w := doJSON(r, http.MethodPost, "/api/users/register", registerBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		UserID string `json:"userId"`
		User   struct {
			FirstName string `json:"firstName"`
			Email     string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserID == "" {
		t.Error("expected userId in response")
	}
	if resp.User.Email != "asha@example.com" {
		t.Errorf("user = %+v", resp.User)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("password")) || bytes.Contains(w.Body.Bytes(), []byte("$2")) {
		t.Error("response must not leak the password hash")
	}
}

func TestRegisterEndpoint_Failures(t *testing.T) {
	store := newMemStore()
	r := buildAccountRouter(store)
	if w := doJSON(r, http.MethodPost, "/api/users/register", registerBody()); w.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", w.Code)
	}

	tests := []struct {
		name   string
		mutate func(map[string]any)
		want   int
	}{
		{"duplicate email different phone", func(b map[string]any) { b["phone"] = "1112223334" }, http.StatusBadRequest},
		{"invalid email", func(b map[string]any) { b["email"] = "nope"; b["phone"] = "1112223334" }, http.StatusBadRequest},
		{"short password", func(b map[string]any) { b["email"] = "b@c.io"; b["phone"] = "1112223334"; b["password"] = "short" }, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := registerBody()
			tt.mutate(body)
			w := doJSON(r, http.MethodPost, "/api/users/register", body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	store := newMemStore()
	r := buildAccountRouter(store)
	if w := doJSON(r, http.MethodPost, "/api/users/register", registerBody()); w.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", w.Code)
	}

	t.Run("unknown email is 400", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/login",
			map[string]any{"email": "nobody@example.com", "password": "supersecret"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/login",
			map[string]any{"email": "asha@example.com", "password": "wrongpassword"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("success returns profile", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/login",
			map[string]any{"email": "asha@example.com", "password": "supersecret"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var resp struct {
			UserID string          `json:"userId"`
			User   account.Profile `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.UserID == "" || resp.User.FirstName != "Asha" {
			t.Errorf("resp = %+v", resp)
		}
	})
}

func TestSearchHistoryEndpoint(t *testing.T) {
	store := newMemStore()
	r := buildAccountRouter(store)
	w := doJSON(r, http.MethodPost, "/api/users/register", registerBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", w.Code)
	}
	var reg struct {
		UserID string `json:"userId"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &reg)

	record := func(userID string) map[string]any {
		return map[string]any{
			"userId": userID,
			"pickupLocation": map[string]any{
				"name":        "Connaught Place",
				"coordinates": map[string]any{"lat": 28.63, "lng": 77.22},
			},
			"dropoffLocation": map[string]any{
				"name":        "IGI Airport",
				"coordinates": map[string]any{"lat": 28.55, "lng": 77.09},
			},
			"selectedRide": "Uber",
			"fareAmount":   150.0,
		}
	}

	t.Run("missing user id is 400", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/search-history", record(""))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unknown user is 404 and creates nothing", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users/search-history",
			record("7b0d1f6e-1f7b-4f2f-9db0-1d4f5a6b7c8d"))
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
		if len(store.users) != 1 {
			t.Error("append must not create accounts")
		}
	})

	t.Run("append returns updated history", func(t *testing.T) {
		if w := doJSON(r, http.MethodPost, "/api/users/search-history", record(reg.UserID)); w.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		second := record(reg.UserID)
		second["selectedRide"] = "Ola"
		w := doJSON(r, http.MethodPost, "/api/users/search-history", second)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var resp struct {
			SearchHistory []account.SearchRecord `json:"searchHistory"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp.SearchHistory) != 2 {
			t.Fatalf("history len = %d, want 2", len(resp.SearchHistory))
		}
		if resp.SearchHistory[1].SelectedRide != "Ola" {
			t.Errorf("history out of order: %+v", resp.SearchHistory)
		}
	})
}
