package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/todoapp/todo-api/internal/auth"
	"github.com/todoapp/todo-api/internal/infrastructure/db/sqlite"
)

// The router registers Prometheus collectors with the default registry, so
// it is built exactly once and the whole flow runs as sequential subtests.
func TestAPI_EndToEnd(t *testing.T) {
	db, err := gorm.Open(gormsqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := sqlite.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tokens := auth.NewTokenManager(auth.TokenConfig{
		SecretKey: "e2e-secret",
		AccessTTL: time.Minute,
		Issuer:    "todo-api-test",
	})

	e := NewRouter(db, tokens, zerolog.Nop())

	do := func(method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
		t.Helper()

		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		var payload map[string]any
		_ = json.Unmarshal(rec.Body.Bytes(), &payload)
		return rec, payload
	}

	var aliceAccess, aliceRefresh string
	var aliceID float64
	var bobAccess string
	var todoID float64

	t.Run("sign-up", func(t *testing.T) {
		rec, _ := do(http.MethodPost, "/sign-up/", "",
			`{"name":"Alice","surname":"Anders","email":"a@x.com","password":"pw"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec, _ := do(http.MethodPost, "/sign-up/", "",
			`{"name":"Evil","surname":"Twin","email":"a@x.com","password":"other"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 on duplicate email, got %d", rec.Code)
		}
	})

	t.Run("sign-in wrong password", func(t *testing.T) {
		rec, _ := do(http.MethodPost, "/sign-in/", "", `{"email":"a@x.com","password":"wrong"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("sign-in", func(t *testing.T) {
		rec, payload := do(http.MethodPost, "/sign-in/", "", `{"email":"a@x.com","password":"pw"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
		aliceAccess, _ = payload["access_token"].(string)
		aliceRefresh, _ = payload["refresh_token"].(string)
		aliceID, _ = payload["id"].(float64)
		if aliceAccess == "" || aliceRefresh == "" || aliceID == 0 {
			t.Fatalf("incomplete login payload: %+v", payload)
		}
	})

	t.Run("todo requires token", func(t *testing.T) {
		rec, payload := do(http.MethodGet, "/todo/", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if payload["error"] != "authorization_required" {
			t.Errorf("expected authorization_required, got %v", payload["error"])
		}
	})

	t.Run("create todo", func(t *testing.T) {
		rec, _ := do(http.MethodPost, "/todo/", aliceAccess,
			`{"todo_text":"comprare il latte","current_time":"2024-05-01 10:00","fatto":false}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
		}
	})

	t.Run("list todos", func(t *testing.T) {
		rec, _ := do(http.MethodGet, "/todo/", aliceAccess, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var todos []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &todos); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(todos) != 1 {
			t.Fatalf("expected 1 todo, got %d", len(todos))
		}
		todoID, _ = todos[0]["id"].(float64)
	})

	t.Run("todo round-trip", func(t *testing.T) {
		rec, payload := do(http.MethodGet, "/todo/"+itoa(todoID)+"/", aliceAccess, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if payload["todo_text"] != "comprare il latte" || payload["current_time"] != "2024-05-01 10:00" || payload["fatto"] != false {
			t.Errorf("round-trip mismatch: %+v", payload)
		}
	})

	t.Run("partial patch", func(t *testing.T) {
		rec, _ := do(http.MethodPatch, "/todo/"+itoa(todoID)+"/", aliceAccess, `{"fatto":true}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}

		_, payload := do(http.MethodGet, "/todo/"+itoa(todoID)+"/", aliceAccess, "")
		if payload["todo_text"] != "comprare il latte" || payload["fatto"] != true {
			t.Errorf("expected text unchanged and fatto true, got %+v", payload)
		}
	})

	t.Run("public user lookup hides password", func(t *testing.T) {
		rec, _ := do(http.MethodGet, "/user/"+itoa(aliceID)+"/", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "password") {
			t.Errorf("password leaked: %s", rec.Body.String())
		}
	})

	t.Run("fresh route accepts login token", func(t *testing.T) {
		rec, _ := do(http.MethodGet, "/user/"+itoa(aliceID)+"/todo/", aliceAccess, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
	})

	t.Run("cross-user access is forbidden", func(t *testing.T) {
		rec, _ := do(http.MethodPost, "/sign-up/", "",
			`{"name":"Bob","surname":"Brown","email":"b@x.com","password":"pw"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("bob sign-up failed: %d", rec.Code)
		}
		_, payload := do(http.MethodPost, "/sign-in/", "", `{"email":"b@x.com","password":"pw"}`)
		bobAccess, _ = payload["access_token"].(string)

		rec, _ = do(http.MethodGet, "/user/"+itoa(aliceID)+"/todo/", bobAccess, "")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		rec, _ = do(http.MethodGet, "/user/"+itoa(aliceID)+"/todo/"+itoa(todoID)+"/", bobAccess, "")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		rec, _ = do(http.MethodDelete, "/user/"+itoa(aliceID)+"/todo/"+itoa(todoID)+"/", bobAccess, "")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("refresh flow", func(t *testing.T) {
		// The access token must not work on /refresh.
		rec, payload := do(http.MethodPost, "/refresh", aliceAccess, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for access token on /refresh, got %d", rec.Code)
		}

		rec, payload = do(http.MethodPost, "/refresh", aliceRefresh, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
		refreshed, _ := payload["access_token"].(string)
		if refreshed == "" {
			t.Fatal("expected access_token in refresh payload")
		}

		// Refreshed tokens work on plain routes but not on fresh routes.
		rec, _ = do(http.MethodGet, "/todo/", refreshed, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("refreshed token rejected on /todo/: %d", rec.Code)
		}
		rec, payload = do(http.MethodGet, "/user/"+itoa(aliceID)+"/todo/", refreshed, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for non-fresh token, got %d", rec.Code)
		}
		if payload["error"] != "fresh_required" {
			t.Errorf("expected fresh_required, got %v", payload["error"])
		}
	})

	t.Run("delete todo", func(t *testing.T) {
		rec, _ := do(http.MethodDelete, "/todo/"+itoa(todoID)+"/", aliceAccess, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		rec, _ = do(http.MethodGet, "/todo/"+itoa(todoID)+"/", aliceAccess, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", rec.Code)
		}
	})
}

func itoa(f float64) string {
	return strconv.FormatInt(int64(f), 10)
}
