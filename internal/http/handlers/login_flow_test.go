package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/userhub/userhub/internal/auth"
	"github.com/userhub/userhub/internal/http/handlers"
	"github.com/userhub/userhub/internal/repo/memory"
)

// End to end over the memory repo: register an account, then exercise each
// login outcome against it.
func TestCreateThenLoginFlow(t *testing.T) {
	repo := memory.NewUsersRepo()
	jwtManager := auth.NewManager("test-secret", time.Hour)

	usersHandler := handlers.NewUsersHandler(repo, testLogger())
	authHandler := handlers.NewAuthHandler(repo, jwtManager, testLogger())

	r := gin.New()
	r.POST("/api/users", usersHandler.CreateUser)
	r.POST("/api/login", authHandler.Login)

	// create
	w, env := doJSON(t, r, http.MethodPost, "/api/users",
		`{"name":"A","email":"a@x.com","password":"secret1"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("create got status %d, body=%s", w.Code, w.Body.String())
	}

	var created map[string]interface{}

	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("failed to unmarshal created user: %v", err)
	}

	createdID, _ := created["id"].(string)

	if createdID == "" {
		t.Fatalf("create did not return a generated id: %s", w.Body.String())
	}

	// correct credentials
	w, env = doJSON(t, r, http.MethodPost, "/api/login",
		`{"email":"a@x.com","password":"secret1"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("login got status %d, body=%s", w.Code, w.Body.String())
	}

	var loginData struct {
		Token string `json:"token"`
	}

	if err := json.Unmarshal(env.Data, &loginData); err != nil {
		t.Fatalf("failed to unmarshal login data: %v", err)
	}

	claims, err := jwtManager.Verify(loginData.Token)

	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}

	if claims.Subject != createdID {
		t.Fatalf("token subject %q does not match created id %q", claims.Subject, createdID)
	}

	// wrong password
	w, _ = doJSON(t, r, http.MethodPost, "/api/login",
		`{"email":"a@x.com","password":"wrong"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password got status %d, want 401, body=%s", w.Code, w.Body.String())
	}

	// unknown account
	w, _ = doJSON(t, r, http.MethodPost, "/api/login",
		`{"email":"nouser@x.com","password":"secret1"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown account got status %d, want 404, body=%s", w.Code, w.Body.String())
	}
}
