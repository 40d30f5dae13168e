package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"courtsync/model"
	"courtsync/services"
	"courtsync/usecase"
	"courtsync/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
	gin.SetMode(gin.TestMode)
}

type fakeDirectory struct {
	users map[string]*model.User
}

func (f *fakeDirectory) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeDirectory) FindUser(ctx context.Context, userID string) (*model.User, error) {
	return f.users[userID], nil
}

type fakeDemoStore struct {
	sessions map[string]*model.AuthSession
}

func (f *fakeDemoStore) Put(ctx context.Context, token string, session *model.AuthSession) error {
	f.sessions[token] = session
	return nil
}

func (f *fakeDemoStore) Get(ctx context.Context, token string) (*model.AuthSession, error) {
	return f.sessions[token], nil
}

func (f *fakeDemoStore) Delete(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func newGuardedRouter(dir *fakeDirectory, demo *fakeDemoStore) *gin.Engine {
	resolver := &usecase.SessionResolver{
		Users:        dir,
		Demo:         demo,
		DemoEmail:    "admin@upm.edu.my",
		DemoPassword: "admin123",
	}

	router := gin.New()
	protected := router.Group("/api")
	protected.Use(AuthMiddleware(resolver))
	protected.GET("/probe", func(c *gin.Context) {
		session := SessionFromContext(c)
		utils.Success(c, gin.H{"uid": session.UserID})
	})
	return router
}

func probe(router *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	admin := &model.User{UserID: "u1", Email: "staff@upm.edu.my", Role: model.RoleAdmin}
	member := &model.User{UserID: "u2", Email: "member@upm.edu.my", Role: model.RoleUser}

	adminToken, err := services.GenerateToken("u1")
	if err != nil {
		t.Fatal(err)
	}
	memberToken, err := services.GenerateToken("u2")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		token        string
		expectedCode int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized},
		{"verified admin", adminToken, http.StatusOK},
		{"non-admin identity", memberToken, http.StatusUnauthorized},
		{"demo token", "demo-tok", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := &fakeDirectory{users: map[string]*model.User{"u1": admin, "u2": member}}
			demo := &fakeDemoStore{sessions: map[string]*model.AuthSession{
				"demo-tok": {UserID: "demo-admin-id", Role: model.RoleAdmin, Origin: model.OriginDemo},
			}}

			w := probe(newGuardedRouter(dir, demo), tt.token)
			if w.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareExposesSession(t *testing.T) {
	dir := &fakeDirectory{users: map[string]*model.User{}}
	demo := &fakeDemoStore{sessions: map[string]*model.AuthSession{
		"demo-tok": {UserID: "demo-admin-id", Role: model.RoleAdmin, Origin: model.OriginDemo},
	}}

	w := probe(newGuardedRouter(dir, demo), "demo-tok")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); !strings.Contains(got, "demo-admin-id") {
		t.Errorf("handler must see the resolved session, got %s", got)
	}
}
