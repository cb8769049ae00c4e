package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/garage-booking/internal/config"
	"github.com/iliyamo/garage-booking/internal/model"
	"github.com/iliyamo/garage-booking/internal/repository"
	"github.com/iliyamo/garage-booking/internal/utils"
)

func testConfig() config.Config {
	return config.Config{
		SessionSecret:   "test-secret",
		SessionTTLHours: 1,
		BcryptCost:      bcrypt.MinCost,
	}
}

// fakeUsers hashes like the real repository so tests can assert that the
// stored credential is never the plaintext.
type fakeUsers struct {
	byEmail map[string]model.User
	nextID  uint64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]model.User{}, nextID: 1}
}

func (f *fakeUsers) Create(_ context.Context, p repository.CreateUserParams) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	if _, ok := f.byEmail[email]; ok {
		return model.User{}, repository.ErrEmailExists
	}
	hash, err := utils.HashPassword(p.Password, p.BcryptCost)
	if err != nil {
		return model.User{}, err
	}
	u := model.User{
		ID:           f.nextID,
		Name:         p.Name,
		Email:        email,
		Phone:        p.Phone,
		PasswordHash: hash,
		Role:         p.Role,
		GarageID:     p.GarageID,
	}
	f.nextID++
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := f.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

type fakeSession struct {
	userID    uint64
	expiresAt time.Time
}

type fakeSessions struct {
	rows  map[string]fakeSession
	users *fakeUsers
}

func newFakeSessions(users *fakeUsers) *fakeSessions {
	return &fakeSessions{rows: map[string]fakeSession{}, users: users}
}

func (f *fakeSessions) Create(_ context.Context, id string, userID uint64, expiresAt time.Time) error {
	f.rows[id] = fakeSession{userID: userID, expiresAt: expiresAt}
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeSessions) FindIdentity(_ context.Context, sid string) (*model.Identity, error) {
	s, ok := f.rows[sid]
	if !ok || time.Now().UTC().After(s.expiresAt) {
		return nil, nil
	}
	for _, u := range f.users.byEmail {
		if u.ID == s.userID {
			return &model.Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, GarageID: u.GarageID}, nil
		}
	}
	return nil, nil
}

// request helpers

func doJSON(t *testing.T, h echo.HandlerFunc, method, path, body string, setup func(c echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return m
}

func asIdentity(c echo.Context, ident *model.Identity) {
	c.Set("identity", ident)
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}

func uintPtr(v uint64) *uint64 { return &v }
