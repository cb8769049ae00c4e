package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/garage-booking/internal/config"
	"github.com/iliyamo/garage-booking/internal/middleware"
	"github.com/iliyamo/garage-booking/internal/model"
	"github.com/iliyamo/garage-booking/internal/repository"
	"github.com/iliyamo/garage-booking/internal/utils"
)

// UserStore is the slice of the user repository the auth handler needs.
type UserStore interface {
	Create(ctx context.Context, p repository.CreateUserParams) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// SessionStore creates and deletes server-held sessions.
type SessionStore interface {
	middleware.IdentityFinder
	Create(ctx context.Context, id string, userID uint64, expiresAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Users    UserStore
	Sessions SessionStore
}

func NewAuthHandler(cfg config.Config, u UserStore, s SessionStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Sessions: s}
}

// ----- DTOs -----

type registerReq struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	GarageID *uint64 `json:"garage_id"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// publicUser is a user record with the hash stripped.
type publicUser struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
	GarageID *uint64 `json:"garage_id,omitempty"`
}

// loginResp is the login success body: the identity fields flat at the
// top level, next to the signed token.
type loginResp struct {
	model.Identity
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

func toPublic(u model.User) publicUser {
	return publicUser{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role, GarageID: u.GarageID}
}

// validateUserInput normalizes and checks the shared register/create-user
// fields.  allowedRoles restricts which roles the caller may mint.  It
// returns a non-empty message when the input is rejected; validation runs
// before any store call.
func validateUserInput(req *registerReq, allowedRoles map[string]bool) string {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return "name, email, password and role required"
	}
	if !allowedRoles[req.Role] {
		return "invalid role"
	}
	if model.GarageRole(req.Role) && req.GarageID == nil {
		return "garage_id required for garage roles"
	}
	if !model.GarageRole(req.Role) && req.GarageID != nil {
		return "garage_id only valid for garage roles"
	}
	return ""
}

// Register creates an account.  Self-registration cannot mint admin or
// superadmin roles.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validateUserInput(&req, model.SelfRegisterRoles); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Create(ctx, repository.CreateUserParams{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		Role:       req.Role,
		GarageID:   req.GarageID,
		BcryptCost: h.Cfg.BcryptCost,
	})
	if err != nil {
		switch err {
		case repository.ErrEmailExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		case repository.ErrGarageNotFound:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "garage not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, toPublic(u))
}

// Login verifies credentials and opens a session.  The signed token is
// returned in the body and set as an HttpOnly cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	sid, err := utils.NewSessionID()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	exp := time.Now().UTC().Add(time.Duration(h.Cfg.SessionTTLHours) * time.Hour)
	if err := h.Sessions.Create(ctx, sid, u.ID, exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
	}
	token, err := utils.NewSessionToken(h.Cfg.SessionSecret, sid, u.ID, exp)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, loginResp{
		Identity: model.Identity{
			ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, GarageID: u.GarageID,
		},
		Token:   token,
		Expires: exp,
	})
}

// Logout deletes the caller's session row and clears the cookie.  It is
// idempotent: an absent or already-dead session still yields 204.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if raw := middleware.TokenFromRequest(c); raw != "" {
		if sid, err := utils.ParseSessionToken(h.Cfg.SessionSecret, raw); err == nil {
			if err := h.Sessions.Delete(ctx, sid); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
			}
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current identity, or null when the request carries no
// live session.  The route itself is not gated.
func (h *AuthHandler) Me(c echo.Context) error {
	ident, err := middleware.ResolveIdentity(c, h.Cfg.SessionSecret, h.Sessions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session lookup failed"})
	}
	return c.JSON(http.StatusOK, ident)
}
