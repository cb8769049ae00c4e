package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/garage-booking/internal/config"
	"github.com/iliyamo/garage-booking/internal/model"
	"github.com/iliyamo/garage-booking/internal/repository"
)

// garageListCacheKey holds the cached JSON of the garage listing.  The
// listing is identical for every authenticated user, so one shared entry
// is safe.
const garageListCacheKey = "cache:garages:list"

const garageListCacheTTL = 30 * time.Second

// GarageStore is the slice of the garage repository the admin handler uses.
type GarageStore interface {
	Create(ctx context.Context, name, address string) (model.Garage, error)
	List(ctx context.Context) ([]model.Garage, error)
}

// BookingLister lists every booking with owner display fields.
type BookingLister interface {
	ListAll(ctx context.Context) ([]model.BookingView, error)
}

// MaintenanceStore exposes the superadmin bulk operations.
type MaintenanceStore interface {
	ResetAll(ctx context.Context) error
	ResetUsers(ctx context.Context) error
	AddTestData(ctx context.Context, bcryptCost int) error
}

// AdminHandler serves the /api/admin surface.  Redis is optional; when
// nil the garage listing is served from the store on every request.
type AdminHandler struct {
	Cfg      config.Config
	Garages  GarageStore
	Bookings BookingLister
	Users    UserStore
	Maint    MaintenanceStore
	Redis    *redis.Client
}

func NewAdminHandler(cfg config.Config, g GarageStore, b BookingLister, u UserStore, m MaintenanceStore, rdb *redis.Client) *AdminHandler {
	return &AdminHandler{Cfg: cfg, Garages: g, Bookings: b, Users: u, Maint: m, Redis: rdb}
}

type createGarageReq struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ListGarages returns every garage, most recent first.  Any authenticated
// identity may call it; the route applies no role set.
func (h *AdminHandler) ListGarages(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if h.Redis != nil {
		if cached, err := h.Redis.Get(ctx, garageListCacheKey).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, cached)
		}
	}
	garages, err := h.Garages.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list garages failed"})
	}
	if h.Redis != nil {
		if body, err := json.Marshal(garages); err == nil {
			_ = h.Redis.Set(ctx, garageListCacheKey, body, garageListCacheTTL).Err()
		}
	}
	return c.JSON(http.StatusOK, garages)
}

// CreateGarage inserts a garage and drops the listing cache.
func (h *AdminHandler) CreateGarage(c echo.Context) error {
	var req createGarageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	if req.Name == "" || req.Address == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and address required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g, err := h.Garages.Create(ctx, req.Name, req.Address)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create garage failed"})
	}
	if h.Redis != nil {
		_ = h.Redis.Del(ctx, garageListCacheKey).Err()
	}
	return c.JSON(http.StatusCreated, g)
}

// ListAllBookings returns every booking joined with owner display fields.
func (h *AdminHandler) ListAllBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	views, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	return c.JSON(http.StatusOK, views)
}

// ResetDB clears bookings, users and garages (and all sessions) in one
// transaction.  The acting superadmin's own session goes with it.
func (h *AdminHandler) ResetDB(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Maint.ResetAll(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset failed"})
	}
	if h.Redis != nil {
		_ = h.Redis.Del(ctx, garageListCacheKey).Err()
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ResetUsers removes every non-superadmin user.
func (h *AdminHandler) ResetUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Maint.ResetUsers(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// AddTestData seeds fixture rows.
func (h *AdminHandler) AddTestData(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Maint.AddTestData(ctx, h.Cfg.BcryptCost); err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "test data already present"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seed failed"})
	}
	if h.Redis != nil {
		_ = h.Redis.Del(ctx, garageListCacheKey).Err()
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// CreateUser is the superadmin path that can mint any role, including
// further admins and superadmins.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validateUserInput(&req, model.AllRoles); msg != "" {
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
