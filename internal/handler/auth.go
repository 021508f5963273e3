package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-insights/internal/config"
	"github.com/iliyamo/business-insights/internal/model"
	"github.com/iliyamo/business-insights/internal/queue"
	"github.com/iliyamo/business-insights/internal/repository"
	queue_publisher "github.com/iliyamo/business-insights/internal/service"
	"github.com/iliyamo/business-insights/internal/utils"
)

const (
	otpTTL        = 10 * time.Minute
	sessionTTL    = time.Hour
	stayLoggedTTL = 30 * 24 * time.Hour
	dbTimeout     = 5 * time.Second
)

// AuthHandler bundles dependencies for the registration, OTP
// verification and login endpoints. Publish is the queue publisher for
// OTP mail events; it is a field so tests can stub out the broker.
type AuthHandler struct {
	Cfg     config.Config
	Users   *repository.UserRepo
	Publish func(ctx context.Context, ev queue.OTPEmailEvent) error
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Publish: queue_publisher.PublishOTPEmail}
}

type verifyOTPReq struct {
	OTP string `json:"otp"`
}

// Register creates a user in the pending-OTP state and dispatches the
// one-time code by mail. The request is form-encoded. Publishing the
// mail event is fire-and-forget: a broker failure is logged and the
// registration still succeeds, because the user row is already
// committed and the code can be re-requested.
func (h *AuthHandler) Register(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")
	role := strings.TrimSpace(c.FormValue("role"))

	if username == "" || password == "" || email == "" || role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username, password, role, and email are required"})
	}
	if !model.ValidRole(role) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": `Invalid role. Choose either "event_organizer" or "customer"`})
	}

	hash, err := utils.HashPassword(password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}
	otp, err := utils.GenerateOTP()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "generate otp failed"})
	}
	expires := time.Now().UTC().Add(otpTTL)

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Users.CreatePending(ctx, username, email, hash, role, otp, expires); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	ev := queue.OTPEmailEvent{
		Email:       email,
		Username:    username,
		Code:        otp,
		ExpiresAt:   expires.Format(time.RFC3339),
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.Publish(ctx, ev); err != nil {
		log.Printf("auth: otp mail publish failed for %s: %v", email, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "OTP sent to email. Please verify."})
}

// VerifyOTP activates the pending user holding the submitted code. The
// lookup is by code alone (see UserRepo.GetByOTP); an unknown or expired
// code yields the same response so the endpoint leaks nothing about
// which codes are outstanding.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.OTP) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "OTP is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByOTP(ctx, strings.TrimSpace(req.OTP))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid or expired OTP"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if u.OTPExpiresAt == nil || time.Now().UTC().After(*u.OTPExpiresAt) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid or expired OTP"})
	}

	if err := h.Users.Activate(ctx, u.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "activate user failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "User registered successfully"})
}

// Login verifies credentials and issues a session token. The token
// lives 30 days when stayLoggedIn is "true", one hour otherwise.
// Pending (unverified) users are not rejected here; the flow matches
// the registration contract, which gates nothing at login.
func (h *AuthHandler) Login(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	stayLoggedIn := c.FormValue("stayLoggedIn") == "true"

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid username or password"})
	}

	ttl := sessionTTL
	if stayLoggedIn {
		ttl = stayLoggedTTL
	}
	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, u.Role, ttl)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":      fmt.Sprintf("Welcome %s", u.Username),
		"access_token": tok.Token,
		"username":     u.Username,
		"email":        u.Email,
		"role":         u.Role,
		"user_id":      u.ID,
	})
}
