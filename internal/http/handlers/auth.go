package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/userhub/userhub/internal/auth"
	"github.com/userhub/userhub/internal/config"
	"github.com/userhub/userhub/internal/domain/user"
	"github.com/userhub/userhub/internal/security"
)

// Keep this small interface so tests can fake it easily.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

type AuthHandler struct {
	users UserReader
	jwt   *auth.Manager
	log   *slog.Logger
}

func NewAuthHandler(users UserReader, jwtManager *auth.Manager, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users: users,
		jwt:   jwtManager,
		log:   log,
	}
}

// Login runs the whole credential flow: validate, look up, verify hash,
// issue token, respond with the sanitized user. Each step has exactly one
// terminal failure; nothing is retried.
//
// A missing account answers 404 while a wrong password answers 401. That
// asymmetry leaks account existence, but it is the contract callers
// depend on, so it stays.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req user.LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	// short timeout for DB lookup
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	foundUser, err := h.users.GetByEmail(cctx, req.Email)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// same log shape and level as a bad password
			h.log.Warn("login rejected")
			RespondNotFound(ctx, "User not found")
			return
		}

		h.log.Error("login lookup failed", "err", err)
		RespondInternal(ctx)
		return
	}

	err = security.CheckPassword(foundUser.PasswordHash, req.Password)

	if err != nil {
		h.log.Warn("login rejected")
		RespondUnauthorized(ctx, "Invalid password")
		return
	}

	token, err := h.jwt.IssueSessionToken(foundUser.ID)

	if err != nil {
		h.log.Error("token signing failed", "err", err)
		RespondInternal(ctx)
		return
	}

	// PasswordHash is json:"-" on the entity, so the marshalled user is
	// already sanitized.
	RespondSuccess(ctx, http.StatusOK, "User login successfully", gin.H{
		"user":  foundUser,
		"token": token,
	})
}
