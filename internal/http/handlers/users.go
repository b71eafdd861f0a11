package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/userhub/userhub/internal/config"
	"github.com/userhub/userhub/internal/domain/user"
	"github.com/userhub/userhub/internal/security"
)

type UsersStore interface {
	List(ctx context.Context) ([]user.User, error)
	Create(ctx context.Context, req user.CreateUserRequest, passwordHash string) (user.User, error)
	GetByID(ctx context.Context, id string) (user.User, error)
	Update(ctx context.Context, id string, req user.UpdateUserRequest, passwordHash string) (user.User, error)
	Delete(ctx context.Context, id string) error
}

type UsersHandler struct {
	repo UsersStore
	log  *slog.Logger
}

func NewUsersHandler(repo UsersStore, log *slog.Logger) *UsersHandler {
	return &UsersHandler{repo: repo, log: log}
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	users, err := h.repo.List(cctx)

	if err != nil {
		h.log.Error("list users failed", "err", err)
		RespondInternal(ctx)
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Get all users successfully", users)
}

func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	var req user.CreateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	hash, err := security.HashPassword(req.Password)

	if err != nil {
		h.log.Error("password hashing failed", "err", err)
		RespondInternal(ctx)
		return
	}

	u, err := h.repo.Create(cctx, req, hash)

	if err != nil {
		h.log.Error("create user failed", "err", err)
		RespondInternal(ctx)
		return
	}

	RespondSuccess(ctx, http.StatusCreated, "User created successfully", u)
}

func (h *UsersHandler) GetUserById(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	u, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// A missing id still answers 200 with a null payload rather
			// than 404. Almost certainly an accident upstream, but callers
			// rely on it now.
			RespondSuccess(ctx, http.StatusOK, fmt.Sprintf("Get user by ID: %s", id), nil)
			return
		}

		h.log.Error("get user failed", "err", err, "id", id)
		RespondInternal(ctx)
		return
	}

	RespondSuccess(ctx, http.StatusOK, fmt.Sprintf("Get user by ID: %s", id), u)
}

func (h *UsersHandler) UpdateUser(ctx *gin.Context) {
	id := ctx.Param("id")

	var req user.UpdateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	// Rehashed unconditionally, even when the password is unchanged.
	hash, err := security.HashPassword(req.Password)

	if err != nil {
		h.log.Error("password hashing failed", "err", err)
		RespondInternal(ctx)
		return
	}

	u, err := h.repo.Update(cctx, id, req, hash)

	if err != nil {
		// Updating a missing id is a store failure, not a 404.
		h.log.Error("update user failed", "err", err, "id", id)
		RespondInternal(ctx)
		return
	}

	RespondSuccess(ctx, http.StatusOK, "User updated successfully", u)
}

func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		h.log.Error("delete user failed", "err", err, "id", id)
		RespondInternal(ctx)
		return
	}

	// No existence check: deleting an absent id is still a success.
	RespondSuccessNoData(ctx, "User deleted successfully")
}
