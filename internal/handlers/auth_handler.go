package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"prepmate/server/internal/middleware"
	"prepmate/server/internal/models"
	"prepmate/server/internal/repositories"
	"prepmate/server/internal/utils"
)

const tokenTTL = 24 * time.Hour

// AuthHandler manages registration, login and the current-user endpoint.
type AuthHandler struct {
	Repo      *repositories.UserRepository
	JWTSecret string
	Logger    *zap.Logger
}

func NewAuthHandler(repo *repositories.UserRepository, jwtSecret string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Repo: repo, JWTSecret: jwtSecret, Logger: logger}
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.RegisterRequest](r)

	if existing, _ := h.Repo.GetUserByUsername(req.Username); existing != nil {
		utils.JSONError(w, http.StatusConflict, "username_taken", "Username is already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "hash_error", "Failed to hash password")
		return
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := h.Repo.CreateUser(user); err != nil {
		h.Logger.Error("failed to create user", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "storage_error", "Failed to create user")
		return
	}

	token, err := utils.SignToken(user.ID, user.Username, h.JWTSecret, tokenTTL)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "token_error", "Failed to sign token")
		return
	}
	utils.JSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.LoginRequest](r)

	user, err := h.Repo.GetUserByUsername(req.Username)
	if err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			h.Logger.Error("failed to look up user", zap.Error(err))
		}
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
		return
	}

	token, err := utils.SignToken(user.ID, user.Username, h.JWTSecret, tokenTTL)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "token_error", "Failed to sign token")
		return
	}
	utils.JSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.Repo.GetUserByID(middleware.UserID(r))
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "not_authenticated", "Not authenticated")
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
