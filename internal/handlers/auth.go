package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/clientdeck-dev/clientdeck/internal/auth"
	"github.com/clientdeck-dev/clientdeck/internal/store"
	"github.com/clientdeck-dev/clientdeck/internal/types"
	"github.com/clientdeck-dev/clientdeck/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type RegisterOwnerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginOwnerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type AuthHandler struct {
	owners store.OwnerStore
}

func NewAuthHandler(owners store.OwnerStore) *AuthHandler {
	return &AuthHandler{owners: owners}
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterOwnerRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		zap.L().Error("failed to hash password", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	owner, err := h.owners.CreateOwner(req.Name, req.Email, string(passwordHash))

	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		zap.L().Error("failed to create owner", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateJWT(owner.ID, owner.Email)

	if err != nil {
		zap.L().Error("failed to generate JWT", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"owner": types.OwnerResponse{
			ID:    owner.ID,
			Name:  owner.Name,
			Email: owner.Email,
		},
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginOwnerRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	owner, err := h.owners.FindOwnerByEmail(req.Email)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		zap.L().Error("failed to fetch owner", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateJWT(owner.ID, owner.Email)

	if err != nil {
		zap.L().Error("failed to generate JWT", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"owner": types.OwnerResponse{
			ID:    owner.ID,
			Name:  owner.Name,
			Email: owner.Email,
		},
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentOwner, err := utils.GetCurrentOwner(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"owner": types.OwnerResponse{
			ID:    currentOwner.ID,
			Name:  currentOwner.Name,
			Email: currentOwner.Email,
		},
	})
}
