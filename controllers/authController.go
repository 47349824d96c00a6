package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"civicreport-be/apperrors"
	"civicreport-be/middlewares"
	"civicreport-be/models"
	"civicreport-be/store"
	authUtils "civicreport-be/utils"

	"github.com/gin-gonic/gin"
)

// CookieSettings control the auth_token cookie.
type CookieSettings struct {
	Domain     string
	Production bool
}

type AuthController struct {
	users     store.UserStore
	jwtSecret string
	cookie    CookieSettings
}

func NewAuthController(users store.UserStore, jwtSecret string, cookie CookieSettings) *AuthController {
	return &AuthController{users: users, jwtSecret: jwtSecret, cookie: cookie}
}

func userView(user *models.User) gin.H {
	return gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"role":         user.Role,
		"authority_id": user.AuthorityID,
		"createdAt":    user.CreatedAt,
	}
}

// RegisterUser handles citizen registration
func (a *AuthController) RegisterUser(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	now := time.Now().UTC()
	user := &models.User{
		Name:      input.Name,
		Email:     strings.ToLower(input.Email),
		Password:  input.Password,
		Role:      models.RoleCitizen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	err := a.users.InsertUser(ctx, user)
	if errors.Is(err, apperrors.ErrConflict) {
		a.claimAccount(c, user)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Registered successfully", gin.H{"user": userView(user)})
}

// claimAccount lets a registration take over an account an admin created
// without a password, keeping its role and authority.
func (a *AuthController) claimAccount(c *gin.Context, user *models.User) {
	ctx := c.Request.Context()
	existing, err := a.users.FindUserByEmail(ctx, user.Email)
	if err == nil && existing.Password == "" {
		err = a.users.ClaimAccount(ctx, existing.ID.Hex(), user.Password)
		if err == nil {
			existing.Password = user.Password
			respond(c, http.StatusCreated, "Registered successfully", gin.H{"user": userView(existing)})
			return
		}
	}
	if err == nil || errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrNotFound) {
		err = fmt.Errorf("%w: user with this email already exists", apperrors.ErrConflict)
	}
	respondError(c, err)
}

// LoginUser checks credentials and sets the auth_token cookie.
func (a *AuthController) LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := a.users.FindUserByEmail(c.Request.Context(), strings.ToLower(input.Email))
	if errors.Is(err, apperrors.ErrNotFound) || (err == nil && !user.ComparePassword(input.Password)) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := authUtils.GenerateToken(a.jwtSecret, user.ID.Hex(), user.Role)
	if err != nil {
		log.Println("Error generating token:", err)
		respondError(c, err)
		return
	}

	// For production, don't set domain to allow cross-origin cookies
	domain := a.cookie.Domain
	if a.cookie.Production {
		domain = ""
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middlewares.AuthCookieName,
		Value:    token,
		MaxAge:   int(authUtils.TokenTTL.Seconds()),
		Path:     "/",
		Domain:   domain,
		Secure:   a.cookie.Production,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})

	respond(c, http.StatusOK, "Logged in", gin.H{"user": userView(user), "token": token})
}

// GetMe retrieves the authenticated user's information
func (a *AuthController) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	user, err := a.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"user": userView(user)})
}

// LogoutUser clears the auth_token cookie
func (a *AuthController) LogoutUser(c *gin.Context) {
	c.SetCookie(middlewares.AuthCookieName, "", -1, "/", a.cookie.Domain, a.cookie.Production, true)
	respond(c, http.StatusOK, "Logged out successfully", nil)
}
