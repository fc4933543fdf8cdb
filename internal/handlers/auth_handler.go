package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/urbanbarber/api/internal/httperr"
	"github.com/urbanbarber/api/internal/httpresp"
	"github.com/urbanbarber/api/internal/middleware"
	"github.com/urbanbarber/api/internal/models"
	ucAuth "github.com/urbanbarber/api/internal/usecase/auth"
	"github.com/urbanbarber/api/internal/validators"
)

type AuthHandler struct {
	register *ucAuth.Register
	login    *ucAuth.Login
	profile  *ucAuth.GetProfile
}

func NewAuthHandler(
	register *ucAuth.Register,
	login *ucAuth.Login,
	profile *ucAuth.GetProfile,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		profile:  profile,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required,min=4"`
}

type LoginRequest struct {
	// Username accepts a username, email, or phone number.
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "El celular no es válido.")
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Username:  strings.TrimSpace(req.Username),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Usuario registrado exitosamente.",
		"user":    publicUser(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	out, err := h.login.Execute(c.Request.Context(), ucAuth.LoginInput{
		Identifier: strings.TrimSpace(req.Username),
		Password:   req.Password,
	})
	if err != nil {
		// every login failure collapses to 401
		httperr.Unauthorized(c, "invalid_credentials", "Credenciales inválidas.")
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Login exitoso.",
		"token":   out.Token,
		"user":    publicUser(out.User),
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.profile.Execute(c.Request.Context(), userID)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"email":         user.Email,
		"phone":         user.Phone,
		"role":          user.Role,
		"registered_at": user.RegisteredAt,
	})
}

func publicUser(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"phone":      user.Phone,
		"role":       user.Role,
	}
}
