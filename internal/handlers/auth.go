package handlers

import (
	"net/http"
	"photogram/internal/db"
	"photogram/internal/models"
	"photogram/internal/utils"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", nil)
}

// Register validates the signup form and creates the user. Every failure
// re-renders the form without committing anything.
func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	fail := func(code int, msg string) {
		Render(c, code, "auth/register.html", gin.H{
			"Error":    msg,
			"Username": username,
			"Email":    email,
		})
	}

	if username == "" || email == "" || password == "" {
		fail(http.StatusBadRequest, "All fields are required")
		return
	}
	if password != confirm {
		fail(http.StatusBadRequest, "Passwords do not match")
		return
	}

	var existing models.User
	if err := db.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		fail(http.StatusConflict, "Username already taken")
		return
	}
	if err := db.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		fail(http.StatusConflict, "Email already registered")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		fail(http.StatusInternalServerError, "Could not create your account")
		return
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		// Unique indexes still hold the line if two signups race the
		// checks above.
		fail(http.StatusConflict, "Username or email already registered")
		return
	}

	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Success": "Your account has been created! You can now log in",
	})
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Next": c.Query("next")})
}

// Login checks credentials and establishes the session. The failure
// message is the same for an unknown username and a wrong password so the
// form cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	next := c.PostForm("next")

	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Error": "Login failed. Please check your username and password",
			"Next":  next,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	if next != "" && strings.HasPrefix(next, "/") {
		c.Redirect(http.StatusFound, next)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
