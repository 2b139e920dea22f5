package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"photogram/internal/db"
	"photogram/internal/middleware"
	"photogram/internal/models"
	"photogram/internal/services"
	"photogram/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	store *services.LocalStore
}

func NewUserHandler(store *services.LocalStore) *UserHandler {
	return &UserHandler{store: store}
}

// Profile - /profile/:username
func (h *UserHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	posts, err := services.PostsBy(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	isFollowing := false
	if viewer := middleware.CurrentUser(c); viewer != nil {
		isFollowing = services.IsFollowing(viewer.ID, user.ID)
	}

	Render(c, http.StatusOK, "user/profile.html", gin.H{
		"Title":          user.Username,
		"User":           user,
		"Posts":          posts,
		"IsFollowing":    isFollowing,
		"FollowerCount":  services.FollowerCount(user.ID),
		"FollowingCount": services.FollowingCount(user.ID),
		"Error":          c.Query("error"),
	})
}

// Follow - POST /follow/:username
func (h *UserHandler) Follow(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	username := c.Param("username")

	var target models.User
	if err := db.DB.Where("username = ?", username).First(&target).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := services.Follow(viewer.ID, target.ID); err != nil {
		if errors.Is(err, services.ErrSelfFollow) {
			c.Redirect(http.StatusFound, "/profile/"+username+"?error="+url.QueryEscape(err.Error()))
			return
		}
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username)
}

// Unfollow - POST /unfollow/:username
func (h *UserHandler) Unfollow(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	username := c.Param("username")

	var target models.User
	if err := db.DB.Where("username = ?", username).First(&target).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := services.Unfollow(viewer.ID, target.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username)
}

// ShowEditProfile - GET /edit_profile
func (h *UserHandler) ShowEditProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	Render(c, http.StatusOK, "user/edit_profile.html", gin.H{
		"Title": "Edit profile",
		"User":  user,
	})
}

// EditProfile updates the bio and optionally replaces the avatar. These
// are the only mutations a user row ever sees.
func (h *UserHandler) EditProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	updates := map[string]interface{}{
		"bio": utils.SanitizeText(c.PostForm("bio")),
	}

	file, header, err := c.Request.FormFile("profile_image")
	if err == nil && header != nil && header.Filename != "" {
		defer file.Close()
		key, err := h.store.SaveProfile(file, header)
		if err != nil {
			Render(c, http.StatusBadRequest, "user/edit_profile.html", gin.H{
				"Title": "Edit profile",
				"User":  user,
				"Error": err.Error(),
			})
			return
		}
		updates["avatar"] = key
	}

	if err := db.DB.Model(user).Updates(updates).Error; err != nil {
		Render(c, http.StatusInternalServerError, "user/edit_profile.html", gin.H{
			"Title": "Edit profile",
			"User":  user,
			"Error": "Could not update your profile",
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}
