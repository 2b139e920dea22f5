package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"photogram/internal/db"
	"photogram/internal/middleware"
	"photogram/internal/models"
	"photogram/internal/services"
	"photogram/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	store *services.LocalStore
}

func NewPostHandler(store *services.LocalStore) *PostHandler {
	return &PostHandler{store: store}
}

// Index - the home feed. Logged-in viewers get posts from themselves and
// everyone they follow; anonymous viewers get the global feed.
func (h *PostHandler) Index(c *gin.Context) {
	var (
		posts []models.Post
		err   error
	)
	if viewer := middleware.CurrentUser(c); viewer != nil {
		posts, err = services.FeedFor(viewer.ID)
	} else {
		posts, err = services.GlobalFeed()
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	Render(c, http.StatusOK, "post/feed.html", gin.H{
		"Title": "Feed",
		"Posts": posts,
	})
}

// Explore - all posts regardless of the follow graph.
func (h *PostHandler) Explore(c *gin.Context) {
	posts, err := services.GlobalFeed()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	Render(c, http.StatusOK, "post/explore.html", gin.H{
		"Title": "Explore",
		"Posts": posts,
	})
}

// Detail - GET /post/:id
func (h *PostHandler) Detail(c *gin.Context) {
	postID := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("User").First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	comments, err := services.CommentsFor(post.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	isLiked := false
	if viewer := middleware.CurrentUser(c); viewer != nil {
		isLiked = services.IsLiked(viewer.ID, post.ID)
	}

	Render(c, http.StatusOK, "post/detail.html", gin.H{
		"Title":     fmt.Sprintf("Post by %s", post.User.Username),
		"Post":      post,
		"Comments":  comments,
		"LikeCount": services.LikeCount(post.ID),
		"IsLiked":   isLiked,
		"Error":     c.Query("error"),
	})
}

// ShowCreate - GET /create
func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "post/create.html", gin.H{"Title": "New post"})
}

// Create - POST /create. Stores the image first; the post row is only
// written once the upload landed, so a storage failure commits nothing.
func (h *PostHandler) Create(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		Render(c, http.StatusBadRequest, "post/create.html", gin.H{
			"Title": "New post",
			"Error": services.ErrNoFile.Error(),
		})
		return
	}
	defer file.Close()

	key, err := h.store.Save(file, header)
	if err != nil {
		code := http.StatusBadRequest
		if !errors.Is(err, services.ErrNoFile) &&
			!errors.Is(err, services.ErrBadFileType) &&
			!errors.Is(err, services.ErrTooLarge) {
			code = http.StatusInternalServerError
		}
		Render(c, code, "post/create.html", gin.H{
			"Title": "New post",
			"Error": err.Error(),
		})
		return
	}

	post := models.Post{
		UserID:    viewer.ID,
		ImageFile: key,
		Caption:   utils.SanitizeText(c.PostForm("caption")),
	}
	if err := db.DB.Create(&post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not create your post")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

// Like - POST /like/:id. Toggles, then sends the user back where they
// came from (feed or detail page), falling back to the home feed.
func (h *PostHandler) Like(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	postID := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if _, err := services.ToggleLike(viewer.ID, post.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	next := c.Request.Referer()
	if next == "" {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

// CreateComment - POST /comment/:id
func (h *PostHandler) CreateComment(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	postID := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if _, err := services.AddComment(viewer.ID, post.ID, c.PostForm("content")); err != nil {
		if errors.Is(err, services.ErrEmptyComment) {
			c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d?error=%s", post.ID, "Comment+cannot+be+empty"))
			return
		}
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}
