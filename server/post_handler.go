package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	errs "github.com/pressfeedhq/pressfeed/errors"
	"github.com/pressfeedhq/pressfeed/models"
	"github.com/pressfeedhq/pressfeed/server/response"
	"github.com/pressfeedhq/pressfeed/services"
)

func (s *Server) handleCreatePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.CreatePostRequest
		if err := c.ShouldBind(&request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		// The image is optional; when present it goes through the media
		// pipeline before the post row is written.
		var imageURL string
		file, fileHeader, err := c.Request.FormFile("image")
		if err == nil {
			if err := services.ValidateImageFile(fileHeader); err != nil {
				response.JSON(c, "", http.StatusBadRequest, nil, err)
				return
			}
			imageURL, err = s.MediaService.UploadPostImage(file, fileHeader)
			if err != nil {
				response.JSON(c, "Failed to store image", http.StatusInternalServerError, nil, err)
				return
			}
		}

		post, err := s.PostService.CreatePost(currentUserID(c), &request, imageURL)
		if err != nil {
			respondWithServiceError(c, err)
			return
		}

		response.JSON(c, "Post created successfully", http.StatusCreated, post, nil)
	}
}

func (s *Server) handleGetPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, err := parsePostID(c)
		if err != nil {
			response.JSON(c, "", http.StatusNotFound, nil, errs.ErrNotFound)
			return
		}

		detail, err := s.PostService.GetPostDetail(postID)
		if err != nil {
			respondWithServiceError(c, err)
			return
		}

		response.JSON(c, "Post retrieved successfully", http.StatusOK, detail, nil)
	}
}

func (s *Server) handleEditPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, err := parsePostID(c)
		if err != nil {
			response.JSON(c, "", http.StatusNotFound, nil, errs.ErrNotFound)
			return
		}

		var request models.UpdatePostRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		post, err := s.PostService.UpdatePost(currentUserID(c), postID, &request)
		if err != nil {
			// Non-authors are sent back to the post detail view, not told off.
			if err == services.ErrNotPostAuthor {
				c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/v1/posts/%d", postID))
				return
			}
			respondWithServiceError(c, err)
			return
		}

		response.JSON(c, "Post updated successfully", http.StatusOK, post, nil)
	}
}

func parsePostID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
