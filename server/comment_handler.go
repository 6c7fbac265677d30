package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/pressfeedhq/pressfeed/errors"
	"github.com/pressfeedhq/pressfeed/models"
	"github.com/pressfeedhq/pressfeed/server/response"
)

func (s *Server) handleAddComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, err := parsePostID(c)
		if err != nil {
			response.JSON(c, "", http.StatusNotFound, nil, errs.ErrNotFound)
			return
		}

		var request models.CreateCommentRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		comment, err := s.CommentService.AddComment(postID, currentUserID(c), request.Text)
		if err != nil {
			respondWithServiceError(c, err)
			return
		}

		response.JSON(c, "Comment added successfully", http.StatusCreated, comment, nil)
	}
}
