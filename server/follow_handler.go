package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pressfeedhq/pressfeed/server/response"
)

func (s *Server) handleFollow() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		if err := s.FollowService.Follow(currentUserID(c), username); err != nil {
			respondWithServiceError(c, err)
			return
		}
		response.JSON(c, "Now following "+username, http.StatusCreated, nil, nil)
	}
}

func (s *Server) handleUnfollow() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		if err := s.FollowService.Unfollow(currentUserID(c), username); err != nil {
			respondWithServiceError(c, err)
			return
		}
		response.JSON(c, "Unfollowed "+username, http.StatusOK, nil, nil)
	}
}
