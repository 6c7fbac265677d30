package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pressfeedhq/pressfeed/server/response"
	"github.com/pressfeedhq/pressfeed/services"
)

func (s *Server) handleGlobalFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := services.ParsePage(c.Query("page"))
		feed, err := s.FeedService.Global(page)
		if err != nil {
			respondWithServiceError(c, err)
			return
		}
		response.JSON(c, "Posts retrieved successfully", http.StatusOK, feed, nil)
	}
}

func (s *Server) handleGroupFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		page := services.ParsePage(c.Query("page"))
		feed, err := s.FeedService.ByGroup(slug, page)
		if err != nil {
			respondWithServiceError(c, err)
			return
		}
		response.JSON(c, "Group posts retrieved successfully", http.StatusOK, feed, nil)
	}
}

func (s *Server) handleProfileFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		page := services.ParsePage(c.Query("page"))
		feed, err := s.FeedService.ByAuthor(username, s.viewerID(c), page)
		if err != nil {
			respondWithServiceError(c, err)
			return
		}
		response.JSON(c, "Profile retrieved successfully", http.StatusOK, feed, nil)
	}
}

func (s *Server) handleFollowedFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := services.ParsePage(c.Query("page"))
		feed, err := s.FeedService.Followed(currentUserID(c), page)
		if err != nil {
			respondWithServiceError(c, err)
			return
		}
		response.JSON(c, "Followed posts retrieved successfully", http.StatusOK, feed, nil)
	}
}

func (s *Server) handleListGroups() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := s.GroupRepository.GetAllGroups()
		if err != nil {
			respondWithServiceError(c, err)
			return
		}
		response.JSON(c, "Groups retrieved successfully", http.StatusOK, groups, nil)
	}
}
