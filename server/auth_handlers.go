package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/pressfeedhq/pressfeed/errors"
	"github.com/pressfeedhq/pressfeed/models"
	"github.com/pressfeedhq/pressfeed/server/response"
)

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.SignupRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		user, err := s.AuthService.SignupUser(&request)
		if err != nil {
			respondWithServiceError(c, err)
			return
		}

		response.JSON(c, "Signup successful", http.StatusCreated, user.Response(), nil)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var loginRequest models.LoginRequest
		if err := c.ShouldBindJSON(&loginRequest); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		loginResponse, err := s.AuthService.LoginUser(&loginRequest)
		if err != nil {
			respondWithServiceError(c, err)
			return
		}

		response.JSON(c, "Login successful", http.StatusOK, loginResponse, nil)
	}
}

func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := getTokenFromHeader(c)
		if err := s.AuthService.LogoutUser(accessToken); err != nil {
			respondWithServiceError(c, err)
			return
		}
		response.JSON(c, "Logout successful", http.StatusOK, nil, nil)
	}
}

// respondWithServiceError maps service errors onto the response envelope,
// keeping the status the service chose when it chose one.
func respondWithServiceError(c *gin.Context, err error) {
	if apiErr, ok := err.(*errs.Error); ok {
		response.JSON(c, "", apiErr.Status, nil, apiErr)
		return
	}
	response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
}
