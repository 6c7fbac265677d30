package services

import (
	"log"
	"net/http"

	"github.com/pressfeedhq/pressfeed/config"
	"github.com/pressfeedhq/pressfeed/db"
	apiError "github.com/pressfeedhq/pressfeed/errors"
	"github.com/pressfeedhq/pressfeed/models"
	"github.com/pressfeedhq/pressfeed/services/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService interface
type AuthService interface {
	SignupUser(request *models.SignupRequest) (*models.User, error)
	LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, error)
	LogoutUser(accessToken string) error
}

// authService struct
type authService struct {
	Config   *config.Config
	authRepo db.AuthRepository
}

// NewAuthService instantiate an authService
func NewAuthService(authRepo db.AuthRepository, conf *config.Config) AuthService {
	return &authService{
		Config:   conf,
		authRepo: authRepo,
	}
}

func (a *authService) SignupUser(request *models.SignupRequest) (*models.User, error) {
	if err := models.ConformInput(request); err != nil {
		return nil, apiError.ErrBadRequest
	}

	if err := models.ValidatePassword(request.Password); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}

	if err := a.authRepo.IsEmailExist(request.Email); err != nil {
		return nil, apiError.New("email already in use", http.StatusConflict)
	}
	if err := a.authRepo.IsUsernameExist(request.Username); err != nil {
		return nil, apiError.New("username already in use", http.StatusConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("SignupUser error hashing password: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	user := &models.User{
		Fullname:       request.Fullname,
		Username:       request.Username,
		Email:          request.Email,
		HashedPassword: string(hashedPassword),
	}
	user, err = a.authRepo.CreateUser(user)
	if err != nil {
		log.Printf("SignupUser error creating user: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return user, nil
}

func (a *authService) LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, error) {
	foundUser, err := a.authRepo.FindUserByEmail(loginRequest.Email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apiError.New("invalid email or password", http.StatusUnauthorized)
		}
		log.Printf("LoginUser lookup error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if err := foundUser.VerifyPassword(loginRequest.Password); err != nil {
		return nil, apiError.New("invalid email or password", http.StatusUnauthorized)
	}

	accessToken, refreshToken, err := jwt.GenerateTokenPair(foundUser.Email, a.Config.JWTSecret, foundUser.ID, foundUser.Username)
	if err != nil {
		log.Printf("LoginUser token error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.LoginResponse{
		UserResponse: foundUser.Response(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// LogoutUser revokes the access token by blacklisting it.
func (a *authService) LogoutUser(accessToken string) error {
	blacklist := &models.Blacklist{Token: accessToken}
	if err := a.authRepo.AddToBlackList(blacklist); err != nil {
		log.Printf("LogoutUser blacklist error: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}
