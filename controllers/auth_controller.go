package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"holidayapi/dto"
	"holidayapi/middlewares"
	"holidayapi/models"
	"holidayapi/response"
	"holidayapi/services"
)

type AuthController struct {
	users  *services.UserService
	tokens *services.TokenService
	log    *zap.Logger
}

func NewAuthController(users *services.UserService, tokens *services.TokenService, log *zap.Logger) *AuthController {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthController{users: users, tokens: tokens, log: log}
}

// SignUp godoc
// @Summary  Create an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body  body      dto.SignUpRequest  true  "Account"
// @Success  201   {object}  dto.AuthResponse
// @Failure  400   {object}  response.ErrorResponse
// @Failure  409   {object}  response.FailureResponse
// @Router   /auth/sign-up [post]
func (a *AuthController) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Name, a valid email and a password of at least 6 characters are required")
		return
	}

	user, err := a.users.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, services.ErrEmailTaken) {
		response.Conflict(c, "Email is already registered")
		return
	}
	if err != nil {
		a.log.Error("sign-up failed", zap.Error(err))
		response.ServerError(c, "Failed to create account")
		return
	}

	token, err := a.tokens.GenerateToken(user.ID)
	if err != nil {
		a.log.Error("token generation failed", zap.Error(err))
		response.ServerError(c, "Failed to create account")
		return
	}

	response.Created(c, dto.AuthResponse{
		Success:     true,
		Message:     "Account created",
		AccessToken: token,
		User:        toUserResponse(user),
	})
}

// SignIn godoc
// @Summary  Sign in
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body  body      dto.SignInRequest  true  "Credentials"
// @Success  200   {object}  dto.AuthResponse
// @Failure  400   {object}  response.ErrorResponse
// @Failure  401   {object}  response.FailureResponse
// @Router   /auth/sign-in [post]
func (a *AuthController) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Email and password are required")
		return
	}

	user, err := a.users.SignIn(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		response.Unauthorized(c)
		return
	}
	if err != nil {
		a.log.Error("sign-in failed", zap.Error(err))
		response.ServerError(c, "Failed to sign in")
		return
	}

	token, err := a.tokens.GenerateToken(user.ID)
	if err != nil {
		a.log.Error("token generation failed", zap.Error(err))
		response.ServerError(c, "Failed to sign in")
		return
	}

	response.Success(c, dto.AuthResponse{
		Success:     true,
		Message:     "Signed in",
		AccessToken: token,
		User:        toUserResponse(user),
	})
}

// SignOut godoc
// @Summary   Sign out
// @Tags      auth
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  dto.MessageResponse
// @Failure   401  {object}  response.FailureResponse
// @Router    /auth/sign-out [post]
func (a *AuthController) SignOut(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if err := a.tokens.RevokeToken(c.Request.Context(), claims); err != nil {
		a.log.Error("token revocation failed", zap.Error(err))
		response.ServerError(c, "Failed to sign out")
		return
	}

	c.SetCookie(middlewares.TokenCookie, "", -1, "/", "", false, true)
	response.Success(c, dto.MessageResponse{Success: true, Message: "Signed out"})
}

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
