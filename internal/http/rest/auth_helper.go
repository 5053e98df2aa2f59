package rest

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/versehub/versehub_api/internal/model"
	"github.com/versehub/versehub_api/util"
	"github.com/versehub/versehub_api/util/values"
	"golang.org/x/crypto/bcrypt"
)

type TokenClaims struct {
	UserID string `json:"sub"`
	Type   string `json:"typ"`
	Role   int    `json:"role"`
	Exp    int64  `json:"exp"`
}

// Simplified token creation
func (api *API) createToken(id string, role int) (string, time.Time, error) {
	expTime, err := time.ParseDuration(api.Config.JwtExpires)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(expTime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  id, // subject (user ID)
		"role": role,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
		"typ":  "access",
	})

	tokenString, err := token.SignedString([]byte(api.Config.JwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (api *API) createRefreshToken(id string, role int) (string, time.Time, error) {
	expTime, err := time.ParseDuration(api.Config.RefreshExpiry)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(expTime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  id, // subject (user ID)
		"role": role,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
		"typ":  "refresh",
	})

	tokenString, err := token.SignedString([]byte(api.Config.RefreshSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

func (api *API) CreateNewUser(ctx context.Context, req model.RegisterRequest) (model.LoginUserResponse, string, string, error) {
	req.Email = strings.Trim(req.Email, " ")
	req.Username = strings.Trim(req.Username, " ")

	if !util.IsEmail(req.Email) {
		return model.LoginUserResponse{}, values.Unprocessable, "Invalid email address provided", nil
	}

	exists, err := api.UsernameOrEmailExists(ctx, req.Username, req.Email)
	if err != nil {
		return model.LoginUserResponse{}, values.Error, "Error checking username", err
	}
	if exists {
		return model.LoginUserResponse{}, values.Conflict, "Username or email already exists", nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.LoginUserResponse{}, values.Error, "Error hashing password", err
	}

	user := model.User{
		ID:           util.GenerateUUID(),
		Username:     req.Username,
		Displayname:  req.Displayname,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := api.CreateNewUserRepo(ctx, user); err != nil {
		return model.LoginUserResponse{}, values.Error, "Error creating new user", err
	}

	return model.LoginUserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Displayname: user.Displayname,
		Email:       user.Email,
		Role:        user.Role,
	}, values.Created, "User created successfully", nil
}

func (api *API) LoginUser(ctx context.Context, req model.LoginRequest) (model.LoginResponse, string, string, error) {
	user, err := api.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if err == ErrUserNotFound {
			return model.LoginResponse{}, values.NotAuthorised, "Invalid username or password", nil
		}
		return model.LoginResponse{}, values.Error, "Error fetching user", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.LoginResponse{}, values.NotAuthorised, "Invalid username or password", nil
	}

	token, _, err := api.createToken(user.ID.String(), user.Role)
	if err != nil {
		return model.LoginResponse{}, values.Error, "Error creating token", err
	}

	refreshToken, refreshExpiry, err := api.createRefreshToken(user.ID.String(), user.Role)
	if err != nil {
		return model.LoginResponse{}, values.Error, "Error creating refresh token", err
	}

	if err := api.StoreRefreshToken(ctx, user.ID.String(), refreshToken, refreshExpiry); err != nil {
		return model.LoginResponse{}, values.Error, "Error storing refresh token", err
	}

	return model.LoginResponse{
		User: &model.LoginUserResponse{
			ID:          user.ID,
			Username:    user.Username,
			Displayname: user.Displayname,
			Email:       user.Email,
			Role:        user.Role,
		},
		Token:        token,
		RefreshToken: refreshToken,
	}, values.Success, "Login successful", nil
}

func (api *API) RefreshTokens(ctx context.Context, refreshToken string) (model.LoginResponse, string, string, error) {
	claims, err := api.verifyToken(refreshToken, true)
	if err != nil {
		return model.LoginResponse{}, values.NotAuthorised, "Invalid refresh token", nil
	}

	if err := api.ValidateRefreshToken(ctx, refreshToken); err != nil {
		return model.LoginResponse{}, values.NotAuthorised, "Refresh token revoked or expired", nil
	}

	user, err := api.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return model.LoginResponse{}, values.NotAuthorised, "User no longer exists", nil
	}

	token, _, err := api.createToken(user.ID.String(), user.Role)
	if err != nil {
		return model.LoginResponse{}, values.Error, "Error creating token", err
	}

	newRefresh, refreshExpiry, err := api.createRefreshToken(user.ID.String(), user.Role)
	if err != nil {
		return model.LoginResponse{}, values.Error, "Error creating refresh token", err
	}

	if err := api.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return model.LoginResponse{}, values.Error, "Error revoking refresh token", err
	}
	if err := api.StoreRefreshToken(ctx, user.ID.String(), newRefresh, refreshExpiry); err != nil {
		return model.LoginResponse{}, values.Error, "Error storing refresh token", err
	}

	return model.LoginResponse{
		Token:        token,
		RefreshToken: newRefresh,
	}, values.Success, "Token refreshed", nil
}
