package auth

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/internal/errors"
	"codeberg.org/zenfocus/server/zenfocus/users"
)

// a valid bcrypt hash that matches no password. Login compares against
// it when the email is unknown so both failure paths do the same work
// and produce the same response.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// RegisterHandler creates a new account. No token is issued; the
// client logs in afterwards.
func RegisterHandler(userStore users.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// the plaintext is hashed immediately and never stored or logged
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			errors.InternalError(c, "failed to register user", err)
			return
		}

		_, err = userStore.Create(c.Request.Context(), req.Username, req.Email, string(hash))
		if err != nil {
			if stderrors.Is(err, users.ErrDuplicate) {
				errors.AlreadyExists(c, "email already exists")
				return
			}
			errors.InternalError(c, "failed to register user", err)
			return
		}

		c.JSON(http.StatusCreated, MessageResponse{Message: "user registered successfully"})
	}
}

// LoginHandler verifies credentials and issues a signed token. Unknown
// email and wrong password are deliberately indistinguishable to the
// caller.
func LoginHandler(userStore users.Store, codec *auth.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := userStore.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if stderrors.Is(err, users.ErrNotFound) {
				_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(req.Password))
				errors.InvalidCredentials(c)
				return
			}
			errors.InternalError(c, "failed to log in", err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			errors.InvalidCredentials(c)
			return
		}

		token, err := codec.Encode(user.ID, user.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, LoginResponse{
			Token: token,
			User:  user.Public(),
		})
	}
}

// LogoutHandler is advisory only: tokens are stateless, so logout is
// the client discarding its copy
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{
			Message: "logout successful, remove the token from client storage",
		})
	}
}

// MeHandler returns the authenticated caller's profile
func MeHandler(userStore users.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		user, err := userStore.FindByID(c.Request.Context(), userID)
		if err != nil {
			if stderrors.Is(err, users.ErrNotFound) {
				errors.NotFound(c, "user")
				return
			}
			errors.InternalError(c, "failed to load profile", err)
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}
