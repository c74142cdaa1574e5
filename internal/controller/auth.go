package controller

import (
	"net/http"
	"time"

	"gig-marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo"
)

const tokenTTL = 24 * time.Hour

type authRoutesHandler struct {
	userService service.User
	validate    *validator.Validate
	secret      []byte
}

func newAuthRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, secret []byte, auth *authMiddleware) *authRoutesHandler {
	h := &authRoutesHandler{userService: services.User, validate: v, secret: secret}
	outer.POST("/auth/register", h.Register)
	outer.POST("/auth/login", h.Login)
	outer.POST("/auth/logout", h.Logout)
	outer.GET("/auth/me", h.Me, auth.Authenticate)

	return h
}

type registerInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// /auth/register
func (h *authRoutesHandler) Register(c echo.Context) error {
	var input registerInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	user, err := h.userService.Register(c.Request().Context(), input.Name, input.Email, input.Password)
	if err == nil {
		if e := h.setTokenCookie(c, user.Id); e != nil {
			return e
		}

		if e := c.JSON(http.StatusCreated, user); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrEmailAlreadyTaken:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"A user with this email already exists"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// /auth/login
func (h *authRoutesHandler) Login(c echo.Context) error {
	var input loginInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	user, err := h.userService.Login(c.Request().Context(), input.Email, input.Password)
	if err == nil {
		if e := h.setTokenCookie(c, user.Id); e != nil {
			return e
		}

		if e := c.JSON(http.StatusOK, user); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidCredentials:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Invalid email or password"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /auth/logout
func (h *authRoutesHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	if e := c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"}); e != nil {
		return e
	}

	return nil
}

// /auth/me
func (h *authRoutesHandler) Me(c echo.Context) error {
	user, err := h.userService.GetUserById(c.Request().Context(), requesterId(c))
	if err == nil {
		if e := c.JSON(http.StatusOK, user); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"User no longer exists"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

func (h *authRoutesHandler) setTokenCookie(c echo.Context, userId string) error {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userId,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(tokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
