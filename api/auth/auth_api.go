package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ativos.GO/api"
	coreAuth "ativos.GO/core/auth"
)

func RegisterAuthRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/auth")

	// POST /api/auth/login – exchange credentials for a bearer token
	g.POST("/login", func(c echo.Context) error {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Username == "" || body.Password == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
		}

		token, u, err := coreAuth.Login(db, body.Username, body.Password)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"token": token,
			"user": echo.Map{
				"id": u.ID, "username": u.Username, "name": u.Name, "role": u.Role,
			},
		})
	})

	// POST /api/auth/logout – revoke the current token
	g.POST("/logout", func(c echo.Context) error {
		raw := strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		if raw == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing bearer token"})
		}
		if err := coreAuth.Logout(raw); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "logged out"})
	})

	// PUT /api/auth/password – change own password
	g.PUT("/password", func(c echo.Context) error {
		claims := coreAuth.CurrentUser(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
		}
		var body struct {
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := coreAuth.ChangePassword(db, claims.Username, body.CurrentPassword, body.NewPassword); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "password updated"})
	})

	// GET /api/auth/me – claims of the authenticated user
	g.GET("/me", func(c echo.Context) error {
		claims := coreAuth.CurrentUser(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"username":   claims.Username,
			"role":       claims.Role,
			"expires_at": claims.ExpiresAt.Time,
		})
	})
}
