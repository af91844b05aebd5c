package users

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ativos.GO/api"
	coreAuth "ativos.GO/core/auth"
	"ativos.GO/core/errs"
	entity "ativos.GO/model/entity"
	userRepo "ativos.GO/model/repository/user"
)

var validRoles = map[string]bool{
	entity.RoleAdmin:      true,
	entity.RoleManager:    true,
	entity.RoleTechnician: true,
	entity.RoleViewer:     true,
}

// All routes here require the admin role.
func RegisterUserRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/users")

	users := userRepo.NewUserRepository(db)

	// GET /api/users – all accounts
	g.GET("", func(c echo.Context) error {
		if err := coreAuth.RequireAdmin(c); err != nil {
			return err
		}
		list, err := users.All()
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"users": list, "count": len(list)})
	})

	// POST /api/users – create an account
	g.POST("", func(c echo.Context) error {
		if err := coreAuth.RequireAdmin(c); err != nil {
			return err
		}
		var body struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Name     string `json:"name"`
			Role     string `json:"role"`
			Password string `json:"password"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Username == "" || body.Email == "" || body.Password == "" {
			return api.Error(c, errs.Validationf("username, email and password are required"))
		}
		if body.Role == "" {
			body.Role = entity.RoleViewer
		}
		if !validRoles[body.Role] {
			return api.Error(c, errs.Validationf("unknown role %q", body.Role))
		}
		if len(body.Password) < 6 {
			return api.Error(c, errs.Validationf("password must be at least 6 characters"))
		}

		hash, err := coreAuth.HashPassword(body.Password)
		if err != nil {
			return api.Error(c, err)
		}
		u := &entity.User{
			Username:     body.Username,
			Email:        body.Email,
			Name:         body.Name,
			Role:         body.Role,
			PasswordHash: hash,
			Active:       true,
		}
		if err := users.Create(u); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusCreated, u)
	})

	// POST /api/users/:id/toggle – enable or disable an account
	g.POST("/:id/toggle", func(c echo.Context) error {
		if err := coreAuth.RequireAdmin(c); err != nil {
			return err
		}
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}

		// An admin cannot lock themselves out.
		u, err := users.FindByID(id)
		if err != nil {
			return api.Error(c, err)
		}
		if claims := coreAuth.CurrentUser(c); claims != nil && claims.Username == u.Username {
			return api.Error(c, errs.Validationf("cannot disable your own account"))
		}

		active, err := users.Toggle(id)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"id": id, "active": active})
	})

	// PUT /api/users/:id/password – reset a password
	g.PUT("/:id/password", func(c echo.Context) error {
		if err := coreAuth.RequireAdmin(c); err != nil {
			return err
		}
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		var body struct {
			Password string `json:"password"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Password) < 6 {
			return api.Error(c, errs.Validationf("password must be at least 6 characters"))
		}
		if _, err := users.FindByID(id); err != nil {
			return api.Error(c, err)
		}
		hash, err := coreAuth.HashPassword(body.Password)
		if err != nil {
			return api.Error(c, err)
		}
		if err := users.UpdatePassword(id, hash); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"id": id, "status": "password updated"})
	})
}
