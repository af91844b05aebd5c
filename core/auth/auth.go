package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ativos.GO/config"
	"ativos.GO/core/errs"
	entity "ativos.GO/model/entity"
	userRepo "ativos.GO/model/repository/user"
)

// Claims carried in every issued token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

const claimsKey = "auth.claims"

// HashPassword returns a bcrypt hash for storage.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Login validates the credentials and returns a signed token plus the
// authenticated user.
func Login(db *gorm.DB, username, password string) (string, *entity.User, error) {
	repo := userRepo.NewUserRepository(db)
	u, err := repo.FindByUsername(username)
	if err != nil {
		if errs.IsNotFound(err) {
			return "", nil, errs.Validationf("invalid credentials")
		}
		return "", nil, err
	}
	if !u.Active {
		return "", nil, errs.Validationf("account disabled")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, errs.Validationf("invalid credentials")
	}

	now := time.Now()
	claims := &Claims{
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(u.ID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(config.AppConfig.TokenTTLMin) * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.TokenSecret))
	if err != nil {
		return "", nil, err
	}

	if err := repo.TouchLastLogin(u.ID); err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// ChangePassword verifies the current password and stores a new hash.
func ChangePassword(db *gorm.DB, username, current, next string) error {
	if len(next) < 6 {
		return errs.Validationf("password must be at least 6 characters")
	}
	repo := userRepo.NewUserRepository(db)
	u, err := repo.FindByUsername(username)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)) != nil {
		return errs.Validationf("current password is wrong")
	}
	hash, err := HashPassword(next)
	if err != nil {
		return err
	}
	return repo.UpdatePassword(u.ID, hash)
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.TokenSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Logout revokes the token until its natural expiry. Without redis
// tokens stay valid until they expire on their own.
func Logout(raw string) error {
	claims, err := ParseToken(raw)
	if err != nil {
		return errs.Validationf("invalid token")
	}
	if config.RedisClient == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return config.RedisClient.Set(config.RedisCtx(), "revoked:"+claims.ID, "1", ttl).Err()
}

func isRevoked(claims *Claims) bool {
	if config.RedisClient == nil || claims.ID == "" {
		return false
	}
	n, err := config.RedisClient.Exists(config.RedisCtx(), "revoked:"+claims.ID).Result()
	return err == nil && n > 0
}

// Middleware returns the bearer-token guard for the API group. Paths
// listed by config.GetAuthSkipperPaths pass through unauthenticated.
func Middleware() echo.MiddlewareFunc {
	skip := map[string]bool{}
	for _, p := range config.GetAuthSkipperPaths() {
		skip[p] = true
	}
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			return skip[c.Path()]
		},
		Validator: func(key string, c echo.Context) (bool, error) {
			claims, err := ParseToken(key)
			if err != nil {
				return false, nil
			}
			if isRevoked(claims) {
				return false, nil
			}
			c.Set(claimsKey, claims)
			return true, nil
		},
	})
}

// CurrentUser returns the claims set by Middleware, or nil on skipped
// routes.
func CurrentUser(c echo.Context) *Claims {
	claims, _ := c.Get(claimsKey).(*Claims)
	return claims
}

// RequireAdmin guards admin-only handlers.
func RequireAdmin(c echo.Context) error {
	claims := CurrentUser(c)
	if claims == nil || claims.Role != entity.RoleAdmin {
		return echo.NewHTTPError(403, "admin privileges required")
	}
	return nil
}

// ActorName returns the username for audit entries, "system" when the
// request carries no token.
func ActorName(c echo.Context) string {
	if claims := CurrentUser(c); claims != nil {
		return claims.Username
	}
	return "system"
}
