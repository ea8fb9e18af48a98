package cookie

import (
	"net/http"
	"time"

	"gym-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	// RefreshTokenPath limits the refresh cookie to the auth endpoints that consume it.
	RefreshTokenPath = "/api/auth"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	set(c, cfg, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()), "/")
	set(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()), RefreshTokenPath)
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AccessTokenCookieName, "", -1, "/")
	set(c, cfg, RefreshTokenCookieName, "", -1, RefreshTokenPath)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int, path string) {
	sameSite := parseSameSite(cfg.SameSite)
	c.SetSameSite(sameSite)
	// Browsers drop SameSite=None cookies that are not Secure.
	secure := cfg.Secure || sameSite == http.SameSiteNoneMode
	c.SetCookie(name, value, maxAge, path, cfg.Domain, secure, true)
}

func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
