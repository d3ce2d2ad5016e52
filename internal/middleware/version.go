package middleware

import (
	"net/http"
	"regexp"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
)

// APIVersion represents API version information
type APIVersion struct {
	Version    string     `json:"version"`
	Status     string     `json:"status"` // "active" or "deprecated"
	SunsetDate *time.Time `json:"sunset_date,omitempty"`
	Message    string     `json:"message,omitempty"`
}

var versionPrefix = regexp.MustCompile(`^/(v[1-9][0-9]*)(/|$)`)

// VersionMiddleware tags responses with the API version they were served by.
type VersionMiddleware struct {
	supportedVersions map[string]APIVersion
	defaultVersion    string
}

func NewVersionMiddleware() *VersionMiddleware {
	return &VersionMiddleware{
		supportedVersions: map[string]APIVersion{
			"v1": {Version: "v1", Status: "active", Message: "Current stable API version"},
		},
		defaultVersion: "v1",
	}
}

// VersionRoute creates a group under /<version> that sets the version headers.
func (vm *VersionMiddleware) VersionRoute(e *echo.Echo, version string) *echo.Group {
	group := e.Group("/" + version)
	group.Use(vm.VersionHeader(version))
	return group
}

// VersionHeader adds X-API-Version, and deprecation headers when the version is being retired.
func (vm *VersionMiddleware) VersionHeader(version string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-API-Version", version)
			if ver, ok := vm.supportedVersions[version]; ok && ver.Status == "deprecated" {
				h.Set("X-API-Deprecated", "true")
				if ver.SunsetDate != nil {
					h.Set("X-API-Sunset", ver.SunsetDate.Format(time.RFC3339))
					h.Set("Warning", `299 trustcart "This API version is deprecated and will be removed on `+ver.SunsetDate.Format("2006-01-02")+`"`)
				}
			}
			return next(c)
		}
	}
}

// APIVersionResolver rejects unknown /vN prefixes and records the version on the context.
func (vm *VersionMiddleware) APIVersionResolver() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			version := vm.defaultVersion
			if m := versionPrefix.FindStringSubmatch(c.Request().URL.Path); m != nil {
				if _, ok := vm.supportedVersions[m[1]]; !ok {
					return c.JSON(http.StatusNotFound, map[string]interface{}{
						"error":              "Unsupported API version",
						"supported_versions": vm.versions(),
					})
				}
				version = m[1]
			}
			c.Set("api_version", version)
			return next(c)
		}
	}
}

// Deprecate marks version as deprecated with an optional sunset date.
func (vm *VersionMiddleware) Deprecate(version, message string, sunsetDate *time.Time) {
	vm.supportedVersions[version] = APIVersion{
		Version:    version,
		Status:     "deprecated",
		SunsetDate: sunsetDate,
		Message:    message,
	}
}

func (vm *VersionMiddleware) versions() []string {
	out := make([]string, 0, len(vm.supportedVersions))
	for v := range vm.supportedVersions {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
