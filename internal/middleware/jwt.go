package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"trustcart/internal/common"
	"trustcart/internal/services"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionContextKey is where the verified claims are stored on the echo context.
const SessionContextKey = "session"

var (
	errTokenRevoked   = errors.New("token has been revoked")
	errInvalidSubject = errors.New("token subject is not a user id")
)

// TokenParser verifies a bearer token and returns its claims.
type TokenParser interface {
	ParseToken(tokenString string) (*services.SessionClaims, error)
}

// RevocationChecker reports whether a token id was logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// JWTMiddleware authenticates requests with a bearer token and stores the
// session identity on the request context. A revocation lookup that fails is
// logged and the token is accepted.
func JWTMiddleware(parser TokenParser, revocations RevocationChecker, logger *zap.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: SessionContextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			claims, err := parser.ParseToken(auth)
			if err != nil {
				return nil, err
			}
			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return nil, errInvalidSubject
			}

			ctx := c.Request().Context()
			if claims.ID != "" {
				revoked, err := revocations.IsRevoked(ctx, claims.ID)
				if err != nil {
					logger.Warn("revocation lookup failed", zap.String("token_id", claims.ID), zap.Error(err))
				} else if revoked {
					return nil, errTokenRevoked
				}
			}

			var expiresAt time.Time
			if claims.ExpiresAt != nil {
				expiresAt = claims.ExpiresAt.Time
			}
			c.SetRequest(c.Request().WithContext(common.WithSession(ctx, userID, claims.ID, expiresAt)))
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Debug("rejected token", zap.String("path", c.Path()), zap.Error(err))
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	})
}

// JWKSParser verifies tokens signed by an external identity provider whose
// keys are published as a JWKS document.
type JWKSParser struct {
	jwks *keyfunc.JWKS
}

// NewJWKSParser fetches the key set at jwksURL and keeps it refreshed in the background.
func NewJWKSParser(jwksURL string, logger *zap.Logger) (*JWKSParser, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			logger.Warn("jwks refresh failed", zap.String("url", jwksURL), zap.Error(err))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load JWKS: %w", err)
	}
	return &JWKSParser{jwks: jwks}, nil
}

func (p *JWKSParser) ParseToken(tokenString string) (*services.SessionClaims, error) {
	claims := &services.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, p.jwks.Keyfunc,
		jwt.WithAudience(services.TokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// Close stops the background key refresh.
func (p *JWKSParser) Close() {
	p.jwks.EndBackground()
}

// ParserChain accepts a token when any of its parsers does. It lets sessions
// issued by this service and tokens from an external provider coexist.
type ParserChain []TokenParser

func (pc ParserChain) ParseToken(tokenString string) (*services.SessionClaims, error) {
	errs := make([]error, 0, len(pc))
	for _, p := range pc {
		claims, err := p.ParseToken(tokenString)
		if err == nil {
			return claims, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}
