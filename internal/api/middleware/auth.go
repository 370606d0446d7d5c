package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/logger"
)

const PRINCIPAL_KEY = "principal"

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
}

// ScopeClaims are the JWT claims issued by the external identity provider.
// The subject is the principal ID; scope_level and scope_code define the
// caller's jurisdiction.
type ScopeClaims struct {
	jwt.RegisteredClaims
	ScopeLevel string `json:"scope_level"`
	ScopeCode  string `json:"scope_code"`
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success   bool
	Principal domain.Principal
	Error     error
}

// Authenticate validates the Authorization header and resolves the caller's
// principal and scope
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	result := AuthResult{Success: false}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	claims, err := validateJWT(parts[1], cfg.JWTPublicKey)
	if err != nil {
		result.Error = err
		return result
	}
	if claims.Subject == "" {
		result.Error = errors.New("token has no subject")
		return result
	}

	scope := domain.Scope{
		Level: domain.ScopeLevel(claims.ScopeLevel),
		Code:  domain.GeoCode(claims.ScopeCode),
	}
	if err := scope.Validate(); err != nil {
		result.Error = fmt.Errorf("invalid scope claims: %w", err)
		return result
	}

	result.Success = true
	result.Principal = domain.Principal{ID: claims.Subject, Scope: scope}
	return result
}

// Auth returns a gin middleware for JWT bearer authentication. On success the
// caller's principal is stored in the request context.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		result := Authenticate(authHeader, cfg)

		if !result.Success {
			logger.Warn("Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "unauthorized",
					"message": "Authentication failed",
					"details": result.Error.Error(),
				},
			})
			return
		}

		c.Set(PRINCIPAL_KEY, result.Principal)
		logger.Debug("Authentication successful",
			zap.String("path", c.Request.URL.Path),
			zap.String("principal_id", result.Principal.ID),
			zap.String("scope_level", string(result.Principal.Scope.Level)),
		)

		c.Next()
	}
}

// PrincipalFromContext retrieves the authenticated principal set by Auth
func PrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	value, ok := c.Get(PRINCIPAL_KEY)
	if !ok {
		return domain.Principal{}, false
	}
	principal, ok := value.(domain.Principal)
	return principal, ok
}

// validateJWT validates a JWT token with RSA signature and returns claims
func validateJWT(tokenString string, publicKeyPEM string) (*ScopeClaims, error) {
	if publicKeyPEM == "" {
		return nil, errors.New("JWT public key not configured")
	}

	publicKey, err := parseRSAPublicKey(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	claims := &ScopeClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method is RSA
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	now := time.Now()
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(now) {
		return nil, errors.New("token has expired")
	}
	if claims.NotBefore != nil && claims.NotBefore.After(now) {
		return nil, errors.New("token not yet valid")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
