package middleware

import (
	"net/http"
	"strings"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase"
	"zap_shift/internal/usecase/interfaces"
	"zap_shift/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "unauthorized access", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "forbidden access", http.StatusForbidden)
)

// VerifyToken requires an `Authorization: Bearer <jwt>` header and stores the
// verified identity on the context.
func VerifyToken(verifier interfaces.ITokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("auth")

	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || verifier == nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), header)
		if err != nil {
			log.Debug("token rejected", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// VerifyAdmin must run after VerifyToken.
func VerifyAdmin(users usecase.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		role, err := users.GetRole(c.Request.Context(), identity.Email)
		if err != nil || role != entities.UserRoleAdmin {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func IdentityFrom(c *gin.Context) (interfaces.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return interfaces.Identity{}, false
	}
	identity, ok := v.(interfaces.Identity)
	return identity, ok
}
