package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode switches gin to release mode for production deployments; every
// other environment keeps the default debug output.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}
