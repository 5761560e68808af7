package handlers

import (
	portsrepo "github.com/gamepay/wallet-service/internal/core/ports/repositories"
	portssvc "github.com/gamepay/wallet-service/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	assetTypes portsrepo.AssetTypeReader,
) {
	RegisterMoneyValidator()

	// Add health check route
	r.GET("/health", getHealth)

	setupAPIV1Routes(r, services, assetTypes)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	assetTypes portsrepo.AssetTypeReader,
) {
	v1 := r.Group("/api/v1")

	registerTransactionRoutes(v1, services.Transaction)
	registerWalletRoutes(v1, services.Wallet)
	registerAssetTypeRoutes(v1, assetTypes)
}
