package httpserver

import (
	"context"
	"log"

	"grocerpos/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// catalogStore is the slice of the product repository the handlers need.
type catalogStore interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	ReduceStock(ctx context.Context, items []domain.CartLine) error
}

// Deps carries the handler dependencies.
type Deps struct {
	Catalog catalogStore
}

// buildRouter wires routes for the API. The terminal screens are browser-era
// clients, so CORS stays permissive.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.Catalog, logger))
		api.POST("/products", createProductHandler(deps.Catalog, logger))
		api.PUT("/products", updateProductHandler(deps.Catalog, logger))
		api.DELETE("/products", deleteProductHandler(deps.Catalog, logger))
		api.POST("/reducestock", reduceStockHandler(deps.Catalog, logger))
	}

	return router
}
