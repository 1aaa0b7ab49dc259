package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"grocerpos/internal/domain"
	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
	Stock float64 `json:"stock"`
}

type updateProductRequest struct {
	ID    string  `json:"id" binding:"required"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
	Stock float64 `json:"stock"`
}

type deleteProductRequest struct {
	ID string `json:"id" binding:"required"`
}

type reduceStockRequest struct {
	Items []reduceStockItem `json:"items" binding:"required"`
}

type reduceStockItem struct {
	ID       string  `json:"id"`
	Quantity float64 `json:"quantity"`
}

func listProductsHandler(store catalogStore, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.List(c.Request.Context())
		if err != nil {
			logger.Printf("list products: %v", err)
			respondError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func createProductHandler(store catalogStore, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := validateFields(req.Name, req.Price, req.Stock); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		created, err := store.Create(c.Request.Context(), domain.Product{
			Name:  strings.TrimSpace(req.Name),
			Image: req.Image,
			Price: req.Price,
			Stock: req.Stock,
		})
		if err != nil {
			logger.Printf("create product: %v", err)
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateProductHandler(store catalogStore, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := validateFields(req.Name, req.Price, req.Stock); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		updated, err := store.Update(c.Request.Context(), domain.Product{
			ID:    req.ID,
			Name:  strings.TrimSpace(req.Name),
			Image: req.Image,
			Price: req.Price,
			Stock: req.Stock,
		})
		if err != nil {
			logger.Printf("update product id=%s: %v", req.ID, err)
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteProductHandler(store catalogStore, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req deleteProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := store.Delete(c.Request.Context(), req.ID); err != nil {
			logger.Printf("delete product id=%s: %v", req.ID, err)
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": req.ID})
	}
}

func reduceStockHandler(store catalogStore, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reduceStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		items := make([]domain.CartLine, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, domain.CartLine{ProductID: it.ID, Quantity: it.Quantity})
		}
		if err := store.ReduceStock(c.Request.Context(), items); err != nil {
			logger.Printf("reduce stock: %v", err)
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reduced": len(items)})
	}
}

func validateFields(name string, price, stock float64) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name required")
	}
	if price < 0 {
		return errors.New("price must not be negative")
	}
	if stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
