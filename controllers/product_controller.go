package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopease/shopease/apperrors"
	"github.com/shopease/shopease/models"
	"github.com/shopease/shopease/services"
)

// ProductService is the contract the controller needs from the product service.
type ProductService interface {
	List(ctx context.Context, search, category string) ([]models.Product, *apperrors.Error)
	Get(ctx context.Context, id string) (*models.Product, *apperrors.Error)
	Create(ctx context.Context, input *services.ProductInput) (*models.Product, *apperrors.Error)
	Update(ctx context.Context, id string, input *services.ProductInput) *apperrors.Error
	Delete(ctx context.Context, id string) *apperrors.Error
}

type ProductController struct {
	products ProductService
}

func NewProductController(products ProductService) *ProductController {
	return &ProductController{products: products}
}

// GetProducts handles GET /api/products with optional search/category filters.
func (pc *ProductController) GetProducts(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")

	products, appErr := pc.products.List(c.Request.Context(), search, category)
	if appErr != nil {
		renderError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /api/products/:id
func (pc *ProductController) GetProductByID(c *gin.Context) {
	product, appErr := pc.products.Get(c.Request.Context(), c.Param("id"))
	if appErr != nil {
		renderError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products (admin)
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	product, appErr := pc.products.Create(c.Request.Context(), &input)
	if appErr != nil {
		renderError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/:id (admin)
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if appErr := pc.products.Update(c.Request.Context(), c.Param("id"), &input); appErr != nil {
		renderError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// DeleteProduct handles DELETE /api/products/:id (admin)
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if appErr := pc.products.Delete(c.Request.Context(), c.Param("id")); appErr != nil {
		renderError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
