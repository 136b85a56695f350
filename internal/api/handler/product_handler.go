package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/atcnextgen/catalog-api/internal/api/metrics"
	"github.com/atcnextgen/catalog-api/internal/core/domain"
	"github.com/atcnextgen/catalog-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
	logger  zerolog.Logger
}

func NewProductHandler(service ports.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{service: service, logger: logger}
}

// --- Request / Response types ---

type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Stock       *int     `json:"stock"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
}

type productResponse struct {
	Message string          `json:"message,omitempty"`
	Product *domain.Product `json:"product"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type listProductsResponse struct {
	Products   []*domain.Product  `json:"products"`
	Pagination paginationResponse `json:"pagination"`
}

type productsResponse struct {
	Message  string            `json:"message"`
	Products []*domain.Product `json:"products"`
}

type statisticsResponse struct {
	Message    string                 `json:"message"`
	Statistics *domain.InventoryStats `json:"statistics"`
}

// Create handles POST /api/products.
//
// @Summary      Add a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := currentUser(c)
	if err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	h.logger.Info().Str("product_id", product.ID).Str("actor", user.Username).Msg("product created via api")

	return c.JSON(http.StatusCreated, productResponse{
		Message: "Product created successfully.",
		Product: product,
	})
}

// List handles GET /api/products.
//
// @Summary      List products with filters and pagination
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        page      query  int     false  "Page number (default 1)"
// @Param        limit     query  int     false  "Page size (default 10)"
// @Param        category  query  string  false  "Case-insensitive category substring"
// @Param        minPrice  query  number  false  "Inclusive minimum price"
// @Param        maxPrice  query  number  false  "Inclusive maximum price"
// @Success      200  {object}  listProductsResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	input := ports.ListProductsInput{
		Category: c.QueryParam("category"),
		Page:     intQuery(c, "page"),
		Limit:    intQuery(c, "limit"),
		MinPrice: floatQuery(c, "minPrice"),
		MaxPrice: floatQuery(c, "maxPrice"),
	}

	page, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listProductsResponse{
		Products: page.Products,
		Pagination: paginationResponse{
			Page:  page.Page,
			Limit: page.Limit,
			Total: page.Total,
			Pages: page.Pages,
		},
	})
}

// LowStock handles GET /api/products/low-stock.
//
// @Summary      List products running low on stock
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  productsResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c echo.Context) error {
	products, err := h.service.LowStock(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productsResponse{
		Message:  fmt.Sprintf("Found %d products with low stock.", len(products)),
		Products: products,
	})
}

// TotalValue handles GET /api/products/total-value.
//
// @Summary      Inventory value statistics
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statisticsResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/products/total-value [get]
func (h *ProductHandler) TotalValue(c echo.Context) error {
	stats, err := h.service.TotalValue(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statisticsResponse{
		Message:    "Total inventory value calculated.",
		Statistics: stats,
	})
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productResponse{Product: product})
}

// Update handles PUT /api/products/:id. Only fields present in the payload
// are applied; everything else is left untouched.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "Product id"
// @Param        body  body  updateProductRequest  true  "Fields to update"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productResponse{
		Message: "Product updated successfully.",
		Product: product,
	})
}

// Delete handles DELETE /api/products/:id and returns the deleted record.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	product, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.ProductsDeletedTotal.Inc()
	h.logger.Info().Str("product_id", product.ID).Str("actor", user.Username).Msg("product deleted via api")

	return c.JSON(http.StatusOK, productResponse{
		Message: "Product deleted successfully.",
		Product: product,
	})
}

// intQuery parses a query parameter as int; absent or unparseable values
// report 0 so the service applies its defaults.
func intQuery(c echo.Context, name string) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// floatQuery parses a query parameter as a float; absent or unparseable
// values are treated as no bound.
func floatQuery(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}
