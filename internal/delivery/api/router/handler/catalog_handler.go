package handler

import (
	"log/slog"
	"net/http"

	"foodcart/internal/delivery/api/response"
	"foodcart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves products, banners, restaurants and menus
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// SetMenuAvailabilityRequest represents the request body for a menu change
type SetMenuAvailabilityRequest struct {
	Availability *bool `json:"availability" validate:"required"`
}

// ListProducts returns products that at least one restaurant offers
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListAvailableProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, newProductResponse(product))
	}

	return response.Success(c, http.StatusOK, resp)
}

// ListBanners returns the storefront banners
func (h *CatalogHandler) ListBanners(c echo.Context) error {
	banners := h.catalogUC.ListBanners(c.Request().Context())

	resp := make([]*BannerResponse, 0, len(banners))
	for _, banner := range banners {
		resp = append(resp, &BannerResponse{Title: banner.Title, Src: banner.Src, Text: banner.Text})
	}

	return response.Success(c, http.StatusOK, resp)
}

// ListRestaurants returns every restaurant
func (h *CatalogHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.catalogUC.ListRestaurants(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]*RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		resp = append(resp, newRestaurantResponse(restaurant))
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetAvailabilityMatrix returns every product against every restaurant
func (h *CatalogHandler) GetAvailabilityMatrix(c echo.Context) error {
	matrix, err := h.catalogUC.GetAvailabilityMatrix(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAvailabilityMatrixResponse(matrix))
}

// SetMenuAvailability creates or updates a restaurant menu row
func (h *CatalogHandler) SetMenuAvailability(c echo.Context) error {
	restaurantID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req SetMenuAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	item, err := h.catalogUC.SetMenuAvailability(c.Request().Context(), &usecase.SetMenuAvailabilityInput{
		RestaurantID: restaurantID,
		ProductID:    productID,
		Availability: *req.Availability,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"restaurant_id": item.RestaurantID,
		"product_id":    item.ProductID,
		"availability":  item.Availability,
	})
}
