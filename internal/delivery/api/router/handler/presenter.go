package handler

import (
	"time"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money amounts are rendered with two fractional digits.
const moneyPlaces = 2

func money(d decimal.Decimal) string {
	return d.StringFixed(moneyPlaces)
}

// CategoryResponse is a product category
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductResponse is a storefront product
type ProductResponse struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Price         string            `json:"price"`
	Category      *CategoryResponse `json:"category,omitempty"`
	Description   string            `json:"description,omitempty"`
	ImageURL      string            `json:"image,omitempty"`
	SpecialStatus bool              `json:"special_status"`
}

func newProductResponse(p *entity.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         money(p.Price),
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		SpecialStatus: p.SpecialStatus,
	}
	if p.Category != nil {
		resp.Category = &CategoryResponse{ID: p.Category.ID, Name: p.Category.Name}
	}

	return resp
}

// RestaurantResponse is a restaurant as listed to managers
type RestaurantResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Latitude     *float64  `json:"lat,omitempty"`
	Longitude    *float64  `json:"lon,omitempty"`
}

func newRestaurantResponse(r *entity.Restaurant) *RestaurantResponse {
	return &RestaurantResponse{
		ID:           r.ID,
		Name:         r.Name,
		Address:      r.Address,
		ContactPhone: r.ContactPhone,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
	}
}

// OrderItemResponse is one itemized order line
type OrderItemResponse struct {
	ProductID   uuid.UUID `json:"product"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int       `json:"quantity"`
	Price       string    `json:"price"`
	TotalPrice  string    `json:"total_price"`
}

// OrderResponse is an order with its itemized cost
type OrderResponse struct {
	ID                  uuid.UUID            `json:"id"`
	FirstName           string               `json:"firstname"`
	LastName            string               `json:"lastname"`
	PhoneNumber         string               `json:"phonenumber"`
	Address             string               `json:"address"`
	Status              entity.OrderStatus   `json:"status"`
	PaymentType         entity.PaymentType   `json:"payment_type"`
	Comment             string               `json:"comment,omitempty"`
	CookingRestaurantID *uuid.UUID           `json:"cooking_restaurant,omitempty"`
	DistanceKm          *float64             `json:"distance_km,omitempty"`
	Items               []*OrderItemResponse `json:"products"`
	TotalCost           string               `json:"total_cost"`
	CreatedAt           time.Time            `json:"registered_at"`
	CalledAt            *time.Time           `json:"called_at,omitempty"`
	DeliveredAt         *time.Time           `json:"delivered_at,omitempty"`
}

func newOrderResponse(o *entity.Order) *OrderResponse {
	items := make([]*OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		line := &OrderItemResponse{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			Price:      money(item.Price),
			TotalPrice: money(item.TotalPrice()),
		}
		if item.Product != nil {
			line.ProductName = item.Product.Name
		}
		items = append(items, line)
	}

	return &OrderResponse{
		ID:                  o.ID,
		FirstName:           o.FirstName,
		LastName:            o.LastName,
		PhoneNumber:         o.PhoneNumber,
		Address:             o.Address,
		Status:              o.Status,
		PaymentType:         o.PaymentType,
		Comment:             o.Comment,
		CookingRestaurantID: o.CookingRestaurantID,
		DistanceKm:          o.DistanceKm,
		Items:               items,
		TotalCost:           money(o.TotalCost()),
		CreatedAt:           o.CreatedAt,
		CalledAt:            o.CalledAt,
		DeliveredAt:         o.DeliveredAt,
	}
}

// CandidateResponse is a restaurant able to cook an order. DistanceKm is
// null when either address is unknown.
type CandidateResponse struct {
	Restaurant *RestaurantResponse `json:"restaurant"`
	DistanceKm *float64            `json:"distance_km"`
}

// OrderAssignmentResponse is one row of the manager order list
type OrderAssignmentResponse struct {
	Order       *OrderResponse       `json:"order"`
	Coordinates *geo.Coordinates     `json:"coordinates"`
	Candidates  []*CandidateResponse `json:"restaurants"`
	TotalCost   string               `json:"total_cost"`
	Warning     string               `json:"warning,omitempty"`
}

func newOrderAssignmentResponse(a *entity.OrderAssignment) *OrderAssignmentResponse {
	candidates := make([]*CandidateResponse, 0, len(a.Candidates))
	for _, candidate := range a.Candidates {
		candidates = append(candidates, &CandidateResponse{
			Restaurant: newRestaurantResponse(candidate.Restaurant),
			DistanceKm: candidate.DistanceKm,
		})
	}

	return &OrderAssignmentResponse{
		Order:       newOrderResponse(a.Order),
		Coordinates: a.Coordinates,
		Candidates:  candidates,
		TotalCost:   money(a.TotalCost),
		Warning:     a.Warning,
	}
}

// AvailabilityCell is one restaurant column of a matrix row
type AvailabilityCell struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Available    bool      `json:"available"`
}

// AvailabilityRow is a product with its availability in every restaurant
type AvailabilityRow struct {
	Product      *ProductResponse    `json:"product"`
	Availability []*AvailabilityCell `json:"availability"`
}

// AvailabilityMatrixResponse is the product x restaurant grid. Cells follow
// the order of Restaurants.
type AvailabilityMatrixResponse struct {
	Restaurants []*RestaurantResponse `json:"restaurants"`
	Products    []*AvailabilityRow    `json:"products"`
}

func newAvailabilityMatrixResponse(m *entity.AvailabilityMatrix) *AvailabilityMatrixResponse {
	resp := &AvailabilityMatrixResponse{
		Restaurants: make([]*RestaurantResponse, 0, len(m.Restaurants)),
		Products:    make([]*AvailabilityRow, 0, len(m.Rows)),
	}
	for _, restaurant := range m.Restaurants {
		resp.Restaurants = append(resp.Restaurants, newRestaurantResponse(restaurant))
	}
	for _, row := range m.Rows {
		cells := make([]*AvailabilityCell, 0, len(m.Restaurants))
		for _, restaurant := range m.Restaurants {
			cells = append(cells, &AvailabilityCell{
				RestaurantID: restaurant.ID,
				Available:    row.Available[restaurant.ID],
			})
		}
		resp.Products = append(resp.Products, &AvailabilityRow{
			Product:      newProductResponse(row.Product),
			Availability: cells,
		})
	}

	return resp
}

// BannerResponse is a storefront banner
type BannerResponse struct {
	Title string `json:"title"`
	Src   string `json:"src"`
	Text  string `json:"text"`
}
