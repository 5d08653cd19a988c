// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/repository"
	"foodcart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// ListProducts retrieves every product with its category, ordered by name.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductsDomain(productModels), nil
}

// ListAvailableProducts retrieves products offered by at least one restaurant.
func (repo *productRepository) ListAvailableProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	available := repo.db.
		Model(&model.MenuItemModel{}).
		Select("1").
		Where("restaurant_menu_items.product_id = products.id AND restaurant_menu_items.availability = ?", true)

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("EXISTS (?)", available).
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list available products")
	}

	return toProductsDomain(productModels), nil
}

// FindProductsByIDs retrieves the products with the given IDs in a single query.
func (repo *productRepository) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	return toProductsDomain(productModels), nil
}

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// ListRestaurants retrieves every restaurant ordered by name.
func (repo *restaurantRepository) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// FindRestaurantByID retrieves a restaurant by its unique ID.
func (repo *restaurantRepository) FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// menuRepository implements the repository.MenuRepository interface.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

// ListAvailableMenuItems retrieves every row with availability=true in one query.
func (repo *menuRepository) ListAvailableMenuItems(ctx context.Context) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Where("availability = ?", true).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list available menu items")
	}

	return toMenuItemsDomain(itemModels), nil
}

// ListMenuItems retrieves every menu row regardless of availability.
func (repo *menuRepository) ListMenuItems(ctx context.Context) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return toMenuItemsDomain(itemModels), nil
}

// UpsertMenuItem creates the (restaurant, product) row or updates its availability.
func (repo *menuRepository) UpsertMenuItem(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"availability", "updated_at"}),
		}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown restaurant or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert menu item")
	}

	// On conflict the stored row keeps its original ID.
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toProductsDomain(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Price:         data.Price,
		CategoryID:    data.CategoryID,
		Description:   data.Description,
		ImageURL:      data.ImageURL,
		SpecialStatus: data.SpecialStatus,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Category != nil {
		product.Category = &entity.ProductCategory{
			ID:   data.Category.ID,
			Name: data.Category.Name,
		}
	}

	return product
}

func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:           data.ID,
		Name:         data.Name,
		Address:      data.Address,
		ContactPhone: data.ContactPhone,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toMenuItemsDomain(data []*model.MenuItemModel) []*entity.MenuItem {
	items := make([]*entity.MenuItem, 0, len(data))
	for _, itemM := range data {
		items = append(items, &entity.MenuItem{
			ID:           itemM.ID,
			RestaurantID: itemM.RestaurantID,
			ProductID:    itemM.ProductID,
			Availability: itemM.Availability,
			UpdatedAt:    itemM.UpdatedAt,
		})
	}

	return items
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	id := data.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &model.MenuItemModel{
		ID:           id,
		RestaurantID: data.RestaurantID,
		ProductID:    data.ProductID,
		Availability: data.Availability,
	}
}
