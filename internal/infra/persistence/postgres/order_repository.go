package postgres

import (
	"context"
	"time"

	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/repository"
	"foodcart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists the order together with its items.
// Callers run it inside TransactionManager.Execute so both inserts commit together.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	itemModels := fromOrderItemsDomain(orderM.ID, order.Items)

	db := repo.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	if len(itemModels) > 0 {
		if err := db.Omit(clause.Associations).Create(&itemModels).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return domainerrors.ErrValidationFailed.WrapMessage("duplicate product in order")
			}
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrProductNotFound.WrapMessage("order item references unknown product")
			}
			if isCheckConstraintViolation(err) {
				return domainerrors.ErrQuantityOutOfRange.WrapMessage("order item rejected by check constraint")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
		}
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range itemModels {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}

	return nil
}

// FindOrderByID retrieves an order with its items from the primary database.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id")
		}).
		Preload("Items.Product").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListActiveWithItems retrieves orders in an active status with their items
// and products, oldest first.
func (repo *orderRepository) ListActiveWithItems(ctx context.Context) ([]*entity.Order, error) {
	statuses := make([]string, 0, len(entity.ActiveOrderStatuses))
	for _, status := range entity.ActiveOrderStatuses {
		statuses = append(statuses, status.String())
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id")
		}).
		Preload("Items.Product").
		Where("status IN ?", statuses).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderState persists status, assignment, distance and timestamps.
func (repo *orderRepository) UpdateOrderState(ctx context.Context, order *entity.Order) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":                order.Status.String(),
			"cooking_restaurant_id": order.CookingRestaurantID,
			"distance_km":           order.DistanceKm,
			"called_at":             order.CalledAt,
			"delivered_at":          order.DeliveredAt,
			"updated_at":            now,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	order.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:                  data.ID,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		PhoneNumber:         data.PhoneNumber,
		Address:             data.Address,
		Status:              entity.OrderStatus(data.Status),
		PaymentType:         entity.PaymentType(data.PaymentType),
		Comment:             data.Comment,
		CookingRestaurantID: data.CookingRestaurantID,
		DistanceKm:          data.DistanceKm,
		CreatedAt:           data.CreatedAt,
		CalledAt:            data.CalledAt,
		DeliveredAt:         data.DeliveredAt,
		UpdatedAt:           data.UpdatedAt,
		Items:               make([]*entity.OrderItem, 0, len(data.Items)),
	}

	for _, itemM := range data.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Product:   toProductDomain(itemM.Product),
			Quantity:  itemM.Quantity,
			Price:     itemM.Price,
		})
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	id := data.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &model.OrderModel{
		ID:                  id,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		PhoneNumber:         data.PhoneNumber,
		Address:             data.Address,
		Status:              data.Status.String(),
		PaymentType:         string(data.PaymentType),
		Comment:             data.Comment,
		CookingRestaurantID: data.CookingRestaurantID,
		DistanceKm:          data.DistanceKm,
		CalledAt:            data.CalledAt,
		DeliveredAt:         data.DeliveredAt,
	}
}

func fromOrderItemsDomain(orderID uuid.UUID, items []*entity.OrderItem) []*model.OrderItemModel {
	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for _, item := range items {
		id := item.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		itemModels = append(itemModels, &model.OrderItemModel{
			ID:        id,
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return itemModels
}
