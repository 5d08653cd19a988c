package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foodcart/config"
	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/repository"
	"foodcart/internal/domain/service"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager       repository.TransactionManager
	orderRepo       repository.OrderRepository
	geocoding       usecase.GeocodingUsecase
	publisher       service.EventPublisher
	qrCodeService   service.QRCodeService
	resolveOnCreate bool
	phoneRegion     string
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	OrderRepo     repository.OrderRepository
	Geocoding     usecase.GeocodingUsecase
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	resolveOnCreate := false
	if params.Config != nil && params.Config.Geocoder != nil {
		resolveOnCreate = params.Config.Geocoder.ResolveOnCreate
	}

	return &orderService{
		txManager:       params.TxManager,
		orderRepo:       params.OrderRepo,
		geocoding:       params.Geocoding,
		publisher:       params.Publisher,
		qrCodeService:   params.QRCodeService,
		resolveOnCreate: resolveOnCreate,
		phoneRegion:     params.Config.PhoneRegion(),
		logger:          params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

type orderLine struct {
	productID uuid.UUID
	quantity  int
}

// CreateOrder stores the order and its items in one transaction. Every item
// carries the product price read inside that transaction.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	lines, err := buildOrderLines(input.Products)
	if err != nil {
		return nil, err
	}

	paymentType := entity.PaymentType(input.PaymentType)
	if paymentType == "" {
		paymentType = entity.PaymentTypeCash
	}
	if !paymentType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown payment type %q", input.PaymentType))
	}

	contact, err := srv.buildContact(input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &entity.Order{
		ID:          uuid.New(),
		FirstName:   contact.firstName,
		LastName:    contact.lastName,
		PhoneNumber: contact.phoneNumber,
		Address:     contact.address,
		Status:      entity.OrderStatusUnprocessed,
		PaymentType: paymentType,
		Comment:     strings.TrimSpace(input.Comment),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productIDs := make([]uuid.UUID, 0, len(lines))
		for _, line := range lines {
			productIDs = append(productIDs, line.productID)
		}

		products, err := repoFactory.NewProductRepository().FindProductsByIDs(ctx, productIDs)
		if err != nil {
			return errors.Wrap(err, "failed to find products")
		}

		byID := make(map[uuid.UUID]*entity.Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}

		items := make([]*entity.OrderItem, 0, len(lines))
		for _, line := range lines {
			product, ok := byID[line.productID]
			if !ok {
				return domainerrors.ErrProductNotFound.WrapMessage(fmt.Sprintf("product %s not found", line.productID))
			}
			items = append(items, &entity.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				ProductID: product.ID,
				Product:   product,
				Quantity:  line.quantity,
				Price:     product.Price,
			})
		}
		order.Items = items

		if err := repoFactory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create order", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.Int("items", len(order.Items)),
		slog.String("total_cost", order.TotalCost().StringFixed(2)),
	)

	if srv.resolveOnCreate {
		srv.geocoding.Resolve(ctx, order.Address)
	}

	srv.publish(ctx, &service.OrderEvent{
		RequestID:    deliverycontext.RequestIDFromContext(ctx),
		Type:         constants.EventOrderCreated,
		OrderID:      order.ID.String(),
		Address:      order.Address,
		CustomerName: order.FullName(),
		TotalCost:    order.TotalCost().StringFixed(2),
	})

	return order, nil
}

// GetOrder retrieves an order with its items.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage(fmt.Sprintf("order %s not found", orderID))
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// GenerateOrderQR renders the tracking QR code of an existing order.
func (srv *orderService) GenerateOrderQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

// publish sends the event without failing the caller; the order is already stored.
func (srv *orderService) publish(ctx context.Context, event *service.OrderEvent) {
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", event.Type),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

type orderContact struct {
	firstName   string
	lastName    string
	phoneNumber string
	address     string
}

// buildContact trims the customer fields and stores the phone in E.164 form.
func (srv *orderService) buildContact(input *usecase.CreateOrderInput) (*orderContact, error) {
	contact := &orderContact{
		firstName: strings.TrimSpace(input.FirstName),
		lastName:  strings.TrimSpace(input.LastName),
		address:   strings.TrimSpace(input.Address),
	}

	fields := []struct{ name, value string }{
		{"firstname", contact.firstName},
		{"lastname", contact.lastName},
		{"address", contact.address},
	}
	for _, field := range fields {
		if field.value == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage(field.name + " must not be blank")
		}
	}

	phone, err := entity.NormalizePhoneNumber(input.PhoneNumber, srv.phoneRegion)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("invalid phone number %q", input.PhoneNumber))
	}
	contact.phoneNumber = phone

	return contact, nil
}

// buildOrderLines checks the basket and merges repeated products into one line.
func buildOrderLines(products []usecase.OrderProductInput) ([]orderLine, error) {
	if len(products) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	lines := make([]orderLine, 0, len(products))
	index := make(map[uuid.UUID]int, len(products))
	for _, product := range products {
		if product.ProductID == uuid.Nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("product id is required")
		}

		quantity := entity.MinItemQuantity
		if product.Quantity != nil {
			quantity = *product.Quantity
		}
		if err := checkQuantity(product.ProductID, quantity); err != nil {
			return nil, err
		}

		if i, ok := index[product.ProductID]; ok {
			lines[i].quantity += quantity
		} else {
			index[product.ProductID] = len(lines)
			lines = append(lines, orderLine{productID: product.ProductID, quantity: quantity})
		}
	}

	for _, line := range lines {
		if err := checkQuantity(line.productID, line.quantity); err != nil {
			return nil, err
		}
	}

	return lines, nil
}

func checkQuantity(productID uuid.UUID, quantity int) error {
	if quantity < entity.MinItemQuantity || quantity > entity.MaxItemQuantity {
		return domainerrors.ErrQuantityOutOfRange.WrapMessage(
			fmt.Sprintf("quantity of product %s must be between %d and %d", productID, entity.MinItemQuantity, entity.MaxItemQuantity),
		)
	}

	return nil
}
