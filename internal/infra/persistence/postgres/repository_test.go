package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestLocationRepository_FindLocationByAddress(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "locations" WHERE address = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"address", "latitude", "longitude", "created_at", "updated_at"}).
			AddRow("moscow, tverskaya 1", 55.757, 37.615, now, now))

	location, err := repo.FindLocationByAddress(context.Background(), "moscow, tverskaya 1")
	require.NoError(t, err)

	coords := location.Coordinates()
	require.NotNil(t, coords)
	assert.InDelta(t, 55.757, coords.Latitude, 1e-9)
	assert.InDelta(t, 37.615, coords.Longitude, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepository_FindLocationByAddress_NullCoordinates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "locations"`).
		WillReturnRows(sqlmock.NewRows([]string{"address", "latitude", "longitude", "created_at", "updated_at"}).
			AddRow("atlantis", nil, nil, now, now))

	location, err := repo.FindLocationByAddress(context.Background(), "atlantis")
	require.NoError(t, err)
	assert.Nil(t, location.Coordinates())
}

func TestLocationRepository_FindLocationByAddress_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "locations"`).
		WillReturnRows(sqlmock.NewRows([]string{"address"}))

	_, err := repo.FindLocationByAddress(context.Background(), "unknown")
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)
}

func TestLocationRepository_FindLocationsByAddresses_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	locations, err := repo.FindLocationsByAddresses(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, locations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepository_FindLocationsByAddresses_SingleQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "locations" WHERE address IN \(\$1,\$2\)`).
		WithArgs("a", "b").
		WillReturnRows(sqlmock.NewRows([]string{"address", "latitude", "longitude", "created_at", "updated_at"}).
			AddRow("a", 1.5, 2.5, now, now).
			AddRow("b", nil, nil, now, now))

	locations, err := repo.FindLocationsByAddresses(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, locations, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepository_UpsertLocation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	lat, lon := 55.757, 37.615
	mock.ExpectExec(`INSERT INTO "locations" .* ON CONFLICT \("address"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertLocation(context.Background(), &entity.Location{
		Address:   "moscow, tverskaya 1",
		Latitude:  &lat,
		Longitude: &lon,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepository_UpsertLocation_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectExec(`INSERT INTO "locations"`).
		WillReturnError(sql.ErrConnDone)

	err := repo.UpsertLocation(context.Background(), &entity.Location{Address: "x"})
	assert.Error(t, err)
}

func TestMenuRepository_ListAvailableMenuItems(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	restaurantID, productID := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "restaurant_menu_items" WHERE availability = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "product_id", "availability", "updated_at"}).
			AddRow(uuid.NewString(), restaurantID.String(), productID.String(), true, time.Now()))

	items, err := repo.ListAvailableMenuItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, restaurantID, items[0].RestaurantID)
	assert.Equal(t, productID, items[0].ProductID)
	assert.True(t, items[0].Availability)
}

func TestMenuRepository_UpsertMenuItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectExec(`INSERT INTO "restaurant_menu_items" .* ON CONFLICT \("restaurant_id","product_id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertMenuItem(context.Background(), &entity.MenuItem{
		RestaurantID: uuid.New(),
		ProductID:    uuid.New(),
		Availability: false,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepository_FindRestaurantByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "restaurants" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindRestaurantByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
}

func TestProductRepository_FindProductsByIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id IN \(\$1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "special_status"}).
			AddRow(id.String(), "Pizza", "100.00", false))

	products, err := repo.FindProductsByIDs(context.Background(), []uuid.UUID{id})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, decimal.RequireFromString("100").Equal(products[0].Price))
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(`INSERT INTO "orders"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "order_items"`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	order := &entity.Order{
		FirstName:   "Ivan",
		PhoneNumber: "+79001234567",
		Address:     "Moscow",
		Status:      entity.OrderStatusUnprocessed,
		PaymentType: entity.PaymentTypeCash,
		Items: []*entity.OrderItem{
			{ProductID: uuid.New(), Quantity: 2, Price: decimal.RequireFromString("100.00")},
			{ProductID: uuid.New(), Quantity: 1, Price: decimal.RequireFromString("50.00")},
		},
	}

	require.NoError(t, repo.CreateOrder(context.Background(), order))
	assert.NotEqual(t, uuid.Nil, order.ID)
	for _, item := range order.Items {
		assert.Equal(t, order.ID, item.OrderID)
		assert.NotEqual(t, uuid.Nil, item.ID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindOrderByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindOrderByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_UpdateOrderState_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateOrderState(context.Background(), &entity.Order{
		ID:     uuid.New(),
		Status: entity.OrderStatusCooking,
	})
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := assert.AnError
	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		assert.NotNil(t, factory.NewOrderRepository())
		assert.NotNil(t, factory.NewProductRepository())

		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isForeignKeyConstraintViolation(assertError(`insert or update violates foreign key constraint (SQLSTATE 23503)`)))
	assert.True(t, isCheckConstraintViolation(assertError(`violates check constraint "chk_order_items_quantity" (SQLSTATE 23514)`)))
	assert.True(t, isNotNullConstraintViolation(assertError(`null value in column "first_name" violates not-null constraint`)))
	assert.False(t, isUniqueConstraintViolation(sql.ErrConnDone))
}

type assertError string

func (e assertError) Error() string { return string(e) }
