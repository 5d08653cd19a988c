package postgres

import (
	"context"

	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/repository"
	"foodcart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// FindLocationByAddress retrieves the cached entry for a normalized address.
func (repo *locationRepository) FindLocationByAddress(ctx context.Context, address string) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("address = ?", address).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by address")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationsByAddresses retrieves cached entries for many normalized addresses.
func (repo *locationRepository) FindLocationsByAddresses(ctx context.Context, addresses []string) ([]*entity.Location, error) {
	if len(addresses) == 0 {
		return []*entity.Location{}, nil
	}

	var locationModels []*model.LocationModel
	if err := repo.db.WithContext(ctx).
		Where("address IN ?", addresses).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by addresses")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// UpsertLocation inserts the entry or overwrites its coordinates.
func (repo *locationRepository) UpsertLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "updated_at"}),
		}).
		Create(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	return &entity.Location{
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	return &model.LocationModel{
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}
}
