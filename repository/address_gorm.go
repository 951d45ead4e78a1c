package repository

import (
	"errors"

	"github.com/JahvoL/mall-end/models"
	"gorm.io/gorm"
)

type addressGormRepository struct {
	db *gorm.DB
}

// NewAddressGormRepository returns an AddressRepository backed by the
// addresses table.
func NewAddressGormRepository(db *gorm.DB) AddressRepository {
	return &addressGormRepository{db: db}
}

func (r *addressGormRepository) Save(address *models.Address) error {
	return r.db.Create(address).Error
}

func (r *addressGormRepository) Update(upd AddressUpdate) error {
	values := updateColumns(upd)
	if len(values) == 0 {
		return nil
	}
	return r.db.Model(&models.Address{}).
		Where("id = ?", upd.ID).
		Updates(values).Error
}

func (r *addressGormRepository) Delete(id uint) error {
	// No RowsAffected check: deleting an absent row is a success.
	return r.db.Delete(&models.Address{}, id).Error
}

func (r *addressGormRepository) FindByID(id uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

func (r *addressGormRepository) List(query AddressQuery) ([]models.Address, error) {
	list := make([]models.Address, 0)
	if err := applyQuery(r.db, query).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *addressGormRepository) Page(query AddressQuery, pageNum, pageSize int) ([]models.Address, int64, error) {
	var total int64
	if err := applyQuery(r.db, query).Model(&models.Address{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	records := make([]models.Address, 0)
	offset := (pageNum - 1) * pageSize
	if err := applyQuery(r.db, query).
		Offset(offset).
		Limit(pageSize).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// applyQuery translates the predicate into a gorm chain. Ordering by
// id DESC is fixed for every read.
func applyQuery(db *gorm.DB, query AddressQuery) *gorm.DB {
	tx := db.Order("id DESC")
	if query.UserID != nil {
		tx = tx.Where("user_id = ?", *query.UserID)
	}
	return tx
}

// updateColumns maps the non-nil fields of upd to their columns.
func updateColumns(upd AddressUpdate) map[string]interface{} {
	values := map[string]interface{}{}
	if upd.UserID != nil {
		values["user_id"] = *upd.UserID
	}
	if upd.Name != nil {
		values["name"] = *upd.Name
	}
	if upd.Phone != nil {
		values["phone"] = *upd.Phone
	}
	if upd.Province != nil {
		values["province"] = *upd.Province
	}
	if upd.City != nil {
		values["city"] = *upd.City
	}
	if upd.District != nil {
		values["district"] = *upd.District
	}
	if upd.Detail != nil {
		values["detail"] = *upd.Detail
	}
	if upd.IsDefault != nil {
		values["is_default"] = *upd.IsDefault
	}
	return values
}
