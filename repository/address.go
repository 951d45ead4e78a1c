package repository

import (
	"github.com/JahvoL/mall-end/models"
)

// AddressQuery is the predicate applied to list and page reads. Reads
// are always ordered by id descending; the only supported filter is an
// equality on the owning user.
type AddressQuery struct {
	UserID *uint
}

// AddressUpdate carries a partial update for a single address. Nil
// fields are left untouched so a PUT with only {"id":5,"detail":"..."}
// rewrites nothing else.
type AddressUpdate struct {
	ID        uint    `json:"id" binding:"required"`
	UserID    *uint   `json:"userId"`
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Province  *string `json:"province"`
	City      *string `json:"city"`
	District  *string `json:"district"`
	Detail    *string `json:"detail"`
	IsDefault *bool   `json:"isDefault"`
}

// AddressRepository is the persistence contract for address rows. It
// applies no ownership logic; callers assemble the query themselves.
type AddressRepository interface {
	// Save inserts the address and fills in its assigned ID.
	Save(address *models.Address) error

	// Update writes the non-nil fields of upd to the matching row.
	// Updating a missing id is a no-op.
	Update(upd AddressUpdate) error

	// Delete removes the row with the given id. Deleting a missing id
	// succeeds silently.
	Delete(id uint) error

	// FindByID returns the address, or nil when no row matches.
	FindByID(id uint) (*models.Address, error)

	// List returns every matching address, id descending.
	List(query AddressQuery) ([]models.Address, error)

	// Page returns one page of matching addresses (id descending) and
	// the total number of matching rows. pageNum is 1-based.
	Page(query AddressQuery, pageNum, pageSize int) ([]models.Address, int64, error)
}
