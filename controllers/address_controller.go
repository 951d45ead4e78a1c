package controllers

import (
	"strconv"

	"github.com/JahvoL/mall-end/auth"
	"github.com/JahvoL/mall-end/models"
	"github.com/JahvoL/mall-end/repository"
	"github.com/JahvoL/mall-end/utils"
	"github.com/gin-gonic/gin"
)

// AddressController serves the /api/address endpoints. Its
// collaborators are fixed at construction time.
type AddressController struct {
	addresses repository.AddressRepository
	resolver  *auth.Resolver
}

// NewAddressController wires the controller to its store and identity
// resolver.
func NewAddressController(addresses repository.AddressRepository, resolver *auth.Resolver) *AddressController {
	return &AddressController{
		addresses: addresses,
		resolver:  resolver,
	}
}

// Save handles POST /api/address. The owning user is taken from the
// payload as-is; the storefront fills it in before submitting.
func (ctl *AddressController) Save(c *gin.Context) {
	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		utils.LogError("Invalid address payload: %v", err)
		utils.FailBadRequest(c)
		return
	}

	if err := ctl.addresses.Save(&address); err != nil {
		utils.LogError("Failed to save address: %v", err)
		utils.FailError(c)
		return
	}

	utils.LogInfo("Address %d saved", address.ID)
	utils.Success(c)
}

// Update handles PUT /api/address. Only the fields present in the
// payload are written; an unknown id is a silent no-op.
func (ctl *AddressController) Update(c *gin.Context) {
	var upd repository.AddressUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.LogError("Invalid address update payload: %v", err)
		utils.FailBadRequest(c)
		return
	}

	if err := ctl.addresses.Update(upd); err != nil {
		utils.LogError("Failed to update address %d: %v", upd.ID, err)
		utils.FailError(c)
		return
	}

	utils.LogInfo("Address %d updated", upd.ID)
	utils.Success(c)
}

// Delete handles DELETE /api/address/:id. Deleting an id that does not
// exist still succeeds.
func (ctl *AddressController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctl.addresses.Delete(id); err != nil {
		utils.LogError("Failed to delete address %d: %v", id, err)
		utils.FailError(c)
		return
	}

	utils.LogInfo("Address %d deleted", id)
	utils.Success(c)
}

// FindByID handles GET /api/address/:id. A missing row yields a
// success envelope with null data.
func (ctl *AddressController) FindByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	address, err := ctl.addresses.FindByID(id)
	if err != nil {
		utils.LogError("Failed to load address %d: %v", id, err)
		utils.FailError(c)
		return
	}

	utils.SuccessData(c, address)
}

// FindAll handles GET /api/address: every address of the caller,
// newest first. Requires a resolvable identity.
func (ctl *AddressController) FindAll(c *gin.Context) {
	user, err := ctl.resolver.Resolve(c)
	if err != nil {
		utils.RenderError(c, err)
		return
	}
	if user == nil {
		utils.LogError("Anonymous call to user address list")
		utils.FailUnauthorized(c)
		return
	}

	list, err := ctl.addresses.List(repository.AddressQuery{UserID: &user.ID})
	if err != nil {
		utils.LogError("Failed to list addresses for user %d: %v", user.ID, err)
		utils.FailError(c)
		return
	}

	utils.SuccessData(c, list)
}

// FindPage handles GET /api/address/page: the back-office listing
// across all users. Access control is handled by the admin gateway in
// front of this service.
func (ctl *AddressController) FindPage(c *gin.Context) {
	pageNum, pageSize := utils.ParsePageQuery(c)

	records, total, err := ctl.addresses.Page(repository.AddressQuery{}, pageNum, pageSize)
	if err != nil {
		utils.LogError("Failed to page addresses: %v", err)
		utils.FailError(c)
		return
	}

	utils.SuccessData(c, utils.NewPage(records, total, pageNum, pageSize))
}

// FindPageFront handles GET /api/address/page/front: the storefront
// listing for the caller. An anonymous or undecodable caller gets an
// empty page, never an error.
func (ctl *AddressController) FindPageFront(c *gin.Context) {
	pageNum, pageSize := utils.ParsePageQuery(c)

	user, err := ctl.resolver.Resolve(c)
	if err != nil || user == nil {
		utils.SuccessData(c, utils.EmptyPage(pageNum, pageSize))
		return
	}

	records, total, err := ctl.addresses.Page(repository.AddressQuery{UserID: &user.ID}, pageNum, pageSize)
	if err != nil {
		utils.LogError("Failed to page addresses for user %d: %v", user.ID, err)
		utils.FailError(c)
		return
	}

	utils.SuccessData(c, utils.NewPage(records, total, pageNum, pageSize))
}

// pathID parses the :id path segment, answering the request itself
// when the segment is not a number.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.LogError("Invalid address id %q: %v", c.Param("id"), err)
		utils.FailBadRequest(c)
		return 0, false
	}
	return uint(id), true
}
