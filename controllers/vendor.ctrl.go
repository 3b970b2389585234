package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nagaad/idil-erp/lib/responses"
	"github.com/nagaad/idil-erp/lib/service"
)

// VendorController : Vendor registration controller struct
type VendorController struct {
	svc *service.IdilService
}

func NewVendorController(svc *service.IdilService) *VendorController {
	return &VendorController{svc: svc}
}

type CreateVendorRequestBody struct {
	Name             string `json:"name" validate:"required"`
	Phone            string `json:"phone"`
	Email            string `json:"email" validate:"omitempty,email"`
	AccountPayableID int64  `json:"account_payable_id" validate:"required"`
}

// CreateVendor godoc
// @Summary      Register a vendor
// @Description  Registers a vendor with its accounts payable account
// @Accept       json
// @Produce      json
// @Tags         Vendor
// @Param        CreateVendorRequest  body      CreateVendorRequestBody  True  "Vendor to register"
// @Success      200                  {object}  models.Vendor
// @Failure      400                  {object}  responses.ErrorResponse
// @Failure      500                  {object}  responses.ErrorResponse
// @Router       /v2/vendors [post]
func (controller *VendorController) CreateVendor(c echo.Context) error {
	reqBody := CreateVendorRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load create vendor request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid create vendor request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	vendor, err := controller.svc.CreateVendor(c.Request().Context(), reqBody.Name, reqBody.Phone, reqBody.Email, reqBody.AccountPayableID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vendor)
}

// GetVendors godoc
// @Summary      Retrieve vendors
// @Description  Returns the most recently registered vendors
// @Produce      json
// @Tags         Vendor
// @Success      200  {object}  []models.Vendor
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/vendors [get]
func (controller *VendorController) GetVendors(c echo.Context) error {
	vendors, err := controller.svc.Vendors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vendors)
}

// GetVendor godoc
// @Summary      Retrieve a vendor
// @Description  Returns a single vendor by id
// @Produce      json
// @Tags         Vendor
// @Param        id   path      int  True  "Vendor ID"
// @Success      200  {object}  models.Vendor
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/vendors/{id} [get]
func (controller *VendorController) GetVendor(c echo.Context) error {
	vendorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	vendor, err := controller.svc.FindVendor(c.Request().Context(), vendorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, vendor)
}
