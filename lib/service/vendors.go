package service

import (
	"context"

	"github.com/nagaad/idil-erp/db/models"
)

func (svc *IdilService) CreateVendor(ctx context.Context, name string, phone string, email string, accountPayableID int64) (*models.Vendor, error) {
	vendor := &models.Vendor{
		Name:             name,
		Phone:            phone,
		Email:            email,
		AccountPayableID: accountPayableID,
	}
	_, err := svc.DB.NewInsert().Model(vendor).Exec(ctx)
	return vendor, err
}

func (svc *IdilService) FindVendor(ctx context.Context, vendorID int64) (*models.Vendor, error) {
	var vendor models.Vendor

	err := svc.DB.NewSelect().Model(&vendor).Where("vendor.id = ?", vendorID).Limit(1).Scan(ctx)
	if err != nil {
		return &vendor, err
	}
	return &vendor, nil
}

func (svc *IdilService) Vendors(ctx context.Context) ([]models.Vendor, error) {
	vendors := []models.Vendor{}
	err := svc.DB.NewSelect().Model(&vendors).OrderExpr("id DESC").Limit(100).Scan(ctx)
	return vendors, err
}
