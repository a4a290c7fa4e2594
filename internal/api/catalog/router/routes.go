// Package router đăng ký các route master data catalog dưới /api/v2/master.
package router

import (
	"fmt"

	apirouter "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/router"
	cataloghdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/handler"
)

// Register đăng ký route cho brands, categories, sizes, stocks, products.
func Register(r *apirouter.Router) error {
	master := r.V2MasterGroup("")

	brandHandler, err := cataloghdl.NewBrandHandler()
	if err != nil {
		return fmt.Errorf("failed to create brand handler: %w", err)
	}
	r.RegisterCRUDRoutes(master, "/brands", brandHandler, apirouter.ReadWriteConfig())

	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}
	r.RegisterCRUDRoutes(master, "/categories", categoryHandler, apirouter.ReadWriteConfig())

	sizeHandler, err := cataloghdl.NewSizeHandler()
	if err != nil {
		return fmt.Errorf("failed to create size handler: %w", err)
	}
	r.RegisterCRUDRoutes(master, "/sizes", sizeHandler, apirouter.ReadWriteConfig())

	stockHandler, err := cataloghdl.NewStockHandler()
	if err != nil {
		return fmt.Errorf("failed to create stock handler: %w", err)
	}
	r.RegisterCRUDRoutes(master, "/stocks", stockHandler, apirouter.ReadWriteConfig())

	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}
	r.RegisterCRUDRoutes(master, "/products", productHandler, apirouter.ReadWriteConfig())

	return nil
}
