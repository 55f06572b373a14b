package handler

import "github.com/gofiber/fiber/v2"

// Handlers groups every REST handler so they can be mounted together.
type Handlers struct {
	Medicines *MedicineHandler
	Customers *CustomerHandler
	Suppliers *SupplierHandler
	Sales     *SaleHandler
	Dashboard *DashboardHandler
	Reports   *ReportHandler
}

// Register mounts the REST routes on api. Static segments are registered
// before /:id so they are not captured as identifiers.
func (h *Handlers) Register(api fiber.Router) {
	// Medicine Routes
	api.Get("/medicines", h.Medicines.GetMedicines)
	api.Get("/medicines/search", h.Medicines.SearchMedicines)
	api.Get("/medicines/low-stock", h.Medicines.GetLowStock)
	api.Get("/medicines/:id", h.Medicines.GetMedicine)
	api.Post("/medicines", h.Medicines.CreateMedicine)
	api.Patch("/medicines/:id", h.Medicines.UpdateMedicine)
	api.Delete("/medicines/:id", h.Medicines.DeleteMedicine)

	// Customer Routes
	api.Get("/customers", h.Customers.GetCustomers)
	api.Get("/customers/search", h.Customers.SearchCustomers)
	api.Get("/customers/:id", h.Customers.GetCustomer)
	api.Post("/customers", h.Customers.CreateCustomer)
	api.Patch("/customers/:id", h.Customers.UpdateCustomer)
	api.Delete("/customers/:id", h.Customers.DeleteCustomer)

	// Supplier Routes
	api.Get("/suppliers", h.Suppliers.GetSuppliers)
	api.Get("/suppliers/:id", h.Suppliers.GetSupplier)
	api.Get("/suppliers/:id/medicines", h.Suppliers.GetSupplierMedicines)
	api.Post("/suppliers", h.Suppliers.CreateSupplier)
	api.Patch("/suppliers/:id", h.Suppliers.UpdateSupplier)
	api.Delete("/suppliers/:id", h.Suppliers.DeleteSupplier)

	// Sale Routes
	api.Get("/sales", h.Sales.GetSales)
	api.Get("/sales/recent", h.Sales.GetRecentSales)
	api.Get("/sales/:id", h.Sales.GetSale)
	api.Post("/sales", h.Sales.CreateSale)

	// Dashboard & Reports
	api.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)
	api.Get("/reports/summary", h.Reports.GetSummary)
	api.Get("/reports/sales.xlsx", h.Reports.ExportSales)
}
