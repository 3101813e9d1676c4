package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	invoicinghandlers "github.com/vetportal/vetportal-backend/internal/modules/invoicing/handlers"
	invoicingrepos "github.com/vetportal/vetportal-backend/internal/modules/invoicing/repositories"
	invoicingservices "github.com/vetportal/vetportal-backend/internal/modules/invoicing/services"
	pharmacyhandlers "github.com/vetportal/vetportal-backend/internal/modules/pharmacy/handlers"
	pharmacyservices "github.com/vetportal/vetportal-backend/internal/modules/pharmacy/services"
	"github.com/vetportal/vetportal-backend/internal/modules/pharmacy/store"
	"github.com/vetportal/vetportal-backend/internal/shared/config"
	"github.com/vetportal/vetportal-backend/internal/shared/database"
)

const portalHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Application Portal</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; text-align: center; }
        .container { max-width: 600px; margin: 0 auto; }
        .app-link {
            display: block;
            padding: 20px;
            margin: 20px 0;
            background: #007bff;
            color: white;
            text-decoration: none;
            border-radius: 5px;
            font-size: 18px;
        }
        .app-link:hover { background: #0056b3; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Welcome to Combined Applications</h1>
        <p>Choose an application to use:</p>
        <a href="/app1" class="app-link">📊 Invoice Management App</a>
        <a href="/app2" class="app-link">💊 Veterinary Medicines App</a>
    </div>
</body>
</html>`

// buildApp wires repositories, services and handlers into a Fiber app. Kept
// apart from main so tests can drive the full HTTP surface in-process.
func buildApp(cfg *config.Config, db *database.DB, fileStore *store.Store) *fiber.App {
	// Invoicing (relational store)
	clientRepo := invoicingrepos.NewClientRepo(db.GORM)
	companyRepo := invoicingrepos.NewCompanyRepo(db.GORM)
	invoiceRepo := invoicingrepos.NewInvoiceRepo(db.GORM)
	statsRepo := invoicingrepos.NewStatsRepo(db.GORM)

	clientService := invoicingservices.NewClientService(clientRepo)
	companyService := invoicingservices.NewCompanyService(companyRepo)
	invoiceService := invoicingservices.NewInvoiceService(invoiceRepo)
	statsService := invoicingservices.NewStatsService(statsRepo)

	clientHandler := invoicinghandlers.NewClientHandler(clientService)
	companyHandler := invoicinghandlers.NewCompanyHandler(companyService)
	invoiceHandler := invoicinghandlers.NewInvoiceHandler(invoiceService)
	statsHandler := invoicinghandlers.NewStatsHandler(statsService)

	// Pharmacy (shared JSON files)
	medicineService := pharmacyservices.NewMedicineService(fileStore)
	categoryService := pharmacyservices.NewCategoryService(fileStore)

	medicineHandler := pharmacyhandlers.NewMedicineHandler(medicineService)
	categoryHandler := pharmacyhandlers.NewCategoryHandler(categoryService)

	app := fiber.New(fiber.Config{
		AppName:   "Vet Portal Combined API",
		BodyLimit: 10 * 1024 * 1024, // embedded images arrive as data-URIs
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowHeaders: "Origin, X-Requested-With, Content-Type, Accept, Authorization",
	}))

	// Front-end surfaces
	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html")
		return c.SendString(portalHTML)
	})
	app.Static("/app1", cfg.App1Public)
	app.Static("/app2", cfg.App2Public)
	app.Static("/shared", cfg.SharedDir)

	// Stats routes
	app.Get("/api/stats/overview", statsHandler.GetOverview)
	app.Get("/api/stats/payment-stats", statsHandler.GetPaymentStats)
	app.Get("/api/stats/monthly-revenue", statsHandler.GetMonthlyRevenue)
	app.Get("/api/stats/client-stats", statsHandler.GetClientStats)

	// Client routes
	app.Get("/api/clients", clientHandler.GetClients)
	app.Get("/api/clients/:id", clientHandler.GetClientByID)
	app.Post("/api/clients", clientHandler.CreateClient)
	app.Delete("/api/clients/:id", clientHandler.DeleteClient)

	// Company routes
	app.Get("/api/companies", companyHandler.GetCompanies)
	app.Get("/api/companies/:id", companyHandler.GetCompanyByID)
	app.Post("/api/companies", companyHandler.CreateCompany)
	app.Delete("/api/companies/:id", companyHandler.DeleteCompany)

	// Invoice routes
	app.Get("/api/invoices", invoiceHandler.GetInvoices)
	app.Get("/api/invoices/:id", invoiceHandler.GetInvoiceByID)
	app.Post("/api/invoices", invoiceHandler.CreateInvoice)
	app.Patch("/api/invoices/:id", invoiceHandler.UpdateInvoice)
	app.Delete("/api/invoices/:id", invoiceHandler.DeleteInvoice)

	// Category routes
	app.Get("/api/categories", categoryHandler.GetCategories)
	app.Post("/api/categories", categoryHandler.AddCategory)

	// Medicine routes; search registers before the :id routes
	app.Get("/api/medicines/search", medicineHandler.SearchMedicines)
	app.Get("/api/medicines", medicineHandler.GetMedicines)
	app.Post("/api/medicines", medicineHandler.CreateMedicine)
	app.Put("/api/medicines/:id", medicineHandler.UpdateMedicine)
	app.Delete("/api/medicines/:id", medicineHandler.DeleteMedicine)

	return app
}
