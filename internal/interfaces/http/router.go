package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/auth"
	"github.com/jhoicas/Nomina-api/internal/application/commission"
	"github.com/jhoicas/Nomina-api/internal/application/inventory"
	"github.com/jhoicas/Nomina-api/internal/application/payroll"
	"github.com/jhoicas/Nomina-api/internal/application/sales"
	"github.com/jhoicas/Nomina-api/internal/application/usecase"
	"github.com/ulule/limiter/v3"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	ModuleUC     *usecase.ModuleUseCase
	RulesUC      *commission.RulesUseCase
	Aggregator   *commission.Aggregator
	SaleUC       *sales.SaleUseCase
	ChipUC       *sales.ChipUseCase
	InventoryUC  *inventory.InventoryUseCase
	GeneralUC    *inventory.GeneralInventoryUseCase
	AttendanceUC *usecase.AttendanceUseCase
	CutUC        *sales.CutUseCase
	TransferUC   *inventory.TransferUseCase
	Periods      *payroll.PeriodManager
	PayrollUC    *payroll.ComputationUseCase
	UploadReader UploadReader
	JWTSecret    string
	// LoginLimiter nil desactiva el límite de intentos de login.
	LoginLimiter *limiter.Limiter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", RateLimit(deps.LoginLimiter), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	employees := protected.Group("/employees", RequireCapability(access.ManageEmployees))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Put("/:id", employeeHandler.Update)

	modules := protected.Group("/modules")
	moduleHandler := NewModuleHandler(deps.ModuleUC)
	modules.Get("/", moduleHandler.List)
	modules.Get("/:id", moduleHandler.GetByID)
	modules.Post("/", RequireCapability(access.ManageModules), moduleHandler.Create)

	// Comisiones: lectura para todos, escritura solo admin
	comm := protected.Group("/commissions")
	commHandler := NewCommissionHandler(deps.RulesUC, deps.Aggregator)
	manageRules := RequireCapability(access.ManageRules)
	comm.Get("/rules", commHandler.ListRules)
	comm.Post("/rules", manageRules, commHandler.CreateRule)
	comm.Put("/rules/:id", manageRules, commHandler.UpdateRule)
	comm.Delete("/rules/:id", manageRules, commHandler.DeleteRule)
	comm.Get("/chip-tiers", commHandler.ListChipTables)
	comm.Put("/chip-tiers/:chipType", manageRules, commHandler.ReplaceChipTable)
	comm.Get("/bonuses", commHandler.ListBonuses)
	comm.Put("/bonuses/:saleType", manageRules, commHandler.SetBonus)
	comm.Delete("/bonuses/:saleType", manageRules, commHandler.DeleteBonus)
	comm.Get("/cycle", commHandler.Cycle)
	comm.Get("/all", RequireCapability(access.ViewAllCommissions), commHandler.AllTotals)
	comm.Get("/employees/:id", commHandler.EmployeeTotals)

	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", RequireAssignedModule(), saleHandler.Register)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/cut", saleHandler.DailyCut)
	cutHandler := NewCutHandler(deps.CutUC)
	salesGroup.Post("/cuts", RequireCapability(access.CloseDailyCut), RequireAssignedModule(), cutHandler.Close)
	salesGroup.Get("/cuts", RequireCapability(access.ViewDailyCuts), cutHandler.List)
	salesGroup.Post("/:id/cancel", RequireCapability(access.CancelSale), saleHandler.Cancel)

	chips := protected.Group("/chips")
	chipHandler := NewChipHandler(deps.ChipUC)
	validate := RequireCapability(access.ValidateChips)
	chips.Post("/", RequireCapability(access.RegisterChip), chipHandler.Register)
	chips.Get("/pending", chipHandler.ListPending)
	chips.Get("/rejected", chipHandler.ListRejected)
	chips.Post("/:id/validate", validate, chipHandler.Validate)
	chips.Post("/:id/reject", validate, chipHandler.Reject)
	chips.Post("/:id/revert", validate, chipHandler.Revert)

	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.UploadReader)
	upload := RequireCapability(access.UploadInventory)
	invGroup.Get("/modules/:moduleId", inventoryHandler.List)
	invGroup.Put("/modules/:moduleId", RequireCapability(access.ManageInventory), inventoryHandler.Upsert)
	invGroup.Post("/upload/preview", upload, inventoryHandler.PreviewUpload)
	invGroup.Post("/upload/commit", upload, inventoryHandler.CommitUpload)
	invGroup.Get("/movements", RequireCapability(access.ViewKardex), inventoryHandler.Movements)

	general := invGroup.Group("/general", RequireCapability(access.ManageGeneralInventory))
	generalHandler := NewGeneralInventoryHandler(deps.GeneralUC)
	general.Get("/", generalHandler.List)
	general.Get("/names", generalHandler.Names)
	general.Post("/", generalHandler.Create)
	general.Post("/move", generalHandler.Move)
	general.Get("/:product", generalHandler.Get)
	general.Put("/:product", generalHandler.Update)
	general.Delete("/:product", generalHandler.Delete)

	attendance := protected.Group("/attendance", RequireCapability(access.RecordAttendance))
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendance.Post("/check-in", attendanceHandler.CheckIn)
	attendance.Post("/check-out", attendanceHandler.CheckOut)
	attendance.Get("/", attendanceHandler.List)

	transfers := protected.Group("/transfers", RequireCapability(access.ViewTransfers))
	transferHandler := NewTransferHandler(deps.TransferUC)
	resolve := RequireCapability(access.ResolveTransfer)
	transfers.Get("/", transferHandler.List)
	transfers.Post("/", RequireCapability(access.CreateTransfer), RequireAssignedModule(), transferHandler.Create)
	transfers.Post("/:id/resolve", resolve, transferHandler.Resolve)
	transfers.Post("/:id/hide", resolve, transferHandler.Hide)

	pay := protected.Group("/payroll")
	payHandler := NewPayrollHandler(deps.Periods, deps.PayrollUC)
	managePayroll := RequireCapability(access.ManagePayroll)
	viewPayroll := RequireCapability(access.ViewPayroll)
	pay.Get("/me", payHandler.Me)
	pay.Get("/periods", viewPayroll, payHandler.ListPeriods)
	pay.Get("/periods/active", payHandler.ActivePeriod)
	pay.Post("/periods", managePayroll, payHandler.OpenPeriod)
	pay.Put("/periods/:id/ranges", managePayroll, payHandler.SetGroupRanges)
	pay.Post("/periods/:id/close", managePayroll, payHandler.ClosePeriod)
	pay.Get("/summary", viewPayroll, payHandler.Summary)
	pay.Get("/export", viewPayroll, payHandler.Export)
	pay.Get("/employees/:id", viewPayroll, payHandler.EmployeeDetail)
	pay.Put("/employees/:id", managePayroll, payHandler.UpdateEmployee)
}
