// Package access centraliza qué rol puede ejecutar qué operación.
package access

import (
	"fmt"

	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// Capability operación protegida.
type Capability string

const (
	ManageRules        Capability = "manage_rules"
	ValidateChips      Capability = "validate_chips"
	RegisterChip       Capability = "register_chip"
	ViewAllCommissions Capability = "view_all_commissions"
	ManagePayroll      Capability = "manage_payroll"
	ViewPayroll        Capability = "view_payroll"
	CreateTransfer     Capability = "create_transfer"
	ResolveTransfer    Capability = "resolve_transfer"
	ViewTransfers      Capability = "view_transfers"
	RegisterSale       Capability = "register_sale"
	CancelSale         Capability = "cancel_sale"
	ViewAllSales       Capability = "view_all_sales"
	ManageInventory    Capability = "manage_inventory"
	UploadInventory    Capability = "upload_inventory"
	ViewKardex         Capability = "view_kardex"
	ManageEmployees    Capability = "manage_employees"
	ManageModules      Capability = "manage_modules"

	// AnyModule opera sobre módulos distintos al asignado.
	AnyModule        Capability = "any_module"
	CustomCycleRange Capability = "custom_cycle_range"
	ViewModuleSales  Capability = "view_module_sales"

	ManageGeneralInventory Capability = "manage_general_inventory"
	RecordAttendance       Capability = "record_attendance"
	ViewAttendance         Capability = "view_attendance"
	CloseDailyCut          Capability = "close_daily_cut"
	ViewDailyCuts          Capability = "view_daily_cuts"
)

var table = map[string]map[Capability]bool{
	entity.RoleAdmin: set(
		ManageRules, ValidateChips, RegisterChip, ViewAllCommissions, ManagePayroll, ViewPayroll,
		ResolveTransfer, ViewTransfers, RegisterSale, CancelSale, ViewAllSales,
		ManageInventory, UploadInventory, ViewKardex, ManageEmployees, ManageModules,
		AnyModule, CustomCycleRange, ManageGeneralInventory, RecordAttendance, ViewAttendance,
		ViewDailyCuts,
	),
	entity.RoleEncargado: set(
		RegisterChip, ViewAllCommissions, CreateTransfer, ViewTransfers, RegisterSale,
		CancelSale, ManageInventory, ViewKardex, CustomCycleRange, ViewModuleSales,
		RecordAttendance, ViewAttendance, CloseDailyCut, ViewDailyCuts,
	),
	entity.RoleAsesor: set(RegisterChip, RegisterSale, RecordAttendance),
}

func set(caps ...Capability) map[Capability]bool {
	m := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		m[c] = true
	}
	return m
}

// Can indica si el rol tiene la capacidad.
func Can(role string, c Capability) bool {
	return table[role][c]
}

// Actor empleado autenticado que ejecuta la operación.
type Actor struct {
	EmployeeID string
	Username   string
	Role       string
	ModuleID   string
}

// Require devuelve ErrForbidden si el actor no tiene la capacidad.
func Require(a Actor, c Capability) error {
	if !Can(a.Role, c) {
		return fmt.Errorf("%w: el rol %q no puede %s", domain.ErrForbidden, a.Role, c)
	}
	return nil
}

// Scope resuelve el módulo objetivo de una operación: vacío = el del actor.
// Un módulo ajeno exige AnyModule.
func Scope(a Actor, moduleID string) (string, error) {
	if moduleID == "" {
		moduleID = a.ModuleID
	}
	if moduleID == "" {
		return "", domain.Invalid("módulo obligatorio")
	}
	if moduleID != a.ModuleID && !Can(a.Role, AnyModule) {
		return "", fmt.Errorf("%w: solo puede operar sobre su módulo", domain.ErrForbidden)
	}
	return moduleID, nil
}

// RequireModule exige que el actor tenga módulo asignado.
func RequireModule(a Actor) error {
	if a.ModuleID == "" {
		return fmt.Errorf("%w: el empleado no tiene módulo asignado", domain.ErrForbidden)
	}
	return nil
}
