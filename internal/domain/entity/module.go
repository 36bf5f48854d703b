package entity

import "time"

// Module tienda o sucursal física: unidad de partición del inventario y de asignación de empleados.
type Module struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
}
