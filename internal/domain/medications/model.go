package medications

import (
	"time"

	"animal-shelter/internal/domain/animals"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// MedicationRecord es una dosis agendada (fecha + hora + droga + dosis) de un animal.
type MedicationRecord struct {
	ID       string
	AnimalID string

	Date    string  // YYYY-MM-DD
	EndDate *string // fin del rango que generó el registro (si vino de un rango)
	Time    string  // HH:MM

	Medication string
	Dose       string // texto libre: "5ml", "1/2 comprimido"

	// Administered=false implica AdministeredBy y Observations vacíos tras un undo.
	Administered   bool
	Observations   *string
	AdministeredBy *string

	// GroupID lo genera el caller y une los registros de una misma orden clínica.
	GroupID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLastDay indica si el registro cae en el último día de su rango.
func (m MedicationRecord) IsLastDay() bool {
	return m.EndDate != nil && *m.EndDate == m.Date
}

// MedicationWithAnimal es el registro unido con su animal (activo).
type MedicationWithAnimal struct {
	MedicationRecord
	Animal animals.Animal
}
