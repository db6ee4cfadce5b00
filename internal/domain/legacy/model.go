package legacy

import "time"

// Valores de sexo del esquema viejo. "Fêmea" con acento no existe en el nuevo.
const (
	SexoMacho = "Macho"
	SexoFemea = "Fêmea"
)

// Animal es una fila de la tabla legacy (columnas en portugués).
type Animal struct {
	ID             string
	Nome           string
	Sexo           string
	Pelagem        string
	Idade          string
	NomeTutor      string
	TratamentoPara string
	Tratamento     string

	// Flags opcionales: nil = nunca se cargó.
	FIV   *bool
	FeLV  *bool
	Raiva *bool
	V6    *bool

	Ativo     bool
	CreatedBy string
	CreatedAt time.Time
}

// MedicationRecord es una fila de la tabla legacy de medicaciones.
type MedicationRecord struct {
	ID              string
	AnimalID        string // id del animal legacy
	Data            string
	EndDate         *string
	Horario         string
	Medicamento     string
	Dose            string
	Administrado    bool
	Observacoes     *string
	AdministradoPor *string
	CreatedAt       time.Time
}
