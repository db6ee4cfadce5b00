package animals

import "time"

// Sex define el sexo del animal tal como lo registra el refugio.
// @Enum Macho, Femea
type Sex string

const (
	SexMale   Sex = "Macho"
	SexFemale Sex = "Femea"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Animal representa un ingreso al refugio, sujeto de tratamiento.
type Animal struct {
	ID string

	Name      string
	Sex       Sex
	Coat      string
	Age       string // texto libre: "2 anos", "filhote"
	OwnerName string

	TreatmentFor string
	Treatment    string

	// Estado sanitario (FIV, FeLV, antirrábica, V6). Opcionales, default false.
	FIV    bool
	FeLV   bool
	Rabies bool
	V6     bool

	// Active=false es borrado lógico: ninguna lectura debe devolverlo.
	Active    bool
	CreatedBy string

	CreatedAt time.Time
	UpdatedAt time.Time
}
