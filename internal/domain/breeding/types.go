package breeding

// Status define el ciclo de vida de una monta.
// Deliberadamente NO hay guard de transiciones: cualquier estado puede
// moverse a cualquier otro vía edición directa, igual que en la app
// original. Una variante estricta (tipo etiquetado con validación de
// transiciones) rechazaría ediciones que hoy se aceptan, así que queda
// como modo opt-in no implementado.
// @Enum planned, completed, confirmed_pregnant, not_pregnant, birth_completed, failed
type Status string

const (
	StatusPlanned           Status = "planned"
	StatusCompleted         Status = "completed"
	StatusConfirmedPregnant Status = "confirmed_pregnant"
	StatusNotPregnant       Status = "not_pregnant"
	StatusBirthCompleted    Status = "birth_completed"
	StatusFailed            Status = "failed"
)

// Method define el método de monta.
// @Enum natural, artificial_insemination, embryo_transfer
type Method string

const (
	MethodNatural                Method = "natural"
	MethodArtificialInsemination Method = "artificial_insemination"
	MethodEmbryoTransfer         Method = "embryo_transfer"
)

func validStatus(s Status) bool {
	switch s {
	case StatusPlanned, StatusCompleted, StatusConfirmedPregnant,
		StatusNotPregnant, StatusBirthCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

func validMethod(m Method) bool {
	switch m {
	case MethodNatural, MethodArtificialInsemination, MethodEmbryoTransfer:
		return true
	default:
		return false
	}
}
