package notify

import (
	"context"
	"time"
)

// PregnancyConfirmation es el payload que se manda al despachador de
// notificaciones cuando una monta pasa a preñez confirmada.
type PregnancyConfirmation struct {
	RecordID    string
	OwnerUserID string

	MotherID        string
	ExpectedDueDate *time.Time
	ConfirmedAt     time.Time
}

// Notifier es el hook hacia el subsistema externo de notificaciones.
// La entrega (push/email) es problema del colaborador externo; aquí solo
// se dispara el aviso, best-effort.
type Notifier interface {
	PregnancyConfirmed(ctx context.Context, c PregnancyConfirmation) error
}
