package appointment

import "fmt"

// Status is the lifecycle label of one appointment.
type Status string

const (
	StatusAgendado      Status = "agendado"
	StatusConfirmado    Status = "confirmado"
	StatusAguardando    Status = "aguardando"
	StatusEmAtendimento Status = "em_atendimento"
	StatusFinalizado    Status = "finalizado"
	StatusFaltou        Status = "faltou"
	StatusCancelado     Status = "cancelado"
)

var validStatuses = map[Status]bool{
	StatusAgendado: true, StatusConfirmado: true, StatusAguardando: true,
	StatusEmAtendimento: true, StatusFinalizado: true, StatusFaltou: true,
	StatusCancelado: true,
}

// Valid reports whether s is a known status label.
func (s Status) Valid() bool { return validStatuses[s] }

// Transition replaces the current status with target. Every status is
// reachable from every other by explicit operator action; the operation is a
// label replacement, not a guarded workflow, so no ordering is enforced.
// Only unknown labels are rejected.
func Transition(_, target Status) (Status, error) {
	if !target.Valid() {
		return "", fmt.Errorf("invalid appointment status: %s", target)
	}
	return target, nil
}
