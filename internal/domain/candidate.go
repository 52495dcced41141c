package domain

import "time"

const (
	CandidateGroupTotal = "Total"

	CandidateInProcess = "En Proceso"
	CandidateSent      = "Enviado"
	CandidateRejected  = "No paso"
)

type Candidate struct {
	ID              string     `json:"id"`
	IDType          *string    `json:"tipoid"`
	Name            string     `json:"nombre"`
	Phone           *string    `json:"celular"`
	Position        *string    `json:"cargo"`
	Email           *string    `json:"correo"`
	Reason          *string    `json:"motivo"`
	ProcessStatus   *string    `json:"estado_proceso"`
	SentAt          *time.Time `json:"fecha_envio"`
	JoinedAt        *time.Time `json:"fecha_ingreso"`
	Group           *string    `json:"grupo"`
	CandidateStatus *string    `json:"estadoCandidato"`
	CreatedBy       *string    `json:"user_creo"`
}

type CandidateCards struct {
	Total     int `json:"totalCandidatos"`
	InProcess int `json:"candidatosEnProceso"`
	Sent      int `json:"candidatosEnviados"`
	Rejected  int `json:"candidatosNoPasaron"`
}
