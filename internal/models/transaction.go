package models

import (
	"time"
)

type TransactionSource string

const (
	TransactionSourcePagoplux       TransactionSource = "pagoplux"
	TransactionSourceManualTransfer TransactionSource = "transferencia_manual"
	TransactionSourceOther          TransactionSource = "otro"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completado"
	TransactionStatusPending   TransactionStatus = "pendiente"
	TransactionStatusFailed    TransactionStatus = "fallido"
)

// Transaction is a payment record of a client.
type Transaction struct {
	ID          string            `json:"_id"`
	ClientID    string            `json:"clientId"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Source      TransactionSource `json:"source"`
	Status      TransactionStatus `json:"status"`
	Date        time.Time         `json:"date"`
	Metadata    map[string]any    `json:"metadata,omitempty"`
}

// DateRange filters transactions and payment summaries. Nil bounds are open.
type DateRange struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Valid reports whether From is not after To when both are set.
func (r DateRange) Valid() bool {
	if r.From == nil || r.To == nil {
		return true
	}
	return !r.From.After(*r.To)
}
