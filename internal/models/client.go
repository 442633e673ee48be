package models

import "time"

// Client is a customer record as returned by the backend. Businesses and
// Transactions are only present on the detailed views.
type Client struct {
	ID           string        `json:"_id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Country      string        `json:"country"`
	City         string        `json:"city"`
	DateOfBirth  string        `json:"dateOfBirth,omitempty"`
	PaymentInfo  PaymentInfo   `json:"paymentInfo"`
	Businesses   []Business    `json:"businesses,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
	CreatedAt    time.Time     `json:"createdAt,omitzero"`
	UpdatedAt    time.Time     `json:"updatedAt,omitzero"`
}

// PaymentInfo is the client's payment preference.
type PaymentInfo struct {
	PreferredMethod string `json:"preferredMethod"`
	LastPaymentDate string `json:"lastPaymentDate,omitempty"`
	CardType        string `json:"cardType,omitempty"`
	CardInfo        string `json:"cardInfo,omitempty"`
	Bank            string `json:"bank,omitempty"`
}

// ClientBusinessResponse is the combined client+business payload of
// GET client/{clientId}/business/{businessId}.
type ClientBusinessResponse struct {
	Client   Client    `json:"client"`
	Business *Business `json:"business"`
}

// ClientWithDetailsResponse is the payload of GET client/{clientId}.
type ClientWithDetailsResponse struct {
	Client       Client        `json:"client"`
	Transactions []Transaction `json:"transactions"`
	Businesses   []Business    `json:"businesses"`
}
