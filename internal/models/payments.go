package models

// PaymentsSummary aggregates payment intents and confirmed payments over a range.
type PaymentsSummary struct {
	DateRange struct {
		From *string `json:"from"`
		To   *string `json:"to"`
	} `json:"dateRange"`
	Intents struct {
		TotalCount  int         `json:"totalCount"`
		TotalAmount float64     `json:"totalAmount"`
		Pending     CountAmount `json:"pending"`
		Paid        CountAmount `json:"paid"`
	} `json:"intents"`
	ConfirmedPayments struct {
		Total           int         `json:"total"`
		TotalPaidAmount float64     `json:"totalPaidAmount"`
		WithIntent      CountAmount `json:"withIntent"`
		DirectTransfer  CountAmount `json:"directTransfer"`
	} `json:"confirmedPayments"`
}

type CountAmount struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type PaymentsSummaryResponse struct {
	Summary PaymentsSummary `json:"summary"`
}

// PaymentLinkRequest asks the payment gateway (PagoPlux) for a checkout link.
// Field names follow the gateway contract.
type PaymentLinkRequest struct {
	Amount        float64 `json:"monto"`
	Description   string  `json:"descripcion"`
	CustomerName  string  `json:"nombreCliente"`
	CustomerEmail string  `json:"correoCliente"`
	Phone         string  `json:"telefono"`
	BusinessName  string  `json:"nombreNegocio"`
	PhonePrefix   string  `json:"prefijo"`
	Address       string  `json:"direccion"`
	NationalID    string  `json:"ci"`
}

// PaymentLinkResult reports the outcome of a link request; failures are data, not errors.
type PaymentLinkResult struct {
	Success    bool   `json:"success"`
	PaymentURL string `json:"paymentUrl,omitempty"`
	Error      string `json:"error,omitempty"`
}

type BusinessType string

type PayMethod string

const (
	PayMethodTransfer PayMethod = "transferencia"
	PayMethodDeposit  PayMethod = "deposito"
	PayMethodCash     PayMethod = "efectivo"
)

// ManualTransfer registers a payment made outside the gateway.
type ManualTransfer struct {
	Amount        float64      `json:"amount"`
	Description   string       `json:"description"`
	ClientName    string       `json:"clientName"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	BusinessName  string       `json:"businessName"`
	BusinessType  BusinessType `json:"businessType,omitempty"`
	Bank          string       `json:"bank"`
	ClientID      string       `json:"clientId"`
	Country       string       `json:"country"`
	MongoID       string       `json:"mongoId,omitempty"`
	PaymentMethod PayMethod    `json:"paymentMethod,omitempty"`
}
