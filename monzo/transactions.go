package monzo

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kbukum/gomonzo/httpclient/rest"
	"github.com/kbukum/gomonzo/money"
)

// Transaction is a single account transaction. Amounts are in minor units
// of Currency; negative amounts are debits.
type Transaction struct {
	ID             string
	Created        time.Time
	Description    string
	Amount         int64
	Currency       string
	MerchantID     string
	Notes          string
	Metadata       map[string]string
	AccountBalance int64
	Category       string
	IsLoad         bool
	// Settled is zero while the transaction is pending.
	Settled       time.Time
	DeclineReason string
}

// DecimalAmount returns Amount in major units.
func (t *Transaction) DecimalAmount() decimal.Decimal {
	return money.FromMinor(t.Amount, t.Currency)
}

// Declined reports whether the transaction was declined.
func (t *Transaction) Declined() bool {
	return t.DeclineReason != ""
}

type transactionResponse struct {
	Transaction *wireTransaction `json:"transaction" validate:"required"`
}

type wireTransaction struct {
	ID             *string           `json:"id" validate:"required"`
	Created        *time.Time        `json:"created" validate:"required"`
	Description    string            `json:"description"`
	Amount         *int64            `json:"amount" validate:"required"`
	Currency       *string           `json:"currency" validate:"required"`
	Merchant       merchantRef       `json:"merchant"`
	Notes          string            `json:"notes"`
	Metadata       map[string]string `json:"metadata"`
	AccountBalance int64             `json:"account_balance"`
	Category       string            `json:"category"`
	IsLoad         bool              `json:"is_load"`
	Settled        string            `json:"settled"`
	DeclineReason  string            `json:"decline_reason"`
}

// merchantRef accepts the merchant either as its id or as the expanded
// merchant object.
type merchantRef struct {
	ID string
}

func (m *merchantRef) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &m.ID)
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	m.ID = obj.ID
	return nil
}

func (r transactionResponse) toTransaction() *Transaction {
	w := r.Transaction
	tx := &Transaction{
		ID:             *w.ID,
		Created:        *w.Created,
		Description:    w.Description,
		Amount:         *w.Amount,
		Currency:       *w.Currency,
		MerchantID:     w.Merchant.ID,
		Notes:          w.Notes,
		Metadata:       w.Metadata,
		AccountBalance: w.AccountBalance,
		Category:       w.Category,
		IsLoad:         w.IsLoad,
		DeclineReason:  w.DeclineReason,
	}
	if t, err := time.Parse(time.RFC3339, w.Settled); err == nil {
		tx.Settled = t
	}
	if tx.Metadata == nil {
		tx.Metadata = map[string]string{}
	}
	return tx
}

// AnnotateTransactionRequest sets metadata on a transaction. Setting a key
// to the empty string removes it.
type AnnotateTransactionRequest struct {
	client        *Client
	once          sendOnce
	transactionID string
	metadata      map[string]string
}

// AnnotateTransaction starts a request to annotate transactionID with
// metadata. The map is copied.
func (c *Client) AnnotateTransaction(transactionID string, metadata map[string]string) AnnotateTransactionRequest {
	m := make(map[string]string, len(metadata))
	for k, v := range metadata {
		m[k] = v
	}
	return AnnotateTransactionRequest{
		client:        c,
		once:          newSendOnce(),
		transactionID: transactionID,
		metadata:      m,
	}
}

// Metadata returns a copy of the request with key set to value.
func (r AnnotateTransactionRequest) Metadata(key, value string) AnnotateTransactionRequest {
	m := make(map[string]string, len(r.metadata)+1)
	for k, v := range r.metadata {
		m[k] = v
	}
	m[key] = value
	r.metadata = m
	return r
}

func (r AnnotateTransactionRequest) Method() string { return http.MethodPatch }

func (r AnnotateTransactionRequest) Path() string {
	return "/transactions/" + url.PathEscape(r.transactionID)
}

// FormBody renders each metadata entry as metadata[<key>]=<value>.
func (r AnnotateTransactionRequest) FormBody() url.Values {
	form := make(url.Values, len(r.metadata))
	for k, v := range r.metadata {
		form.Set("metadata["+k+"]", v)
	}
	return form
}

// Send executes the request and returns the updated transaction.
func (r AnnotateTransactionRequest) Send(ctx context.Context) (*Transaction, error) {
	if err := r.once.claim(); err != nil {
		return nil, err
	}
	return rest.Transform(ctx, r.client.rest, r, transactionResponse.toTransaction)
}
