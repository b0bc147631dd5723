package monzo

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/kbukum/gomonzo/httpclient/rest"
	"github.com/kbukum/gomonzo/money"
)

// Balance of a Monzo account. Amounts are in minor units of Currency,
// e.g. pence for GBP.
type Balance struct {
	balance      int64
	totalBalance int64
	currency     string
	spendToday   int64
}

// Balance is the account balance.
func (b *Balance) Balance() int64 { return b.balance }

// TotalBalance is the balance including pots, as reported by the API.
func (b *Balance) TotalBalance() int64 { return b.totalBalance }

// Currency is the ISO 4217 currency code.
func (b *Balance) Currency() string { return b.currency }

// SpendToday is the total spent so far this calendar day.
func (b *Balance) SpendToday() int64 { return b.spendToday }

// Amount returns Balance in major units.
func (b *Balance) Amount() decimal.Decimal {
	return money.FromMinor(b.balance, b.currency)
}

// TotalAmount returns TotalBalance in major units.
func (b *Balance) TotalAmount() decimal.Decimal {
	return money.FromMinor(b.totalBalance, b.currency)
}

// SpendTodayAmount returns SpendToday in major units.
func (b *Balance) SpendTodayAmount() decimal.Decimal {
	return money.FromMinor(b.spendToday, b.currency)
}

type balanceResponse struct {
	Balance      *int64  `json:"balance" validate:"required"`
	TotalBalance *int64  `json:"total_balance" validate:"required"`
	Currency     *string `json:"currency" validate:"required"`
	SpendToday   *int64  `json:"spend_today" validate:"required"`
}

func (r balanceResponse) toBalance() *Balance {
	return &Balance{
		balance:      *r.Balance,
		totalBalance: *r.TotalBalance,
		currency:     *r.Currency,
		spendToday:   *r.SpendToday,
	}
}

// GetBalanceRequest reads the balance of one account.
type GetBalanceRequest struct {
	client    *Client
	once      sendOnce
	accountID string
}

// Balance starts a request for the balance of accountID.
func (c *Client) Balance(accountID string) GetBalanceRequest {
	return GetBalanceRequest{
		client:    c,
		once:      newSendOnce(),
		accountID: accountID,
	}
}

func (r GetBalanceRequest) Method() string { return http.MethodGet }

func (r GetBalanceRequest) Path() string { return "/balance" }

func (r GetBalanceRequest) Query() url.Values {
	return url.Values{"account_id": {r.accountID}}
}

// Send executes the request.
func (r GetBalanceRequest) Send(ctx context.Context) (*Balance, error) {
	if err := r.once.claim(); err != nil {
		return nil, err
	}
	return rest.Transform(ctx, r.client.rest, r, balanceResponse.toBalance)
}
