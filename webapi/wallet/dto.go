package wallet

import (
	"time"

	"github.com/shopspring/decimal"

	walletsvc "github.com/davipay/wallet/pkg/service/wallet"
)

// TransferInput requests a transfer to the account holding celular_destino.
// The source account always comes from the bearer token.
type TransferInput struct {
	CelularDestino string          `json:"celular_destino" validate:"required,len=10,numeric"`
	Monto          decimal.Decimal `json:"monto" validate:"required"`
}

// BalanceOutput carries the current balance.
type BalanceOutput struct {
	Saldo float64 `json:"saldo"`
}

// HistoryItemOutput is one history entry seen from the caller's side.
type HistoryItemOutput struct {
	ID          string    `json:"id"`
	Fecha       time.Time `json:"fecha"`
	Valor       float64   `json:"valor"`
	Origen      *string   `json:"origen"`
	Destino     *string   `json:"destino"`
	Estado      string    `json:"estado"`
	MotivoFalla *string   `json:"motivoFalla"`
	Tipo        string    `json:"tipo"`
}

// HistoryOutput is one page of history plus the total count.
type HistoryOutput struct {
	Page           int                 `json:"page"`
	Total          int64               `json:"total"`
	Transferencias []HistoryItemOutput `json:"transferencias"`
}

func toHistoryOutput(h *walletsvc.History) HistoryOutput {
	items := make([]HistoryItemOutput, 0, len(h.Items))
	for _, item := range h.Items {
		out := HistoryItemOutput{
			ID:      item.ID.String(),
			Fecha:   item.Date,
			Valor:   item.Amount.InexactFloat64(),
			Origen:  item.SourcePhone,
			Destino: item.DestinationPhone,
			Estado:  string(item.Status),
			Tipo:    string(item.Direction),
		}
		if item.FailureReason != nil {
			reason := string(*item.FailureReason)
			out.MotivoFalla = &reason
		}
		items = append(items, out)
	}
	return HistoryOutput{Page: h.Page, Total: h.Total, Transferencias: items}
}
