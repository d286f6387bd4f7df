package domain

import "github.com/sellerpulse/marketplace-ledger-api/internal/ledger"

// RawPayout is a settlement record. Its charge lines have lived under many
// container names across API generations; Lines flattens them all.
type RawPayout struct {
	ID   FlexID `json:"id"`
	Date string `json:"date"`

	Services     []RawCharge `json:"services"`
	Items        []RawCharge `json:"items"`
	Operations   []RawCharge `json:"operations"`
	Transactions []RawCharge `json:"transactions"`
	Accruals     []RawCharge `json:"accruals"`
	Charges      []RawCharge `json:"charges"`
	PayoutItems  []RawCharge `json:"payoutItems"`

	Acquiring            ledger.Money `json:"acquiring"`
	AcquiringFee         ledger.Money `json:"acquiringFee"`
	PaymentFee           ledger.Money `json:"paymentFee"`
	PaymentProcessingFee ledger.Money `json:"paymentProcessingFee"`
	BankFee              ledger.Money `json:"bankFee"`
	ProcessingFee        ledger.Money `json:"processingFee"`
}

// Lines returns every charge line regardless of which container the API
// generation put it in.
func (p *RawPayout) Lines() []RawCharge {
	lines := make([]RawCharge, 0,
		len(p.Services)+len(p.Items)+len(p.Operations)+len(p.Transactions)+
			len(p.Accruals)+len(p.Charges)+len(p.PayoutItems))
	lines = append(lines, p.Services...)
	lines = append(lines, p.Items...)
	lines = append(lines, p.Operations...)
	lines = append(lines, p.Transactions...)
	lines = append(lines, p.Accruals...)
	lines = append(lines, p.Charges...)
	lines = append(lines, p.PayoutItems...)
	return lines
}

// FlatAcquiring resolves the flat payout-level acquiring fields, used when
// no classifiable acquiring line exists among the charge lines.
func (p *RawPayout) FlatAcquiring() float64 {
	return ledger.FirstMoney(
		p.Acquiring,
		p.AcquiringFee,
		p.PaymentFee,
		p.PaymentProcessingFee,
		p.BankFee,
		p.ProcessingFee,
	)
}
