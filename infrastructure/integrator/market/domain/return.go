package domain

import "github.com/sellerpulse/marketplace-ledger-api/internal/ledger"

// RawReturn is a return record as the seller API reports it. Amount and
// RefundAmount are pointers because "present but zero" and "absent" behave
// differently: an explicit amount, even zero, suppresses the minor-unit
// fallback, while a missing one triggers the per-return detail lookup.
type RawReturn struct {
	ID        FlexID `json:"id"`
	ReturnID  FlexID `json:"returnId"`
	ReturnID2 FlexID `json:"return_id"`

	OrderID  FlexID        `json:"orderId"`
	OrderID2 FlexID        `json:"order_id"`
	Order    *ReturnParent `json:"order"`
	Return   *ReturnParent `json:"return"`

	Type   string `json:"type"`
	Status string `json:"status"`

	Amount       *ledger.Money      `json:"amount"`
	RefundAmount *ledger.MinorMoney `json:"refundAmount"`
	TotalAmount  ledger.Money       `json:"totalAmount"`
	Price        ledger.Money       `json:"price"`

	Items       []RawReturnItem `json:"items"`
	ReturnItems []RawReturnItem `json:"returnItems"`
	ItemsInfo   []RawReturnItem `json:"itemsInfo"`

	// Attribution back to the credential pair that fetched this return,
	// filled in by the aggregator for detail lookups.
	CampaignID string `json:"-"`
	APIKey     string `json:"-"`
}

// ReturnParent is the nested order/return reference some API generations
// use instead of flat id fields.
type ReturnParent struct {
	ID       FlexID `json:"id"`
	OrderID  FlexID `json:"orderId"`
	OrderID2 FlexID `json:"order_id"`
	ReturnID FlexID `json:"returnId"`
}

// OrderKey returns the id of the order this return belongs to.
func (r *RawReturn) OrderKey() string {
	if id := firstID(r.OrderID, r.OrderID2); id != "" {
		return id
	}
	if r.Order != nil {
		return firstID(r.Order.ID, r.Order.OrderID, r.Order.OrderID2)
	}
	return ""
}

// Key returns the return's own identifier.
func (r *RawReturn) Key() string {
	if id := firstID(r.ID, r.ReturnID, r.ReturnID2); id != "" {
		return id
	}
	if r.Return != nil {
		return firstID(r.Return.ID, r.Return.ReturnID)
	}
	return ""
}

// ExtractAmount resolves the return total: explicit amount first, then the
// minor-unit refund amount, then the total/price fallbacks.
func (r *RawReturn) ExtractAmount() float64 {
	if r.Amount != nil {
		return r.Amount.Float()
	}
	if r.RefundAmount != nil {
		return r.RefundAmount.Float()
	}
	return ledger.FirstMoney(r.TotalAmount, r.Price)
}

// ItemList returns the item container that is populated; API generations
// disagree on its name.
func (r *RawReturn) ItemList() []RawReturnItem {
	if len(r.Items) > 0 {
		return r.Items
	}
	if len(r.ReturnItems) > 0 {
		return r.ReturnItems
	}
	return r.ItemsInfo
}

// RawReturnItem is one item line of a return.
type RawReturnItem struct {
	OfferID FlexID `json:"offerId"`
	ShopSKU FlexID `json:"shopSku"`
	SKU     FlexID `json:"sku"`

	Count    ledger.Money `json:"count"`
	Quantity ledger.Money `json:"quantity"`

	Decisions []ReturnDecision `json:"decisions"`

	Amount       *ledger.Money      `json:"amount"`
	RefundAmount *ledger.MinorMoney `json:"refundAmount"`
	TotalAmount  ledger.Money       `json:"totalAmount"`
	Price        ledger.Money       `json:"price"`
}

// ReturnDecision is the per-item refund decision in the newest API shape.
type ReturnDecision struct {
	Amount ledger.Money `json:"amount"`
}

func (it *RawReturnItem) SKUID() string {
	if id := firstID(it.OfferID, it.ShopSKU, it.SKU); id != "" {
		return id
	}
	return "unknown"
}

// Qty returns the item quantity; a return item with no quantity counts as 1.
func (it *RawReturnItem) Qty() int {
	if n := int(ledger.FirstMoney(it.Count, it.Quantity)); n > 0 {
		return n
	}
	return 1
}

// ExtractAmount resolves the refunded amount for one return item: decision
// sums first, then the same precedence as the return header.
func (it *RawReturnItem) ExtractAmount() float64 {
	if len(it.Decisions) > 0 {
		var sum float64
		for _, d := range it.Decisions {
			sum += d.Amount.Float()
		}
		if sum != 0 {
			return sum
		}
	}
	if it.Amount != nil {
		return it.Amount.Float()
	}
	if it.RefundAmount != nil {
		return it.RefundAmount.Float()
	}
	return ledger.FirstMoney(it.TotalAmount, it.Price)
}
