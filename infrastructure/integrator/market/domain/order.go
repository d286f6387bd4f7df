package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/sellerpulse/marketplace-ledger-api/internal/ledger"
)

// FlexID is an identifier that may arrive as a JSON string or number.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*f = ""
		return nil
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }

func firstID(ids ...FlexID) string {
	for _, id := range ids {
		if id != "" {
			return string(id)
		}
	}
	return ""
}

// RawOrder is an order as the seller API reports it. Different API
// generations use different field names for the same concept; all known
// variants are declared and resolved through explicit precedence methods.
type RawOrder struct {
	ID       FlexID `json:"id"`
	OrderID  FlexID `json:"orderId"`
	OrderID2 FlexID `json:"order_id"`

	Status        string `json:"status"`
	Substatus     string `json:"substatus"`
	SubstatusAlt  string `json:"subStatus"`
	StatusDetails string `json:"statusDetails"`
	SubstatusOld  string `json:"sub_status"`

	Total           ledger.Money `json:"total"`
	ItemsTotal      ledger.Money `json:"itemsTotal"`
	BuyerItemsTotal ledger.Money `json:"buyerItemsTotal"`
	PaymentsTotal   ledger.Money `json:"paymentsTotal"`
	Price           ledger.Money `json:"price"`
	BuyerTotal      ledger.Money `json:"buyerTotal"`

	Fee                   ledger.Money `json:"fee"`
	Fees                  ledger.Money `json:"fees"`
	MarketplaceFee        ledger.Money `json:"marketplaceFee"`
	Commission            ledger.Money `json:"commission"`
	CommissionFee         ledger.Money `json:"commissionFee"`
	MarketplaceCommission ledger.Money `json:"marketplaceCommission"`

	Delivery            ledger.Money `json:"delivery"`
	DeliveryCost        ledger.Money `json:"deliveryCost"`
	DeliveryServiceCost ledger.Money `json:"deliveryServiceCost"`
	Logistics           ledger.Money `json:"logistics"`
	Shipping            ledger.Money `json:"shipping"`
	Shipment            ledger.Money `json:"shipment"`
	ShipmentCost        ledger.Money `json:"shipmentCost"`

	Acquiring            ledger.Money `json:"acquiring"`
	AcquiringFee         ledger.Money `json:"acquiringFee"`
	PaymentFee           ledger.Money `json:"paymentFee"`
	PaymentProcessingFee ledger.Money `json:"paymentProcessingFee"`
	BankFee              ledger.Money `json:"bankFee"`
	ProcessingFee        ledger.Money `json:"processingFee"`

	Commissions []RawCharge    `json:"commissions"`
	Items       []RawOrderItem `json:"items"`
}

// Key returns the order identifier, whichever variant is populated.
func (o *RawOrder) Key() string {
	return firstID(o.ID, o.OrderID, o.OrderID2)
}

// Sub returns the substatus text, whichever variant is populated.
func (o *RawOrder) Sub() string {
	for _, s := range []string{o.Substatus, o.SubstatusAlt, o.StatusDetails, o.SubstatusOld} {
		if s != "" {
			return s
		}
	}
	return ""
}

// Revenue resolves the order-level gross in field precedence order. Zero
// means the caller should fall back to summing item revenue.
func (o *RawOrder) Revenue() float64 {
	return ledger.FirstMoney(
		o.Total,
		o.ItemsTotal,
		o.BuyerItemsTotal,
		o.PaymentsTotal,
		o.Price,
		o.BuyerTotal,
	)
}

// FlatFees resolves the flat order-level commission fields, used only when
// the order carries no structured commission breakdown.
func (o *RawOrder) FlatFees() float64 {
	return ledger.FirstMoney(
		o.Fee,
		o.Fees,
		o.MarketplaceFee,
		o.Commission,
		o.CommissionFee,
		o.MarketplaceCommission,
	)
}

func (o *RawOrder) FlatLogistics() float64 {
	return ledger.FirstMoney(
		o.Delivery,
		o.DeliveryCost,
		o.DeliveryServiceCost,
		o.Logistics,
		o.Shipping,
		o.Shipment,
		o.ShipmentCost,
	)
}

func (o *RawOrder) FlatAcquiring() float64 {
	return ledger.FirstMoney(
		o.Acquiring,
		o.AcquiringFee,
		o.PaymentFee,
		o.PaymentProcessingFee,
		o.BankFee,
		o.ProcessingFee,
	)
}

// CommissionSplit classifies the structured commission list into cost
// buckets. A non-zero total means the structured data takes precedence over
// the flat fields.
func (o *RawOrder) CommissionSplit() ledger.ChargeSplit {
	var split ledger.ChargeSplit
	for _, c := range o.Commissions {
		split.AddOrderCharge(c.Label(), c.CommissionAmount())
	}
	return split
}

// RawCharge is one commission/service line attached to an order or payout.
type RawCharge struct {
	Type          string `json:"type"`
	Service       string `json:"service"`
	Name          string `json:"name"`
	OperationType string `json:"operationType"`
	ServiceName   string `json:"serviceName"`
	Title         string `json:"title"`

	Actual *ledger.Money `json:"actual,omitempty"`
	Amount *ledger.Money `json:"amount,omitempty"`
	Value  *ledger.Money `json:"value,omitempty"`
	Total  *ledger.Money `json:"total,omitempty"`
	Price  *ledger.Money `json:"price,omitempty"`
	Sum    *ledger.Money `json:"sum,omitempty"`
	Cost   *ledger.Money `json:"cost,omitempty"`
	Fee    *ledger.Money `json:"fee,omitempty"`
}

// Label returns the charge's type text, whichever variant is populated.
func (c *RawCharge) Label() string {
	for _, s := range []string{c.Type, c.Service, c.Name, c.OperationType, c.ServiceName, c.Title} {
		if s != "" {
			return s
		}
	}
	return ""
}

// CommissionAmount resolves the amount for order commission lines. The first
// field the payload carries wins even when it is zero; an explicit zero
// actual amount means the line charged nothing.
func (c *RawCharge) CommissionAmount() float64 {
	return ledger.FirstPresent(c.Actual, c.Amount, c.Value, c.Price, c.Sum)
}

// PayoutAmount resolves the amount for payout lines, which use a wider set
// of field names than order commissions.
func (c *RawCharge) PayoutAmount() float64 {
	return ledger.FirstPresent(c.Amount, c.Value, c.Total, c.Price, c.Sum, c.Cost, c.Fee)
}

// RawOrderItem is one item line of a RawOrder.
type RawOrderItem struct {
	OfferID FlexID `json:"offerId"`
	ShopSKU FlexID `json:"shopSku"`
	SKU     FlexID `json:"sku"`

	Count    ledger.Money `json:"count"`
	Quantity ledger.Money `json:"quantity"`

	Prices            []ItemPrice  `json:"prices"`
	Price             ledger.Money `json:"price"`
	PriceWithDiscount ledger.Money `json:"priceWithDiscount"`
	BuyerPrice        ledger.Money `json:"buyerPrice"`

	Fee            ledger.Money `json:"fee"`
	Fees           ledger.Money `json:"fees"`
	Commission     ledger.Money `json:"commission"`
	MarketplaceFee ledger.Money `json:"marketplaceFee"`
	CommissionFee  ledger.Money `json:"commissionFee"`

	Delivery     ledger.Money `json:"delivery"`
	DeliveryCost ledger.Money `json:"deliveryCost"`
	Logistics    ledger.Money `json:"logistics"`
	Shipping     ledger.Money `json:"shipping"`
	Shipment     ledger.Money `json:"shipment"`

	Acquiring            ledger.Money `json:"acquiring"`
	AcquiringFee         ledger.Money `json:"acquiringFee"`
	PaymentFee           ledger.Money `json:"paymentFee"`
	PaymentProcessingFee ledger.Money `json:"paymentProcessingFee"`
}

// ItemPrice is one entry of an item's price list; the BUYER-typed entry is
// what the customer actually paid.
type ItemPrice struct {
	Type        string       `json:"type"`
	Total       ledger.Money `json:"total"`
	CostPerItem ledger.Money `json:"costPerItem"`
	Price       ledger.Money `json:"price"`
}

// SKUID returns the item's SKU, falling back to "unknown" so unattributable
// revenue still shows up in the breakdown instead of vanishing.
func (it *RawOrderItem) SKUID() string {
	if id := firstID(it.OfferID, it.ShopSKU, it.SKU); id != "" {
		return id
	}
	return "unknown"
}

// Qty returns the item quantity, whichever variant is populated.
func (it *RawOrderItem) Qty() int {
	return int(ledger.FirstMoney(it.Count, it.Quantity))
}

// Revenue computes the item's gross. The prices list wins when present:
// the BUYER entry's total, or per-item price times quantity. Otherwise the
// flat price fields apply.
func (it *RawOrderItem) Revenue() float64 {
	qty := float64(it.Qty())
	if len(it.Prices) > 0 {
		price := it.Prices[0]
		for _, p := range it.Prices {
			if strings.EqualFold(p.Type, "BUYER") {
				price = p
				break
			}
		}
		if price.Total != 0 {
			return price.Total.Float()
		}
		return ledger.FirstMoney(price.CostPerItem, price.Price) * qty
	}
	return ledger.FirstMoney(it.Price, it.PriceWithDiscount, it.BuyerPrice) * qty
}

// ItemFees resolves item-level commission fields; zero means the caller
// pro-rates the order-level amount instead.
func (it *RawOrderItem) ItemFees() float64 {
	return ledger.FirstMoney(it.Fee, it.Fees, it.Commission, it.MarketplaceFee, it.CommissionFee)
}

func (it *RawOrderItem) ItemLogistics() float64 {
	return ledger.FirstMoney(it.Delivery, it.DeliveryCost, it.Logistics, it.Shipping, it.Shipment)
}

func (it *RawOrderItem) ItemAcquiring() float64 {
	return ledger.FirstMoney(it.Acquiring, it.AcquiringFee, it.PaymentFee, it.PaymentProcessingFee)
}
