package domain

// OfferMappingEntry is one catalog entry from the offer-mapping listing.
// Older responses nest the offer under "offer", newer ones under
// "offerMapping", the oldest inline the fields on the entry itself.
type OfferMappingEntry struct {
	Offer        *Offer `json:"offer"`
	OfferMapping *Offer `json:"offerMapping"`
	OfferName    string `json:"offerName"`

	ShopSKU FlexID `json:"shopSku"`
	OfferID FlexID `json:"offerId"`
	ID      FlexID `json:"id"`
	Name    string `json:"name"`
}

// Offer is the nested offer payload.
type Offer struct {
	ShopSKU FlexID `json:"shopSku"`
	OfferID FlexID `json:"offerId"`
	ID      FlexID `json:"id"`
	Name    string `json:"name"`
}

// SKUID returns the entry's SKU, whichever nesting and variant is populated.
func (e *OfferMappingEntry) SKUID() string {
	if o := e.offer(); o != nil {
		if id := firstID(o.ShopSKU, o.OfferID, o.ID); id != "" {
			return id
		}
	}
	return firstID(e.ShopSKU, e.OfferID, e.ID)
}

// DisplayName returns the offer name, falling back to the SKU.
func (e *OfferMappingEntry) DisplayName() string {
	if o := e.offer(); o != nil && o.Name != "" {
		return o.Name
	}
	if e.OfferName != "" {
		return e.OfferName
	}
	if e.Name != "" {
		return e.Name
	}
	return e.SKUID()
}

func (e *OfferMappingEntry) offer() *Offer {
	if e.Offer != nil {
		return e.Offer
	}
	return e.OfferMapping
}
