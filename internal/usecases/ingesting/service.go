package ingesting

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market"
	marketdomain "github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/domain"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/marketclient"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/repository"
	"github.com/sellerpulse/marketplace-ledger-api/internal/config"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
	"github.com/sellerpulse/marketplace-ledger-api/internal/ledger"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/log"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/utils"
)

// ErrRunActive is returned when a sync for the same project is in flight.
var ErrRunActive = errors.New("sync already running for this project")

type Ingestor interface {
	SyncDay(ctx context.Context, projectID int, date time.Time) (*domain.SyncResult, error)
}

type Service struct {
	cfg        *config.Config
	market     market.Integrator
	configRepo repository.SellerConfigRepository
	ledgerRepo repository.DailyLedgerRepository
	skuRepo    repository.SkuDailyRepository

	mu     sync.Mutex
	active map[int]bool
}

func NewService(
	cfg *config.Config,
	integrator market.Integrator,
	configRepo repository.SellerConfigRepository,
	ledgerRepo repository.DailyLedgerRepository,
	skuRepo repository.SkuDailyRepository,
) *Service {
	return &Service{
		cfg:        cfg,
		market:     integrator,
		configRepo: configRepo,
		ledgerRepo: ledgerRepo,
		skuRepo:    skuRepo,
		active:     make(map[int]bool),
	}
}

// skuTotals accumulates one SKU's share of the day.
type skuTotals struct {
	Quantity  int
	Revenue   float64
	Fees      float64
	Acquiring float64
	Logistics float64
	Returns   float64
}

// pairBatch is everything fetched for one credential pair.
type pairBatch struct {
	pair        domain.CredentialPair
	statsOrders []marketdomain.RawOrder
	listOrders  []marketdomain.RawOrder
	returns     []marketdomain.RawReturn
	payouts     []marketdomain.RawPayout
}

// runState tracks fetch outcomes across the whole run. Only the per-campaign
// stats-order fetches count toward the auth abort; the order list, business
// snapshot, returns and payouts degrade into the error map.
type runState struct {
	errs               map[string]string
	ordersRequests     int
	orderFailures      int
	statsFetched       int
	payoutsUnavailable bool
}

// hasAuthSignature reports whether any recorded failure looks like a
// credential rejection.
func hasAuthSignature(errs map[string]string) bool {
	for _, msg := range errs {
		t := strings.ToLower(msg)
		if strings.Contains(t, "401") || strings.Contains(t, "403") ||
			strings.Contains(t, "unauthorized") || strings.Contains(t, "forbidden") {
			return true
		}
	}
	return false
}

// SyncDay reconciles one UTC calendar day for one project: it fetches orders,
// returns and payouts for every resolved credential pair, aggregates them
// into project-day and per-SKU totals and replaces the stored rows for that
// day. Safe to re-run; fatal errors leave the previous rows untouched.
func (s *Service) SyncDay(ctx context.Context, projectID int, date time.Time) (*domain.SyncResult, error) {
	s.mu.Lock()
	if s.active[projectID] {
		s.mu.Unlock()
		return nil, ErrRunActive
	}
	s.active[projectID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.active, projectID)
		s.mu.Unlock()
	}()

	day := domain.DayStart(date)
	runID, _ := utils.GenerateID()
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id":     runID,
		"project_id": projectID,
		"date":       day.Format(time.DateOnly),
	})
	logger.Info("starting ledger sync")

	stored, err := s.configRepo.GetByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "loading seller configuration")
	}

	pairs, err := ResolveCredentials(stored, s.cfg.Seller)
	if err != nil {
		return nil, err
	}

	state := &runState{errs: make(map[string]string)}

	batches := make([]pairBatch, 0, len(pairs))
	for i, pair := range pairs {
		if i > 0 {
			if err := s.pauseBetweenPairs(ctx); err != nil {
				return nil, err
			}
		}
		batches = append(batches, s.fetchPair(ctx, day, pair, state))
	}

	statusOrders := s.fetchBusinessOrders(ctx, day, pairs, state)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// When every stats-order fetch failed, nothing came back and at least one
	// failure is credential-shaped, the keys are broken, not the day empty. A
	// single pair returning an empty day keeps the run alive.
	if state.ordersRequests > 0 && state.orderFailures == state.ordersRequests &&
		state.statsFetched == 0 && hasAuthSignature(state.errs) {
		logger.WithField("errors", state.errs).Error("all order fetches rejected")
		return nil, &AuthenticationError{Errors: state.errs}
	}

	result := s.aggregate(ctx, day, projectID, batches, statusOrders, state)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry := &domain.DailyLedger{
		ProjectID:       projectID,
		Date:            day,
		Revenue:         result.Revenue,
		Orders:          result.Orders,
		OrdersCreated:   result.OrdersCreated,
		OrdersWarehouse: result.OrdersWarehouse,
		OrdersDelivered: result.OrdersDelivered,
		Fees:            result.Fees,
		Acquiring:       result.Acquiring,
		Logistics:       result.Logistics,
		Returns:         result.Returns,
	}
	if err := s.ledgerRepo.SaveOrUpdate(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "saving daily ledger")
	}
	if err := s.skuRepo.ReplaceForDay(ctx, projectID, day, result.skuRows); err != nil {
		return nil, errors.Wrap(err, "replacing sku rows")
	}

	logger.WithFields(log.Fields{
		"revenue":      result.Revenue,
		"orders":       result.Orders,
		"skus":         len(result.skuRows),
		"fetch_errors": len(result.Errors),
	}).Info("ledger sync finished")

	return &result.SyncResult, nil
}

func (s *Service) pauseBetweenPairs(ctx context.Context) error {
	delay := time.Duration(s.cfg.LedgerSync.RequestDelaySeconds) * time.Second
	if delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// fetchPair fans out the day's fetches for one credential pair and joins
// them. Every failure is caught into the error map and replaced with an
// empty result so the remaining pairs still contribute.
func (s *Service) fetchPair(ctx context.Context, day time.Time, pair domain.CredentialPair, state *runState) pairBatch {
	batch := pairBatch{pair: pair}
	state.ordersRequests++

	var (
		wg                                        sync.WaitGroup
		statsErr, listErr, returnsErr, payoutsErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		batch.statsOrders, statsErr = s.market.OrderStatsForDay(ctx, day, pair)
	}()

	if s.cfg.Seller.UseOrdersAPI {
		wg.Add(1)
		go func() {
			defer wg.Done()
			batch.listOrders, listErr = s.market.OrderListForDay(ctx, day, pair)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		batch.returns, returnsErr = s.market.ReturnsForDay(ctx, day, pair)
	}()

	if !s.cfg.Ingest.SkipPayouts && !state.payoutsUnavailable {
		wg.Add(1)
		go func() {
			defer wg.Done()
			batch.payouts, payoutsErr = s.market.PayoutsForDay(ctx, day, pair)
		}()
	}

	wg.Wait()

	if statsErr != nil {
		state.errs[pair.CampaignID+":orders"] = statsErr.Error()
		state.orderFailures++
		batch.statsOrders = nil
	} else {
		state.statsFetched += len(batch.statsOrders)
	}

	if listErr != nil {
		state.errs[pair.CampaignID+":orders-list"] = listErr.Error()
		batch.listOrders = nil
	}

	if returnsErr != nil {
		state.errs[pair.CampaignID+":returns"] = returnsErr.Error()
		batch.returns = nil
	}

	if payoutsErr != nil {
		batch.payouts = nil
		// A missing/forbidden payout endpoint will fail identically for every
		// pair; stop asking for the rest of the run and keep the error map
		// clean. Anything else is a real failure worth surfacing.
		if marketclient.IsUnavailable(payoutsErr) {
			state.payoutsUnavailable = true
		} else {
			state.errs[pair.CampaignID+":payouts"] = payoutsErr.Error()
		}
	}

	return batch
}

// fetchBusinessOrders queries the business-level order snapshot when it is
// enabled; it gives more reliable status counts than per-campaign orders.
// The business can span campaigns outside this project, so every call is
// filtered to one of the project's campaigns.
func (s *Service) fetchBusinessOrders(ctx context.Context, day time.Time, pairs []domain.CredentialPair, state *runState) []marketdomain.RawOrder {
	seller := s.cfg.Seller
	if !seller.UseBusinessOrdersAPI || seller.BusinessID == "" || len(pairs) == 0 {
		return nil
	}

	apiKey := seller.BusinessAPIKey
	if apiKey == "" {
		apiKey = pairs[0].APIKey
	}

	campaigns := make([]string, 0, len(pairs))
	seen := make(map[string]bool)
	for _, pair := range pairs {
		if pair.CampaignID == "" || seen[pair.CampaignID] {
			continue
		}
		seen[pair.CampaignID] = true
		campaigns = append(campaigns, pair.CampaignID)
	}
	if len(campaigns) == 0 {
		campaigns = []string{""}
	}

	var orders []marketdomain.RawOrder
	for _, campaignID := range campaigns {
		batch, err := s.market.BusinessOrdersForDay(ctx, day, seller.BusinessID, apiKey, campaignID, pairs[0])
		if err != nil {
			key := "business-orders"
			if campaignID != "" {
				key = campaignID + ":business-orders"
			}
			state.errs[key] = err.Error()
			continue
		}
		orders = append(orders, batch...)
	}
	return orders
}

// aggregateResult is the run's full outcome including the rows to persist.
type aggregateResult struct {
	domain.SyncResult
	skuRows []*domain.SkuDaily
}

func (s *Service) aggregate(ctx context.Context, day time.Time, projectID int, batches []pairBatch, statusOrders []marketdomain.RawOrder, state *runState) *aggregateResult {
	result := &aggregateResult{}
	result.ProjectID = projectID
	result.Date = day

	skus := make(map[string]*skuTotals)
	skuFor := func(id string) *skuTotals {
		if t, ok := skus[id]; ok {
			return t
		}
		t := &skuTotals{}
		skus[id] = t
		return t
	}

	// The flat key x campaign expansion can query one campaign under several
	// keys; dedupe financial orders by id so they count once.
	seen := make(map[string]bool)
	financialOrders := make([]*marketdomain.RawOrder, 0)
	var listOrders []marketdomain.RawOrder
	for i := range batches {
		for j := range batches[i].statsOrders {
			o := &batches[i].statsOrders[j]
			if key := o.Key(); key != "" {
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			financialOrders = append(financialOrders, o)
		}
		listOrders = append(listOrders, batches[i].listOrders...)
	}

	orderRevenue := make(map[string]float64)

	s.countStatuses(result, statusOrders, listOrders, financialOrders)
	s.aggregateOrders(result, financialOrders, skuFor, orderRevenue)
	returnsByOrder := s.aggregateReturns(ctx, result, batches, skuFor, state)
	s.adjustDelivered(result, orderRevenue, returnsByOrder)
	s.reconcilePayouts(result, batches, skus)

	// Float accumulation leaves sub-cent noise; stored amounts are kept at
	// two decimals.
	result.Revenue = utils.RoundWithTwoDecimalPlace(result.Revenue)
	result.Fees = utils.RoundWithTwoDecimalPlace(result.Fees)
	result.Acquiring = utils.RoundWithTwoDecimalPlace(result.Acquiring)
	result.Logistics = utils.RoundWithTwoDecimalPlace(result.Logistics)
	result.Returns = utils.RoundWithTwoDecimalPlace(result.Returns)

	result.Errors = state.errs
	result.skuRows = buildSkuRows(projectID, day, skus)
	return result
}

// countStatuses counts orders per lifecycle bucket. The business snapshot is
// preferred, then the order list, then the stats orders.
func (s *Service) countStatuses(result *aggregateResult, statusOrders, listOrders []marketdomain.RawOrder, financialOrders []*marketdomain.RawOrder) {
	classify := func(status, substatus string) {
		result.Orders++
		st := ledger.ClassifyOrderStatus(status, substatus)
		if st.Cancelled {
			return
		}
		result.OrdersCreated++
		switch st.Bucket {
		case ledger.StatusWarehouse:
			result.OrdersWarehouse++
		case ledger.StatusDelivered:
			result.OrdersDelivered++
		}
	}

	switch {
	case len(statusOrders) > 0:
		for i := range statusOrders {
			classify(statusOrders[i].Status, statusOrders[i].Sub())
		}
	case len(listOrders) > 0:
		for i := range listOrders {
			classify(listOrders[i].Status, listOrders[i].Sub())
		}
	default:
		for _, o := range financialOrders {
			classify(o.Status, o.Sub())
		}
	}
}

// aggregateOrders folds every order into the project totals and the per-SKU
// map. Cancelled orders are excluded from the lifecycle counts, not from the
// money: the marketplace still reports their charges on the stats feed.
func (s *Service) aggregateOrders(result *aggregateResult, orders []*marketdomain.RawOrder, skuFor func(string) *skuTotals, orderRevenue map[string]float64) {
	for _, o := range orders {
		itemRevenues := make([]float64, len(o.Items))
		var itemSum float64
		var qtySum int
		for i := range o.Items {
			itemRevenues[i] = o.Items[i].Revenue()
			itemSum += itemRevenues[i]
			qtySum += o.Items[i].Qty()
		}

		revenue := o.Revenue()
		if revenue == 0 {
			revenue = itemSum
		}

		// Structured commission lines beat the flat order fields; synthesize
		// acquiring from the configured rate only when neither reports one.
		split := o.CommissionSplit()
		if split.Total() == 0 {
			split.Fees = math.Abs(o.FlatFees())
			split.Logistics = math.Abs(o.FlatLogistics())
			split.Acquiring = math.Abs(o.FlatAcquiring())
		}
		if split.Acquiring == 0 && s.cfg.Ingest.AcquiringRate > 0 {
			split.Acquiring = revenue * s.cfg.Ingest.AcquiringRate
		}

		result.Revenue += revenue
		result.Fees += split.Fees
		result.Logistics += split.Logistics
		result.Acquiring += split.Acquiring

		if key := o.Key(); key != "" {
			orderRevenue[key] += revenue
		}

		for i := range o.Items {
			it := &o.Items[i]
			t := skuFor(it.SKUID())
			t.Quantity += it.Qty()
			t.Revenue += itemRevenues[i]

			var share float64
			if itemSum > 0 {
				share = itemRevenues[i] / itemSum
			} else if qtySum > 0 {
				share = float64(it.Qty()) / float64(qtySum)
			}

			if fees := math.Abs(it.ItemFees()); fees != 0 {
				t.Fees += fees
			} else {
				t.Fees += split.Fees * share
			}
			if logistics := math.Abs(it.ItemLogistics()); logistics != 0 {
				t.Logistics += logistics
			} else {
				t.Logistics += split.Logistics * share
			}
			if acquiring := math.Abs(it.ItemAcquiring()); acquiring != 0 {
				t.Acquiring += acquiring
			} else {
				t.Acquiring += split.Acquiring * share
			}
		}
	}
}

// aggregateReturns resolves every return's amount, looking up the per-return
// detail when the listing carries no amount, and attributes it to SKUs and to
// the source order for the delivered-count adjustment.
func (s *Service) aggregateReturns(ctx context.Context, result *aggregateResult, batches []pairBatch, skuFor func(string) *skuTotals, state *runState) map[string]float64 {
	returnsByOrder := make(map[string]float64)

	for i := range batches {
		pair := batches[i].pair
		for j := range batches[i].returns {
			r := &batches[i].returns[j]

			amount := r.ExtractAmount()
			items := r.ItemList()

			if amount == 0 && r.OrderKey() != "" && r.Key() != "" {
				detail, err := s.market.ReturnDetail(ctx, pair, r.OrderKey(), r.Key())
				if err != nil {
					state.errs[pair.CampaignID+":return-detail"] = err.Error()
				} else if detail != nil {
					if a := detail.ExtractAmount(); a != 0 {
						amount = a
					}
					if list := detail.ItemList(); len(list) > 0 {
						items = list
					}
				}
			}

			itemAmounts := make([]float64, len(items))
			var itemSum float64
			var qtySum int
			for k := range items {
				itemAmounts[k] = items[k].ExtractAmount()
				itemSum += itemAmounts[k]
				qtySum += items[k].Qty()
			}

			switch {
			case itemSum != 0:
				for k := range items {
					skuFor(items[k].SKUID()).Returns += math.Abs(itemAmounts[k])
				}
				if amount == 0 {
					amount = itemSum
				}
			case amount != 0 && qtySum > 0:
				// No per-item amounts: spread the return total across its
				// items proportionally by quantity.
				for k := range items {
					share := float64(items[k].Qty()) / float64(qtySum)
					skuFor(items[k].SKUID()).Returns += math.Abs(amount) * share
				}
			}

			result.Returns += math.Abs(amount)
			if key := r.OrderKey(); key != "" {
				returnsByOrder[key] += math.Abs(amount)
			}
		}
	}

	return returnsByOrder
}

// adjustDelivered decrements the delivered count once per order whose returns
// reached the nullify ratio of its revenue; a near-full refund is not a
// completed sale. The returns are matched against the financial orders, not
// the status source, because the two can come from different endpoints.
func (s *Service) adjustDelivered(result *aggregateResult, orderRevenue, returnsByOrder map[string]float64) {
	ratio := s.cfg.Ingest.ReturnNullifyRatio
	if ratio <= 0 || result.OrdersDelivered <= 0 {
		return
	}

	for key, returned := range returnsByOrder {
		revenue := orderRevenue[key]
		if revenue <= 0 {
			continue
		}
		if returned >= ratio*revenue {
			result.OrdersDelivered--
		}
	}
	if result.OrdersDelivered < 0 {
		result.OrdersDelivered = 0
	}
}

// reconcilePayouts treats classifiable payout lines as the authoritative fee
// totals and rescales the order-derived buckets to match, preserving each
// SKU's relative share.
func (s *Service) reconcilePayouts(result *aggregateResult, batches []pairBatch, skus map[string]*skuTotals) {
	var split ledger.ChargeSplit
	var flatAcquiring float64
	for i := range batches {
		for j := range batches[i].payouts {
			p := &batches[i].payouts[j]
			for _, line := range p.Lines() {
				split.AddPayoutCharge(line.Label(), line.PayoutAmount())
			}
			flatAcquiring += math.Abs(p.FlatAcquiring())
		}
	}
	if split.Acquiring == 0 && flatAcquiring > 0 {
		split.Acquiring = flatAcquiring
	}
	if split.Total() == 0 {
		return
	}

	if split.Fees > 0 {
		result.Fees = rescaleBucket(split.Fees, result.Fees, result.Revenue, skus,
			func(t *skuTotals) float64 { return t.Fees },
			func(t *skuTotals, v float64) { t.Fees = v })
	}
	if split.Logistics > 0 {
		result.Logistics = rescaleBucket(split.Logistics, result.Logistics, result.Revenue, skus,
			func(t *skuTotals) float64 { return t.Logistics },
			func(t *skuTotals, v float64) { t.Logistics = v })
	}
	if split.Acquiring > 0 {
		result.Acquiring = rescaleBucket(split.Acquiring, result.Acquiring, result.Revenue, skus,
			func(t *skuTotals) float64 { return t.Acquiring },
			func(t *skuTotals, v float64) { t.Acquiring = v })
	}
}

// rescaleBucket scales every SKU's bucket value so the sum matches the
// payout-reported total. When the orders reported nothing for the bucket, it
// is distributed by revenue share instead. Deliberately unclamped: sharply
// disagreeing payout data shows up as-is rather than being hidden.
func rescaleBucket(payoutTotal, orderTotal, revenueTotal float64, skus map[string]*skuTotals, get func(*skuTotals) float64, set func(*skuTotals, float64)) float64 {
	if orderTotal > 0 {
		factor := payoutTotal / orderTotal
		for _, t := range skus {
			set(t, get(t)*factor)
		}
		return payoutTotal
	}

	if revenueTotal > 0 {
		for _, t := range skus {
			set(t, payoutTotal*t.Revenue/revenueTotal)
		}
	}
	return payoutTotal
}

func buildSkuRows(projectID int, day time.Time, skus map[string]*skuTotals) []*domain.SkuDaily {
	ids := make([]string, 0, len(skus))
	for id := range skus {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]*domain.SkuDaily, 0, len(ids))
	for _, id := range ids {
		t := skus[id]
		rows = append(rows, &domain.SkuDaily{
			ProjectID: projectID,
			Date:      day,
			SKU:       id,
			Quantity:  t.Quantity,
			Revenue:   utils.RoundWithTwoDecimalPlace(t.Revenue),
			Fees:      utils.RoundWithTwoDecimalPlace(t.Fees),
			Acquiring: utils.RoundWithTwoDecimalPlace(t.Acquiring),
			Logistics: utils.RoundWithTwoDecimalPlace(t.Logistics),
			Returns:   utils.RoundWithTwoDecimalPlace(t.Returns),
		})
	}
	return rows
}
