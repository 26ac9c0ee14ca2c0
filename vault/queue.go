package vault

import (
	"verse_contracts/rwa"
)

// payRequest transfers a liquidation to its user and books the stats.
func payRequest(cfg *VaultConfig, req *LiquidationRequest, now int64) {
	transferOut(req.User, req.Amount, cfg)
	cfg.Available = rwa.SubChecked(cfg.Available, req.Amount, "available liquidity")
	stats := loadStats(req.Property)
	stats.TotalLiquidated = rwa.AddChecked(stats.TotalLiquidated, req.Amount, "total liquidated")
	stats.LastLiquidation = now
	saveStats(stats)
	emitLiquidationExecuted(req.Property.String(), req.User.String(), req.Amount)
}

// canPay is the single admission rule: paying must keep the buffer intact.
func canPay(cfg *VaultConfig, amount rwa.Amount) bool {
	need := rwa.AddChecked(bufferThreshold(cfg), amount, "admission check")
	return cfg.Available >= need
}

// attemptProcessQueue drains the FIFO front to back. The first entry that
// cannot be paid blocks everything behind it; ids whose record is gone were
// fulfilled earlier and are skipped. The head cursor only ever moves forward,
// and only inside this pass. Controlled mode clears once head reaches tail.
// Callers persist cfg afterwards.
func attemptProcessQueue(cfg *VaultConfig, now int64) {
	head := rwa.GetCount(QueueHeadKey)
	tail := rwa.GetCount(QueueTailKey)

	cursor := head
	for cursor < tail {
		req, ok := loadRequest(cursor)
		if !ok {
			cursor++
			continue
		}
		if !canPay(cfg, req.Amount) {
			break
		}
		payRequest(cfg, req, now)
		deleteRequest(cursor)
		cursor++
	}

	if cursor != head {
		rwa.SetCount(QueueHeadKey, cursor)
	}
	if cursor >= tail && cfg.ControlledMode {
		cfg.ControlledMode = false
		emitControlledMode(false)
	}
}

// calculateQueueObligations sums every live request between the cursors.
func calculateQueueObligations() rwa.Amount {
	head := rwa.GetCount(QueueHeadKey)
	tail := rwa.GetCount(QueueTailKey)
	total := rwa.Amount(0)
	for id := head; id < tail; id++ {
		if req, ok := loadRequest(id); ok {
			total = rwa.AddChecked(total, req.Amount, "queue obligations")
		}
	}
	return total
}

// queuedCount counts live entries for the status view.
func queuedCount() (uint64, rwa.Amount) {
	head := rwa.GetCount(QueueHeadKey)
	tail := rwa.GetCount(QueueTailKey)
	count := uint64(0)
	total := rwa.Amount(0)
	for id := head; id < tail; id++ {
		if req, ok := loadRequest(id); ok {
			count++
			total = rwa.AddChecked(total, req.Amount, "queue total")
		}
	}
	return count, total
}

// expectedMonthlyCashFlow sums the advisory figures reported per property.
func expectedMonthlyCashFlow() rwa.Amount {
	total := rwa.Amount(0)
	for _, property := range loadAuthorized() {
		stats := loadStats(property)
		total = rwa.AddChecked(total, stats.CashFlowMonthly, "expected cash flow")
	}
	return total
}

// estimateFulfillment projects when a queued amount could clear. With no
// reported cash flow it falls back to 90 days; otherwise whole months of
// cash flow, capped at 12. Advisory only, never gates a payout.
func estimateFulfillment(amount rwa.Amount, now int64) int64 {
	cashFlow := expectedMonthlyCashFlow()
	if cashFlow <= 0 {
		return now + FallbackFulfillmentSecs
	}
	months := int64(amount / cashFlow)
	if months > MaxFulfillmentMonths {
		months = MaxFulfillmentMonths
	}
	return now + months*SecondsPerMonth
}
