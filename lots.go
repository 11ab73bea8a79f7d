package reitfolio

// lot represents a single unconsumed acquisition of shares, used for FIFO cost
// basis calculations. Price is zero for no-cost acquisitions.
type lot struct {
	Shares Quantity
	Price  Money // per share
}

type lots []lot

// apply replays one transaction on the queue. Buys and no-cost acquisitions
// append a lot to the tail, sells consume from the head.
func (l lots) apply(tx Transaction) lots {
	switch tx.Type {
	case Buy:
		return append(l, lot{Shares: tx.Shares, Price: tx.Price})
	case NoCost:
		return append(l, lot{Shares: tx.Shares, Price: USD(0)})
	case Sell:
		return l.sell(tx.Shares)
	}
	return l
}

// sell reduces the available lots by a quantity to sell, consuming oldest
// lots first. Selling more shares than are held leaves the queue empty: the
// overage is silently dropped, not an error.
func (l lots) sell(toSell Quantity) lots {
	remaining := l
	for toSell.IsPositive() && len(remaining) > 0 {
		head := remaining[0]
		if !head.Shares.GreaterThan(toSell) {
			// Full sale of the head lot.
			toSell = toSell.Sub(head.Shares)
			remaining = remaining[1:]
			continue
		}
		// Partial sale from the head lot.
		remaining[0] = lot{Shares: head.Shares.Sub(toSell), Price: head.Price}
		break
	}
	return remaining
}

// shares returns the total number of shares still held in the queue.
func (l lots) shares() Quantity {
	var total Quantity
	for _, lt := range l {
		total = total.Add(lt.Shares)
	}
	return total
}

// cost returns the total cost basis of the shares still held in the queue.
func (l lots) cost() Money {
	var total Money
	for _, lt := range l {
		total = total.Add(lt.Price.Mul(lt.Shares))
	}
	return total
}
