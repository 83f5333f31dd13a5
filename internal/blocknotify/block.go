package blocknotify

import "github.com/shopspring/decimal"

// ChainSummary is the explorer's view of the chain tip, fetched fresh on
// every poll.
type ChainSummary struct {
	BlockCount int64           // Height of the most recent block
	Difficulty decimal.Decimal // Current mining difficulty
}

// BlockInfo holds the block metadata returned by the explorer for a hash.
type BlockInfo struct {
	Hash   string // Block hash
	Height int64  // Block height, zero when the explorer omits it
	Time   int64  // Unix timestamp (seconds) at which the block was mined
}

// BlockRecord is a newly detected block after both lookups succeeded.
type BlockRecord struct {
	Height  int64  // Block height
	Hash    string // Block hash
	MinedAt int64  // Unix timestamp (seconds) at which the block was mined
}
