package domain

// Operator is one policy slot on a shared account: a wallet bound to the
// account with a per-transaction spending limit in raw units.
type Operator struct {
	Index      int    `json:"index"`
	Pubkey     string `json:"pubkey"`
	PerTxLimit string `json:"perTxLimit"`
}

// OperatorSlot is the slot shape returned by by-operator discovery, where
// the pubkey is implied by the queried wallet.
type OperatorSlot struct {
	Index      int    `json:"index"`
	PerTxLimit string `json:"perTxLimit"`
}

// Account is the full on-ledger view of a shared spending account.
type Account struct {
	PDA          string     `json:"pda"`
	Owner        string     `json:"owner"`
	Mint         string     `json:"mint"`
	MintDecimals int        `json:"mintDecimals"`
	IsPaused     bool       `json:"isPaused"`
	Balance      uint64     `json:"balance"`
	Operators    []Operator `json:"operators"`
}

// OperatorAccount is one discovery candidate: an account on which the
// queried wallet holds an operator slot.
type OperatorAccount struct {
	PDA          string        `json:"pda"`
	Owner        string        `json:"owner"`
	Mint         string        `json:"mint"`
	MintDecimals int           `json:"mintDecimals"`
	IsPaused     bool          `json:"isPaused"`
	Balance      uint64        `json:"balance"`
	OperatorSlot *OperatorSlot `json:"operatorSlot"`
}

// AccountEvent is a single entry in an account's event log.
type AccountEvent struct {
	EventType string         `json:"eventType"`
	Txid      string         `json:"txid"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

// AccountInfo is the locally persisted snapshot of a synced account. It
// mirrors one operator slot as of syncedAt and is a cache, never a source
// of truth; staleness is resolved only by an explicit re-sync.
type AccountInfo struct {
	PDA           string `json:"pda"`
	Owner         string `json:"owner"`
	Mint          string `json:"mint"`
	MintDecimals  int    `json:"mintDecimals"`
	OperatorIndex int    `json:"operatorIndex"`
	PerTxLimit    uint64 `json:"perTxLimit"`
	SyncedAt      string `json:"syncedAt"`
}
