package domain

// TransferStatus is the lifecycle state of an escrowed transfer.
// ACTIVE is the only non-terminal state; a transfer moves to exactly
// one of CLAIMED or CANCELLED and never changes again.
type TransferStatus string

const (
	TransferStatusActive    TransferStatus = "ACTIVE"
	TransferStatusClaimed   TransferStatus = "CLAIMED"
	TransferStatusCancelled TransferStatus = "CANCELLED"
)

// Token describes the mint a transfer is denominated in.
type Token struct {
	Mint     string `json:"mint"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Pool describes the escrow pool a transfer is held by.
type Pool struct {
	PoolPDA     string `json:"poolPda"`
	PoolID      string `json:"poolId"`
	OperatorKey string `json:"operatorKey"`
	FeeBps      int    `json:"feeBps"`
}

// Transfer is an escrowed payment record on the ledger. The backend owns
// this record; the client reads it and may only change its status through
// the claim/cancel transaction paths.
type Transfer struct {
	TransferPDA    string         `json:"transferPda"`
	Sender         string         `json:"sender"`
	Recipient      string         `json:"recipient"`
	Amount         string         `json:"amount"`
	AmountRaw      string         `json:"amountRaw"`
	Status         TransferStatus `json:"status"`
	Memo           string         `json:"memo,omitempty"`
	Token          Token          `json:"token"`
	Pool           Pool           `json:"pool"`
	CreateTxid     string         `json:"createTxid"`
	ClaimTxid      string         `json:"claimTxid,omitempty"`
	CancelTxid     string         `json:"cancelTxid,omitempty"`
	ClaimableAfter string         `json:"claimableAfter,omitempty"`
	ClaimableUntil string         `json:"claimableUntil,omitempty"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
}
