package domain

// Wallet is a local keypair record. The private key never leaves the
// config store; core components borrow the address and request signing
// through the signer boundary.
type Wallet struct {
	Label      string `json:"label"`
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
}

// Contact is one entry in the local address book.
type Contact struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// TokenBalance is one token line in a wallet balance response.
type TokenBalance struct {
	Mint    string `json:"mint"`
	Symbol  string `json:"symbol"`
	Balance string `json:"balance"`
}

// Balance is the full balance view of a wallet.
type Balance struct {
	Sol    float64        `json:"sol"`
	Tokens []TokenBalance `json:"tokens"`
}
