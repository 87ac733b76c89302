package models

// Token describes a TRC20 token contract whose deposits can be relayed.
type Token struct {
	// Address is the contract address of the token
	Address string `json:"address"`
	// Name is the full name of the token
	Name string `json:"name"`
	// Symbol is the short symbol of the token (e.g., USDT)
	Symbol string `json:"symbol"`
	// Decimals is the number of decimals the token uses
	Decimals int `json:"decimals"`
}
