package config

import "github.com/nanakim-star/trc20bot/internal/models"

// USDCContractAddress is the USDC TRC20 token contract on Tron mainnet.
const USDCContractAddress = "TEkxiTehnzSmSe2XqrBj4w32RUN966rdz8"

var knownTokens = map[string]models.Token{
	USDTContractAddress: {Address: USDTContractAddress, Name: "Tether USD", Symbol: "USDT", Decimals: 6},
	USDCContractAddress: {Address: USDCContractAddress, Name: "USD Coin", Symbol: "USDC", Decimals: 6},
}

// KnownToken returns the metadata of a well-known TRC20 contract.
func KnownToken(address string) (models.Token, bool) {
	token, ok := knownTokens[address]
	return token, ok
}

// defaultAssetSymbol is the ticker used in alerts when ASSET_SYMBOL is unset.
func defaultAssetSymbol(contract string) string {
	if token, ok := KnownToken(contract); ok {
		return token.Symbol
	}
	return "TRC20"
}
