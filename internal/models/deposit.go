package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DepositEvent is the payload of an inbound deposit webhook. Amount is kept
// as the exact string the sender supplied.
type DepositEvent struct {
	Address         string `json:"address"`
	Amount          Amount `json:"amount"`
	TxID            string `json:"txId"`
	ContractAddress string `json:"contractAddress"`
}

// Amount is a deposit amount as the sender wrote it. It decodes from a JSON
// string or a bare JSON number; null leaves it empty.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("amount must be a string or a number: %w", err)
	}
	*a = Amount(data)
	return nil
}

// CallbackPayload is the JSON body posted to a wallet's notification URL.
type CallbackPayload struct {
	Amount     string `json:"amount"`
	Address    string `json:"address"`
	TxID       string `json:"txId"`
	WalletName string `json:"wallet_name"`
}

// DepositOutcome describes how an accepted deposit event was handled.
type DepositOutcome string

const (
	// OutcomeIgnored means the event was for another token contract.
	OutcomeIgnored DepositOutcome = "ignored"
	// OutcomeUnknownWallet means no wallet is registered for the address.
	OutcomeUnknownWallet DepositOutcome = "unknown_wallet"
	// OutcomeDispatched means notifications were attempted.
	OutcomeDispatched DepositOutcome = "dispatched"
)
