package models

// Wallet represents a monitored on-chain address and where its deposit
// alerts are delivered.
type Wallet struct {
	// ID is the unique identifier of the wallet, assigned on creation.
	ID uint `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the display label shown in alerts and callback payloads.
	Name string `json:"name" gorm:"column:name;size:100;not null"`
	// Address is the monitored on-chain address. At most one wallet per address.
	Address string `json:"address" gorm:"column:address;size:100;uniqueIndex;not null"`
	// BotToken is the Telegram bot token used to send the chat alert.
	BotToken string `json:"bot_token" gorm:"column:bot_token;size:200;not null"`
	// ChatID is the Telegram chat that receives the alert.
	ChatID string `json:"chat_id" gorm:"column:chat_id;size:100;not null"`
	// NotificationURL is the optional operator callback. Empty means no callback.
	NotificationURL string `json:"notification_url" gorm:"column:notification_url;size:255"`
	// NotificationAPIKey is sent as the x-api-key header of the callback when set.
	NotificationAPIKey string `json:"notification_api_key" gorm:"column:notification_api_key;size:255"`
	// TatumSubscriptionID is the upstream subscription handle, stored as is.
	TatumSubscriptionID string `json:"tatum_subscription_id" gorm:"column:tatum_subscription_id;size:100"`
}

// TableName specifies the table name for GORM
func (Wallet) TableName() string {
	return "wallets"
}

// WalletPatch is a partial wallet update. A nil field was not provided and
// keeps its current value; a non-nil field is applied even when it points to
// an empty string.
type WalletPatch struct {
	Name                *string `json:"name"`
	Address             *string `json:"address"`
	BotToken            *string `json:"bot_token"`
	ChatID              *string `json:"chat_id"`
	NotificationURL     *string `json:"notification_url"`
	NotificationAPIKey  *string `json:"notification_api_key"`
	TatumSubscriptionID *string `json:"tatum_subscription_id"`
}

// Apply copies every provided field of the patch onto the wallet.
func (p *WalletPatch) Apply(w *Wallet) {
	applyString(&w.Name, p.Name)
	applyString(&w.Address, p.Address)
	applyString(&w.BotToken, p.BotToken)
	applyString(&w.ChatID, p.ChatID)
	applyString(&w.NotificationURL, p.NotificationURL)
	applyString(&w.NotificationAPIKey, p.NotificationAPIKey)
	applyString(&w.TatumSubscriptionID, p.TatumSubscriptionID)
}

// ChangesAddress reports whether the patch moves the wallet to another address.
func (p *WalletPatch) ChangesAddress(w *Wallet) bool {
	return p.Address != nil && *p.Address != w.Address
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
