package wallet

// CreateWalletRequest creates a wallet for the caller, or for CustomerID
// when an employee provisions one on a customer's behalf.
type CreateWalletRequest struct {
	Name              string
	Currency          string
	ActiveForShopping bool
	ActiveForWithdraw bool
	CustomerID        uint // 0 means the caller themselves
}

// SettingsRequest toggles the wallet flags.
type SettingsRequest struct {
	ActiveForShopping bool
	ActiveForWithdraw bool
}

// ListFilter narrows a wallet listing. CustomerID is only honored for
// employees; customers always see their own wallets.
type ListFilter struct {
	CustomerID uint
	Currency   string
}
