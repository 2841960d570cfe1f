package models

// Response codes and messages shared by the wallet and airtime flows.
const (
	WalletExistsCode    = "001"
	WalletExistsMessage = "This user already has a wallet"

	WalletCreationSuccess = "002"
	WalletCreationMessage = "Wallet has been successfully created"

	WalletNotExistCode    = "003"
	WalletNotExistMessage = "Wallet with the provided wallet number does not exist"

	WalletCreditedSuccess        = "005"
	WalletCreditedSuccessMessage = "Wallet has been credited successfully"

	FailedTransactionCode    = "012"
	FailedTransactionMessage = "Airtime purchase failed"

	ProviderSuccessCode = "00"
	TransportErrorCode  = "ERROR"

	LoginSuccessCode = "Login Success"
)
