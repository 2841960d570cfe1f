package validation

import "xpressairtime/internal/models"

// UserRegistration validates a registration payload
func (v *Validator) UserRegistration(req *models.UserRequest) {
	v.Struct(req)
}

// Login validates a login payload
func (v *Validator) Login(req *models.LoginRequest) {
	v.Struct(req)
}

// FundWallet validates a wallet funding payload
func (v *Validator) FundWallet(req *models.FundWalletRequest) {
	v.Struct(req)
	v.PositiveAmount("amount", req.Amount)
	v.AmountPlaces("amount", req.Amount, models.MoneyPlaces)
}

// AirtimePurchase validates an airtime purchase payload
func (v *Validator) AirtimePurchase(req *models.AirtimeRequest) {
	v.Struct(req)
	v.PositiveAmount("amount", req.Details.Amount)
}
