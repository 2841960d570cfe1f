/*
Package wallet credits user wallets and exposes their balances.

Usage:

	svc := wallet.NewService(userRepo, metrics, logger)

	// Credit 500 to wallet 1234567890
	resp, err := svc.FundWallet(ctx, models.FundWalletRequest{
	    WalletNumber: "1234567890",
	    Amount:       decimal.NewFromInt(500),
	})

Every credit runs inside one database transaction: the wallet row is locked,
the balance is rewritten and a WalletTransaction ledger row is inserted.
Concurrent credits to the same wallet are serialized by the row lock.

Unknown wallet numbers are not errors. They produce a "003" response and
leave the database untouched.
*/
package wallet
