package models

import "time"

// PaymentMethod is a deposit channel
type PaymentMethod string

const (
	PaymentBank       PaymentMethod = "bank"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentCrypto     PaymentMethod = "crypto"
	PaymentPi         PaymentMethod = "pi"
)

// NotificationStatus is the status stored in the payment_notifications table
type NotificationStatus string

const (
	NotificationPending  NotificationStatus = "pending"
	NotificationVerified NotificationStatus = "verified"
	NotificationRejected NotificationStatus = "rejected"
)

// DepositRequest is a driver's request to top up their balance
type DepositRequest struct {
	Amount        int64         `json:"amount" validate:"required,gt=0"`
	PaymentMethod PaymentMethod `json:"payment_method" validate:"required"`
	CryptoType    string        `json:"crypto_type,omitempty"`
}

// Deposit tracks a top-up from request to settlement
type Deposit struct {
	TransactionID string             `json:"transaction_id"`
	DriverID      string             `json:"driver_id"`
	Amount        int64              `json:"amount"`
	PaymentMethod PaymentMethod      `json:"payment_method"`
	CryptoType    string             `json:"crypto_type,omitempty"`
	Status        NotificationStatus `json:"status"`
	Balance       int64              `json:"balance"`
	CreatedAt     time.Time          `json:"created_at"`
	SettledAt     *time.Time         `json:"settled_at,omitempty"`
}

// PaymentNotification is a row in the payment_notifications table
type PaymentNotification struct {
	ID            int64              `db:"id"`
	PaymentType   string             `db:"payment_type"`
	Amount        int64              `db:"amount"`
	Status        NotificationStatus `db:"status"`
	TransactionID string             `db:"transaction_id"`
	UserID        string             `db:"user_id"`
	Details       []byte             `db:"details"`
	Timestamp     time.Time          `db:"timestamp"`
	VerifiedAt    *time.Time         `db:"verified_at"`
}

// Balance is the driver's spendable balance
type Balance struct {
	DriverID    string `json:"driver_id"`
	Amount      int64  `json:"amount"`
	LowBalance  bool   `json:"low_balance"`
	PlatformFee int64  `json:"platform_fee"`
	MinDeposit  int64  `json:"min_deposit"`
}

// PaymentMethodInfo describes a deposit channel to clients
type PaymentMethodInfo struct {
	Method     PaymentMethod     `json:"method"`
	MinDeposit int64             `json:"min_deposit"`
	Addresses  map[string]string `json:"addresses,omitempty"`
	Minimums   map[string]string `json:"minimums,omitempty"`
	Sandbox    bool              `json:"sandbox,omitempty"`
}

// VerifyDepositRequest is sent by the payment service to settle a deposit
type VerifyDepositRequest struct {
	Verified bool `json:"verified"`
}
