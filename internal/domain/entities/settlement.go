package entities

// SettlementResult is what a payment confirmation produced.
//
// AlreadySettled marks the replay path: the transaction had been recorded
// before and nothing was written. Settled is false when the provider has not
// reported the session as paid yet.
type SettlementResult struct {
	Settled        bool
	AlreadySettled bool
	PaymentStatus  string
	TrackingID     string
	TransactionID  string
	ModifyParcel   UpdateResult
	PaymentInfo    InsertResult
}
