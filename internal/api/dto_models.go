package api

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is a generic structure for simple informational replies.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// AdminStatusResponse answers the admin-flag lookup for an email.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// InsertResult reports a single-document insert.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult reports a single-document update.
type UpdateResult struct {
	ModifiedCount int `json:"modifiedCount"`
}

// DeleteResult reports document deletions. FailedCartIDs is only populated
// by settlement when some referenced cart items could not be removed.
type DeleteResult struct {
	DeletedCount  int      `json:"deletedCount"`
	FailedCartIDs []string `json:"failedCartIds,omitempty"`
}

// PaymentIntentResponse carries the processor's client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// SettlementResponse is the reply to a payment submission. DeleteResult
// narrower than the requested cart IDs signals a partial settlement the
// caller must reconcile.
type SettlementResponse struct {
	PaymentResult InsertResult `json:"paymentResult"`
	DeleteResult  DeleteResult `json:"deleteResult"`
}
