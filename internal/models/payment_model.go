package models

import "time"

// Payment is the durable record of a settlement. It is written exactly once
// and never mutated; CartIDs lists the cart items the payment covered.
type Payment struct {
	ID        string    `json:"id" firestore:"-"` // Firestore document ID
	Email     string    `json:"email" firestore:"email"`
	Amount    float64   `json:"amount" firestore:"amount"`
	CartIDs   []string  `json:"cartIds" firestore:"cartIds"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
