package models

import "time"

// CartItem is a single pending purchase owned by a user. Items are removed
// individually or in bulk when a payment settles them.
type CartItem struct {
	ID      string    `json:"id" firestore:"-"` // Firestore document ID
	Email   string    `json:"email" firestore:"email"`
	ItemRef string    `json:"itemRef" firestore:"itemRef"`
	Price   float64   `json:"price" firestore:"price"`
	AddedAt time.Time `json:"addedAt" firestore:"addedAt,serverTimestamp"`
}
