package models

// Review is a public customer review shown on the landing page.
type Review struct {
	ID      string  `json:"id" firestore:"-"` // Firestore document ID
	Name    string  `json:"name" firestore:"name"`
	Rating  float64 `json:"rating" firestore:"rating"`
	Comment string  `json:"comment" firestore:"comment"`
}
