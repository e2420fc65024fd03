package model

// Product is a digital-goods listing. Listings are read-only in this core;
// the catalog package owns the data.
type Product struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Seller      string `json:"seller"`
	Description string `json:"description"`
}

// Chat is a conversation preview. Guarantor chats include the escrow
// mediator as a participant.
type Chat struct {
	ID              int64    `json:"id"`
	Participants    []string `json:"participants"`
	LastMessage     string   `json:"last_message"`
	Status          string   `json:"status"`
	IsGuarantorChat bool     `json:"is_guarantor_chat,omitempty"`
}

// Purchase is a completed or in-flight order in the buyer's history.
type Purchase struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Price  int64  `json:"price"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Seller string `json:"seller"`
}
