// Package catalog supplies the static marketplace data the view layer
// renders. Listings, chats and purchase history are read-only; real order
// processing, chat transport and moderation live outside this system.
package catalog

import (
	"github.com/pr-poehali-dev/online-shop-network/internal/model"
)

type Catalog struct {
	products  []model.Product
	chats     []model.Chat
	purchases []model.Purchase
}

func New() *Catalog {
	return &Catalog{
		products:  defaultProducts(),
		chats:     defaultChats(),
		purchases: defaultPurchases(),
	}
}

// Products returns every listing. Callers get a copy they may reorder.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID looks a listing up by its identifier.
func (c *Catalog) ProductByID(id int64) (model.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, model.ErrProductNotFound
}

// Chats returns the conversation previews, including the guarantor chat.
func (c *Catalog) Chats() []model.Chat {
	out := make([]model.Chat, len(c.chats))
	copy(out, c.chats)
	return out
}

// Purchases returns the buyer's order history.
func (c *Catalog) Purchases() []model.Purchase {
	out := make([]model.Purchase, len(c.purchases))
	copy(out, c.purchases)
	return out
}

func defaultProducts() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Title:       "Telegram Premium 12 months",
			Price:       1499,
			Category:    "Telegram",
			Image:       "https://images.unsplash.com/photo-1611162616475-46b635cb6868?w=400&h=300&fit=crop",
			Seller:      "TechStore",
			Description: "Telegram Premium subscription for 12 months. Instant activation after payment.",
		},
		{
			ID:          2,
			Title:       "Steam Account (5+ games)",
			Price:       2999,
			Category:    "Steam",
			Image:       "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=400&h=300&fit=crop",
			Seller:      "GamerHub",
			Description: "Steam account with 5+ games. Full access, email change guaranteed.",
		},
		{
			ID:          3,
			Title:       "Epic Games | GTA V + Fortnite Bundle",
			Price:       899,
			Category:    "Epic Games",
			Image:       "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=400&h=300&fit=crop",
			Seller:      "GameDeals",
			Description: "Epic Games account with GTA V and 5000+ V-Bucks worth of Fortnite skins.",
		},
		{
			ID:          4,
			Title:       "Discord Nitro 1 month",
			Price:       599,
			Category:    "Other",
			Image:       "https://images.unsplash.com/photo-1614680376593-902f74cf0d41?w=400&h=300&fit=crop",
			Seller:      "DigitalShop",
			Description: "Discord Nitro subscription for 1 month. Every Nitro perk for your server.",
		},
		{
			ID:          5,
			Title:       "CS:GO Prime Status",
			Price:       1199,
			Category:    "Steam",
			Image:       "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=400&h=300&fit=crop",
			Seller:      "ProGaming",
			Description: "CS:GO Prime Status account. Ranked-ready, full credential change.",
		},
		{
			ID:          6,
			Title:       "Spotify Premium 12 months",
			Price:       1799,
			Category:    "Other",
			Image:       "https://images.unsplash.com/photo-1614680376408-81e91ffe3db7?w=400&h=300&fit=crop",
			Seller:      "MusicHub",
			Description: "Spotify Premium for a year. Ad-free and offline listening.",
		},
	}
}

func defaultChats() []model.Chat {
	return []model.Chat{
		{
			ID:           1,
			Participants: []string{"TechStore"},
			LastMessage:  "The item is ready for handover",
			Status:       "online",
		},
		{
			ID:              2,
			Participants:    []string{"GamerHub", "Guarantor Alex_Pro"},
			LastMessage:     "Checking the account...",
			Status:          "typing",
			IsGuarantorChat: true,
		},
		{
			ID:           3,
			Participants: []string{"GameDeals"},
			LastMessage:  "Thanks for the purchase!",
			Status:       "offline",
		},
	}
}

func defaultPurchases() []model.Purchase {
	return []model.Purchase{
		{ID: 1, Title: "Telegram Premium 12 months", Price: 1499, Date: "15.11.2024", Status: "completed", Seller: "TechStore"},
		{ID: 2, Title: "Steam Account (5+ games)", Price: 2999, Date: "10.11.2024", Status: "in_progress", Seller: "GamerHub"},
	}
}
