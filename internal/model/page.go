package model

import "fmt"

// Page identifies one of the marketplace surfaces.
type Page string

const (
	PageHome      Page = "home"
	PageCatalog   Page = "catalog"
	PagePurchases Page = "purchases"
	PageChats     Page = "chats"
	PageProfile   Page = "profile"
	PageProduct   Page = "product"
	PageAdmin     Page = "admin"
)

var validPages = map[Page]struct{}{
	PageHome:      {},
	PageCatalog:   {},
	PagePurchases: {},
	PageChats:     {},
	PageProfile:   {},
	PageProduct:   {},
	PageAdmin:     {},
}

// Valid reports whether p names a known page.
func (p Page) Valid() bool {
	_, ok := validPages[p]
	return ok
}

// ParsePage converts a raw string into a Page.
func ParsePage(raw string) (Page, error) {
	p := Page(raw)
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown page %q", ErrInvalidInput, raw)
	}
	return p, nil
}
