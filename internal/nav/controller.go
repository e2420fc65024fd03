// Package nav holds the page state machine of the marketplace UI. All
// transitions run synchronously in response to discrete user events; the
// controller owns the state and callers mutate it only through the
// operations below.
package nav

import (
	"crypto/subtle"
	"log/slog"
	"sync"

	"github.com/pr-poehali-dev/online-shop-network/internal/model"
)

// Legacy admin gate credentials, kept only for migration parity with the
// old profile-page login form. Admin authority itself comes from the
// session's IsAdmin field.
const (
	legacyAdminUsername = "skzry"
	legacyAdminPassword = "568876Qqq"
)

// SessionSource exposes the active session to the controller. The admin
// capability is read from the session's user record and nowhere else.
type SessionSource interface {
	Current() (model.Session, bool)
}

// State is the serializable navigation state consumed by the view renderer.
type State struct {
	CurrentPage     model.Page
	SelectedProduct *model.Product
}

type Controller struct {
	sessions SessionSource

	mu    sync.Mutex
	state State
}

func NewController(sessions SessionSource) *Controller {
	return &Controller{
		sessions: sessions,
		state:    State{CurrentPage: model.PageHome},
	}
}

// State returns a copy of the current navigation state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	if c.state.SelectedProduct != nil {
		product := *c.state.SelectedProduct
		state.SelectedProduct = &product
	}
	return state
}

// NavigateToPage transitions to page and reports whether the transition
// happened. Every page is reachable unconditionally except admin, which
// requires the active session's IsAdmin flag; the refusal is silent to end
// users, so the page simply stays put.
func (c *Controller) NavigateToPage(page model.Page) bool {
	if page == model.PageAdmin && !c.isAdmin() {
		slog.Debug("navigation refused", "page", page)
		return false
	}

	c.mu.Lock()
	c.state.CurrentPage = page
	c.mu.Unlock()
	return true
}

// NavigateToProduct records the selection and enters the product page in one
// operation, so the product page is never entered through this path without
// a selection.
func (c *Controller) NavigateToProduct(product model.Product) {
	c.mu.Lock()
	c.state.SelectedProduct = &product
	c.state.CurrentPage = model.PageProduct
	c.mu.Unlock()
}

// GoBack always lands on home. There is no history stack; callers wanting
// genuine back-navigation must keep their own.
func (c *Controller) GoBack() {
	c.mu.Lock()
	c.state.CurrentPage = model.PageHome
	c.mu.Unlock()
}

// Reset returns the machine to its initial state. Used on logout.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.state = State{CurrentPage: model.PageHome}
	c.mu.Unlock()
}

// AttemptAdminLogin is the legacy literal-credential gate from the profile
// page. On an exact match it enters the admin page and returns true; any
// other input returns false and leaves state unchanged.
//
// Deprecated: admin authority lives on the session's IsAdmin field and is
// enforced by NavigateToPage. This path remains only so existing clients of
// the old form keep working.
func (c *Controller) AttemptAdminLogin(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(legacyAdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(legacyAdminPassword)) == 1
	if !userOK || !passOK {
		return false
	}

	slog.Warn("admin page entered through the deprecated credential gate", "username", username)

	c.mu.Lock()
	c.state.CurrentPage = model.PageAdmin
	c.mu.Unlock()
	return true
}

func (c *Controller) isAdmin() bool {
	session, ok := c.sessions.Current()
	return ok && session.User.IsAdmin
}
