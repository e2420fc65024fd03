package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/online-shop-network/internal/authclient"
	"github.com/pr-poehali-dev/online-shop-network/internal/model"
	"github.com/pr-poehali-dev/online-shop-network/internal/nav"
	"github.com/pr-poehali-dev/online-shop-network/internal/storage"
)

type stubGateway struct {
	session       model.Session
	err           error
	registerCalls int
	loginCalls    int
}

func (g *stubGateway) Register(_ context.Context, _, _, _ string) (model.Session, error) {
	g.registerCalls++
	return g.session, g.err
}

func (g *stubGateway) Login(_ context.Context, _, _ string) (model.Session, error) {
	g.loginCalls++
	return g.session, g.err
}

func emptyStore(t *testing.T) *storage.FileStore {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestAccountService_Startup(t *testing.T) {
	t.Parallel()

	t.Run("no persisted session starts unauthenticated", func(t *testing.T) {
		svc := NewAccountService(emptyStore(t), &stubGateway{})
		_, ok := svc.Current()
		require.False(t, ok)
	})

	t.Run("persisted session is restored without a network call", func(t *testing.T) {
		store := emptyStore(t)
		user := model.User{ID: 1, Username: "skzry", Email: "a@b.c", IsAdmin: true}
		require.NoError(t, store.Save("abc", user))

		gateway := &stubGateway{}
		svc := NewAccountService(store, gateway)

		session, ok := svc.Current()
		require.True(t, ok)
		require.Equal(t, "abc", session.Token)
		require.Equal(t, user, session.User)
		require.Zero(t, gateway.loginCalls)
	})
}

func TestAccountService_Register(t *testing.T) {
	t.Parallel()

	t.Run("password confirmation mismatch never reaches the gateway", func(t *testing.T) {
		gateway := &stubGateway{}
		svc := NewAccountService(emptyStore(t), gateway)

		_, err := svc.Register(context.Background(), "newbie", "new@b.c", "secret", "different")
		require.Error(t, err)
		require.Zero(t, gateway.registerCalls)

		_, ok := svc.Current()
		require.False(t, ok)
	})

	t.Run("successful register persists and establishes the session", func(t *testing.T) {
		store := emptyStore(t)
		gateway := &stubGateway{session: model.Session{
			Token: "tok",
			User:  model.User{ID: 7, Username: "newbie", Email: "new@b.c"},
		}}
		svc := NewAccountService(store, gateway)

		user, err := svc.Register(context.Background(), "newbie", "new@b.c", "secret", "secret")
		require.NoError(t, err)
		require.Equal(t, "newbie", user.Username)

		session, ok := svc.Current()
		require.True(t, ok)
		require.Equal(t, "tok", session.Token)

		persisted, ok := store.Load()
		require.True(t, ok)
		require.Equal(t, "tok", persisted.Token)
	})

	t.Run("gateway failure leaves no session behind", func(t *testing.T) {
		store := emptyStore(t)
		gateway := &stubGateway{err: &authclient.AuthError{Message: "User already exists"}}
		svc := NewAccountService(store, gateway)

		_, err := svc.Register(context.Background(), "newbie", "new@b.c", "secret", "secret")
		require.EqualError(t, err, "User already exists")

		_, ok := svc.Current()
		require.False(t, ok)
		_, ok = store.Load()
		require.False(t, ok)
	})
}

func TestAccountService_Login(t *testing.T) {
	t.Parallel()

	t.Run("success stores the session and unlocks admin navigation", func(t *testing.T) {
		store := emptyStore(t)
		gateway := &stubGateway{session: model.Session{
			Token: "abc",
			User:  model.User{ID: 1, Username: "skzry", Email: "a@b.c", IsAdmin: true},
		}}
		svc := NewAccountService(store, gateway)

		_, err := svc.Login(context.Background(), "skzry", "568876Qqq")
		require.NoError(t, err)

		persisted, ok := store.Load()
		require.True(t, ok)
		require.Equal(t, "abc", persisted.Token)

		controller := nav.NewController(svc)
		require.True(t, controller.NavigateToPage(model.PageAdmin))
		require.Equal(t, model.PageAdmin, controller.State().CurrentPage)
	})

	t.Run("invalid credentials surface the server message and store nothing", func(t *testing.T) {
		store := emptyStore(t)
		gateway := &stubGateway{err: &authclient.AuthError{Message: "Invalid credentials"}}
		svc := NewAccountService(store, gateway)

		_, err := svc.Login(context.Background(), "skzry", "wrong")

		var authErr *authclient.AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, "Invalid credentials", authErr.Message)

		_, ok := store.Load()
		require.False(t, ok)
	})

	t.Run("empty login short-circuits before the network", func(t *testing.T) {
		gateway := &stubGateway{}
		svc := NewAccountService(emptyStore(t), gateway)

		_, err := svc.Login(context.Background(), "  ", "secret")
		require.Error(t, err)
		require.Zero(t, gateway.loginCalls)
	})
}

func TestAccountService_Logout(t *testing.T) {
	t.Parallel()

	store := emptyStore(t)
	gateway := &stubGateway{session: model.Session{
		Token: "abc",
		User:  model.User{ID: 1, Username: "skzry"},
	}}
	svc := NewAccountService(store, gateway)

	_, err := svc.Login(context.Background(), "skzry", "568876Qqq")
	require.NoError(t, err)

	require.NoError(t, svc.Logout())
	_, ok := svc.Current()
	require.False(t, ok)
	_, ok = store.Load()
	require.False(t, ok)

	// Idempotent.
	require.NoError(t, svc.Logout())
}

func TestAccountService_MockStorePersistFailure(t *testing.T) {
	t.Parallel()

	// A failing store must not block authentication for the current run.
	mockStore := new(storage.MockStore)
	mockStore.On("Load").Return(model.Session{}, false)
	mockStore.On("Save", "abc", model.User{ID: 1, Username: "skzry"}).Return(assertErr{})

	gateway := &stubGateway{session: model.Session{Token: "abc", User: model.User{ID: 1, Username: "skzry"}}}
	svc := NewAccountService(mockStore, gateway)

	_, err := svc.Login(context.Background(), "skzry", "pw")
	require.NoError(t, err)

	_, ok := svc.Current()
	require.True(t, ok)
	mockStore.AssertExpectations(t)
}

type assertErr struct{}

func (assertErr) Error() string { return "disk full" }
