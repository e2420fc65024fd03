package storage

import (
	"github.com/stretchr/testify/mock"

	"github.com/pr-poehali-dev/online-shop-network/internal/model"
)

// MockStore is a testify mock of Store for service-level tests.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(token string, user model.User) error {
	args := m.Called(token, user)
	return args.Error(0)
}

func (m *MockStore) Load() (model.Session, bool) {
	args := m.Called()
	return args.Get(0).(model.Session), args.Bool(1)
}

func (m *MockStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}
