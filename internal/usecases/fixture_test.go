package usecases

import (
	"context"
	"testing"

	storage "github.com/practice-sem-2/chat-service/internal/storages"
	"github.com/practice-sem-2/chat-service/internal/storages/mocks"
	"go.uber.org/mock/gomock"
)

type registryMocks struct {
	registry *mocks.MockRegistry
	users    *mocks.MockUsersStore
	chats    *mocks.MockChatsStore
	members  *mocks.MockMembersStore
	messages *mocks.MockMessagesStore
	updates  *mocks.MockUpdatesStore
}

// newRegistryMocks wires store mocks into a registry mock whose Atomic runs
// the callback against itself.
func newRegistryMocks(t *testing.T) *registryMocks {
	ctrl := gomock.NewController(t)

	m := &registryMocks{
		registry: mocks.NewMockRegistry(ctrl),
		users:    mocks.NewMockUsersStore(ctrl),
		chats:    mocks.NewMockChatsStore(ctrl),
		members:  mocks.NewMockMembersStore(ctrl),
		messages: mocks.NewMockMessagesStore(ctrl),
		updates:  mocks.NewMockUpdatesStore(ctrl),
	}

	m.registry.EXPECT().GetUsersStore().Return(m.users).AnyTimes()
	m.registry.EXPECT().GetChatsStore().Return(m.chats).AnyTimes()
	m.registry.EXPECT().GetMembersStore().Return(m.members).AnyTimes()
	m.registry.EXPECT().GetMessagesStore().Return(m.messages).AnyTimes()
	m.registry.EXPECT().GetUpdatesStore().Return(m.updates).AnyTimes()
	m.registry.EXPECT().
		Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn storage.AtomicFunc) error {
			return fn(m.registry)
		}).
		AnyTimes()

	return m
}
