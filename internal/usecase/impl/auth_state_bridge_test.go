package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"authkit/internal/domain/entity"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/service"
	"authkit/internal/infra/identity/memoryauth"
	mockService "authkit/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// authStateBridgeFixtures holds the bridge and the listener it registered.
type authStateBridgeFixtures struct {
	bridge   *authStateBridge
	gateway  *mockService.MockIdentityGateway
	metrics  *mockService.MockMetricsRecorder
	mu       sync.Mutex
	listener service.AuthStateListener
	unsubs   int
}

func (f *authStateBridgeFixtures) notify(identity *entity.Identity) {
	f.mu.Lock()
	listener := f.listener
	f.mu.Unlock()
	listener(identity)
}

func createTestAuthStateBridge(t *testing.T) *authStateBridgeFixtures {
	f := &authStateBridgeFixtures{
		gateway: mockService.NewMockIdentityGateway(t),
		metrics: mockService.NewMockMetricsRecorder(t),
	}
	f.bridge = newAuthStateBridge(f.gateway, testLogger(), f.metrics)

	f.gateway.EXPECT().
		OnAuthStateChanged(mock.Anything).
		RunAndReturn(func(listener service.AuthStateListener) service.Unsubscribe {
			f.mu.Lock()
			f.listener = listener
			f.mu.Unlock()

			return func() {
				f.mu.Lock()
				f.unsubs++
				f.mu.Unlock()
			}
		}).
		Maybe()

	return f
}

func TestAuthStateBridge_StartsLoading(t *testing.T) {
	f := createTestAuthStateBridge(t)

	state := f.bridge.State()

	assert.True(t, state.Loading)
	assert.Nil(t, state.Identity)
	assert.Equal(t, entity.AuthStatusLoading, state.Status())
}

func TestAuthStateBridge_FirstCallbackResolves(t *testing.T) {
	tests := []struct {
		name       string
		identity   *entity.Identity
		wantStatus entity.AuthStatus
	}{
		{name: "signed out", identity: nil, wantStatus: entity.AuthStatusUnauthenticated},
		{name: "signed in", identity: &entity.Identity{UID: "U1", Email: "a@b.co"}, wantStatus: entity.AuthStatusAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthStateBridge(t)
			f.metrics.EXPECT().RecordAuthTransition(string(tt.wantStatus)).Once()
			f.bridge.Start()

			changed := f.bridge.Changed()
			f.notify(tt.identity)

			select {
			case <-changed:
			default:
				t.Fatal("Changed channel was not closed")
			}

			state := f.bridge.State()
			assert.False(t, state.Loading)
			assert.Equal(t, tt.wantStatus, state.Status())
			assert.Equal(t, tt.identity, state.Identity)
		})
	}
}

func TestAuthStateBridge_NeverReturnsToLoading(t *testing.T) {
	f := createTestAuthStateBridge(t)
	f.metrics.EXPECT().RecordAuthTransition(mock.Anything)
	f.bridge.Start()

	identities := []*entity.Identity{nil, {UID: "U1"}, nil, {UID: "U2"}, {UID: "U2"}}
	for _, identity := range identities {
		f.notify(identity)
		state := f.bridge.State()
		assert.False(t, state.Loading)
		assert.Equal(t, identity, state.Identity)
	}
}

func TestAuthStateBridge_StateIsASnapshot(t *testing.T) {
	f := createTestAuthStateBridge(t)
	f.metrics.EXPECT().RecordAuthTransition(mock.Anything)
	f.bridge.Start()

	source := &entity.Identity{UID: "U1", ProviderIDs: []string{"password"}}
	f.notify(source)
	source.ProviderIDs[0] = "mutated"

	state := f.bridge.State()
	state.Identity.UID = "changed"

	again := f.bridge.State()
	assert.Equal(t, "U1", again.Identity.UID)
	assert.Equal(t, []string{"password"}, again.Identity.ProviderIDs)
}

func TestAuthStateBridge_OperationsDoNotTouchState(t *testing.T) {
	f := createTestAuthStateBridge(t)
	ctx := context.Background()

	identity := &entity.Identity{UID: "U1", Email: "a@b.co"}
	f.gateway.EXPECT().Login(ctx, "a@b.co", "secret1").Return(identity, nil)
	f.gateway.EXPECT().Register(ctx, "n@b.co", "secret2").Return(&entity.Identity{UID: "U2"}, nil)
	f.gateway.EXPECT().Logout(ctx).Return(nil)

	got, err := f.bridge.Login(ctx, "a@b.co", "secret1")
	require.NoError(t, err)
	assert.Same(t, identity, got)

	_, err = f.bridge.Register(ctx, "n@b.co", "secret2")
	require.NoError(t, err)
	require.NoError(t, f.bridge.Logout(ctx))

	assert.True(t, f.bridge.State().Loading)
}

func TestAuthStateBridge_LoginFailurePassesAuthError(t *testing.T) {
	f := createTestAuthStateBridge(t)
	ctx := context.Background()

	authErr := domainerrors.NewAuthError(domainerrors.AuthOpLogin,
		domainerrors.NewBackendError(domainerrors.CodeWrongPassword, "INVALID_PASSWORD"))
	f.gateway.EXPECT().Login(ctx, "a@b.co", "bad").Return(nil, authErr)

	got, err := f.bridge.Login(ctx, "a@b.co", "bad")

	assert.Nil(t, got)
	require.ErrorIs(t, err, authErr)
	assert.Equal(t, "Incorrect password. Please try again.", domainerrors.Translate(err))
}

func TestAuthStateBridge_StopIsIdempotent(t *testing.T) {
	f := createTestAuthStateBridge(t)

	f.bridge.Start()
	f.bridge.Start()
	f.bridge.Stop()
	f.bridge.Stop()

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, 1, f.unsubs)
	f.gateway.AssertNumberOfCalls(t, "OnAuthStateChanged", 1)
}

func TestAuthStateBridge_AwaitResolved(t *testing.T) {
	f := createTestAuthStateBridge(t)
	f.metrics.EXPECT().RecordAuthTransition(mock.Anything).Maybe()
	f.bridge.Start()

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.notify(&entity.Identity{UID: "U1"})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	state, err := f.bridge.AwaitResolved(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.AuthStatusAuthenticated, state.Status())
	assert.Equal(t, "U1", state.Identity.UID)
}

func TestAuthStateBridge_AwaitResolvedHonoursContext(t *testing.T) {
	f := createTestAuthStateBridge(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	state, err := f.bridge.AwaitResolved(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, state.Loading)
}

func TestAuthStateBridge_WithMemoryGateway(t *testing.T) {
	gateway := memoryauth.New(testLogger(), memoryauth.WithBcryptCost(bcrypt.MinCost))
	t.Cleanup(func() { _ = gateway.Close() })

	bridge := newAuthStateBridge(gateway, testLogger(), nil)
	bridge.Start()
	t.Cleanup(bridge.Stop)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	state, err := bridge.AwaitResolved(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.AuthStatusUnauthenticated, state.Status())

	identity, err := bridge.Register(ctx, "new@example.com", "secret1")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		current := bridge.State()

		return current.Identity != nil && current.Identity.UID == identity.UID
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, bridge.Logout(ctx))

	assert.Eventually(t, func() bool {
		return bridge.State().Status() == entity.AuthStatusUnauthenticated
	}, time.Second, 5*time.Millisecond)
}
