package login_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"greetuser/internal/apiclient"
	"greetuser/internal/apitest"
	"greetuser/internal/modules/login"
	"greetuser/internal/modules/nav"
	"greetuser/internal/session"
)

type fixture struct {
	fake     *apitest.FakeService
	sessions *session.Store
	routes   []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		fake:     apitest.NewFakeService(t),
		sessions: session.NewStore(t.TempDir()),
	}
	f.fake.SeedUser(apiclient.UserInfo{ID: 7, Username: "alice"}, "secret")
	return f
}

func (f *fixture) controller() *login.Controller {
	api := apiclient.New(f.fake.URL(), 5*time.Second)
	return login.New(api, f.sessions, func(route string) {
		f.routes = append(f.routes, route)
	}, nil)
}

func TestSubmitHappyPath(t *testing.T) {
	f := newFixture(t)
	ctrl := f.controller()

	st := ctrl.Submit(context.Background(), login.Form{Username: "alice", Password: "secret"})
	require.Equal(t, login.PhaseSucceeded, st.Phase)

	id, ok := f.sessions.Load()
	require.True(t, ok)
	require.Equal(t, int64(7), id)
	require.Equal(t, []string{nav.RouteProfile}, f.routes)
}

func TestSubmitOverwritesPriorSession(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sessions.Save(99))
	ctrl := f.controller()

	st := ctrl.Submit(context.Background(), login.Form{Username: "alice", Password: "secret"})
	require.Equal(t, login.PhaseSucceeded, st.Phase)

	id, ok := f.sessions.Load()
	require.True(t, ok)
	require.Equal(t, int64(7), id)
}

func TestSubmitBadCredentials(t *testing.T) {
	f := newFixture(t)
	ctrl := f.controller()

	form := login.Form{Username: "alice", Password: "wrong"}
	st := ctrl.Submit(context.Background(), form)
	require.Equal(t, login.PhaseFailed, st.Phase)
	require.Equal(t, "Invalid username or password", st.Message)
	require.Equal(t, form, st.Form)
	require.Empty(t, f.routes)
	_, ok := f.sessions.Load()
	require.False(t, ok)
}

func TestSubmitValidationFailureSkipsNetwork(t *testing.T) {
	f := newFixture(t)
	ctrl := f.controller()

	st := ctrl.Submit(context.Background(), login.Form{Username: "  ", Password: ""})
	require.Equal(t, login.PhaseIdle, st.Phase)
	require.Equal(t, "Username is required", st.Errors["username"])
	require.Equal(t, "Password is required", st.Errors["password"])
	require.Zero(t, f.fake.Calls(apitest.OpLogin))
}

func TestFailedSubmitCanBeCorrected(t *testing.T) {
	f := newFixture(t)
	ctrl := f.controller()
	ctx := context.Background()

	st := ctrl.Submit(ctx, login.Form{Username: "alice", Password: "wrong"})
	require.Equal(t, login.PhaseFailed, st.Phase)

	st = ctrl.Submit(ctx, login.Form{Username: "alice", Password: "secret"})
	require.Equal(t, login.PhaseSucceeded, st.Phase)
	require.Equal(t, 2, f.fake.Calls(apitest.OpLogin))
}
