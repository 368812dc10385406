// Package profile drives the profile-view screen. Presence of a stored
// session, not user input, decides what happens on mount.
package profile

import (
	"context"

	"greetuser/internal/apiclient"
	"greetuser/internal/pkg/xerrors"
	"greetuser/internal/session"
)

type Phase int

const (
	PhaseNoSession Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseNoSession:
		return "no-session"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the rendered profile screen state. Profile is set only in
// PhaseLoaded, Message only in PhaseFailed.
type State struct {
	Phase   Phase
	Profile *apiclient.UserInfo
	Message string
}

// Controller is the profile-view state machine. Not safe for concurrent
// use; the Loading phase is the single-flight latch.
type Controller struct {
	api      *apiclient.Client
	sessions *session.Store
	notify   func(State)

	userID     int64
	hasSession bool
	state      State
}

// New wires a controller. notify may be nil.
func New(api *apiclient.Client, sessions *session.Store, notify func(State)) *Controller {
	return &Controller{
		api:      api,
		sessions: sessions,
		notify:   notify,
		state:    State{Phase: PhaseNoSession},
	}
}

// State returns the current rendered state.
func (c *Controller) State() State {
	return c.state
}

// Mount reads the session slot once and, when a handle is present, fetches
// the profile. Without a handle the screen settles in NoSession and the
// network is never touched. Storage changes after mount are not observed.
func (c *Controller) Mount(ctx context.Context) State {
	userID, ok := c.sessions.Load()
	if !ok {
		c.hasSession = false
		c.transition(State{Phase: PhaseNoSession})
		return c.state
	}
	c.userID = userID
	c.hasSession = true
	return c.fetch(ctx)
}

// Retry re-issues the fetch with the handle read at mount time. It is a
// no-op without a session or while a fetch is in flight. Retries are
// manual and unbounded.
func (c *Controller) Retry(ctx context.Context) State {
	if !c.hasSession || c.state.Phase == PhaseLoading {
		return c.state
	}
	return c.fetch(ctx)
}

func (c *Controller) fetch(ctx context.Context) State {
	c.transition(State{Phase: PhaseLoading})

	info, err := c.api.GetUserInfo(ctx, c.userID)
	if err != nil {
		c.transition(State{Phase: PhaseFailed, Message: xerrors.ExtractMessage(err)})
		return c.state
	}

	c.transition(State{Phase: PhaseLoaded, Profile: info})
	return c.state
}

func (c *Controller) transition(next State) {
	c.state = next
	if c.notify != nil {
		c.notify(next)
	}
}
