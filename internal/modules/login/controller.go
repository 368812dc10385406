// Package login drives the login screen. Same shape as the create-account
// machine, with exactly two fields and the authenticate call.
package login

import (
	"context"
	"strings"

	"greetuser/internal/apiclient"
	"greetuser/internal/modules/nav"
	"greetuser/internal/pkg/xerrors"
	"greetuser/internal/session"
	"greetuser/internal/validation"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Form holds the login input.
type Form struct {
	Username string
	Password string
}

// State is the rendered login screen state.
type State struct {
	Phase   Phase
	Errors  validation.Errors
	Message string
	Form    Form
}

// Controller is the login state machine. Not safe for concurrent use.
type Controller struct {
	api      *apiclient.Client
	sessions *session.Store
	navigate nav.Func
	notify   func(State)
	state    State
}

// New wires a controller. navigate and notify may be nil.
func New(api *apiclient.Client, sessions *session.Store, navigate nav.Func, notify func(State)) *Controller {
	return &Controller{
		api:      api,
		sessions: sessions,
		navigate: navigate,
		notify:   notify,
		state:    State{Phase: PhaseIdle},
	}
}

// State returns the current rendered state.
func (c *Controller) State() State {
	return c.state
}

// Submit runs one authentication attempt. A no-op while a call is in
// flight. On success the session slot is overwritten with the returned id.
func (c *Controller) Submit(ctx context.Context, form Form) State {
	if c.state.Phase == PhaseSubmitting {
		return c.state
	}

	errs := validation.Check(validation.Credentials{
		Username: form.Username,
		Password: form.Password,
	})
	if !errs.Valid() {
		c.transition(State{Phase: PhaseIdle, Errors: errs, Form: form})
		return c.state
	}

	c.transition(State{Phase: PhaseSubmitting, Form: form})

	userID, err := c.api.Login(ctx, apiclient.LoginRequest{
		Username: strings.TrimSpace(form.Username),
		Password: strings.TrimSpace(form.Password),
	})
	if err != nil {
		c.transition(State{Phase: PhaseFailed, Message: xerrors.ExtractMessage(err), Form: form})
		return c.state
	}

	c.sessions.Save(userID) // nolint:errcheck
	c.transition(State{Phase: PhaseSucceeded, Form: form})
	if c.navigate != nil {
		c.navigate(nav.RouteProfile)
	}
	return c.state
}

func (c *Controller) transition(next State) {
	c.state = next
	if c.notify != nil {
		c.notify(next)
	}
}
