// Package register drives the create-account screen: validate locally,
// create the account remotely, persist the session, hand off to the router.
package register

import (
	"context"
	"strings"

	"greetuser/internal/apiclient"
	"greetuser/internal/modules/nav"
	"greetuser/internal/pkg/xerrors"
	"greetuser/internal/session"
	"greetuser/internal/validation"
)

// Phase is the screen's lifecycle position.
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

// Form holds the raw user input. Only Username and Password are required.
type Form struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Title     string
	Hobby     string
}

// State is what the rendering layer sees. Errors is populated only when
// local validation failed; Message only when the remote call failed. The
// form rides along so a failed submission keeps the user's input.
type State struct {
	Phase   Phase
	Errors  validation.Errors
	Message string
	Form    Form
}

// Controller is the create-account state machine. Not safe for concurrent
// use; the Submitting phase is the single-flight latch.
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

// Submit runs one create-account attempt. While a call is in flight the
// method is a no-op returning the current state. Validation failures stay
// local; remote failures keep the form for correction and resubmission.
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

	userID, err := c.api.CreateUser(ctx, buildRequest(form))
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

// buildRequest trims every field and leaves blank optional fields out of
// the payload entirely.
func buildRequest(form Form) apiclient.CreateUserRequest {
	return apiclient.CreateUserRequest{
		Username:  strings.TrimSpace(form.Username),
		Password:  strings.TrimSpace(form.Password),
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		Email:     strings.TrimSpace(form.Email),
		Title:     strings.TrimSpace(form.Title),
		Hobby:     strings.TrimSpace(form.Hobby),
	}
}
