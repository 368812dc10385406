// Package nav carries the navigation intents controllers hand to the
// router. The router decides what a route means; controllers only emit it.
package nav

// Func receives a one-way navigation intent.
type Func func(route string)

// Routes understood by the front end.
const (
	RouteProfile    = "/user-info"
	RouteLogin      = "/login"
	RouteCreateUser = "/create-user"
)
