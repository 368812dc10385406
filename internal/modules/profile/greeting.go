package profile

import (
	"fmt"
	"strings"

	"greetuser/internal/apiclient"
)

// DisplayName picks the best name available: "First Last", then whichever
// half exists, then the username.
func DisplayName(info *apiclient.UserInfo) string {
	first := deref(info.FirstName)
	last := deref(info.LastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	default:
		return info.Username
	}
}

// Greeting renders the profile as the service's welcome line:
// "Hello [Title] Name, welcome! If we hear interesting news about [Hobby],
// we will let you know at [Email]!". Hobby gates the second sentence;
// email only appears inside it.
func Greeting(info *apiclient.UserInfo) string {
	var b strings.Builder

	name := DisplayName(info)
	if title := deref(info.Title); title != "" {
		fmt.Fprintf(&b, "Hello %s %s, welcome!", title, name)
	} else {
		fmt.Fprintf(&b, "Hello %s, welcome!", name)
	}

	if hobby := deref(info.Hobby); hobby != "" {
		fmt.Fprintf(&b, " If we hear interesting news about %s, we will let you know", hobby)
		if email := deref(info.Email); email != "" {
			fmt.Fprintf(&b, " at %s", email)
		}
		b.WriteString("!")
	}

	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
