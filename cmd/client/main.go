// File: cmd/client/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"greetuser/internal/apiclient"
	"greetuser/internal/modules/login"
	"greetuser/internal/modules/nav"
	"greetuser/internal/modules/profile"
	"greetuser/internal/modules/register"
	"greetuser/internal/pkg/config"
	"greetuser/internal/pkg/log"
	"greetuser/internal/session"
	"greetuser/internal/validation"
)

func main() {
	// 初始化配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// 初始化日志
	log.Init(log.ParseLevel(cfg.LogLevel), cfg.Environment)
	logger := log.GetLogger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	app := &app{
		api:      apiclient.New(cfg.BaseURL, cfg.RequestTimeout),
		sessions: session.NewStore(cfg.SessionDir),
		logger:   logger,
		stdin:    bufio.NewReader(os.Stdin),
	}

	logger.Debug("client starting",
		log.String("base_url", cfg.BaseURL),
		log.String("command", os.Args[1]),
	)

	ctx := context.Background()
	switch os.Args[1] {
	case "create":
		app.runCreate(ctx, os.Args[2:])
	case "login":
		app.runLogin(ctx, os.Args[2:])
	case "profile":
		app.runProfile(ctx)
	case "logout":
		app.runLogout()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: client <command> [flags]

Commands:
  create   create a new account and open the profile view
  login    authenticate and open the profile view
  profile  show the stored account's profile
  logout   forget the stored session`)
}

// app owns the wired dependencies and plays the part of router and
// rendering layer for the page controllers.
type app struct {
	api      *apiclient.Client
	sessions *session.Store
	logger   log.Logger
	stdin    *bufio.Reader
}

// navigate 消费控制器发出的跳转意图
func (a *app) navigate(ctx context.Context) nav.Func {
	return func(route string) {
		if route == nav.RouteProfile {
			a.runProfile(ctx)
		}
	}
}

func (a *app) runCreate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	form := register.Form{}
	fs.StringVar(&form.Username, "username", "", "username (required)")
	fs.StringVar(&form.Password, "password", "", "password (required)")
	fs.StringVar(&form.FirstName, "first-name", "", "first name")
	fs.StringVar(&form.LastName, "last-name", "", "last name")
	fs.StringVar(&form.Email, "email", "", "email address")
	fs.StringVar(&form.Title, "title", "", "title")
	fs.StringVar(&form.Hobby, "hobby", "", "hobby")
	fs.Parse(args) // nolint:errcheck

	ctrl := register.New(a.api, a.sessions, a.navigate(ctx), func(st register.State) {
		if st.Phase == register.PhaseSubmitting {
			fmt.Println("Creating...")
		}
	})

	st := ctrl.Submit(ctx, form)
	switch st.Phase {
	case register.PhaseIdle:
		renderFieldErrors(st.Errors)
		os.Exit(1)
	case register.PhaseFailed:
		fmt.Fprintln(os.Stderr, "Error:", st.Message)
		os.Exit(1)
	}
}

func (a *app) runLogin(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	form := login.Form{}
	fs.StringVar(&form.Username, "username", "", "username (required)")
	fs.StringVar(&form.Password, "password", "", "password (required)")
	fs.Parse(args) // nolint:errcheck

	ctrl := login.New(a.api, a.sessions, a.navigate(ctx), func(st login.State) {
		if st.Phase == login.PhaseSubmitting {
			fmt.Println("Logging in...")
		}
	})

	st := ctrl.Submit(ctx, form)
	switch st.Phase {
	case login.PhaseIdle:
		renderFieldErrors(st.Errors)
		os.Exit(1)
	case login.PhaseFailed:
		fmt.Fprintln(os.Stderr, "Error:", st.Message)
		os.Exit(1)
	}
}

func (a *app) runProfile(ctx context.Context) {
	ctrl := profile.New(a.api, a.sessions, func(st profile.State) {
		if st.Phase == profile.PhaseLoading {
			fmt.Println("Loading...")
		}
	})

	st := ctrl.Mount(ctx)
	for st.Phase == profile.PhaseFailed {
		fmt.Fprintln(os.Stderr, "Error:", st.Message)
		if !a.confirm("Retry? [y/N]: ") {
			os.Exit(1)
		}
		st = ctrl.Retry(ctx)
	}

	switch st.Phase {
	case profile.PhaseNoSession:
		fmt.Println("No user session found.")
		fmt.Println("Please login or create a user first.")
		os.Exit(1)
	case profile.PhaseLoaded:
		renderProfile(st.Profile)
	}
}

func (a *app) runLogout() {
	a.sessions.Clear()
	fmt.Println("Logged out.")
}

func (a *app) confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := a.stdin.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func renderFieldErrors(errs validation.Errors) {
	for _, field := range []string{"username", "password"} {
		if msg, ok := errs[field]; ok {
			fmt.Fprintln(os.Stderr, msg)
		}
	}
}

func renderProfile(info *apiclient.UserInfo) {
	fmt.Println("Greetings!")
	fmt.Println(profile.Greeting(info))
	fmt.Println()
	fmt.Printf("  id:       %d\n", info.ID)
	fmt.Printf("  username: %s\n", info.Username)
	printOpt("first name", info.FirstName)
	printOpt("last name", info.LastName)
	printOpt("email", info.Email)
	printOpt("title", info.Title)
	printOpt("hobby", info.Hobby)
}

func printOpt(label string, value *string) {
	if value == nil {
		return
	}
	fmt.Printf("  %-9s %s\n", label+":", *value)
}
