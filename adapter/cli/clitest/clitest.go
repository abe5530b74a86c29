// Package clitest wires a memory-backed app for command tests.
package clitest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	internalApp "github.com/felixgeelhaar/fitsmart/internal/app"
	identityCommands "github.com/felixgeelhaar/fitsmart/internal/identity/application/commands"
	identityDomain "github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	onboardingCommands "github.com/felixgeelhaar/fitsmart/internal/onboarding/application/commands"
	onboardingDomain "github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const (
	Email    = "ana@example.com"
	Password = "secret"
	Name     = "Ana Souza"
)

// NewApp installs an app backed by the memory store whose clock is fixed at
// now. It is uninstalled when the test ends.
func NewApp(t testing.TB, now time.Time) *cli.App {
	t.Helper()
	return NewAppWithClock(t, sharedDomain.FixedClock(now))
}

// NewAppWithClock is NewApp with a caller-controlled clock.
func NewAppWithClock(t testing.TB, clock sharedDomain.Clock) *cli.App {
	t.Helper()
	cfg := &config.Config{AppEnv: "test", Store: config.StoreMemory}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := internalApp.NewContainer(context.Background(), cfg, logger, internalApp.WithClock(clock))
	require.NoError(t, err)

	a := cli.NewApp(c)
	cli.SetApp(a)
	t.Cleanup(func() {
		cli.SetApp(nil)
		c.Close()
	})
	return a
}

// SignIn registers the default account and opens a session for it.
func SignIn(t testing.TB, a *cli.App) *identityDomain.Account {
	t.Helper()
	ctx := context.Background()
	_, err := a.RegisterHandler.Handle(ctx, identityCommands.RegisterCommand{Email: Email, Password: Password, Name: Name})
	require.NoError(t, err)
	account, err := a.LoginHandler.Handle(ctx, identityCommands.LoginCommand{Email: Email, Password: Password})
	require.NoError(t, err)
	return account
}

// Onboard signs in and completes the quiz for a 25 year old man who trains
// at home and at the gym.
func Onboard(t testing.TB, a *cli.App, answers ...func(*onboardingDomain.QuizAnswers)) *identityDomain.Account {
	t.Helper()
	account := SignIn(t, a)
	q := onboardingDomain.QuizAnswers{
		Age: "25", Weight: "70", Height: "170",
		Gender: "male", Goal: "maintain", ActivityLevel: "moderate", WorkoutLocation: "both",
	}
	for _, fn := range answers {
		fn(&q)
	}
	_, err := a.CompleteQuizHandler.Handle(context.Background(), onboardingCommands.CompleteQuizCommand{
		AccountID: account.ID(),
		Answers:   q,
	})
	require.NoError(t, err)
	return account
}

// Run executes root with args and returns what it printed. Flags left over
// from earlier runs are reset first.
func Run(t testing.TB, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	resetFlags(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
