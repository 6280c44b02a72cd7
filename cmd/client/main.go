package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var CLI struct {
	Version kong.VersionFlag `help:"Show version information."`
	EnvFile string           `help:"Path to .env file." default:".env" name:"env-file" type:"path"`
	Server  string           `help:"Server URL, overrides HABIT_SERVER_URL." name:"server"`
	DataDir string           `help:"Data directory, overrides HABIT_DATA_DIR." name:"data-dir" type:"path"`
	Debug   bool             `help:"Debug logging, mirrored to stderr."`

	Register  RegisterCmd  `cmd:"" help:"Create an account and sign in."`
	Login     LoginCmd     `cmd:"" help:"Sign in with email and password."`
	Logout    LogoutCmd    `cmd:"" help:"Forget the stored session."`
	Status    StatusCmd    `cmd:"" help:"Show the session status."`
	List      ListCmd      `cmd:"" help:"List habits." default:"1"`
	Add       AddCmd       `cmd:"" help:"Add a habit."`
	Done      DoneCmd      `cmd:"" help:"Toggle habit completion."`
	Recurring RecurringCmd `cmd:"" help:"Make a habit recurring or one-off."`
	Proof     ProofCmd     `cmd:"" help:"Upload a photo proof for a habit."`
	Stats     StatsCmd     `cmd:"" help:"Show XP, streak, categories and the active deadline."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("habittracker"),
		kong.Description("Habit tracker client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, appOptions{
		envFile: CLI.EnvFile,
		server:  CLI.Server,
		dataDir: CLI.DataDir,
		debug:   CLI.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	kctx.BindTo(ctx, (*context.Context)(nil))
	err = kctx.Run(a)
	if cerr := a.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close resources: %v\n", cerr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
