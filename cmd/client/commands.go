package main

import (
	"context"
)

type RegisterCmd struct{}

func (c *RegisterCmd) Run(ctx context.Context, a *app) error {
	return a.cli.Register(ctx)
}

type LoginCmd struct{}

func (c *LoginCmd) Run(ctx context.Context, a *app) error {
	return a.cli.Login(ctx)
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx context.Context, a *app) error {
	return a.cli.Logout(ctx)
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx context.Context, a *app) error {
	return a.cli.Status(ctx)
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx context.Context, a *app) error {
	return a.cli.List(ctx)
}

type AddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Deadline string `help:"Deadline in hours." short:"d"`
}

func (c *AddCmd) Run(ctx context.Context, a *app) error {
	return a.cli.Add(ctx, c.Name, c.Deadline)
}

type DoneCmd struct {
	Habit string `arg:"" help:"Habit id, id prefix or name."`
}

func (c *DoneCmd) Run(ctx context.Context, a *app) error {
	return a.cli.Done(ctx, c.Habit)
}

type RecurringCmd struct {
	Habit string `arg:"" help:"Habit id, id prefix or name."`
	Value string `arg:"" enum:"on,off" default:"on" help:"on or off."`
}

func (c *RecurringCmd) Run(ctx context.Context, a *app) error {
	return a.cli.Recurring(ctx, c.Habit, c.Value == "on")
}

type ProofCmd struct {
	Habit string `arg:"" help:"Habit id, id prefix or name."`
	Photo string `arg:"" type:"existingfile" help:"JPEG photo."`
}

func (c *ProofCmd) Run(ctx context.Context, a *app) error {
	return a.cli.Proof(ctx, c.Habit, c.Photo)
}

type StatsCmd struct {
	Days int `help:"Days in the XP chart." default:"7"`
}

func (c *StatsCmd) Run(ctx context.Context, a *app) error {
	return a.cli.Stats(ctx, c.Days)
}
