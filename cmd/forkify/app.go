package main

import (
	"context"
	"strings"
	"sync"

	"github.com/hammamikhairi/forkify/internal/command"
	"github.com/hammamikhairi/forkify/internal/controller"
	"github.com/hammamikhairi/forkify/internal/display"
	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/logger"
)

// cliApp reads commands from the terminal and drives the controller.
type cliApp struct {
	ctrl   *controller.Controller
	parser *command.KeywordParser
	view   *display.View
	ui     display.Terminal
	log    *logger.Logger

	wg sync.WaitGroup
}

// run restores likes, opens the initial recipe if any, then handles
// input until quit, EOF or cancellation.
func (a *cliApp) run(ctx context.Context, initial string) {
	a.ctrl.RestoreLikes(ctx)

	if initial != "" {
		a.spawn(ctx, domain.Command{Type: domain.CommandOpen, Payload: initial})
	}

	input := a.ui.InputChan()
	for {
		select {
		case <-ctx.Done():
			a.log.Debug("context cancelled, leaving input loop")
			return
		case line, ok := <-input:
			if !ok {
				return
			}
			if !a.handle(ctx, line) {
				return
			}
		}
	}
}

// wait blocks until every in-flight fetch has returned.
func (a *cliApp) wait() { a.wg.Wait() }

// handle processes one input line. It returns false when the user quits.
func (a *cliApp) handle(ctx context.Context, line string) bool {
	cmd := a.parser.Parse(line)
	a.log.Debug("input %q -> %s", line, cmd.Type)

	switch cmd.Type {
	case domain.CommandQuit:
		a.view.Info(display.LineBye())
		return false
	case domain.CommandHelp:
		for _, h := range command.Help() {
			a.view.Hint(h)
		}
		return true
	case domain.CommandUnknown:
		a.view.Hint(display.LineUnknown(cmd.Payload))
		return true
	}

	if controller.Blocking(cmd.Type) {
		a.spawn(ctx, cmd)
		return true
	}
	a.report(cmd, a.ctrl.Dispatch(ctx, cmd))
	return true
}

// spawn runs a network-bound command off the input goroutine. Newer
// commands supersede older ones inside the controller.
func (a *cliApp) spawn(ctx context.Context, cmd domain.Command) {
	if ctx.Err() != nil {
		a.log.Debug("not starting %s: %v", cmd.Type, ctx.Err())
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.report(cmd, a.ctrl.Dispatch(ctx, cmd))
	}()
}

// report turns outcomes the controller leaves silent into hints.
func (a *cliApp) report(cmd domain.Command, out domain.Outcome) {
	switch out {
	case domain.OutcomeApplied:
		if cmd.Type == domain.CommandExport {
			a.view.Info(display.LineExported(strings.TrimSpace(cmd.Payload), a.ctrl.Status().Items))
		}
	case domain.OutcomeIgnored:
		a.hintIgnored(cmd)
	case domain.OutcomeStale:
		a.log.Debug("%s %q superseded", cmd.Type, cmd.Payload)
	}
}

func (a *cliApp) hintIgnored(cmd domain.Command) {
	switch cmd.Type {
	case domain.CommandServingsIncrease, domain.CommandServingsDecrease:
		if a.ctrl.Status().Recipe == "" {
			a.view.Hint(display.LineNoRecipe())
		}
	case domain.CommandAddToList, domain.CommandToggleLike, domain.CommandDirections:
		a.view.Hint(display.LineNoRecipe())
	case domain.CommandShowList, domain.CommandExport:
		a.view.Hint(display.LineEmptyList())
	case domain.CommandDeleteItem, domain.CommandUpdateCount:
		if a.ctrl.Status().Items == 0 {
			a.view.Hint(display.LineEmptyList())
		} else {
			a.view.Hint(display.LineNoItem(cmd.Payload))
		}
	case domain.CommandSelect:
		a.view.Hint(display.LineNoResult())
	case domain.CommandPage:
		a.view.Hint(display.LineNoPage())
	}
}
