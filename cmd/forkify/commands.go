package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/forkify/internal/controller"
	"github.com/hammamikhairi/forkify/internal/display"
	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/recipe"
)

// oneShot builds a controller whose view prints straight to app.Out.
func oneShot(app *App, e *env) *controller.Controller {
	view := display.NewView(func(format string, a ...interface{}) {
		fmt.Fprintf(app.Out, format+"\n", a...)
	}, e.log)
	return controller.New(e.src, view, &controller.State{Likes: e.likes}, e.log)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}

func newSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search recipes and print the first page of results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			e, err := newEnv(app)
			if err != nil {
				return err
			}
			defer e.Close()

			ctrl := oneShot(app, e)
			query := strings.Join(args, " ")
			switch ctrl.Search(ctx, query) {
			case domain.OutcomeFailed:
				return fmt.Errorf("search %q failed", query)
			case domain.OutcomeIgnored:
				return errors.New("empty search query")
			}
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a recipe, optionally scaled to a number of servings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if flagServings < 0 {
				return fmt.Errorf("invalid servings %d", flagServings)
			}

			e, err := newEnv(app)
			if err != nil {
				return err
			}
			defer e.Close()

			ctrl := oneShot(app, e)
			ctrl.RestoreLikes(ctx)
			if out := ctrl.Navigate(ctx, args[0]); out != domain.OutcomeApplied {
				return fmt.Errorf("could not open recipe %s", args[0])
			}
			if flagServings > 0 {
				scaleTo(ctrl, flagServings)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&flagServings, "servings", 0, "scale the ingredients to this many servings")
	return cmd
}

// scaleTo steps servings one at a time until the recipe serves n.
func scaleTo(ctrl *controller.Controller, n int) {
	for {
		cur := ctrl.Status().Servings
		var dir recipe.Direction
		switch {
		case cur < n:
			dir = recipe.Increase
		case cur > n:
			dir = recipe.Decrease
		default:
			return
		}
		if ctrl.UpdateServings(dir) != domain.OutcomeApplied {
			return
		}
	}
}

func newLikesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "likes",
		Short: "List the liked recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			e, err := newEnv(app)
			if err != nil {
				return err
			}
			defer e.Close()

			ctrl := oneShot(app, e)
			ctrl.RestoreLikes(ctx)
			return nil
		},
	}
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(app.Out, "forkify %s (commit: %s)\n", version, commit)
		},
	}
}
