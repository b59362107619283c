package controller

import (
	"context"
	"strconv"

	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/recipe"
	"github.com/hammamikhairi/forkify/internal/search"
)

// Dispatch routes cmd to the matching flow. Help, quit and unknown
// commands belong to the UI and are reported as ignored.
func (c *Controller) Dispatch(ctx context.Context, cmd domain.Command) domain.Outcome {
	c.log.Debug("dispatch %s %q", cmd.Type, cmd.Payload)

	switch cmd.Type {
	case domain.CommandSearch:
		return c.Search(ctx, cmd.Payload)
	case domain.CommandPage:
		switch cmd.Payload {
		case "next":
			return c.NextPage()
		case "prev":
			return c.PrevPage()
		}
		n, err := strconv.Atoi(cmd.Payload)
		if err != nil {
			return domain.OutcomeIgnored
		}
		return c.Page(n)
	case domain.CommandOpen:
		return c.Navigate(ctx, cmd.Payload)
	case domain.CommandSelect:
		n, err := strconv.Atoi(cmd.Payload)
		if err != nil {
			return domain.OutcomeIgnored
		}
		return c.Select(ctx, n)
	case domain.CommandServingsIncrease:
		return c.UpdateServings(recipe.Increase)
	case domain.CommandServingsDecrease:
		return c.UpdateServings(recipe.Decrease)
	case domain.CommandAddToList:
		return c.AddToList()
	case domain.CommandDeleteItem:
		return c.DeleteItem(cmd.Payload)
	case domain.CommandUpdateCount:
		return c.UpdateCount(cmd.Payload, cmd.Arg)
	case domain.CommandToggleLike:
		return c.ToggleLike(ctx)
	case domain.CommandShowList:
		return c.ShowList()
	case domain.CommandShowLikes:
		return c.ShowLikes()
	case domain.CommandExport:
		return c.Export(cmd.Payload)
	case domain.CommandDirections:
		return c.Directions(ctx)
	default:
		return domain.OutcomeIgnored
	}
}

// Status is a read-only summary of the state for status lines.
type Status struct {
	Query    string
	Results  int
	Page     int
	Pages    int
	Recipe   string
	Servings int
	Likes    int
	Items    int
}

// Status returns the current summary.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	var st Status
	if s := c.state.Search; s != nil {
		st.Query = s.Query
		st.Results = len(s.Results)
		st.Page = c.page
		st.Pages = search.Pages(len(s.Results), c.perPage)
	}
	if r := c.readyRecipe(); r != nil {
		st.Recipe = r.Title
		st.Servings = r.Servings
	}
	if c.state.Likes != nil {
		st.Likes = c.state.Likes.Count()
	}
	if c.state.List != nil {
		st.Items = c.state.List.Len()
	}
	return st
}

// Blocking reports whether cmd waits on the network. The UI runs those
// on their own goroutine so input stays responsive.
func Blocking(t domain.CommandType) bool {
	switch t {
	case domain.CommandSearch, domain.CommandOpen, domain.CommandSelect, domain.CommandDirections:
		return true
	}
	return false
}
