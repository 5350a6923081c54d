package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/internal/view"
	"github.com/jogos-org/jogos/pkg/igdb"
)

var emptyStateMessages = map[models.DisplayState]string{
	models.DisplayStateNoResults:          "No games match your search.",
	models.DisplayStateNoWishlistItems:    "Your wishlist is empty.",
	models.DisplayStateNoFavorites:        "You have no favorite games yet.",
	models.DisplayStateNoGamesForPlatform: "No games for %s yet.",
	models.DisplayStateNoGames:            "Your collection is empty. Add a game with `jogos add`.",
}

// renderEmptyState prints the message of an empty display state. It
// returns false for a normal list.
func renderEmptyState(w io.Writer, r view.Result) bool {
	if !r.State.IsEmpty() {
		return false
	}

	msg := emptyStateMessages[r.State]
	if r.State == models.DisplayStateNoGamesForPlatform {
		msg = fmt.Sprintf(msg, models.PlatformName(r.Scope.Platform))
	}
	color.New(color.FgYellow).Fprintln(w, msg)
	return true
}

// coverLookup resolves the stored cover of a game.
type coverLookup interface {
	Exists(id int64) bool
	Path(id int64) string
}

func renderResult(w io.Writer, r view.Result, covers coverLookup) error {
	if renderEmptyState(w, r) {
		return nil
	}

	if r.Presentation == models.PresentationGrid {
		return renderGrid(w, r, covers)
	}
	return renderTable(w, r)
}

func renderTable(w io.Writer, r view.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintln(tw, bold("ID")+"\t"+bold("TITLE")+"\t"+bold("PLATFORM")+"\t"+bold("YEAR")+"\t"+bold("DEVELOPER")+"\t"+bold("FAV"))
	for _, g := range r.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			g.ID, g.Title, models.PlatformName(g.Platform), g.ReleaseYear, g.Developer, favoriteMark(g))
	}
	return tw.Flush()
}

// renderGrid prints one compact line per game, followed by its cover path
// when one is stored.
func renderGrid(w io.Writer, r view.Result, covers coverLookup) error {
	dim := color.New(color.Faint).SprintFunc()
	for _, g := range r.Items {
		line := fmt.Sprintf("%s %s %s", favoriteMark(g), g.Title, dim("["+models.PlatformName(g.Platform)+", #"+strconv.FormatInt(g.ID, 10)+"]"))
		if path := coverPath(covers, g.ID); path != "" {
			line += " " + dim(path)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func coverPath(covers coverLookup, id int64) string {
	if covers == nil || !covers.Exists(id) {
		return ""
	}
	return covers.Path(id)
}

func renderGame(w io.Writer, g models.Game, covers coverLookup) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(tw, "%s\t%s\n", color.New(color.Bold).Sprint(k), v)
		}
	}
	row("ID", strconv.FormatInt(g.ID, 10))
	row("Title", g.Title)
	row("Platform", models.PlatformName(g.Platform))
	row("Developer", g.Developer)
	row("Publisher", g.Publisher)
	row("Release year", strconv.Itoa(g.ReleaseYear))
	row("Certification", models.CertificationName(g.Certification))
	row("Storage media", models.StorageMediaName(g.StorageMedia))
	row("Condition", models.ConditionName(g.Condition))
	row("Favorite", strconv.FormatBool(g.Favorite))
	row("Wishlist", strconv.FormatBool(g.Wishlist))
	row("Price", strconv.FormatFloat(g.PaidPriceAmount, 'f', 2, 64)+" "+g.PaidPriceCurrency)
	row("IGDB", g.IGDBURL())
	row("Cover", coverPath(covers, g.ID))
	return tw.Flush()
}

func renderCandidates(w io.Writer, candidates []igdb.Candidate) error {
	if len(candidates) == 0 {
		color.New(color.FgYellow).Fprintln(w, "No matches found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, c := range candidates {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", i+1, c.Game.Title, c.Game.ReleaseYear, models.PlatformName(c.Game.Platform), c.Game.Developer)
	}
	return tw.Flush()
}

func favoriteMark(g models.Game) string {
	if g.Favorite {
		return color.New(color.FgRed).Sprint("♥")
	}
	return " "
}
