package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jogos-org/jogos/internal/config"
	"github.com/jogos-org/jogos/internal/export"
	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/internal/services"
	"github.com/jogos-org/jogos/internal/store/migrations"
	"github.com/jogos-org/jogos/internal/view"
)

func newMigrateCommand(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// openApp migrates on open.
			return withApp(cmd.Context(), cfg, func(a *app) error {
				fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", a.prefs.GetInt(migrations.VersionKey))
				return nil
			})
		},
	}
}

type viewFlags struct {
	scope string
	last  bool
	sort  string
	table bool
	grid  bool
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.scope, "scope", "", "ALL_GAMES, RECENTS, FAVORITES, WISHLIST or a platform code")
	cmd.Flags().BoolVar(&f.last, "last", false, "show the scope shown last time")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort key: <field>_asc or <field>_desc")
	cmd.MarkFlagsMutuallyExclusive("scope", "last")
}

func (f *viewFlags) registerPresentation(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.table, "table", false, "switch to the table presentation")
	cmd.Flags().BoolVar(&f.grid, "grid", false, "switch to the grid presentation")
	cmd.MarkFlagsMutuallyExclusive("table", "grid")
}

// result loads the requested view into the session of a.
func (f *viewFlags) result(cmd *cobra.Command, a *app, search string) (view.Result, error) {
	ctx := cmd.Context()

	switch {
	case f.table:
		if _, err := a.catalog.SetPresentation(models.PresentationTable); err != nil {
			return view.Result{}, err
		}
	case f.grid:
		if _, err := a.catalog.SetPresentation(models.PresentationGrid); err != nil {
			return view.Result{}, err
		}
	}

	var (
		r   view.Result
		err error
	)
	if f.last {
		r, err = a.catalog.Open(ctx)
	} else {
		scope, perr := models.ParseScope(f.scope)
		if perr != nil {
			return view.Result{}, perr
		}
		r, err = a.catalog.Show(ctx, scope)
	}
	if err != nil {
		return view.Result{}, err
	}

	if search != "" {
		r = a.catalog.Search(search)
	}
	if f.sort != "" {
		key, err := models.ParseSortKey(f.sort)
		if err != nil {
			return view.Result{}, err
		}
		r = a.catalog.SortBy(key)
	}
	return r, nil
}

func newListCommand(cfg *config.Configuration) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "list [search]",
		Short: "List the games of a scope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var search string
			if len(args) == 1 {
				search = args[0]
			}
			return withApp(cmd.Context(), cfg, func(a *app) error {
				r, err := flags.result(cmd, a, search)
				if err != nil {
					return err
				}
				return renderResult(cmd.OutOrStdout(), r, a.covers)
			})
		},
	}
	flags.register(cmd)
	flags.registerPresentation(cmd)
	return cmd
}

func newAddCommand(cfg *config.Configuration) *cobra.Command {
	var (
		flags    gameFlags
		coverURL string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a game to the collection or the wishlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := models.NewGame()
			if err := flags.apply(cmd.Flags(), &g, true); err != nil {
				return err
			}

			return withApp(cmd.Context(), cfg, func(a *app) error {
				if !cmd.Flags().Changed("currency") {
					g.PaidPriceCurrency = a.prefs.Locale().Currency.ISO
				}
				created, _, err := a.catalog.Create(cmd.Context(), g)
				if err != nil {
					return err
				}
				if coverURL != "" {
					if err := a.metadata.SaveCover(cmd.Context(), created.ID, coverURL); err != nil {
						color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "cover not saved: %v\n", err)
					}
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "added #%d %s\n", created.ID, created.Title)
				return nil
			})
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&coverURL, "cover-url", "", "download the cover from this URL")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("platform")
	return cmd
}

func newEditCommand(cfg *config.Configuration) *cobra.Command {
	var flags gameFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withApp(cmd.Context(), cfg, func(a *app) error {
				g, err := a.catalog.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if err := flags.apply(cmd.Flags(), g, false); err != nil {
					return err
				}
				updated, _, err := a.catalog.Update(cmd.Context(), *g)
				if err != nil {
					return err
				}
				return renderGame(cmd.OutOrStdout(), *updated, a.covers)
			})
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newFavoriteCommand(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Flip the favorite flag of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), cfg, func(a *app) error {
				g, _, err := a.catalog.ToggleFavorite(cmd.Context(), id)
				if err != nil {
					return err
				}
				if g.Favorite {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is now a favorite\n", g.Title)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is no longer a favorite\n", g.Title)
				}
				return nil
			})
		},
	}
}

func newDeleteCommand(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game and its cover",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), cfg, func(a *app) error {
				if _, err := a.catalog.Delete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted #%d\n", id)
				return nil
			})
		},
	}
}

func newPlatformsCommand(cfg *config.Configuration) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List the platforms you own games for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if all {
				for _, p := range models.Platforms {
					fmt.Fprintf(out, "%-20s %s\n", p.ID, p.Name)
				}
				return nil
			}

			return withApp(cmd.Context(), cfg, func(a *app) error {
				platforms, err := a.catalog.Platforms(cmd.Context())
				if err != nil {
					return err
				}
				if len(platforms) == 0 {
					color.New(color.FgYellow).Fprintln(out, "You do not own any games yet.")
					return nil
				}
				for _, p := range platforms {
					fmt.Fprintf(out, "%-20s %s\n", p.ID, p.Name)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every known platform code")
	return cmd
}

func newSearchCommand(cfg *config.Configuration) *cobra.Command {
	var (
		platform string
		pick     int
		flags    gameFlags
	)

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search IGDB and optionally add a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cfg, func(a *app) error {
				candidates, err := a.metadata.Search(cmd.Context(), args[0], models.PlatformID(platform))
				if err != nil {
					return err
				}
				if pick == 0 {
					return renderCandidates(cmd.OutOrStdout(), candidates)
				}
				if pick < 0 || pick > len(candidates) {
					return fmt.Errorf("--pick must be between 1 and %d", len(candidates))
				}

				chosen := candidates[pick-1]
				g := chosen.Game
				if err := flags.apply(cmd.Flags(), &g, false); err != nil {
					return err
				}
				created, _, err := a.catalog.Create(cmd.Context(), g)
				if err != nil {
					return err
				}
				if err := a.metadata.SaveCover(cmd.Context(), created.ID, chosen.CoverURL); err != nil {
					color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "cover not saved: %v\n", err)
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "added #%d %s\n", created.ID, created.Title)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&platform, "for", "", "preferred platform code")
	cmd.Flags().IntVar(&pick, "pick", 0, "add the n-th match (1-based)")
	flags.register(cmd.Flags())
	return cmd
}

func newExportCommand(cfg *config.Configuration) *cobra.Command {
	var (
		flags  viewFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [search]",
		Short: "Write the games of a scope to an xlsx workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var search string
			if len(args) == 1 {
				search = args[0]
			}
			return withApp(cmd.Context(), cfg, func(a *app) error {
				params := services.BrowseParams{Search: search}
				if flags.last {
					params.Scope = a.prefs.LastScope()
				} else {
					scope, err := models.ParseScope(flags.scope)
					if err != nil {
						return err
					}
					params.Scope = scope
				}
				if flags.sort != "" {
					key, err := models.ParseSortKey(flags.sort)
					if err != nil {
						return err
					}
					params.Sort = &key
				}

				r, err := a.catalog.Browse(cmd.Context(), params)
				if err != nil {
					return err
				}

				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()

				locale := a.prefs.Locale()
				if err := export.WriteXLSX(f, r.Items, export.Options{
					Language:   locale.Language,
					DateLayout: locale.DateLayout,
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d games to %s\n", len(r.Items), output)
				return nil
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "jogos.xlsx", "output file")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid game id: %s", s)
	}
	return id, nil
}
