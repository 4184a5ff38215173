// Command nationcraft is a thin shell over the decision engine: an
// interactive terminal loop plus listing and serving modes. All game rules
// live in the internal packages; this file only renders and relays input.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Avyayamishra/NationCraft/internal/api"
	"github.com/Avyayamishra/NationCraft/internal/config"
	"github.com/Avyayamishra/NationCraft/internal/crisis"
	"github.com/Avyayamishra/NationCraft/internal/engine"
	"github.com/Avyayamishra/NationCraft/internal/entropy"
	"github.com/Avyayamishra/NationCraft/internal/nation"
	"github.com/Avyayamishra/NationCraft/internal/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// ── Database ──────────────────────────────────────────────────────
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Event catalog ─────────────────────────────────────────────────
	var src entropy.Source
	if client := entropy.NewClient(cfg.RandomOrgKey); client != nil {
		src = client
		slog.Info("using random.org draws")
	} else {
		seed, err := entropy.NewSeed()
		if err != nil {
			slog.Error("failed to seed randomness", "error", err)
			os.Exit(1)
		}
		src = entropy.NewSeeded(seed)
	}

	catalog := crisis.NewCatalog(db, src)
	if err := catalog.SeedIfEmpty(crisis.DefaultEvents()); err != nil {
		slog.Error("failed to seed event catalog", "error", err)
		os.Exit(1)
	}

	mode := "play"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "play":
		runGame(db, catalog)
	case "leaderboard":
		printLeaderboard(db)
	case "saves":
		printSaves(db)
	case "serve":
		srv := &api.Server{DB: db, Port: cfg.APIPort}
		srv.Start()
		select {} // serve until killed
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [play|leaderboard|saves|serve]\n", os.Args[0])
		os.Exit(2)
	}
}

func runGame(db *persistence.DB, catalog *crisis.Catalog) {
	in := bufio.NewScanner(os.Stdin)
	prompt := func(label string) string {
		fmt.Printf("%s: ", label)
		if !in.Scan() {
			os.Exit(0)
		}
		return strings.TrimSpace(in.Text())
	}

	fmt.Println("NATIONCRAFT: Decisions of a President")
	fmt.Println("One choice can change a nation. Lead wisely, survive history.")
	fmt.Println()

	player := prompt("President's name")
	country := prompt("Nation's name")

	eng := engine.New(catalog, persistence.ScoreRecorder{DB: db})
	if err := eng.Start(country, player); err != nil {
		fmt.Fprintln(os.Stderr, "cannot start:", err)
		os.Exit(1)
	}

	for {
		view, err := eng.CurrentTurn()
		if errors.Is(err, engine.ErrNoActiveRun) {
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return
		}

		fmt.Printf("\n== Year %d, Turn %d ==\n", view.Year, view.Turn)
		printStats(view.Stats)
		fmt.Printf("\n[%s]\n%s\n\n", view.Title, view.Description)
		for i, opt := range view.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}
		fmt.Println("  (or: save <name> / load <name> / quit)")

		input := prompt("choice")
		switch {
		case input == "quit":
			return

		case strings.HasPrefix(input, "save "):
			name := strings.TrimSpace(strings.TrimPrefix(input, "save "))
			if err := db.SaveSession(eng.Snapshot(name), time.Now().UTC()); err != nil {
				fmt.Println("save failed:", err)
				continue
			}
			fmt.Printf("saved as %q\n", name)

		case strings.HasPrefix(input, "load "):
			name := strings.TrimSpace(strings.TrimPrefix(input, "load "))
			sess, err := db.LoadSession(name)
			if err != nil {
				fmt.Println("load failed:", err)
				continue
			}
			if err := eng.Resume(sess, player); err != nil {
				fmt.Println("resume failed:", err)
				continue
			}
			fmt.Printf("resumed %q (%s, year %d)\n", name, sess.CountryName, sess.Year)

		default:
			n, err := strconv.Atoi(input)
			if err != nil {
				fmt.Println("enter an option number")
				continue
			}
			out, err := eng.Decide(n - 1)
			if errors.Is(err, engine.ErrInvalidOption) {
				fmt.Println("no such option")
				continue
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				if !out.Terminal {
					continue
				}
			}

			fmt.Printf("\nYou chose: %s\n", out.ChosenOption)
			fmt.Printf("Effects: %s\n", formatEffects(out.AppliedEffects))
			fmt.Printf("Why: %s\n", out.Reason)

			if out.Terminal {
				fmt.Printf("\nGAME OVER — %s\n", out.CauseText)
				fmt.Printf("%s survived %d years (%d turns) under President %s.\n",
					eng.Country(), eng.YearsSurvived(), eng.Turn(), player)
				printLeaderboard(db)
				return
			}
		}
	}
}

func printStats(s nation.Stats) {
	for _, st := range nation.CanonicalOrder {
		fmt.Printf("  %-15s %3d\n", st, s.Get(st))
	}
}

func formatEffects(effects nation.Effects) string {
	if len(effects) == 0 {
		return "none"
	}
	var parts []string
	for _, st := range nation.CanonicalOrder {
		if delta, ok := effects[st]; ok {
			parts = append(parts, fmt.Sprintf("%s %+d", st, delta))
		}
	}
	return strings.Join(parts, ", ")
}

func printLeaderboard(db *persistence.DB) {
	scores, err := db.TopScores(10)
	if err != nil {
		fmt.Fprintln(os.Stderr, "leaderboard:", err)
		return
	}
	if len(scores) == 0 {
		fmt.Println("\nNo completed runs yet.")
		return
	}

	fmt.Println("\nHALL OF PRESIDENTS")
	for i, s := range scores {
		fmt.Printf("%2d. %s of %s — %d years, %d turns (%s)\n",
			i+1, s.PlayerName, s.CountryName, s.YearsSurvived, s.TurnsSurvived,
			humanize.Time(s.AchievedAt))
		fmt.Printf("    %s\n", s.CauseOfDownfall)
	}
}

func printSaves(db *persistence.DB) {
	saves, err := db.Sessions()
	if err != nil {
		fmt.Fprintln(os.Stderr, "saves:", err)
		return
	}
	if len(saves) == 0 {
		fmt.Println("No saved games.")
		return
	}
	for _, s := range saves {
		fmt.Printf("%-20s %s, year %d — updated %s\n",
			s.SaveName, s.CountryName, s.Year, humanize.Time(s.UpdatedAt))
	}
}
