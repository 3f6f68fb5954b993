package cmd

import (
	"context"
	"fmt"
	"strconv"

	"flatacuties/core/config"
	"flatacuties/core/logger"
	"flatacuties/core/notify"
	"flatacuties/feature/characters/models"

	"github.com/spf13/cobra"
)

var (
	voteTimes int
	addName   string
	addImage  string
)

// charactersCmd groups the one-shot session commands
var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Work with the characters of the API base",
}

var charactersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all characters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, s *session) error {
			records := s.engine.Characters()
			fmt.Printf("\n--- Characters (%s) ---\n", s.engine.Base())
			for _, rec := range records {
				fmt.Printf("%4d  %-24s %5d votes\n", rec.ID, rec.Name, rec.Votes)
			}
			fmt.Printf("Total: %d\n", len(records))
			return nil
		})
	},
}

var charactersShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd.Context(), func(ctx context.Context, s *session) error {
			_, err := s.engine.Select(ctx, id)
			return err
		})
	},
}

var charactersVoteCmd = &cobra.Command{
	Use:   "vote [id]",
	Short: "Vote for a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if voteTimes < 1 {
			return fmt.Errorf("--times must be at least 1")
		}
		return withSession(cmd.Context(), func(ctx context.Context, s *session) error {
			if _, err := s.engine.Select(ctx, id); err != nil {
				return err
			}
			for i := 0; i < voteTimes; i++ {
				if _, err := s.engine.IncrementVote(ctx); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var charactersResetCmd = &cobra.Command{
	Use:   "reset [id]",
	Short: "Reset a character's votes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd.Context(), func(ctx context.Context, s *session) error {
			if _, err := s.engine.Select(ctx, id); err != nil {
				return err
			}
			_, err := s.engine.ResetVote(ctx)
			return err
		})
	},
}

var charactersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a character",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, s *session) error {
			created, err := s.engine.Create(ctx, models.Candidate{Name: addName, Image: addImage})
			if err != nil {
				return err
			}
			if !created.Confirmed {
				fmt.Println("Not saved on the server; the character exists in this session only.")
			}
			return nil
		})
	},
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid character id %q", arg)
	}
	return id, nil
}

// withSession loads a session, runs fn, waits for persistence and prints the outcome.
func withSession(ctx context.Context, fn func(context.Context, *session) error) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	s, err := newSession(cfg, logg)
	if err != nil {
		return err
	}
	if err := s.engine.Load(ctx); err != nil {
		return err
	}

	if err := fn(ctx, s); err != nil {
		return err
	}
	s.engine.Wait()

	if cur, ok := s.engine.Current(); ok {
		printCharacter(cur)
	}
	if last, ok := s.recorder.Last(); ok {
		printStatus(last)
	}
	return nil
}

func printCharacter(rec models.Character) {
	fmt.Println("\n--- Character ---")
	fmt.Printf("ID:      %d\n", rec.ID)
	fmt.Printf("Name:    %s\n", rec.Name)
	fmt.Printf("Image:   %s\n", rec.Image)
	fmt.Printf("Votes:   %d\n", rec.Votes)
	fmt.Println("-----------------")
}

func printStatus(n notify.Notification) {
	color := "\033[32m" // green
	switch n.Level {
	case notify.LevelError:
		color = "\033[31m"
	case notify.LevelWarning:
		color = "\033[33m"
	}
	fmt.Printf("Status:  %s%s\033[0m\n", color, n.Message)
}

func init() {
	charactersVoteCmd.Flags().IntVar(&voteTimes, "times", 1, "number of votes to add")
	charactersAddCmd.Flags().StringVar(&addName, "name", "", "character name")
	charactersAddCmd.Flags().StringVar(&addImage, "image", "", "character image URL (optional)")
	_ = charactersAddCmd.MarkFlagRequired("name")

	charactersCmd.AddCommand(charactersListCmd, charactersShowCmd, charactersVoteCmd, charactersResetCmd, charactersAddCmd)
	RootCmd.AddCommand(charactersCmd)
}
