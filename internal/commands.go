package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tui"
	"github.com/spf13/cobra"
)

var (
	ErrInvalidMoveArgument = errors.New("move must be written as row,column")
	ErrStatsNeedRedis      = errors.New("statistics of another session need the redis scoreboard storage")
)

// NewRootCmd - without a subcommand the root command starts an interactive session.
func NewRootCmd(logger *slog.Logger, conf *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Two players, one terminal, one tic-tac-toe board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunApp(cmd.Context(), logger, conf)
		},
		SilenceUsage: true,
	}
	addPlayerFlags(rootCmd, conf)

	rootCmd.AddCommand(newPlayCmd(logger, conf))
	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newStatsCmd(conf))

	return rootCmd
}

func addPlayerFlags(cmd *cobra.Command, conf *config.Config) {
	cmd.Flags().StringVar(&conf.Players.X, "player-x", conf.Players.X, "Name of the player holding X")
	cmd.Flags().StringVar(&conf.Players.O, "player-o", conf.Players.O, "Name of the player holding O")
}

func newPlayCmd(logger *slog.Logger, conf *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunApp(cmd.Context(), logger, conf)
		},
	}
	addPlayerFlags(cmd, conf)

	return cmd
}

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "replay row,column [row,column ...]",
		Short:   "Play a sequence of moves, X first, and print the final board",
		Example: "  tictactoe replay 0,0 1,1 0,1 1,0 0,2",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return replay(cmd.OutOrStdout(), args)
		},
	}
}

func newStatsCmd(conf *config.Config) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the scoreboard of a running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if conf.Scoreboard.Storage != config.StorageRedis {
				return ErrStatsNeedRedis
			}

			client, err := connectRedis(cmd.Context(), conf)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			stats, err := repository.NewScoreboardRepository(client, conf.Scoreboard.TTL).GetByID(cmd.Context(), sessionID)
			if err != nil {
				return fmt.Errorf("failed to read session %s: %w", sessionID, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStatistics(stats))

			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session id, as logged when the session started")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func replay(out io.Writer, args []string) error {
	board := tictactoe.NewBoard()
	mark := entity.X

	for i, arg := range args {
		row, column, err := parseCell(arg)
		if err != nil {
			return err
		}

		outcome, err := board.ApplyMove(row, column, mark)
		if err != nil {
			fmt.Fprint(out, tui.RenderBoard(board.Grid(), board.WinningLine()))
			return fmt.Errorf("move %d (%s) rejected: %w", i+1, arg, err)
		}

		if outcome.Phase == entity.InProgress {
			mark = mark.Opponent()
		}
	}

	fmt.Fprint(out, tui.RenderBoard(board.Grid(), board.WinningLine()))

	switch board.Phase() {
	case entity.Won:
		cells := make([]string, 0, len(board.WinningLine()))
		for _, cell := range board.WinningLine() {
			cells = append(cells, fmt.Sprintf("(%d,%d)", cell.Row, cell.Column))
		}
		fmt.Fprintf(out, "%s wins: %s\n", mark, strings.Join(cells, " "))
	case entity.Drawn:
		fmt.Fprintln(out, "Draw")
	default:
		fmt.Fprintf(out, "In progress, %s to move\n", mark)
	}

	return nil
}

func parseCell(arg string) (int, int, error) {
	rawRow, rawColumn, found := strings.Cut(arg, ",")
	if !found {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMoveArgument, arg)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rawRow))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMoveArgument, arg)
	}

	column, err := strconv.Atoi(strings.TrimSpace(rawColumn))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMoveArgument, arg)
	}

	return row, column, nil
}
