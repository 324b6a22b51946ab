package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

// Statistics is the scoreboard of one session.
// WinStreak is signed: positive for an X streak, negative for an O streak.
type Statistics struct {
	TotalGames   int `json:"total_games"`
	XWins        int `json:"x_wins"`
	OWins        int `json:"o_wins"`
	Draws        int `json:"draws"`
	WinStreak    int `json:"win_streak"`
	MaxWinStreak int `json:"max_win_streak"`
}

// RecordWin - counts a finished game won by mark and extends or restarts the streak.
func (that *Statistics) RecordWin(mark Mark) error {
	switch mark {
	case X:
		that.XWins++
		if that.WinStreak >= 0 {
			that.WinStreak++
		} else {
			that.WinStreak = 1
		}
	case O:
		that.OWins++
		if that.WinStreak <= 0 {
			that.WinStreak--
		} else {
			that.WinStreak = -1
		}
	default:
		return fmt.Errorf("%w: no winner for %q", apperror.ErrInvalidMark, mark)
	}

	that.TotalGames++
	that.MaxWinStreak = max(that.MaxWinStreak, that.StreakLength())

	return nil
}

// RecordDraw - counts a drawn game. The streak is left as it was.
func (that *Statistics) RecordDraw() {
	that.TotalGames++
	that.Draws++
}

// WinRate - percentage of games that ended with a winner.
func (that *Statistics) WinRate() float64 {
	if that.TotalGames == 0 {
		return 0
	}

	return float64(that.XWins+that.OWins) / float64(that.TotalGames) * 100
}

// StreakHolder - mark currently on a streak, Empty when nobody is.
func (that *Statistics) StreakHolder() Mark {
	switch {
	case that.WinStreak > 0:
		return X
	case that.WinStreak < 0:
		return O
	default:
		return Empty
	}
}

func (that *Statistics) StreakLength() int {
	if that.WinStreak < 0 {
		return -that.WinStreak
	}
	return that.WinStreak
}
