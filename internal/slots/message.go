package slots

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/FairSpin_Go/internal/domain"
)

var titleCaser = cases.Title(language.English)

// determineTriggerType classifies a finished spin
func determineTriggerType(winType *string, jackpotSymbol string, bet, payout int64) string {
	switch {
	case winType == nil:
		return domain.TriggerNormal
	case *winType == jackpotSymbol:
		return domain.TriggerJackpot
	case payout >= bet*BigWinThreshold:
		return domain.TriggerBigWin
	default:
		return domain.TriggerNormal
	}
}

// formatMessage creates a user-facing message for the result
func formatMessage(winType *string, bet, payout int64, triggerType string) string {
	if winType == nil {
		return fmt.Sprintf("Better luck next time! You lost %d.", bet)
	}

	symbol := titleCaser.String(*winType)
	net := payout - bet

	switch triggerType {
	case domain.TriggerJackpot:
		return fmt.Sprintf("💎 JACKPOT! 💎 Triple %s pays %d (net +%d)!", symbol, payout, net)
	case domain.TriggerBigWin:
		return fmt.Sprintf("🎉 BIG WIN! Triple %s pays %d (net +%d)!", symbol, payout, net)
	default:
		if net == 0 {
			return fmt.Sprintf("Triple %s! You broke even with %d.", symbol, payout)
		}
		return fmt.Sprintf("Triple %s! You won %d (net +%d).", symbol, payout, net)
	}
}
