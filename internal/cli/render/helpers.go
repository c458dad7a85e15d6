package render

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var grouped = message.NewPrinter(language.English)

// weiPerEth as a big.Float for display conversion only; all decision
// arithmetic stays in integer wei.
var weiPerEth = new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

// FormatWarning formats a warning message with the warning icon.
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon.
func FormatError(message string) string {
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon.
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatEth renders a wei amount as ETH with full precision trimmed of
// trailing zeros, e.g. 800000000000000 -> "0.0008 ETH".
func FormatEth(wei *big.Int) string {
	if wei == nil {
		return "0 ETH"
	}
	eth := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerEth)
	text := strings.TrimRight(strings.TrimRight(eth.Text('f', 18), "0"), ".")
	if text == "" || text == "-" {
		text = "0"
	}
	return text + " ETH"
}

// FormatBlocks renders a block count with digit grouping.
func FormatBlocks(blocks uint64) string {
	return grouped.Sprintf("%d", blocks)
}

// FormatCountdown renders remaining seconds as h/m/s.
func FormatCountdown(seconds int64) string {
	if seconds <= 0 {
		return "ended"
	}
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
