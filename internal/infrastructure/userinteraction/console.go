package userinteraction

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"finance-qa-agent/internal/application/port/output"
)

var _ output.UserInteractionPort = (*ConsoleUserInteraction)(nil)

type ConsoleUserInteraction struct {
	reader *bufio.Reader
}

func NewConsoleUserInteraction() *ConsoleUserInteraction {
	return &ConsoleUserInteraction{
		reader: bufio.NewReader(os.Stdin),
	}
}

func (u *ConsoleUserInteraction) AskQuestion(ctx context.Context, question string) (string, error) {
	fmt.Printf("\n%s\n> ", question)

	answer, err := u.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

func (u *ConsoleUserInteraction) ShowMessage(ctx context.Context, message string) {
	fmt.Println(message)
}

func (u *ConsoleUserInteraction) ShowError(ctx context.Context, message string) {
	red := color.New(color.FgRed)
	red.Println(message)
}

func (u *ConsoleUserInteraction) ShowStepStart(ctx context.Context, step string) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Printf("\n%s %s\n", stepIcon(step), stepTitle(step))
}

func (u *ConsoleUserInteraction) ShowStepResult(ctx context.Context, step, result string, isError bool) {
	if isError {
		red := color.New(color.FgRed)
		red.Print("x ")

		dim := color.New(color.Faint)
		dim.Println(truncate(result, 300))
		return
	}

	green := color.New(color.FgGreen)
	green.Printf("+ %s\n", truncate(result, 200))
}

func stepIcon(step string) string {
	icons := map[string]string{
		"ticker_validation": "[?]",
		"stock_price":       "[$]",
		"financial_reports": "[#]",
		"company_news":      "[N]",
		"market_news":       "[M]",
		"financial_summary": "[F]",
		"sentiment":         "[S]",
		"summary":           "[=]",
	}
	if icon, ok := icons[step]; ok {
		return icon
	}
	return "[*]"
}

func stepTitle(step string) string {
	titles := map[string]string{
		"ticker_validation": "Validating ticker",
		"stock_price":       "Fetching stock prices",
		"financial_reports": "Searching financial reports",
		"company_news":      "Searching company news",
		"market_news":       "Searching market news",
		"financial_summary": "Fetching financial summary",
		"sentiment":         "Analyzing news sentiment",
		"summary":           "Building summary",
	}
	if title, ok := titles[step]; ok {
		return title
	}
	return step
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
