// Package advisor provides AI commentary on a REIT portfolio.
package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const systemPrompt = `You are an analyst specialized in Real Estate Investment
Trusts and income investing. You are given a markdown report of the user's
REIT portfolio: holdings, cost basis, yields, dividend growth, quality scores
and premium/discount to consensus NAV. Comment on income reliability,
valuation and concentration. Be concise and concrete, never give personalized
financial advice, and say so when data is missing.`

// Advisor wraps a chat session with the analyst model.
type Advisor struct {
	Model string

	chat *genai.Chat
}

// New returns an advisor using the default model.
func New() *Advisor { return &Advisor{Model: DefaultModel} }

// Start creates the chat session with the analyst persona.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}
	chat, err := client.Chats.Create(ctx, a.Model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Review sends the portfolio report and returns the analyst's commentary.
func (a *Advisor) Review(ctx context.Context, report string) (string, error) {
	return a.ask(ctx, "Review this portfolio:\n\n"+report)
}

func (a *Advisor) ask(ctx context.Context, question string) (string, error) {
	if a.chat == nil {
		return "", fmt.Errorf("advisor session not started")
	}
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "advise> "

// Run reviews the report and then drops into an interactive session for
// follow-up questions. Type 'bye' (or Ctrl+D) to exit.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, w io.Writer, r io.Reader, report string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	review, err := a.Review(ctx, report)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, review)

	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		input, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}
		answer, err := a.ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, answer)
	}
}
