// Package advisor implements the interactive AI session behind `rba assist`.
// It seeds a single Gemini chat with the computed strategy report, so the
// model can discuss the numbers the user is about to act on.
package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemInstruction = `
You are a careful assistant for a small personal index-fund account.
The user follows a fixed target-date glide path over three funds (bonds,
international index, national index) and you are given the rebalancing
strategy that was just computed for them. Explain the recommendations,
answer questions about the arithmetic, and never invent figures that are
not in the report. You give no investment advice beyond the fixed strategy.
`

// Advisor is the AI assistant that handles the chat session.
type Advisor struct {
	w      io.Writer
	r      *bufio.Reader
	report string
	chat   *genai.Chat
}

// New creates a new Advisor around the rendered strategy report, an
// io.Writer for the advisor's output (e.g., os.Stdout), and an io.Reader
// for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, report string) *Advisor {
	return &Advisor{w: w, r: bufio.NewReader(r), report: report}
}

// Start creates the Gemini chat and seeds it with the strategy report.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat

	seed := "Here is the strategy report we will discuss:\n\n" + a.report
	if _, err := chat.Send(ctx, &genai.Part{Text: seed}); err != nil {
		return err
	}
	return nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the advisor.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to rba assist. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content)
	}
}

// ask is a simple wrapper on top of Chat.Send that extracts the text answer.
func (a *Advisor) ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
