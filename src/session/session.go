// Package session runs the interactive chat loop: read a line, dispatch
// commands, call the model, and keep the conversation consistent across
// failed exchanges.
package session

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"chatpal/src/config"
	"chatpal/src/conversation"
)

// ChatClient sends the current turn sequence to the model.
type ChatClient interface {
	Ask(ctx context.Context, turns []conversation.Turn, cfg *config.BotConfig) (reply string, tokens int, err error)
}

// Saver persists the conversation and returns the written path.
type Saver interface {
	Save(conv *conversation.Conversation, cfg *config.BotConfig) (string, error)
}

// LineReader supplies one line of user input at a time. Implementations
// return io.EOF when input is exhausted or aborted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Options holds the collaborators for a session.
type Options struct {
	Config       *config.BotConfig
	Conversation *conversation.Conversation
	Client       ChatClient
	Store        Saver
	Input        LineReader
	Output       io.Writer
	Logger       *slog.Logger
}

// Session owns the conversation for the process lifetime and drives the
// read-eval-print loop. Strictly sequential: one input, one request, one
// reply.
type Session struct {
	cfg    *config.BotConfig
	conv   *conversation.Conversation
	client ChatClient
	store  Saver
	input  LineReader
	out    io.Writer
	logger *slog.Logger
}

// New creates a session from its collaborators.
func New(opts Options) *Session {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		cfg:    opts.Config,
		conv:   opts.Conversation,
		client: opts.Client,
		store:  opts.Store,
		input:  opts.Input,
		out:    out,
		logger: logger.With("component", "session"),
	}
}

// Run executes the loop until the user exits. Every runtime failure is
// recovered locally; only the surrounding process setup can abort a session.
func (s *Session) Run(ctx context.Context) error {
	s.printBanner()

	for {
		line, err := s.input.ReadLine(s.prompt())
		if err != nil {
			// EOF or an aborted prompt ends the session the same way
			// /exit does.
			s.printFarewell()
			break
		}
		input := strings.TrimSpace(line)

		switch input {
		case "/exit", "/quit":
			s.printFarewell()
		case "/save":
			s.save()
			continue
		case "":
			continue
		default:
			s.exchange(ctx, input)
			continue
		}
		break
	}

	if s.confirmSave() {
		s.save()
	}
	s.printSessionEnd()
	return nil
}

// exchange appends the user turn, trims the context, and calls the model. On
// failure the user turn is rolled back so the conversation is exactly as it
// was before the call.
func (s *Session) exchange(ctx context.Context, input string) {
	s.conv.Append(conversation.RoleUser, input)
	s.conv.Trim(s.cfg.MaxContextChars)

	s.printThinking()
	reply, tokens, err := s.client.Ask(ctx, s.conv.Turns(), s.cfg)
	if err != nil {
		s.logger.Warn("exchange failed", "error", err)
		s.printExchangeError(err)
		s.conv.Pop()
		return
	}

	s.printReply(reply, tokens)
	s.conv.Append(conversation.RoleAssistant, reply)
}

// save persists the conversation and reports the outcome. A failed save never
// ends the session.
func (s *Session) save() {
	path, err := s.store.Save(s.conv, s.cfg)
	if err != nil {
		s.logger.Error("save failed", "error", err)
		s.printSaveError(err)
		return
	}
	s.printSaved(path)
}

// confirmSave asks once whether to save before exiting. Empty input and read
// failures count as yes, so a closed stdin still saves the conversation.
func (s *Session) confirmSave() bool {
	answer, err := s.input.ReadLine(s.savePrompt())
	if err != nil {
		return true
	}
	answer = strings.TrimSpace(answer)
	return answer == "" || strings.EqualFold(answer, "y")
}
