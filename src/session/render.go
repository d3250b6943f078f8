package session

import (
	"fmt"
	"strings"
	"time"

	"chatpal/src/theme"
)

func (s *Session) prompt() string {
	return "\n" + theme.Username.Render(s.cfg.Username) + ": "
}

func (s *Session) savePrompt() string {
	return "\nSave conversation? " + theme.Path.Render("[y]") + "/" + theme.Muted.Render("n") + " "
}

func (s *Session) printBanner() {
	fmt.Fprintf(s.out, "\n%s %s\n", theme.Banner.Render("ChatPal companion"), theme.Tokens.Render("v2.0"))
	fmt.Fprintln(s.out, theme.Divider.Render(strings.Repeat("=", 40)))
	fmt.Fprintf(s.out, "\n%s is online!\n", theme.BotName.Render(s.cfg.BotName))
	fmt.Fprintf(s.out, "User: %s\n", theme.Username.Render(s.cfg.Username))
	fmt.Fprintf(s.out, "Model: %s\n", theme.Model.Render(s.cfg.Model))
	fmt.Fprintf(s.out, "Memory: %s exchanges\n", theme.Accent.Render(fmt.Sprint(s.cfg.MaxHistory)))
	fmt.Fprintln(s.out, theme.Muted.Render("Type /exit to quit, /save to save the conversation."))
}

func (s *Session) printThinking() {
	fmt.Fprintf(s.out, "\n%s is thinking...\n", theme.BotName.Render(s.cfg.BotName))
	fmt.Fprintf(s.out, "model: %s\n", theme.Model.Render(s.cfg.Model))
}

// printReply renders the assistant text with the heading-aware colorizer:
// ### lines indented bold, ## and # lines promoted to standalone headings,
// everything else indented body text.
func (s *Session) printReply(reply string, tokens int) {
	fmt.Fprintf(s.out, "\n%s:\n", theme.BotName.Render(s.cfg.BotName))

	for i, para := range strings.Split(reply, "\n\n") {
		if i > 0 {
			fmt.Fprintln(s.out)
		}
		for _, line := range strings.Split(para, "\n") {
			switch {
			case strings.HasPrefix(line, "###"):
				fmt.Fprintln(s.out, theme.Heading3.Render(strings.Replace(line, "###", "  ", 1)))
			case strings.HasPrefix(line, "##"):
				fmt.Fprintf(s.out, "\n%s\n", theme.Heading2.Render(strings.TrimPrefix(line, "##")))
			case strings.HasPrefix(line, "#"):
				fmt.Fprintf(s.out, "\n%s\n", theme.Heading1.Render(strings.TrimPrefix(line, "#")))
			default:
				fmt.Fprintf(s.out, "  %s\n", line)
			}
		}
	}

	fmt.Fprintf(s.out, "\ntokens used: %s/%s\n",
		theme.Tokens.Render(fmt.Sprint(tokens)),
		theme.Muted.Render(fmt.Sprint(s.cfg.MaxTokens)))
}

func (s *Session) printExchangeError(err error) {
	fmt.Fprintf(s.out, "\n%s %v\n", theme.Error.Render("Exchange failed:"), err)
	fmt.Fprintln(s.out, theme.Muted.Render("Your last message was not sent; the conversation continues."))
}

func (s *Session) printSaved(path string) {
	fmt.Fprintf(s.out, "\nConversation saved to %s\n", theme.Path.Render(path))
}

func (s *Session) printSaveError(err error) {
	fmt.Fprintf(s.out, "\n%s %v\n", theme.Error.Render("Save failed:"), err)
}

func (s *Session) printFarewell() {
	fmt.Fprintf(s.out, "\n%s says: goodbye %s, see you next time!\n",
		theme.BotName.Render(s.cfg.BotName),
		theme.Username.Render(s.cfg.Username))
}

func (s *Session) printSessionEnd() {
	fmt.Fprintf(s.out, "\nSession ended at %s\n",
		theme.Model.Render(time.Now().Format("2006-01-02 15:04:05")))
}
