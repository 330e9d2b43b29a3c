package cmd

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/services"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Chat with your document corpus",
	Long: `Open an interactive chat session against your analyzed documents.

With a message argument, sends a single question and prints the reply.
Without arguments, opens the interactive session.

Keyboard shortcuts (interactive):
  Enter       Send message
  Ctrl+Y      Copy last reply to clipboard
  Esc/Ctrl+C  Quit`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return runChatOnce(strings.Join(args, " "))
	}

	m := newChatModel()
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running chat: %w", err)
	}
	return nil
}

// runChatOnce sends a single message without entering the TUI.
func runChatOnce(message string) error {
	reply, err := chatService.Send(getContext(), message)
	if err != nil {
		fmt.Println(ui.FormatError("Chat request failed"))
		requireAuthHint(err)
		return err
	}
	fmt.Println(highlightCodeBlocks(reply.Content))
	return nil
}

// Chat TUI

type chatReplyMsg struct {
	err error
}

type chatModel struct {
	input   textinput.Model
	vp      viewport.Model
	width   int
	height  int
	ready   bool
	waiting bool
	pending string // user turn shown while the request is in flight
	errLine string
}

func newChatModel() chatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask something about your documents..."
	ti.CharLimit = 500
	ti.Focus()

	vp := viewport.New(80, 20)

	return chatModel{
		input: ti,
		vp:    vp,
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
		m.vp.Width = msg.Width - 2
		m.vp.Height = msg.Height - 6
		m.ready = true
		// The transcript belongs to the request goroutine while waiting;
		// redraw happens on chatReplyMsg instead.
		if !m.waiting {
			m.refreshTranscript()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+y":
			if m.waiting {
				return m, nil
			}
			if last, ok := chatService.LastReply(); ok {
				if err := clipboard.WriteAll(last.Content); err != nil {
					m.errLine = "clipboard: " + err.Error()
				} else {
					m.errLine = ""
				}
			}
			return m, nil

		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting {
				return m, nil
			}
			m.input.SetValue("")
			m.waiting = true
			m.pending = text
			m.errLine = ""
			m.refreshTranscript()
			cmd := func() tea.Msg {
				_, err := chatService.Send(getContext(), text)
				return chatReplyMsg{err: err}
			}
			return m, cmd
		}

	case chatReplyMsg:
		m.waiting = false
		m.pending = ""
		if msg.err != nil {
			if services.IsAuthFailure(msg.err) {
				m.errLine = "Session expired, run 'docan login'"
			} else {
				m.errLine = msg.err.Error()
			}
		}
		m.refreshTranscript()
		m.vp.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *chatModel) refreshTranscript() {
	var s strings.Builder
	for _, msg := range chatService.History() {
		switch msg.Role {
		case domain.RoleUser:
			s.WriteString(ui.StylePrimary.Render("You"))
		default:
			s.WriteString(ui.StyleAccent.Render("Assistant"))
		}
		s.WriteString("\n")
		s.WriteString(highlightCodeBlocks(msg.Content))
		s.WriteString("\n\n")
	}
	if m.waiting {
		s.WriteString(ui.StylePrimary.Render("You"))
		s.WriteString("\n")
		s.WriteString(m.pending)
		s.WriteString("\n\n")
		s.WriteString(ui.StyleMuted.Render("Thinking..."))
		s.WriteString("\n")
	}
	m.vp.SetContent(s.String())
	m.vp.GotoBottom()
}

func (m chatModel) View() string {
	if !m.ready {
		return "\n  Loading chat..."
	}

	var s strings.Builder
	s.WriteString(ui.FormatTitle("Chat"))
	s.WriteString("\n")
	s.WriteString(m.vp.View())
	s.WriteString("\n")

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(0, 1).
		Width(m.width - 4)
	s.WriteString(inputStyle.Render(m.input.View()))
	s.WriteString("\n")

	if m.errLine != "" {
		s.WriteString(ui.StyleError.Render(m.errLine))
	} else {
		s.WriteString(ui.StyleMuted.Render("[Enter] Send  [Ctrl+Y] Copy last reply  [Esc] Quit"))
	}
	return s.String()
}

// highlightCodeBlocks renders fenced code blocks in a reply with syntax
// highlighting, leaving prose untouched.
func highlightCodeBlocks(content string) string {
	if !appConfig.SyntaxHighlighting || !strings.Contains(content, "```") {
		return content
	}

	var out strings.Builder
	rest := content
	for {
		start := strings.Index(rest, "```")
		if start == -1 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:start])
		rest = rest[start+3:]

		end := strings.Index(rest, "```")
		if end == -1 {
			// Unterminated fence: leave it as-is
			out.WriteString("```")
			out.WriteString(rest)
			break
		}

		block := rest[:end]
		rest = rest[end+3:]

		lang := ""
		if nl := strings.Index(block, "\n"); nl != -1 {
			lang = strings.TrimSpace(block[:nl])
			block = block[nl+1:]
		}
		out.WriteString(highlightCode(block, lang))
	}
	return out.String()
}

// highlightCode applies syntax highlighting to one code block
func highlightCode(code, lang string) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.TTY16m

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}
