package gemini

import (
	"context"
	"fmt"
	"strings"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	"google.golang.org/genai"
)

// MessageSender abstracts sending one message on a Gemini chat.
// Satisfied by *genai.Chat.
type MessageSender interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Ensure Chat implements tuxdocs.ChatSession at compile time.
var _ tuxdocs.ChatSession = (*Chat)(nil)

// Chat is a conversation grounded in one document's content. Sends are
// sequential: the underlying Gemini chat appends each exchange to its
// history, so callers must not issue parallel sends.
type Chat struct {
	sender MessageSender
}

// NewChat wraps a message sender in a fail-soft chat session.
func NewChat(sender MessageSender) *Chat {
	return &Chat{sender: sender}
}

// Send submits one user message and returns the assistant reply, or
// the fixed connection-error message on any failure.
func (c *Chat) Send(ctx context.Context, message string) string {
	result, err := c.sender.SendMessage(ctx, genai.Part{Text: message})
	if err != nil || result == nil {
		return tuxdocs.ChatFallback
	}
	text := result.Text()
	if text == "" {
		return tuxdocs.ChatFallback
	}
	return text
}

// NewChatSession opens a conversation scoped to the document's content.
// When mode is ViewModern and altContent is non-empty, the session is
// grounded in altContent (the modernized rendition) instead.
func (o *Oracle) NewChatSession(ctx context.Context, doc *tuxdocs.Document, mode tuxdocs.ViewMode, altContent string) (tuxdocs.ChatSession, error) {
	if doc == nil {
		return nil, tuxdocs.Errorf(tuxdocs.EINVALID, "chat document required")
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: BuildChatSystemInstruction(doc, mode, altContent)}},
		},
	}
	chat, err := o.chats.Create(ctx, o.model, config, nil)
	if err != nil {
		return nil, err
	}
	return NewChat(chat), nil
}

// BuildChatSystemInstruction builds the chat persona and context block.
func BuildChatSystemInstruction(doc *tuxdocs.Document, mode tuxdocs.ViewMode, altContent string) string {
	content := doc.Content
	if mode == tuxdocs.ViewModern && altContent != "" {
		content = altContent
	}

	var sb strings.Builder
	sb.WriteString("You are a Senior Linux Sysadmin and Open Source Historian.\n")
	sb.WriteString("Your tone is helpful, technical, but pragmatic.\n")
	fmt.Fprintf(&sb, "CONTEXT: %q\n", doc.Title)
	fmt.Fprintf(&sb, "CONTENT: \"\"\"%s\"\"\"", content)
	return sb.String()
}
