package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatReplies(t *testing.T) {
	chat := NewChatService()

	assert.Contains(t, chat.Reply("How do I get my certificate?"), "Certificates page")
	assert.Contains(t, chat.Reply("when is the next EVENT?"), "Events section")
	assert.Contains(t, chat.Reply("can I volunteer"), "contact links")
	assert.Contains(t, chat.Reply("hello!"), "Hi there")
}

func TestChatFallback(t *testing.T) {
	chat := NewChatService()

	assert.Equal(t, fallbackReply, chat.Reply("what is the meaning of life"))
	assert.Equal(t, fallbackReply, chat.Reply(""))
}
