package service

import "strings"

// ChatService is the site's chat widget backend: keyword-matched canned
// responses only, no inference and no external calls.
type ChatService interface {
	Reply(message string) string
}

type chatService struct{}

// NewChatService creates the canned-response chat stub.
func NewChatService() ChatService {
	return &chatService{}
}

var cannedReplies = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"certificate", "cert"},
		reply:    "You can claim your event certificate from the Certificates page: pick the event, enter the full name you registered with, and your certificate will be generated if you're on the attendee list.",
	},
	{
		keywords: []string{"event", "schedule", "when"},
		reply:    "Upcoming events are listed on the Events section of the site. Follow our social pages for announcements!",
	},
	{
		keywords: []string{"join", "member", "volunteer"},
		reply:    "We'd love to have you! Reach out through the contact links in the footer and the team will get back to you.",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hi there! Ask me about events, certificates, or how to join the community.",
	},
}

const fallbackReply = "I'm a simple helper bot — I can answer questions about events, certificates, and joining the community. For anything else, please contact the organizers through the links below."

// Reply returns the canned response for the first matching keyword.
func (s *chatService) Reply(message string) string {
	lower := strings.ToLower(message)
	for _, canned := range cannedReplies {
		for _, kw := range canned.keywords {
			if strings.Contains(lower, kw) {
				return canned.reply
			}
		}
	}
	return fallbackReply
}
