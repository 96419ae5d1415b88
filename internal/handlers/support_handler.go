package handlers

import (
	"net/http"

	"empiria-profile/config"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

type SupportHandler struct {
	cfg *config.Config
}

func NewSupportHandler(cfg *config.Config) *SupportHandler {
	return &SupportHandler{cfg: cfg}
}

type faqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqs = []faqEntry{
	{
		Question: "How do I get my ticket after purchasing?",
		Answer:   "Your tickets appear instantly in your dashboard under 'My Schedule'. You'll also receive a confirmation email with your ticket details.",
	},
	{
		Question: "Can I transfer my ticket to someone else?",
		Answer:   "Ticket transfers are currently managed by the event organizer. Please contact the organizer directly or reach out to our support team.",
	},
	{
		Question: "What happens if an event is cancelled?",
		Answer:   "If an event is cancelled, you'll be notified by email and a refund will be processed automatically to your original payment method within 5-10 business days.",
	},
	{
		Question: "How do I update my profile information?",
		Answer:   "Visit your Profile Settings page from the top-right avatar menu. You can update your name and profile picture there.",
	},
	{
		Question: "Can I get a refund for my ticket?",
		Answer:   "Refund policies vary by event. Please check the event page for the organizer's refund policy, or contact our support team for assistance.",
	},
	{
		Question: "How do I change my password?",
		Answer:   "Go to Profile Settings and click 'Send Password Reset Email'. Note: If you signed in with Google, your password is managed by Google.",
	},
}

// GetSupport - Help page content: contact channels and FAQs
func (h *SupportHandler) GetSupport(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"contact": map[string]any{
			"email":     "support@empiriaindia.com",
			"live_chat": "Available Mon-Fri, 9am-6pm",
			"docs_url":  h.cfg.ShopURL + "/faq",
		},
		"faqs": faqs,
	})
}
