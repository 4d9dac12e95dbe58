package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sales_bot/internal/sales"
)

// Messenger delivers outbound replies on the messaging channel.
type Messenger interface {
	SendText(ctx context.Context, to, body string) error
}

// Responder answers free-form text that matched no command.
type Responder interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// webhookHandler holds the sales service and the channel collaborators, and
// implements the Meta webhook endpoints.
type webhookHandler struct {
	salesService *sales.Service
	messenger    Messenger
	responder    Responder
	verifyToken  string
	logger       *zap.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(salesService *sales.Service, messenger Messenger, responder Responder, verifyToken string, logger *zap.Logger) *webhookHandler {
	return &webhookHandler{
		salesService: salesService,
		messenger:    messenger,
		responder:    responder,
		verifyToken:  verifyToken,
		logger:       logger,
	}
}

// handleVerify answers the Meta webhook subscription handshake.
func (h *webhookHandler) handleVerify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		c.String(http.StatusOK, challenge)
		return
	}
	c.Status(http.StatusForbidden)
}

type webhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From string `json:"from"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// handleEvent receives inbound message batches. The 200 acknowledgment is
// flushed to the wire before any processing starts, so every failure past
// this point is terminal for that message: logged, never retried, never
// re-acknowledged.
func (h *webhookHandler) handleEvent(c *gin.Context) {
	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("failed to bind webhook payload", zap.Error(err))
		c.Status(http.StatusOK)
		return
	}
	c.Status(http.StatusOK)
	c.Writer.Flush()

	log := h.logger.With(zap.String("event_id", uuid.NewString()))
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Text.Body == "" {
					continue
				}
				h.dispatch(c.Request.Context(), log, msg.From, msg.Text.Body)
			}
		}
	}
}

// dispatch routes one message: core command handling first, the AI responder
// for everything else. Reply delivery is fire-and-forget.
func (h *webhookHandler) dispatch(ctx context.Context, log *zap.Logger, from, body string) {
	reply, handled := h.salesService.HandleText(from, body)
	if !handled {
		answer, err := h.responder.Ask(ctx, body)
		if err != nil {
			log.Error("ai responder failed", zap.String("from", from), zap.Error(err))
			return
		}
		reply = answer
	}
	if reply == "" {
		return
	}
	if err := h.messenger.SendText(ctx, from, sales.Truncate(reply)); err != nil {
		log.Error("failed to send reply", zap.String("to", from), zap.Error(err))
	}
}
