package ingest

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inbox-workload/internal/model"
	"inbox-workload/internal/workload"
	pkgResponse "inbox-workload/pkg/response"
)

// inboundMessage is the gateway's push payload.
type inboundMessage struct {
	ID         string    `json:"id"`
	Sender     string    `json:"sender"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	ReceivedAt time.Time `json:"received_at"`
}

// HandleInboundMessage processes one pushed message. The signature covers
// the raw body, so the body is read before binding.
func (h *Handler) HandleInboundMessage(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read ingest body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	signature := c.GetHeader("X-Inbox-Signature")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Ingest signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Ingest IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var msg inboundMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.l.Errorf(ctx, "Failed to parse ingest payload: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.CheckRateLimit(msg.Sender); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	output, err := h.workloadUC.Analyze(ctx, workload.AnalyzeInput{
		Message: model.Message{
			ID:         msg.ID,
			Sender:     msg.Sender,
			Subject:    msg.Subject,
			Body:       msg.Body,
			ReceivedAt: msg.ReceivedAt,
		},
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	h.l.Infof(ctx, "Ingested message %s from %s: %d task(s)", msg.ID, msg.Sender, len(output.Tasks))
	pkgResponse.OK(c, gin.H{
		"status":     "processed",
		"message_id": msg.ID,
		"task_count": len(output.Tasks),
		"overflow":   output.Snapshot.Overflow,
	})
}
