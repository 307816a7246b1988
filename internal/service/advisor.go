package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/boddenberg/startup-bot-go/internal/domain"
	"github.com/boddenberg/startup-bot-go/internal/format"
	"github.com/boddenberg/startup-bot-go/internal/infra/observability"
	"github.com/boddenberg/startup-bot-go/internal/infra/resilience"
	"github.com/boddenberg/startup-bot-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("service/advisor")

// User-facing advisor notices.
const (
	NoticeNotConfigured = "⚠️ AI feature not configured. Add ANTHROPIC_API_KEY to your environment."
	NoticeUnavailable   = "❌ AI service temporarily unavailable"
	noticeErrorPrefix   = "❌ Error: "
)

// AdvisorService relays a question to the AI provider and turns the
// outcome into replies. Every provider error ends here as user-visible text.
type AdvisorService struct {
	client  port.AdvisorCaller
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewAdvisorService creates the AdvisorService with the injected caller.
func NewAdvisorService(client port.AdvisorCaller, metrics *observability.Metrics, logger *zap.Logger) *AdvisorService {
	return &AdvisorService{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// Enabled reports whether questions can reach the provider.
func (s *AdvisorService) Enabled() bool {
	return s.client.Configured()
}

// Ask sends the question and returns the replies to post, in order:
//   - answer ≤ format.ChunkSize → one titled message
//   - longer answer → one untitled message per chunk
//   - missing credential → configuration notice (no request made)
//   - non-success status or open breaker → a single generic unavailability notice
//   - any other failure → an error notice with a short description
func (s *AdvisorService) Ask(ctx context.Context, question string) []domain.Reply {
	ctx, span := tracer.Start(ctx, "AdvisorService.Ask")
	defer span.End()

	answer, err := s.client.Ask(ctx, question)
	if err != nil {
		return []domain.Reply{domain.TextReply(s.notice(err))}
	}

	s.metrics.IncrAdvisorRequest("success")

	msgs := format.Answer(answer)
	replies := make([]domain.Reply, 0, len(msgs))
	for _, m := range msgs {
		replies = append(replies, domain.MessageReply(m))
	}

	s.logger.Debug("advisor answered",
		zap.Int("answer_length", len(answer)),
		zap.Int("chunks", len(replies)),
	)
	return replies
}

// notice maps an advisor error to the text shown to the user.
func (s *AdvisorService) notice(err error) string {
	var (
		notConfigured *domain.ErrNotConfigured
		status        *domain.ErrUpstreamStatus
		circuitOpen   *domain.ErrCircuitOpen
		external      *domain.ErrExternalService
	)

	switch {
	case errors.As(err, &notConfigured):
		s.metrics.IncrAdvisorRequest("unconfigured")
		s.logger.Warn("advisor not configured", zap.String("setting", notConfigured.Setting))
		return NoticeNotConfigured

	case errors.As(err, &status):
		s.metrics.IncrAdvisorRequest("upstream_error")
		s.logger.Error("advisor upstream error",
			zap.String("service", status.Service),
			zap.Int("status", status.Status),
		)
		return NoticeUnavailable

	case errors.As(err, &circuitOpen) || resilience.IsOpen(err):
		s.metrics.IncrAdvisorRequest("circuit_open")
		s.logger.Warn("advisor circuit open", zap.Error(err))
		return NoticeUnavailable

	case errors.As(err, &external):
		s.metrics.IncrAdvisorRequest("transport_error")
		s.logger.Error("advisor call failed", zap.String("service", external.Service), zap.Error(external.Err))
		return noticeErrorPrefix + cause(external.Err)

	default:
		s.metrics.IncrAdvisorRequest("transport_error")
		s.logger.Error("advisor call failed", zap.Error(err))
		return noticeErrorPrefix + cause(err)
	}
}

// cause drops the method and URL that net/http prefixes to transport errors.
func cause(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
