// Package bot dispatches parsed commands to their handlers and delivers
// the resulting replies to the originating channel.
package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boddenberg/startup-bot-go/internal/command"
	"github.com/boddenberg/startup-bot-go/internal/domain"
	"github.com/boddenberg/startup-bot-go/internal/infra/observability"
	"github.com/boddenberg/startup-bot-go/internal/port"
	"github.com/boddenberg/startup-bot-go/internal/service"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("bot")

const internalErrorNotice = "❌ Error: internal error"

// Event is an inbound chat message.
type Event struct {
	ChannelID string
	AuthorID  string
	Content   string
}

// Dispatcher routes commands to handlers. It keeps no per-invocation
// state, so concurrent HandleEvent calls never interfere.
type Dispatcher struct {
	prefix  string
	content *service.ContentService
	advisor *service.AdvisorService
	sender  port.Sender
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewDispatcher creates the Dispatcher with the injected handlers and sender.
func NewDispatcher(
	prefix string,
	content *service.ContentService,
	advisor *service.AdvisorService,
	sender port.Sender,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		prefix:  prefix,
		content: content,
		advisor: advisor,
		sender:  sender,
		metrics: metrics,
		logger:  logger,
	}
}

// HandleEvent parses the message and, if it is a known command, sends its
// replies in order. Non-commands are ignored. Returns whether a command ran.
func (d *Dispatcher) HandleEvent(ctx context.Context, ev Event) bool {
	inv, ok := command.Parse(d.prefix, ev.Content)
	if !ok {
		return false
	}
	inv.ChannelID = ev.ChannelID
	inv.AuthorID = ev.AuthorID

	d.Run(ctx, inv)
	return true
}

// Run handles one invocation end to end. A panic inside a handler is
// logged and answered with a generic notice.
func (d *Dispatcher) Run(ctx context.Context, inv command.Invocation) {
	ctx, span := tracer.Start(ctx, "Dispatcher.Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("command", inv.Spec.Name),
		attribute.String("invocation.id", inv.ID),
	)

	start := time.Now()
	outcome := observability.OutcomeOK
	log := d.logger.With(
		zap.String("command", inv.Spec.Name),
		zap.String("invocation_id", inv.ID),
		zap.String("channel_id", inv.ChannelID),
	)

	defer func() {
		if r := recover(); r != nil {
			outcome = observability.OutcomeError
			log.Error("command panicked", zap.Any("panic", r))
			d.send(ctx, inv.ChannelID, []domain.Reply{domain.TextReply(internalErrorNotice)}, log)
		}
		d.metrics.RecordCommand(inv.Spec.Name, outcome, time.Since(start))
		log.Info("command handled", zap.String("outcome", outcome), zap.Duration("duration", time.Since(start)))
	}()

	if inv.Command() == command.Ask && inv.Arg != "" && d.advisor.Enabled() {
		if err := d.sender.Typing(ctx, inv.ChannelID); err != nil {
			log.Debug("typing indicator failed", zap.Error(err))
		}
	}

	replies, err := d.Handle(ctx, inv)
	if err != nil {
		var text string
		text, outcome = d.errorText(inv, err)
		log.Info("command rejected", zap.Error(err))
		replies = []domain.Reply{domain.TextReply(text)}
	}

	d.send(ctx, inv.ChannelID, replies, log)
}

// Handle invokes the handler for the invocation and returns its replies.
// Validation failures come back as errors; nothing is sent.
func (d *Dispatcher) Handle(ctx context.Context, inv command.Invocation) ([]domain.Reply, error) {
	arg := inv.ArgOrDefault()
	if inv.Spec.ArgRequired && arg == "" {
		return nil, &domain.ErrValidation{Field: inv.Spec.Name, Message: "argument is required"}
	}

	switch inv.Command() {
	case command.Tip:
		return single(d.content.Tip(arg))
	case command.Resources:
		return message(d.content.Resources()), nil
	case command.Investors:
		return single(d.content.Investors(arg))
	case command.Ask:
		return d.advisor.Ask(ctx, arg), nil
	case command.Pitch:
		return message(d.content.Pitch()), nil
	case command.Metrics:
		return message(d.content.Metrics()), nil
	case command.Help:
		return message(d.content.Help()), nil
	default:
		return nil, fmt.Errorf("no handler for command %q", inv.Spec.Name)
	}
}

// errorText maps a handler error to a short corrective reply and outcome.
func (d *Dispatcher) errorText(inv command.Invocation, err error) (string, string) {
	var (
		notFound   *domain.ErrNotFound
		validation *domain.ErrValidation
	)
	switch {
	case errors.As(err, &notFound):
		return notFound.Error(), observability.OutcomeInvalid
	case errors.As(err, &validation):
		return "❌ Usage: " + inv.Spec.Syntax(d.prefix), observability.OutcomeInvalid
	default:
		return internalErrorNotice, observability.OutcomeError
	}
}

func (d *Dispatcher) send(ctx context.Context, channelID string, replies []domain.Reply, log *zap.Logger) {
	for _, r := range replies {
		var err error
		kind := "message"
		if r.IsText() {
			kind = "text"
			err = d.sender.SendText(ctx, channelID, r.Text)
		} else {
			err = d.sender.SendMessage(ctx, channelID, r.Message)
		}
		if err != nil {
			log.Error("send reply failed", zap.String("kind", kind), zap.Error(err))
			continue
		}
		d.metrics.IncrReply(kind)
	}
}

func single(msg *domain.Message, err error) ([]domain.Reply, error) {
	if err != nil {
		return nil, err
	}
	return message(msg), nil
}

func message(msg *domain.Message) []domain.Reply {
	return []domain.Reply{domain.MessageReply(msg)}
}
