package service

import (
	"context"
	"encoding/json"
	"errors"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/alhafizh-api/internal/dto"
	"github.com/noah-isme/alhafizh-api/internal/models"
	"github.com/noah-isme/alhafizh-api/internal/observability"
)

const notificationBufferSize = 16

// DefaultNotificationTTL is how long a notification stays active when no TTL is configured.
const DefaultNotificationTTL = 5 * time.Second

var (
	// ErrNotificationNotFound indicates the notification already expired or never existed.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrNotificationEmpty indicates the message was blank after sanitization.
	ErrNotificationEmpty = errors.New("notification message empty after sanitization")
)

// NotificationService keeps transient notifications and streams them to subscribers.
type NotificationService interface {
	Push(ctx context.Context, message string, isError bool) (dto.NotificationResponse, error)
	List(ctx context.Context) []dto.NotificationResponse
	Dismiss(ctx context.Context, id string) error
	Subscribe() (<-chan dto.NotificationResponse, func())
	Start(ctx context.Context)
	Close()
}

// NotificationConfig wires the optional broker mirrors.
type NotificationConfig struct {
	TTL     time.Duration
	Channel string
	Redis   *redis.Client
	NATS    *nats.Conn
}

type notificationService struct {
	ttl         time.Duration
	redis       *redis.Client
	redisStream string
	nats        *nats.Conn
	natsSubject string
	logger      zerolog.Logger
	sanitizer   *bluemonday.Policy
	broker      *notificationBroker
	nodeID      string
	now         func() time.Time

	mu     sync.Mutex
	active map[string]*activeNotification
	order  []string
}

type activeNotification struct {
	response dto.NotificationResponse
	timer    *time.Timer
}

type notificationEvent struct {
	Source       string                   `json:"source"`
	Notification dto.NotificationResponse `json:"notification"`
	SentAt       time.Time                `json:"sent_at"`
}

type notificationBroker struct {
	mu          sync.RWMutex
	subscribers map[chan dto.NotificationResponse]struct{}
}

// NewNotificationService constructs a notification service.
func NewNotificationService(cfg NotificationConfig, logger zerolog.Logger) NotificationService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}

	stream := ""
	subject := ""
	if cfg.Channel != "" {
		stream = cfg.Channel
		subject = strings.ReplaceAll(cfg.Channel, ":", ".")
	}

	return &notificationService{
		ttl:         ttl,
		redis:       cfg.Redis,
		redisStream: stream,
		nats:        cfg.NATS,
		natsSubject: subject,
		logger:      logger.With().Str("component", "notification_service").Logger(),
		sanitizer:   bluemonday.StrictPolicy(),
		broker: &notificationBroker{
			subscribers: make(map[chan dto.NotificationResponse]struct{}),
		},
		nodeID: uuid.NewString(),
		now:    time.Now,
		active: make(map[string]*activeNotification),
	}
}

func (s *notificationService) Start(ctx context.Context) {
	if s.redis != nil && s.redisStream != "" {
		go s.consumeRedis(ctx)
	}
	if s.nats != nil && s.natsSubject != "" {
		go s.consumeNATS(ctx)
	}
}

func (s *notificationService) Push(ctx context.Context, message string, isError bool) (dto.NotificationResponse, error) {
	clean := strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(message)))
	if clean == "" {
		return dto.NotificationResponse{}, ErrNotificationEmpty
	}

	createdAt := s.now().UTC()
	response := dto.NewNotificationResponse(models.Notification{
		ID:        uuid.NewString(),
		Message:   clean,
		IsError:   isError,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(s.ttl),
	})

	s.track(response, s.ttl)
	s.broker.broadcast(response)
	if err := s.publish(ctx, response); err != nil {
		s.logger.Warn().Err(err).Msg("failed to publish notification to broker")
	}

	observability.NotificationsPublishedTotal().WithLabelValues(notificationKind(response)).Inc()

	return response, nil
}

func (s *notificationService) List(_ context.Context) []dto.NotificationResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]dto.NotificationResponse, 0, len(s.order))
	for _, id := range s.order {
		if entry, ok := s.active[id]; ok {
			out = append(out, entry.response)
		}
	}
	return out
}

func (s *notificationService) Dismiss(_ context.Context, id string) error {
	if !s.remove(id) {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) Subscribe() (<-chan dto.NotificationResponse, func()) {
	channel := make(chan dto.NotificationResponse, notificationBufferSize)
	s.broker.subscribe(channel)

	var once sync.Once
	cleanup := func() {
		once.Do(func() { s.broker.unsubscribe(channel) })
	}

	return channel, cleanup
}

// Close stops every pending removal timer.
func (s *notificationService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.active {
		entry.timer.Stop()
		delete(s.active, id)
	}
	s.order = nil
}

// track registers the notification and schedules its removal after ttl.
func (s *notificationService) track(response dto.NotificationResponse, ttl time.Duration) {
	id := response.ID

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.active[id]; ok {
		existing.timer.Stop()
	} else {
		s.order = append(s.order, id)
	}

	s.active[id] = &activeNotification{
		response: response,
		timer:    time.AfterFunc(ttl, func() { s.remove(id) }),
	}
}

func (s *notificationService) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.active[id]
	if !ok {
		return false
	}

	entry.timer.Stop()
	delete(s.active, id)
	for i, candidate := range s.order {
		if candidate == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *notificationService) publish(ctx context.Context, notification dto.NotificationResponse) error {
	if (s.redis == nil || s.redisStream == "") && (s.nats == nil || s.natsSubject == "") {
		return nil
	}

	event := notificationEvent{
		Source:       s.nodeID,
		Notification: notification,
		SentAt:       s.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if s.redis != nil && s.redisStream != "" {
		if err := s.redis.Publish(ctx, s.redisStream, payload).Err(); err != nil {
			return err
		}
	}

	if s.nats != nil && s.natsSubject != "" {
		if err := s.nats.Publish(s.natsSubject, payload); err != nil {
			return err
		}
	}

	return nil
}

func (s *notificationService) consumeRedis(ctx context.Context) {
	pubsub := s.redis.Subscribe(ctx, s.redisStream)
	defer func() { _ = pubsub.Close() }()

	for {
		msg, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			s.logger.Error().Err(err).Msg("notification redis subscription closed")
			return
		}
		s.handleEvent([]byte(msg.Payload))
	}
}

func (s *notificationService) consumeNATS(ctx context.Context) {
	sub, err := s.nats.Subscribe(s.natsSubject, func(msg *nats.Msg) {
		s.handleEvent(msg.Data)
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to subscribe to nats notifications subject")
		return
	}

	go func() {
		<-ctx.Done()
		if err := sub.Drain(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to drain notification nats subscription")
		}
	}()
}

// handleEvent applies a notification pushed by another node.
func (s *notificationService) handleEvent(payload []byte) {
	var event notificationEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		s.logger.Warn().Err(err).Msg("invalid notification event payload")
		return
	}

	if event.Source == s.nodeID || event.Notification.ID == "" {
		return
	}

	notification := event.Notification
	remaining := notification.ExpiresAt.Sub(s.now())
	if remaining <= 0 {
		return
	}

	s.track(notification, remaining)
	observability.NotificationsPublishedTotal().WithLabelValues(notificationKind(notification)).Inc()
	s.broker.broadcast(notification)
}

func notificationKind(notification dto.NotificationResponse) string {
	if notification.IsError {
		return "error"
	}
	return "info"
}

func (b *notificationBroker) subscribe(ch chan dto.NotificationResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[ch] = struct{}{}
}

func (b *notificationBroker) unsubscribe(ch chan dto.NotificationResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

func (b *notificationBroker) broadcast(notification dto.NotificationResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers {
		select {
		case ch <- notification:
		default:
		}
	}
}
