// Package changefeed зеркалирует изменения хранилища инцидентов в Kafka
package changefeed

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/shenikar/geo_incident_sync/internal/store"
	"github.com/sirupsen/logrus"
)

const writeTimeout = 10 * time.Second

// MessageWriter - часть kafka.Writer, нужная издателю
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Event - одно сообщение ленты; Incident пуст для удаленных записей
type Event struct {
	Op         store.Op         `json:"op"`
	IncidentID int64            `json:"incident_id"`
	Incident   *models.Incident `json:"incident,omitempty"`
	At         time.Time        `json:"at"`
}

// NewWriter создает writer для топика ленты
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
}

// Publisher отправляет изменения асинхронно. Publish не блокирует: при заполненном
// буфере изменение отбрасывается с предупреждением.
type Publisher struct {
	writer MessageWriter
	logger *logrus.Entry
	queue  chan store.Change

	mu     sync.Mutex
	closed bool
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPublisher(writer MessageWriter, bufferSize int, logger *logrus.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger.WithField("component", "changefeed"),
		queue:  make(chan store.Change, bufferSize),
		done:   make(chan struct{}),
	}
}

// Publish подходит как store.Listener
func (p *Publisher) Publish(change store.Change) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	select {
	case p.queue <- change:
	default:
		p.logger.WithField("op", change.Op).Warn("Change feed buffer is full, dropping change")
	}
}

func (p *Publisher) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()

	go func() {
		defer close(p.done)
		for {
			select {
			case <-ctx.Done():
				return
			case change, ok := <-p.queue:
				if !ok {
					return
				}
				p.write(ctx, change)
			}
		}
	}()
}

// Close дописывает очередь и закрывает writer
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	started := p.cancel != nil
	p.mu.Unlock()

	if started {
		<-p.done
		p.cancel()
	}
	return p.writer.Close()
}

func (p *Publisher) write(ctx context.Context, change store.Change) {
	msgs := Messages(change, time.Now())
	if len(msgs) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.logger.WithError(err).WithFields(logrus.Fields{
			"op":       change.Op,
			"messages": len(msgs),
		}).Error("Failed to write change feed messages")
	}
}

// Messages раскладывает изменение на сообщения по инцидентам с ключом id.
// Локальные провизорные записи в ленту не попадают.
func Messages(change store.Change, at time.Time) []kafka.Message {
	if change.Op == store.OpProvision {
		return nil
	}
	records := make(map[int64]models.Incident, len(change.Records))
	for _, r := range change.Records {
		records[r.ID] = r
	}

	msgs := make([]kafka.Message, 0, len(change.IDs))
	for _, id := range change.IDs {
		if id < 0 {
			continue
		}
		event := Event{Op: change.Op, IncidentID: id, At: at}
		if r, ok := records[id]; ok {
			event.Incident = &r
		}
		value, err := json.Marshal(event)
		if err != nil {
			continue
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(strconv.FormatInt(id, 10)),
			Value: value,
		})
	}
	return msgs
}
