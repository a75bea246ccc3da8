// Package connection управляет жизненным циклом дуплексного канала к сервису инцидентов.
package connection

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = 10 * time.Second

// FrameHandler получает входящие кадры строго в порядке поступления
type FrameHandler func(ctx context.Context, frame []byte)

// StateListener вызывается после каждого перехода состояния
type StateListener func(State)

// Channel - открытый канал, доступный для исходящих кадров
type Channel interface {
	WriteJSON(v any) error
}

type Manager struct {
	url     string
	dialer  *websocket.Dialer
	clk     clock.Clock
	delay   time.Duration
	handler FrameHandler
	logger  *logrus.Entry

	mu        sync.Mutex
	state     State
	conn      *websocket.Conn
	timer     *clock.Timer
	shutdown  bool
	ctx       context.Context
	cancel    context.CancelFunc
	listeners []StateListener

	writeMu sync.Mutex
	wg      sync.WaitGroup
}

func NewManager(url string, clk clock.Clock, reconnectDelay time.Duration, handler FrameHandler, logger *logrus.Logger) *Manager {
	return &Manager{
		url: url,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: 10 * time.Second,
		},
		clk:     clk,
		delay:   reconnectDelay,
		handler: handler,
		logger:  logger.WithField("component", "connection"),
		state:   StateClosed,
	}
}

// OnStateChange регистрирует слушателя состояния; вызывать до Start
func (m *Manager) OnStateChange(l StateListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start выполняет первое подключение. При неудаче переподключение уже запланировано, ошибка не возвращается.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	m.ctx, m.cancel = context.WithCancel(ctx)
	m.mu.Unlock()

	m.connect()
}

// ActiveChannel - единственная точка доступа к открытому каналу
func (m *Manager) ActiveChannel() (Channel, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateOpen || m.conn == nil {
		return nil, false
	}
	return &channel{m: m, conn: m.conn}, true
}

// Close отменяет отложенное переподключение и закрывает канал
func (m *Manager) Close() {
	m.mu.Lock()
	if m.shutdown {
		m.mu.Unlock()
		return
	}
	m.shutdown = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	conn := m.conn
	cancel := m.cancel
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		m.writeMu.Lock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		m.writeMu.Unlock()
		_ = conn.Close()
	}
	m.wg.Wait()
	m.logger.Info("Connection manager stopped")
}

func (m *Manager) connect() {
	m.mu.Lock()
	if m.shutdown {
		m.mu.Unlock()
		return
	}
	if !m.transitionLocked(StateConnecting) {
		m.mu.Unlock()
		return
	}
	ctx := m.ctx
	m.mu.Unlock()
	m.emit(StateConnecting)

	log := m.logger.WithField("url", m.url)
	conn, _, err := m.dialer.DialContext(ctx, m.url, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to open channel")
		m.mu.Lock()
		m.transitionLocked(StateClosed)
		m.scheduleReconnectLocked()
		m.mu.Unlock()
		m.emit(StateClosed)
		return
	}

	m.mu.Lock()
	if m.shutdown {
		m.mu.Unlock()
		_ = conn.Close()
		return
	}
	m.conn = conn
	m.transitionLocked(StateOpen)
	m.wg.Add(1)
	m.mu.Unlock()

	log.Info("Channel opened")
	m.emit(StateOpen)

	go m.readLoop(ctx, conn)
}

func (m *Manager) readLoop(ctx context.Context, conn *websocket.Conn) {
	defer m.wg.Done()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			// ошибка чтения только логируется, переподключение планирует обработчик закрытия
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				m.logger.WithError(err).Info("Channel closed by server")
			} else {
				m.logger.WithError(err).Warn("Channel read failed")
			}
			m.handleClose(conn)
			return
		}
		if m.handler != nil {
			m.handler(ctx, data)
		}
	}
}

func (m *Manager) handleClose(conn *websocket.Conn) {
	m.mu.Lock()
	if m.conn != conn {
		m.mu.Unlock()
		return
	}
	m.conn = nil
	_ = conn.Close()
	m.transitionLocked(StateClosed)
	if !m.shutdown {
		m.scheduleReconnectLocked()
	}
	m.mu.Unlock()

	m.emit(StateClosed)
}

// scheduleReconnectLocked заводит ровно один отложенный вызов connect
func (m *Manager) scheduleReconnectLocked() {
	if m.shutdown {
		return
	}
	if m.timer != nil {
		m.timer.Stop()
	}
	m.logger.WithField("delay", m.delay.String()).Info("Reconnect scheduled")
	m.timer = m.clk.AfterFunc(m.delay, func() {
		m.mu.Lock()
		m.timer = nil
		m.mu.Unlock()
		m.connect()
	})
}

func (m *Manager) transitionLocked(to State) bool {
	if !canTransition(m.state, to) {
		m.logger.WithFields(logrus.Fields{"from": m.state, "to": to}).Debug("Ignoring invalid state transition")
		return false
	}
	m.state = to
	return true
}

func (m *Manager) emit(s State) {
	m.mu.Lock()
	listeners := m.listeners
	m.mu.Unlock()
	for _, l := range listeners {
		l(s)
	}
}

type channel struct {
	m    *Manager
	conn *websocket.Conn
}

func (c *channel) WriteJSON(v any) error {
	c.m.writeMu.Lock()
	defer c.m.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("connection: set write deadline: %w", err)
	}
	if err := c.conn.WriteJSON(v); err != nil {
		return fmt.Errorf("connection: write frame: %w", err)
	}
	return nil
}
