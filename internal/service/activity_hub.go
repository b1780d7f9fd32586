package service

import (
	"context"
	"encoding/json"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	feedShardCount = 16

	// sendBufferSize bounds the per-client queue. A client that cannot drain
	// it in time is disconnected rather than blocking the fan-out.
	sendBufferSize = 64

	activityChannel = "activity_channel"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type FeedMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type feedPubSubMessage struct {
	TargetUsers []uint          `json:"targetUsers"`
	Payload     json.RawMessage `json:"payload"`
}

type FeedClient struct {
	Hub    *ActivityHub
	Conn   *websocket.Conn
	Send   chan []byte
	UserID uint
}

func (c *FeedClient) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		// The feed is push-only; reads exist to observe close frames and pongs.
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Error("Feed websocket unexpected close", zap.Error(err), zap.Uint("userId", c.UserID))
			}
			break
		}
	}
}

func (c *FeedClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if n := len(c.Send); n > 0 {
				for i := 0; i < n; i++ {
					w.Write(<-c.Send)
				}
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

type feedShard struct {
	clients map[uint]*FeedClient
	mu      sync.RWMutex
}

// ActivityHub pushes newly inserted activity rows to subscribed clients.
// Fan-out across instances goes through a redis pub/sub channel.
type ActivityHub struct {
	shards     [feedShardCount]*feedShard
	register   chan *FeedClient
	unregister chan *FeedClient
	Redis      *redis.Client
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewActivityHub(rdb *redis.Client) *ActivityHub {
	ctx, cancel := context.WithCancel(context.Background())
	h := &ActivityHub{
		register:   make(chan *FeedClient),
		unregister: make(chan *FeedClient),
		Redis:      rdb,
		ctx:        ctx,
		cancel:     cancel,
	}
	for i := 0; i < feedShardCount; i++ {
		h.shards[i] = &feedShard{
			clients: make(map[uint]*FeedClient),
		}
	}
	return h
}

func (h *ActivityHub) getShard(userID uint) *feedShard {
	return h.shards[userID%feedShardCount]
}

func (h *ActivityHub) Run() {
	pubsub := h.Redis.Subscribe(h.ctx, activityChannel)
	go func() {
		ch := pubsub.Channel()
		for msg := range ch {
			var psMsg feedPubSubMessage
			if err := json.Unmarshal([]byte(msg.Payload), &psMsg); err != nil {
				logger.Log.Error("Feed pubsub unmarshal error", zap.Error(err))
				continue
			}
			h.pushToLocal(psMsg.TargetUsers, psMsg.Payload)
		}
	}()

	for {
		select {
		case client := <-h.register:
			s := h.getShard(client.UserID)
			s.mu.Lock()
			if old, ok := s.clients[client.UserID]; ok {
				close(old.Send)
			} else {
				monitoring.FeedOnlineUsers.Inc()
			}
			s.clients[client.UserID] = client
			s.mu.Unlock()

		case client := <-h.unregister:
			s := h.getShard(client.UserID)
			s.mu.Lock()
			if current, ok := s.clients[client.UserID]; ok && current == client {
				delete(s.clients, client.UserID)
				close(client.Send)
				monitoring.FeedOnlineUsers.Dec()
			}
			s.mu.Unlock()

		case <-h.ctx.Done():
			pubsub.Close()
			return
		}
	}
}

// Stop closes every connection and shuts the pubsub loop down.
func (h *ActivityHub) Stop() {
	logger.Log.Info("ActivityHub stopping: closing connections...")

	closed := 0
	for i := 0; i < feedShardCount; i++ {
		s := h.shards[i]
		s.mu.Lock()
		for userID, client := range s.clients {
			close(client.Send)
			delete(s.clients, userID)
			closed++
		}
		s.mu.Unlock()
	}
	h.cancel()

	monitoring.FeedOnlineUsers.Set(0)
	logger.Log.Info("ActivityHub stopped", zap.Int("closedConnections", closed))
}

// PublishActivity fans an activity row out to its owner via redis, so every
// instance holding that user's connection delivers it.
func (h *ActivityHub) PublishActivity(activity *model.UserActivity) {
	msg := FeedMessage{Type: "ACTIVITY", Data: activity}
	msgBytes, _ := json.Marshal(msg)
	psMsg := feedPubSubMessage{
		TargetUsers: []uint{activity.UserID},
		Payload:     msgBytes,
	}
	payload, _ := json.Marshal(psMsg)
	if err := h.Redis.Publish(h.ctx, activityChannel, payload).Err(); err != nil {
		logger.Log.Error("Feed publish error", zap.Error(err))
		return
	}
	monitoring.FeedEventCounter.WithLabelValues(string(activity.ActivityType), "out").Inc()
}

func (h *ActivityHub) pushToLocal(userIDs []uint, payload []byte) {
	for _, userID := range userIDs {
		s := h.getShard(userID)
		s.mu.RLock()
		client, ok := s.clients[userID]
		s.mu.RUnlock()
		if !ok {
			continue
		}

		select {
		case client.Send <- payload:
			monitoring.FeedEventCounter.WithLabelValues("ACTIVITY", "in").Inc()
		default:
			// Buffer full: the consumer is too slow, drop the connection
			// instead of stalling delivery for everyone else.
			go func(c *FeedClient) { h.unregister <- c }(client)
		}
	}
}

// ServeWS upgrades the request and attaches the client to the hub.
func (h *ActivityHub) ServeWS(c *gin.Context, userID uint) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Error("Feed websocket upgrade failed", zap.Error(err))
		return
	}

	client := &FeedClient{
		Hub:    h,
		Conn:   conn,
		Send:   make(chan []byte, sendBufferSize),
		UserID: userID,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}
