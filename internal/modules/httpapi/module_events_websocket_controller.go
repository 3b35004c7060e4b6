package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"facilityhub-server/internal/infra/async"
	"facilityhub-server/internal/infra/httpserver"
	modulesdomain "facilityhub-server/internal/modules/domain"
	"facilityhub-server/internal/modules/httpapi/internal"
	"facilityhub-server/internal/modules/usecases"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin validation is left to the fronting proxy.
		return true
	},
}

type ModuleEvent struct {
	Type      string    `json:"type"`
	ModuleID  string    `json:"module_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type ModuleEventsWebSocketController struct {
	broker     async.InternalBroker
	clients    map[*websocket.Conn]bool
	clientsMux sync.RWMutex
	broadcast  chan ModuleEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewModuleEventsWebSocketController(broker async.InternalBroker) *ModuleEventsWebSocketController {
	ctx, cancel := context.WithCancel(context.Background())

	wsc := &ModuleEventsWebSocketController{
		broker:     broker,
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan ModuleEvent, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
	}

	go wsc.run()

	return wsc
}

var _ httpserver.Controller = (*ModuleEventsWebSocketController)(nil)

func (wsc *ModuleEventsWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/module-events", wsc.handleWebSocket())
}

func (wsc *ModuleEventsWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		slog.Info("new websocket connection established", slog.String("remote_addr", r.RemoteAddr))

		wsc.register <- conn

		go wsc.handlePingPong(conn)
		go wsc.handleClient(conn)
	}
}

func (wsc *ModuleEventsWebSocketController) handleClient(conn *websocket.Conn) {
	defer func() {
		wsc.unregister <- conn
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			break
		}
	}
}

func (wsc *ModuleEventsWebSocketController) handlePingPong(conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (wsc *ModuleEventsWebSocketController) run() {
	subscription, err := wsc.broker.Subscribe(usecases.ModuleEventsTopic)
	if err != nil {
		slog.Error("failed to subscribe to module events", slog.String("error", err.Error()))
		return
	}
	defer wsc.broker.Unsubscribe(usecases.ModuleEventsTopic, subscription)

	for {
		select {
		case <-wsc.ctx.Done():
			return

		case client := <-wsc.register:
			wsc.clientsMux.Lock()
			wsc.clients[client] = true
			wsc.clientsMux.Unlock()
			slog.Info("websocket client registered", slog.Int("total_clients", len(wsc.clients)))

		case client := <-wsc.unregister:
			wsc.clientsMux.Lock()
			if _, ok := wsc.clients[client]; ok {
				delete(wsc.clients, client)
				close := func() {
					defer func() {
						if r := recover(); r != nil {
							slog.Warn("recovered from panic while closing websocket", slog.Any("panic", r))
						}
					}()
					client.Close()
				}
				close()
			}
			wsc.clientsMux.Unlock()
			slog.Info("websocket client unregistered", slog.Int("total_clients", len(wsc.clients)))

		case event := <-wsc.broadcast:
			wsc.clientsMux.RLock()
			for client := range wsc.clients {
				select {
				case <-wsc.ctx.Done():
					wsc.clientsMux.RUnlock()
					return
				default:
					client.SetWriteDeadline(time.Now().Add(10 * time.Second))
					if err := client.WriteJSON(event); err != nil {
						slog.Error("failed to write event to websocket client", slog.String("error", err.Error()))
						client.Close()
						delete(wsc.clients, client)
					}
				}
			}
			wsc.clientsMux.RUnlock()

		case brokerMsg := <-subscription.Receiver:
			event, ok := wsc.toModuleEvent(brokerMsg)
			if !ok {
				continue
			}

			select {
			case wsc.broadcast <- event:
			default:
				slog.Warn("broadcast channel full, dropping event")
			}
		}
	}
}

func (wsc *ModuleEventsWebSocketController) toModuleEvent(message async.BrokerMessage) (ModuleEvent, bool) {
	event := ModuleEvent{
		Type:      message.Event,
		Timestamp: time.Now(),
	}

	switch value := message.Value.(type) {
	case modulesdomain.ServiceModule:
		event.ModuleID = value.ID.String()
		event.Data = internal.ToServiceModuleResponse(value)
	case usecases.ReminderEvent:
		event.ModuleID = value.Module.ID.String()
		event.Data = map[string]any{
			"module":         internal.ToServiceModuleResponse(value.Module),
			"derived_status": string(value.DerivedStatus),
		}
	default:
		return ModuleEvent{}, false
	}

	return event, true
}

func (wsc *ModuleEventsWebSocketController) Shutdown() {
	slog.Info("shutting down module events websocket controller")
	wsc.cancel()

	wsc.clientsMux.Lock()
	for client := range wsc.clients {
		client.Close()
	}
	wsc.clientsMux.Unlock()

	close(wsc.broadcast)
	close(wsc.register)
	close(wsc.unregister)
}
