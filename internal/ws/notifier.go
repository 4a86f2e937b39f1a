package ws

import (
	"encoding/json"

	"go-stock-admin/internal/model"
)

// Notifier renders toast notifications and broadcasts them through the hub.
// It is the notification sink the edit controller reports into.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) Notify(level model.NoticeLevel, message string) {
	payload := map[string]interface{}{
		"type":    "toast",
		"level":   level,
		"style":   level.StyleClass(),
		"message": message,
	}
	msg, _ := json.Marshal(payload)
	go func() {
		n.hub.Broadcast <- msg
	}()
}
