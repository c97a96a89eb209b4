package models

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotifComment NotificationType = "COMMENT"
	NotifReply   NotificationType = "REPLY"
	NotifVote    NotificationType = "VOTE"
	NotifMention NotificationType = "MENTION"
	NotifMessage NotificationType = "MESSAGE"
	NotifSystem  NotificationType = "SYSTEM"
)

// Notification belongs to the receiving user. Data is an opaque JSON payload
// the client uses for deep-linking (post id, message id, ...).
type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string           `json:"userId" gorm:"column:user_id;type:uuid;index"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Data      string           `json:"data" gorm:"type:jsonb;default:'{}'"`
	IsRead    bool             `json:"isRead" gorm:"column:is_read;default:false"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NotificationData builds the jsonb payload from key/value pairs, dropping
// empty values so the payload stays minimal.
func NotificationData(kv map[string]string) string {
	payload := make(map[string]string, len(kv))
	for k, v := range kv {
		if v != "" {
			payload[k] = v
		}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func (Notification) TableName() string {
	return "notifications"
}
