package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Channel, bir sunucuya ait kanalı temsil eder.
// DB'deki "channels" tablosunun Go karşılığı.
type Channel struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	OwnerID  int64  `json:"owner"`
	Topic    string `json:"topic"`
	ServerID int64  `json:"server"`
}

// Normalize, kanal adını yazma öncesi küçük harfe çevirir ve alanları doğrular.
// Kanal adları her zaman küçük harf saklanır.
func (c *Channel) Normalize() error {
	c.Name = strings.ToLower(strings.TrimSpace(c.Name))
	nameLen := utf8.RuneCountInString(c.Name)
	if nameLen < 1 || nameLen > 100 {
		return fmt.Errorf("channel name must be between 1 and 100 characters")
	}

	c.Topic = strings.TrimSpace(c.Topic)
	if utf8.RuneCountInString(c.Topic) > 100 {
		return fmt.Errorf("channel topic must be at most 100 characters")
	}

	if c.ServerID == 0 {
		return fmt.Errorf("channel server is required")
	}
	if c.OwnerID == 0 {
		return fmt.Errorf("channel owner is required")
	}
	return nil
}
