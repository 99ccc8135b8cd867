package models

import "strings"

// Group is a chat group the student belongs to.
type Group struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Members         int    `json:"members"`
	Unread          int    `json:"unread"`
	LastMessage     string `json:"lastMessage"`
	LastMessageTime string `json:"lastMessageTime"`
}

// Monogram is the two letter avatar of the group.
func (g Group) Monogram() string {
	name := []rune(g.Name)
	if len(name) > 2 {
		name = name[:2]
	}
	return strings.ToUpper(string(name))
}

// ChatMessage is a line in a group conversation.
type ChatMessage struct {
	ID     int    `json:"id"`
	Sender string `json:"sender"`
	Text   string `json:"message"`
	Time   string `json:"time"`
	IsOwn  bool   `json:"isOwn"`
}
