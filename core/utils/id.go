package utils

import (
	"strings"

	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	alphanumeric      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	upperAlphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	TicketIDLength    = 8
)

func GenerateID() string {
	id, err := gonanoid.Generate(alphanumeric, 12)
	if err != nil {
		return ""
	}
	return id
}

// GenerateTicketID returns an upper-case code printed on tickets, e.g. "K3Z9Q1WX".
func GenerateTicketID() string {
	id, err := gonanoid.Generate(upperAlphanumeric, TicketIDLength)
	if err != nil {
		return strings.ToUpper(GenerateID()[:TicketIDLength])
	}
	return id
}

// Slug turns a display value into a URL-safe key ("Wheelchair accessible" -> "wheelchair-accessible").
func Slug(value string) string {
	return slug.Make(value)
}
