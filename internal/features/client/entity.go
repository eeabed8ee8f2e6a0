package client

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ClientID  uuid.UUID `json:"client_id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}
