package model

import "github.com/google/uuid"

type Pet struct {
	BaseModel
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Species      string    `gorm:"type:varchar(100);not null" json:"species"`
	Breed        string    `gorm:"type:varchar(100);not null" json:"breed"`
	OwnerAddress string    `gorm:"type:varchar(255)" json:"owner_address"`
	ClientID     uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Client       *Client   `json:"client,omitempty"`
}
