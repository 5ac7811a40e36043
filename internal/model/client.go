package model

type Client struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Address string `gorm:"type:varchar(255);not null" json:"address"`
	CPF     string `gorm:"type:varchar(14);uniqueIndex;not null" json:"cpf"`
	Phone   string `gorm:"type:varchar(20);not null" json:"phone"`

	Pets []Pet `json:"pets,omitempty"`
}
