package model

// Client is a buyer. Email is unique.
type Client struct {
	BaseModel
	Name       string            `gorm:"type:varchar(255);not null" json:"name"`
	Surname    string            `gorm:"type:varchar(255);not null" json:"surname"`
	Email      string            `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone      string            `gorm:"type:varchar(30);not null" json:"phone"`
	Address    string            `gorm:"type:varchar(255);not null" json:"address"`
	PayMethods []ClientPayMethod `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
}

// ClientPayMethod stores one payment method identifier of a client.
type ClientPayMethod struct {
	ID          uint  `gorm:"primaryKey;autoIncrement" json:"-"`
	ClientID    uint  `gorm:"not null;index" json:"-"`
	PayMethodID int64 `gorm:"not null" json:"pay_method_id"`
}

func (ClientPayMethod) TableName() string {
	return "pay_methods"
}

type ClientRequest struct {
	Name       string  `json:"name" validate:"required"`
	Surname    string  `json:"surname" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      string  `json:"phone" validate:"required"`
	Address    string  `json:"address" validate:"required"`
	PayMethods []int64 `json:"payMethods"`
}

type ClientResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	PayMethods []int64 `json:"payMethods"`
}

// PayMethodIDs flattens the payment method rows into their identifiers.
func (c *Client) PayMethodIDs() []int64 {
	ids := make([]int64, len(c.PayMethods))
	for i, pm := range c.PayMethods {
		ids[i] = pm.PayMethodID
	}
	return ids
}

func (c *Client) ToResponse() ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Surname:    c.Surname,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		PayMethods: c.PayMethodIDs(),
	}
}

func (r *ClientRequest) Apply(c *Client) {
	c.Name = r.Name
	c.Surname = r.Surname
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	c.PayMethods = make([]ClientPayMethod, len(r.PayMethods))
	for i, id := range r.PayMethods {
		c.PayMethods[i] = ClientPayMethod{PayMethodID: id}
	}
}
