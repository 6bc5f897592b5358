package model

// User is the minimal person record served under /user.
type User struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null;index" json:"name"`
	Age  int    `gorm:"not null" json:"age"`
}

type UserRequest struct {
	Name string `json:"name" validate:"required"`
	Age  int    `json:"age" validate:"gte=0"`
}

type UserResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Age: u.Age}
}

func ToUserResponses(users []User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = users[i].ToResponse()
	}
	return responses
}
