package model

// Employee may point at another employee as its supervisor.
// The link is a plain lookup: deleting or missing supervisors never cascade.
type Employee struct {
	BaseModel
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Address      string    `gorm:"type:varchar(255);not null" json:"address"`
	Age          int       `gorm:"not null" json:"age"`
	Salary       float64   `gorm:"not null" json:"salary"`
	Nss          int64     `gorm:"uniqueIndex;not null" json:"nss"`
	Department   string    `gorm:"type:varchar(100);not null;index" json:"department"`
	SupervisorID *uint     `gorm:"column:id_supervisor;index" json:"idSupervisor"`
	Supervisor   *Employee `gorm:"foreignKey:SupervisorID" json:"-"`
}

type EmployeeRequest struct {
	Name         string  `json:"name" validate:"required"`
	Address      string  `json:"address" validate:"required"`
	Age          int     `json:"age" validate:"gte=0"`
	Salary       float64 `json:"salary" validate:"gte=0"`
	Nss          int64   `json:"nss" validate:"required"`
	Department   string  `json:"department" validate:"required"`
	IDSupervisor *uint   `json:"idSupervisor"`
}

type EmployeeResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Age          int     `json:"age"`
	Salary       float64 `json:"salary"`
	Nss          int64   `json:"nss"`
	Department   string  `json:"department"`
	IDSupervisor *uint   `json:"idSupervisor"`
}

func (e *Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Address:      e.Address,
		Age:          e.Age,
		Salary:       e.Salary,
		Nss:          e.Nss,
		Department:   e.Department,
		IDSupervisor: e.SupervisorID,
	}
}

// Apply copies the request fields; the supervisor is resolved by the caller.
func (r *EmployeeRequest) Apply(e *Employee) {
	e.Name = r.Name
	e.Address = r.Address
	e.Age = r.Age
	e.Salary = r.Salary
	e.Nss = r.Nss
	e.Department = r.Department
}
