package employee

import (
	"time"

	"crud/inner/department"
)

// Entity строка employee вместе с названием отдела из department
type Entity struct {
	Id             int64     `db:"id"`
	Name           string    `db:"name"`
	Gender         *string   `db:"gender"`
	Email          *string   `db:"email"`
	DepartmentId   *int64    `db:"department_id"`
	DepartmentName *string   `db:"department_name"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (e *Entity) toResponse() Response {
	response := Response{
		EmpId:   e.Id,
		EmpName: e.Name,
		Gender:  e.Gender,
		Email:   e.Email,
		DId:     e.DepartmentId,
	}
	if e.DepartmentId != nil && e.DepartmentName != nil {
		response.Department = &department.Response{
			DeptId:   *e.DepartmentId,
			DeptName: *e.DepartmentName,
		}
	}
	return response
}

type Response struct {
	EmpId      int64                `json:"empId"`
	EmpName    string               `json:"empName"`
	Gender     *string              `json:"gender"`
	Email      *string              `json:"email"`
	DId        *int64               `json:"dId"`
	Department *department.Response `json:"department,omitempty"`
} // @name Employee

// CreateRequest поля нового сотрудника, принимаются из формы или JSON
type CreateRequest struct {
	EmpName string  `json:"empName" form:"empName" validate:"required,empname"`
	Email   string  `json:"email" form:"email" validate:"omitempty,email"`
	Gender  *string `json:"gender" form:"gender" validate:"omitempty,oneof=M F"`
	DId     *int64  `json:"dId" form:"dId" validate:"omitempty,gt=0"`
} // @name CreateEmployeeRequest

func (req *CreateRequest) ToEntity() Entity {
	entity := Entity{
		Name:         req.EmpName,
		Gender:       req.Gender,
		DepartmentId: req.DId,
	}
	if req.Email != "" {
		email := req.Email
		entity.Email = &email
	}
	return entity
}

// UpdateRequest частичное обновление: nil поле не меняется
type UpdateRequest struct {
	EmpName *string `json:"empName" form:"empName" validate:"omitempty,empname"`
	Email   *string `json:"email" form:"email" validate:"omitempty,email"`
	Gender  *string `json:"gender" form:"gender" validate:"omitempty,oneof=M F"`
	DId     *int64  `json:"dId" form:"dId" validate:"omitempty,gt=0"`
} // @name UpdateEmployeeRequest

func (req *UpdateRequest) ToPatch() Patch {
	return Patch{
		Name:         req.EmpName,
		Gender:       req.Gender,
		Email:        req.Email,
		DepartmentId: req.DId,
	}
}

// Patch набор колонок для UPDATE, записываются только не-nil поля
type Patch struct {
	Name         *string
	Gender       *string
	Email        *string
	DepartmentId *int64
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Gender == nil && p.Email == nil && p.DepartmentId == nil
}

type PageRequest struct {
	PageNumber int `validate:"min=1"`
	PageSize   int `validate:"min=1,max=100"`
}
