package department

type Entity struct {
	Id   int64  `db:"id"`
	Name string `db:"name"`
}

func (e *Entity) toResponse() Response {
	return Response{
		DeptId:   e.Id,
		DeptName: e.Name,
	}
}

type Response struct {
	DeptId   int64  `json:"deptId"`
	DeptName string `json:"deptName"`
} // @name Department
