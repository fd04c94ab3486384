package dto

// NurseResponse 护士目录条目（指派表单的数据源）
type NurseResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
