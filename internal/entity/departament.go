package entity

type Department struct {
	ID   uint64 `json:"department_id" db:"department_id"`
	Name string `json:"name" db:"name"`
}
