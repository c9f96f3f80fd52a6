package entity

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type AverageAge struct {
	AverageAge float64 `json:"average_age"`
}

type ChurnRate struct {
	ChurnRate float64 `json:"churn_rate"`
}

type AverageTenure struct {
	AverageTenure float64 `json:"average_tenure"`
}

type DepartmentHours struct {
	Department   string  `json:"department"`
	AverageHours float64 `json:"average_hours"`
}
