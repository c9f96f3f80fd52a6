package entity

type VacationStatus string

const (
	VacationPending  VacationStatus = "Pending"
	VacationApproved VacationStatus = "Approved"
	VacationRejected VacationStatus = "Rejected"
)

func (s VacationStatus) Label() string {
	switch s {
	case VacationPending:
		return "Awaiting review"
	case VacationApproved:
		return "Approved"
	case VacationRejected:
		return "Rejected"
	default:
		return string(s)
	}
}

// VacationEmployee is the slice of the employee record embedded in vacation replies.
type VacationEmployee struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type Vacation struct {
	ID         uint64         `json:"vacation_id"`
	EmployeeID uint64         `json:"fk_employee"`
	StartDate  Date           `json:"start_date"`
	EndDate    Date           `json:"end_date"`
	Status     VacationStatus `json:"status"`

	Employee *VacationEmployee `json:"employee,omitempty"`
}

func (v Vacation) IsPending() bool {
	return v.Status == VacationPending
}

func (v Vacation) EmployeeName() string {
	if v.Employee == nil {
		return ""
	}

	return v.Employee.FirstName + " " + v.Employee.LastName
}

func (v Vacation) StringFields() map[string]string {
	fields := map[string]string{
		"status": string(v.Status),
	}

	if v.StartDate.IsSet() {
		fields["start_date"] = v.StartDate.String()
	}

	if v.EndDate.IsSet() {
		fields["end_date"] = v.EndDate.String()
	}

	if v.Employee != nil {
		fields["employee_name"] = v.EmployeeName()
		fields["employee_email"] = v.Employee.Email
	}

	return fields
}

type VacationInput struct {
	EmployeeID uint64 `json:"fk_employee"`
	StartDate  Date   `json:"start_date"`
	EndDate    Date   `json:"end_date"`
}

type VacationStatusUpdate struct {
	Status VacationStatus `json:"status"`
}
