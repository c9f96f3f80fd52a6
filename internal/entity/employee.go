package entity

const (
	RoleHR       = "hr"
	RoleEmployee = "employee"

	ActiveYes = "Yes"
	ActiveNo  = "No"

	GenderMale   = "male"
	GenderFemale = "female"
)

type Employee struct {
	ID             uint64   `json:"employee_id" db:"employee_id"`
	FirstName      string   `json:"first_name" db:"first_name"`
	LastName       string   `json:"last_name" db:"last_name"`
	DateOfBirth    Date     `json:"date_of_birth" db:"date_of_birth"`
	Gender         string   `json:"gender" db:"gender"`
	Email          string   `json:"email" db:"email"`
	Phone          string   `json:"phone" db:"phone"`
	Salary         *float64 `json:"salary" db:"salary"`
	INN            string   `json:"inn" db:"inn"`
	SNILS          string   `json:"snils" db:"snils"`
	DepartmentID   *uint64  `json:"fk_department" db:"fk_department"`
	JobName        string   `json:"job_name" db:"job_name"`
	Active         string   `json:"active" db:"active"`
	Role           string   `json:"role" db:"role"`
	EmploymentDate Date     `json:"employment_date" db:"employment_date"`

	Department *Department `json:"department,omitempty" db:"-"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e Employee) IsActive() bool {
	return e.Active == ActiveYes
}

// StringFields returns every string-valued field keyed by its JSON name.
// Unset dates are not strings on the wire and are left out.
func (e Employee) StringFields() map[string]string {
	fields := map[string]string{
		"first_name": e.FirstName,
		"last_name":  e.LastName,
		"gender":     e.Gender,
		"email":      e.Email,
		"phone":      e.Phone,
		"inn":        e.INN,
		"snils":      e.SNILS,
		"job_name":   e.JobName,
		"active":     e.Active,
		"role":       e.Role,
	}

	if e.DateOfBirth.IsSet() {
		fields["date_of_birth"] = e.DateOfBirth.String()
	}

	if e.EmploymentDate.IsSet() {
		fields["employment_date"] = e.EmploymentDate.String()
	}

	return fields
}

func GenderLabel(gender string) string {
	switch gender {
	case "":
		return "Not specified"
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return gender
	}
}

func ActiveLabel(active string) string {
	if active == ActiveYes {
		return "Active"
	}

	return "Inactive"
}
