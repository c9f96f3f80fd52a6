package entity

type ContractStatus string

const (
	ContractActive     ContractStatus = "Active"
	ContractPending    ContractStatus = "Pending"
	ContractExpired    ContractStatus = "Expired"
	ContractTerminated ContractStatus = "Terminated"
)

// EmployeeRemovedName is reported for contracts whose employee no longer exists.
const EmployeeRemovedName = "Employee removed"

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractActive, ContractPending, ContractExpired, ContractTerminated:
		return true
	default:
		return false
	}
}

func (s ContractStatus) Label() string {
	switch s {
	case ContractActive:
		return "Active"
	case ContractPending:
		return "Pending"
	case ContractExpired:
		return "Expired"
	case ContractTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

type Contract struct {
	ID                      uint64         `json:"contract_id"`
	EmployeeID              *uint64        `json:"fk_employee"` // nil once the employee is removed
	StartDate               Date           `json:"start_date"`
	EndDate                 Date           `json:"end_date"`
	RenewalNotificationDate Date           `json:"renewal_notification_date"`
	Status                  ContractStatus `json:"status"`
	EmployeeName            string         `json:"employee_name"`
}

func (c Contract) IsPermanent() bool {
	return c.EndDate.Equal(PermanentEndDate)
}

func (c Contract) StringFields() map[string]string {
	fields := map[string]string{
		"status":        string(c.Status),
		"employee_name": c.EmployeeName,
	}

	if c.StartDate.IsSet() {
		fields["start_date"] = c.StartDate.String()
	}

	if c.EndDate.IsSet() {
		fields["end_date"] = c.EndDate.String()
	}

	if c.RenewalNotificationDate.IsSet() {
		fields["renewal_notification_date"] = c.RenewalNotificationDate.String()
	}

	return fields
}

// ContractInput is the create/update payload. Nil fields are left untouched on
// update, except RenewalNotificationDate which is cleared when absent.
type ContractInput struct {
	EmployeeID              *uint64         `json:"fk_employee,omitempty"`
	StartDate               *Date           `json:"start_date,omitempty"`
	EndDate                 *Date           `json:"end_date,omitempty"`
	RenewalNotificationDate *Date           `json:"renewal_notification_date"`
	Status                  *ContractStatus `json:"status,omitempty"`
}
