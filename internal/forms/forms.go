// Package forms holds the client-side form state of hrctl and turns it into
// request payloads.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

// newValidator reports fields by their form tag and adds the "mail" and
// "date" rules used by the tags below.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("mail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseDate(fl.Field().String())
		return err == nil
	})

	return v
}

// check runs the struct rules of form and turns each failure into a message.
func check(form any, message func(validator.FieldError) (string, string)) FieldErrors {
	fe := FieldErrors{}

	var verrs validator.ValidationErrors
	if err := validate.Struct(form); errors.As(err, &verrs) {
		for _, e := range verrs {
			fe.add(message(e))
		}
	}

	return fe
}

var ErrRequired = errors.New("fill in all required fields")

// FieldErrors maps a JSON field name to its validation message.
type FieldErrors map[string]string

func (fe FieldErrors) add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// Err joins the messages in field order, or returns nil when there are none.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}

	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fe[f])
	}

	return errors.New(strings.Join(msgs, "; "))
}

func trimmed(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// date parses a value that already passed the "date" rule.
func date(value string) entity.Date {
	d, _ := entity.ParseDate(value)
	return d
}

// EmployeeForm is the add/edit employee card, every field as typed.
type EmployeeForm struct {
	FirstName      string `form:"first_name" validate:"required"`
	LastName       string `form:"last_name" validate:"required"`
	DateOfBirth    string `form:"date_of_birth" validate:"omitempty,date"`
	Gender         string `form:"gender" validate:"omitempty,oneof=male female"`
	Email          string `form:"email" validate:"required,mail"`
	Phone          string `form:"phone"`
	Salary         string `form:"salary"`
	INN            string `form:"inn"`
	SNILS          string `form:"snils"`
	DepartmentID   string `form:"fk_department" validate:"omitempty,number"`
	JobName        string `form:"job_name" validate:"required"`
	Active         string `form:"active" validate:"omitempty,oneof=Yes No"`
	Role           string `form:"role" validate:"omitempty,oneof=hr employee"`
	EmploymentDate string `form:"employment_date" validate:"omitempty,date"`
}

func FromEmployee(e entity.Employee) EmployeeForm {
	f := EmployeeForm{
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		DateOfBirth:    e.DateOfBirth.String(),
		Gender:         e.Gender,
		Email:          e.Email,
		Phone:          e.Phone,
		INN:            e.INN,
		SNILS:          e.SNILS,
		JobName:        e.JobName,
		Active:         e.Active,
		Role:           e.Role,
		EmploymentDate: e.EmploymentDate.String(),
	}

	if e.Salary != nil {
		f.Salary = strconv.FormatFloat(*e.Salary, 'f', -1, 64)
	}
	if e.DepartmentID != nil {
		f.DepartmentID = strconv.FormatUint(*e.DepartmentID, 10)
	}

	return f
}

func (f EmployeeForm) normalized() EmployeeForm {
	trimmed(&f.FirstName, &f.LastName, &f.Email, &f.JobName, &f.Salary, &f.DepartmentID, &f.DateOfBirth, &f.EmploymentDate)
	return f
}

func (f EmployeeForm) Validate() FieldErrors {
	return check(f.normalized(), func(e validator.FieldError) (string, string) {
		switch e.Tag() {
		case "required":
			return "required", ErrRequired.Error()
		case "mail":
			return e.Field(), "enter a valid email"
		case "number":
			return e.Field(), "department must be a number"
		case "date":
			return e.Field(), fmt.Sprintf("%s: expected YYYY-MM-DD", e.Field())
		default:
			return e.Field(), fmt.Sprintf("%s: unexpected value %q", e.Field(), e.Value())
		}
	})
}

// Payload validates the form and builds the request body. An unparseable
// salary and a blank department are sent as null.
func (f EmployeeForm) Payload() (entity.Employee, error) {
	if err := f.Validate().Err(); err != nil {
		return entity.Employee{}, err
	}
	f = f.normalized()

	e := entity.Employee{
		FirstName:      f.FirstName,
		LastName:       f.LastName,
		DateOfBirth:    date(f.DateOfBirth),
		Gender:         f.Gender,
		Email:          f.Email,
		Phone:          f.Phone,
		INN:            f.INN,
		SNILS:          f.SNILS,
		JobName:        f.JobName,
		Active:         f.Active,
		Role:           f.Role,
		EmploymentDate: date(f.EmploymentDate),
	}

	if e.Active == "" {
		e.Active = entity.ActiveYes
	}

	if v, err := strconv.ParseFloat(f.Salary, 64); err == nil {
		e.Salary = &v
	}

	if f.DepartmentID != "" {
		id, _ := strconv.ParseUint(f.DepartmentID, 10, 64)
		e.DepartmentID = &id
	}

	return e, nil
}

// ContractForm is the new contract dialog.
type ContractForm struct {
	EmployeeID              string `form:"fk_employee" validate:"required,number"`
	StartDate               string `form:"start_date" validate:"required,date"`
	EndDate                 string `form:"end_date" validate:"required_if=Permanent false,omitempty,date"`
	RenewalNotificationDate string `form:"renewal_notification_date" validate:"omitempty,date"`
	Status                  string `form:"status" validate:"omitempty,oneof=Active Pending Expired Terminated"`
	Permanent               bool   `form:"-"`
}

var contractMessages = map[string]string{
	"fk_employee/required": "select an employee",
	"fk_employee/number":   "employee must be a number",
	"start_date/required":  "enter a start date",
	"end_date/required_if": "enter an end date",
}

// normalized drops the typed end and renewal dates of a permanent contract.
func (f ContractForm) normalized() ContractForm {
	trimmed(&f.EmployeeID, &f.StartDate, &f.EndDate, &f.RenewalNotificationDate, &f.Status)
	if f.Permanent {
		f.EndDate, f.RenewalNotificationDate = "", ""
	}
	return f
}

func (f ContractForm) Validate() FieldErrors {
	f = f.normalized()

	fe := check(f, func(e validator.FieldError) (string, string) {
		if msg, ok := contractMessages[e.Field()+"/"+e.Tag()]; ok {
			return e.Field(), msg
		}
		if e.Tag() == "date" {
			return e.Field(), fmt.Sprintf("%s: expected YYYY-MM-DD", e.Field())
		}
		return e.Field(), fmt.Sprintf("unknown %s %q", e.Field(), e.Value())
	})
	if len(fe) > 0 || f.Permanent {
		return fe
	}

	start, end, renewal := date(f.StartDate), date(f.EndDate), date(f.RenewalNotificationDate)
	if !end.After(start) {
		fe.add("end_date", "end date must be after the start date")
	}
	if renewal.IsSet() && !renewal.Before(end) {
		fe.add("renewal_notification_date", "renewal notification must be before the end date")
	}

	return fe
}

// Payload validates the form and builds the create request.
func (f ContractForm) Payload() (entity.ContractInput, error) {
	if err := f.Validate().Err(); err != nil {
		return entity.ContractInput{}, err
	}
	f = f.normalized()

	id, _ := strconv.ParseUint(f.EmployeeID, 10, 64)
	start := date(f.StartDate)

	status := entity.ContractStatus(f.Status)
	if status == "" {
		status = entity.ContractActive
	}

	in := entity.ContractInput{
		EmployeeID: &id,
		StartDate:  &start,
		Status:     &status,
	}

	if f.Permanent {
		end := entity.PermanentEndDate
		in.EndDate = &end
		return in, nil
	}

	end := date(f.EndDate)
	in.EndDate = &end

	if renewal := date(f.RenewalNotificationDate); renewal.IsSet() {
		in.RenewalNotificationDate = &renewal
	}

	return in, nil
}

// VacationForm is the vacation request dialog on the profile page.
type VacationForm struct {
	StartDate string `form:"start_date" validate:"required,date"`
	EndDate   string `form:"end_date" validate:"required,date"`
}

func (f VacationForm) Validate() FieldErrors {
	trimmed(&f.StartDate, &f.EndDate)

	fe := check(f, func(e validator.FieldError) (string, string) {
		if e.Tag() == "required" {
			return "dates", "enter the start and end of the vacation"
		}
		return e.Field(), fmt.Sprintf("%s: expected YYYY-MM-DD", e.Field())
	})
	if len(fe) == 0 && date(f.StartDate).After(date(f.EndDate)) {
		fe.add("end_date", "start date cannot be after the end date")
	}

	return fe
}

func (f VacationForm) Payload(employeeID uint64) (entity.VacationInput, error) {
	if err := f.Validate().Err(); err != nil {
		return entity.VacationInput{}, err
	}

	trimmed(&f.StartDate, &f.EndDate)

	return entity.VacationInput{EmployeeID: employeeID, StartDate: date(f.StartDate), EndDate: date(f.EndDate)}, nil
}
