// Package guard decides which hrctl pages a session may open.
package guard

import (
	"fmt"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/adamanr/hrdesk/internal/session"
)

// RoleAny admits every signed-in user.
const RoleAny = "any"

type Page string

const (
	PageLogin       Page = "/login"
	PageForbidden   Page = "/forbidden"
	PageHome        Page = "/"
	PageProfile     Page = "/profile"
	PageEmployees   Page = "/employees"
	PageAddEmployee Page = "/add-employee"
	PageVacations   Page = "/vacations"
	PageContracts   Page = "/contracts"
	PageAnalytics   Page = "/analytics"
)

type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect to " + string(PageLogin)
	case RedirectForbidden:
		return "redirect to " + string(PageForbidden)
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

type route struct {
	page  Page
	title string
	// role is empty for public pages.
	role string
}

// Sidebar order.
var routes = []route{
	{page: PageLogin, title: "Login"},
	{page: PageForbidden, title: "Forbidden"},
	{page: PageProfile, title: "My profile", role: RoleAny},
	{page: PageHome, title: "Home", role: entity.RoleHR},
	{page: PageEmployees, title: "Employees", role: entity.RoleHR},
	{page: PageAddEmployee, title: "Add employee", role: entity.RoleHR},
	{page: PageVacations, title: "Vacation requests", role: entity.RoleHR},
	{page: PageContracts, title: "Contracts", role: entity.RoleHR},
	{page: PageAnalytics, title: "Analytics", role: entity.RoleHR},
}

func lookup(page Page) (route, bool) {
	for _, r := range routes {
		if r.page == page {
			return r, true
		}
	}

	return route{}, false
}

// Required returns the role a page needs, RoleAny, or "" for public pages.
// Unknown pages require hr.
func Required(page Page) string {
	r, ok := lookup(page)
	if !ok {
		return entity.RoleHR
	}

	return r.role
}

// Check only looks at what is stored locally. The token itself is validated by
// the server on the next call.
func Check(s session.Session, page Page) Decision {
	role := Required(page)
	if role == "" {
		return Allow
	}

	if s.Token == "" {
		return RedirectLogin
	}

	if role != RoleAny && s.Role != role {
		return RedirectForbidden
	}

	return Allow
}

type MenuItem struct {
	Page  Page
	Title string
}

// Menu lists the pages shown in the sidebar for role.
func Menu(role string) []MenuItem {
	items := make([]MenuItem, 0, len(routes))
	for _, r := range routes {
		if r.role == "" || r.page == PageHome {
			continue
		}

		if r.role == RoleAny || r.role == role {
			items = append(items, MenuItem{Page: r.page, Title: r.title})
		}
	}

	return items
}

// RoleLabel is the caption shown under the user name.
func RoleLabel(role string) string {
	if role == entity.RoleHR {
		return "HR manager"
	}

	return "Employee"
}
