package core

import "dmfengineering.com/timesheet/core/models"

// Session identifies the authenticated employee behind a request. It is
// passed explicitly into every store operation rather than read from ambient
// state, so the state machine can be exercised without the web layer.
type Session struct {
	Employee models.Employee
}

func (s Session) EmployeeID() string { return s.Employee.ID }

func (s Session) IsAdmin() bool { return s.Employee.Role == models.RoleAdmin }
