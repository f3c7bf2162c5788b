package entity

// View names a screen of the field client. The set is closed: Role.Views is
// the single dispatch table and every View must appear in it.
type View string

const (
	ViewDashboard View = "DASHBOARD"
	ViewCapture   View = "CAPTURE"
	ViewRecords   View = "RECORDS"
	ViewReports   View = "REPORTS"
	ViewGoals     View = "GOALS"
	ViewLocations View = "LOCATIONS"
	ViewUsers     View = "USERS"
	ViewBackup    View = "BACKUP"
)

// AllViews lists every view in navigation order.
func AllViews() []View {
	return []View{
		ViewDashboard,
		ViewCapture,
		ViewRecords,
		ViewReports,
		ViewGoals,
		ViewLocations,
		ViewUsers,
		ViewBackup,
	}
}

// Views returns the views reachable by the role, in navigation order.
func (r Role) Views() []View {
	switch r {
	case RoleAdmin:
		return []View{ViewDashboard, ViewRecords, ViewReports, ViewGoals, ViewLocations, ViewUsers, ViewBackup}
	case RoleFiscal:
		return []View{ViewDashboard, ViewRecords, ViewReports, ViewGoals}
	case RoleOperator:
		return []View{ViewDashboard, ViewCapture, ViewRecords, ViewGoals}
	default:
		return nil
	}
}

// CanAccess reports whether the role may open the view.
func (r Role) CanAccess(v View) bool {
	for _, allowed := range r.Views() {
		if allowed == v {
			return true
		}
	}

	return false
}
