package models

import "time"

// Employee roles.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Time entry statuses.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// Notification types.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// BudgetItem is one leaf of the WBS catalog: a subtask, or a task-level
// bucket when SubtaskNumber is null. WbsCode is the identity time entries
// reference.
type BudgetItem struct {
	WbsCode            string   `gorm:"primaryKey;column:wbs_code;type:varchar(32)" json:"wbsCode"`
	ProjectNumber      int      `gorm:"column:project_number;not null;index" json:"projectNumber"`
	ProjectName        string   `gorm:"column:project_name;type:varchar(255)" json:"projectName"`
	Contract           string   `gorm:"column:contract;type:varchar(64)" json:"contract"`
	TaskNumber         int      `gorm:"column:task_number;not null" json:"taskNumber"`
	TaskDescription    string   `gorm:"column:task_description;type:varchar(255)" json:"taskDescription"`
	TaskUnit           *string  `gorm:"column:task_unit;type:varchar(64)" json:"taskUnit"`
	SubtaskNumber      *float64 `gorm:"column:subtask_number;type:decimal(6,2)" json:"subtaskNumber"`
	SubtaskDescription *string  `gorm:"column:subtask_description;type:varchar(255)" json:"subtaskDescription"`
	FeeStructure       string   `gorm:"column:fee_structure;type:varchar(64)" json:"feeStructure"`

	// Financial fields. Only ever serialized on admin-scoped reads; the
	// employee read path zeroes them before they leave the server.
	BudgetAmount    float64 `gorm:"column:budget_amount;type:decimal(13,2)" json:"budgetAmount"`
	DmfBudgetAmount float64 `gorm:"column:dmf_budget_amount;type:decimal(13,2)" json:"dmfBudgetAmount"`
}

func (BudgetItem) TableName() string {
	return "budget_items"
}

// TimeEntry is one row of worked hours against a single WBS code.
// EntryDate is a plain calendar date kept as a yyyy-MM-dd string so it never
// round-trips through a timezone-shifting conversion.
type TimeEntry struct {
	ID          string  `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	EmployeeID  string  `gorm:"column:employee_id;type:varchar(36);not null;index;<-:create" json:"employeeId"`
	WbsCode     string  `gorm:"column:wbs_code;type:varchar(32);not null;<-:create" json:"wbsCode"`
	EntryDate   string  `gorm:"column:entry_date;type:date;not null" json:"entryDate"`
	Hours       float64 `gorm:"column:hours;type:decimal(5,2);not null" json:"hours"`
	Description *string `gorm:"column:description;type:text" json:"description"`
	Status      string  `gorm:"column:status;type:varchar(16);not null;default:draft" json:"status"`

	SubmittedAt *time.Time `gorm:"column:submitted_at" json:"submittedAt"`
	ReviewedAt  *time.Time `gorm:"column:reviewed_at" json:"reviewedAt"`
	ReviewedBy  *string    `gorm:"column:reviewed_by;type:varchar(36)" json:"reviewedBy"`
	ReviewNotes *string    `gorm:"column:review_notes;type:text" json:"reviewNotes"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

type Employee struct {
	ID                 string  `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	UserID             string  `gorm:"column:user_id;type:varchar(36);uniqueIndex" json:"userId"`
	Name               string  `gorm:"column:name;type:varchar(255)" json:"name"`
	Email              string  `gorm:"column:email;type:varchar(255);index" json:"email"`
	Role               string  `gorm:"column:role;type:varchar(16);not null;default:employee" json:"role"`
	Active             bool    `gorm:"column:active;not null;default:true" json:"active"`
	DefaultBillingRate float64 `gorm:"column:default_billing_rate;type:decimal(8,2)" json:"defaultBillingRate"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Employee) TableName() string {
	return "employees"
}

// Notification is a write-once-read-many side channel; nothing in the entry
// state machine depends on it.
type Notification struct {
	ID          string  `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	UserID      string  `gorm:"column:user_id;type:varchar(36);not null;index" json:"userId"`
	Title       string  `gorm:"column:title;type:varchar(255)" json:"title"`
	Message     string  `gorm:"column:message;type:text" json:"message"`
	Type        string  `gorm:"column:type;type:varchar(16);not null;default:info" json:"type"`
	Read        bool    `gorm:"column:read;not null;default:false" json:"read"`
	RelatedID   *string `gorm:"column:related_id;type:varchar(36)" json:"relatedId"`
	RelatedType *string `gorm:"column:related_type;type:varchar(32)" json:"relatedType"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
