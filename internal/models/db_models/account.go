package db_models

type Role string

const (
	RoleReporter  Role = "reporter"
	RoleResponder Role = "responder"
	RoleAdmin     Role = "admin"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalDeclined ApprovalStatus = "declined"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	PasswordHash string
	Role         Role `gorm:"index"`
	IsAdmin      bool
	// ApprovalStatus only carries meaning for responders; reporters and
	// admins are implicitly approved.
	ApprovalStatus ApprovalStatus `gorm:"index"`
}

func (a *Account) IsApproved() bool {
	if a.IsAdmin || a.Role != RoleResponder {
		return true
	}
	return a.ApprovalStatus == ApprovalApproved
}

// CanModerate reports whether the account may verify, decline or resolve
// emergency reports.
func (a *Account) CanModerate() bool {
	if a.IsAdmin || a.Role == RoleAdmin {
		return true
	}
	return a.Role == RoleResponder && a.ApprovalStatus == ApprovalApproved
}
