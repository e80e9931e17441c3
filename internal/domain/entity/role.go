package entity

// Role represents a user role in the system. Rows are seeded by migration.
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin = 1
	RoleIDSales = 2
)

// RoleNames constants
const (
	RoleAdmin = "admin"
	RoleSales = "sales"
)

// RoleName returns the role name for a known role ID.
func RoleName(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDSales:
		return RoleSales
	default:
		return ""
	}
}
