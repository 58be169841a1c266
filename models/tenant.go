package models

import "time"

type Tenant struct {
	TenantID        uint   `gorm:"primaryKey;column:tenant_id" json:"tenant_id"`
	EstablishmentID uint   `gorm:"column:establishment_id;index" json:"establishment_id"`
	RoomID          uint   `gorm:"column:room_id;index" json:"room_id"`
	TenantFirstName string `gorm:"column:tenant_first_name;size:100" json:"tenantFirstName"`
	TenantLastName  string `gorm:"column:tenant_last_name;size:100" json:"tenantLastName"`
	TenantEmail     string `gorm:"column:tenant_email;uniqueIndex;size:255" json:"tenantEmail"`
	Password        string `gorm:"column:password;size:255" json:"-"`
	Gender          string `gorm:"column:gender;size:20" json:"gender,omitempty"`
	MobileNum       string `gorm:"column:mobile_num;size:30" json:"mobileNum,omitempty"`
	GuardianName    string `gorm:"column:tenant_guardian_name;size:200" json:"tenantGuardianName,omitempty"`
	GuardianNum     string `gorm:"column:tenant_guardian_num;size:30" json:"tenantGuardianNum,omitempty"`
	TenantProfile   string `gorm:"column:tenant_profile;size:255" json:"tenantProfile,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Room          Room          `gorm:"foreignKey:RoomID;references:RoomID" json:"room,omitempty"`
	Establishment Establishment `gorm:"foreignKey:EstablishmentID;references:EstablishmentID" json:"-"`
}
