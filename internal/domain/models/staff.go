package models

import "time"

// Staff 表示物业员工的值班记录，可选关联一个用户账户
type Staff struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	RoleLabel string    `gorm:"column:role;type:varchar(50);not null" json:"role"` // 工种分类(如保安/保洁)，与User.Role无关
	IsOnDuty  bool      `gorm:"not null;default:false" json:"is_on_duty"`
	UserID    *uint     `gorm:"uniqueIndex" json:"user_id,omitempty"` // 每个用户最多关联一条员工记录
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
