package domain

import (
	"time"
)

type SysConfig struct {
	ID        int64     `json:"id,string" form:"id"`
	Sort      int       `json:"sort" form:"sort"`
	Type      string    `gorm:"index" json:"type" form:"type"`
	Name      string    `gorm:"index" json:"name" form:"name"`
	Value     string    `json:"value" form:"value"`
	Remark    string    `json:"remark" form:"remark"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SysConfig) TableName() string {
	return "sys_config"
}

// SysOpr is an administrator account. Passwords are stored as salted
// pbkdf2 hashes, never plaintext.
type SysOpr struct {
	ID        int64     `json:"id,string" form:"id"`
	Realname  string    `json:"realname" form:"realname"`
	Email     string    `gorm:"index" json:"email" form:"email"`
	Password  string    `json:"-" form:"-"`
	Level     string    `json:"level" form:"level"`
	Status    string    `json:"status" form:"status"`
	Remark    string    `json:"remark" form:"remark"`
	LastLogin time.Time `json:"last_login" form:"last_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SysOpr) TableName() string {
	return "sys_opr"
}

// SysLoginLog is an append-only audit record of successful admin
// logins. Rows are written once and only ever removed by the retention
// job.
type SysLoginLog struct {
	ID        int64     `json:"id,string"`
	Email     string    `gorm:"index" json:"email"`
	Ipaddr    string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	LoginTime time.Time `gorm:"index" json:"loginTime"`
}

// TableName Specify table name
func (SysLoginLog) TableName() string {
	return "sys_login_log"
}

type SysOpLog struct {
	ID        int64     `json:"id,string"`
	OprName   string    `json:"opr_name"`
	OptAction string    `json:"opt_action"`
	OptDesc   string    `json:"opt_desc"`
	OptTime   time.Time `json:"opt_time"`
}

// TableName Specify table name
func (SysOpLog) TableName() string {
	return "sys_op_log"
}
