package model

// RoomType 教室类型表 — 对应 room_types（上游排课数据专有，带 jw_id）
type RoomType struct {
	RoomTypeID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"room_type_id"`
	JwID       int64   `gorm:"not null;uniqueIndex"                           json:"jw_id"`
	Code       string  `gorm:"type:varchar(20);not null;default:''"           json:"code"`
	NameCN     string  `gorm:"column:name_cn;type:varchar(100);not null"      json:"name_cn"`
	NameEN     *string `gorm:"column:name_en;type:varchar(100)"               json:"name_en,omitempty"`
	BaseModel
}

// TableName 指定表名
func (RoomType) TableName() string { return "room_types" }

// Building 教学楼表 — 对应 buildings；校区引用可空（从同一负载递归解析）
type Building struct {
	BuildingID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"building_id"`
	JwID       *int64  `gorm:"uniqueIndex"                                    json:"jw_id,omitempty"`
	Code       string  `gorm:"type:varchar(20);not null;default:''"           json:"code"`
	NameCN     string  `gorm:"column:name_cn;type:varchar(100);not null"      json:"name_cn"`
	NameEN     *string `gorm:"column:name_en;type:varchar(100)"               json:"name_en,omitempty"`
	CampusID   *string `gorm:"type:uuid"                                      json:"campus_id,omitempty"`
	BaseModel

	// 关联
	Campus *Campus `gorm:"foreignKey:CampusID;references:CampusID" json:"campus,omitempty"`
}

// TableName 指定表名
func (Building) TableName() string { return "buildings" }

// Room 教室表 — 对应 rooms
type Room struct {
	RoomID          string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`
	JwID            *int64  `gorm:"uniqueIndex"                                    json:"jw_id,omitempty"`
	Code            string  `gorm:"type:varchar(40);not null;default:''"           json:"code"`
	NameCN          string  `gorm:"column:name_cn;type:varchar(100);not null"      json:"name_cn"`
	NameEN          *string `gorm:"column:name_en;type:varchar(100)"               json:"name_en,omitempty"`
	Floor           *int    `json:"floor,omitempty"`
	Virtual         bool    `gorm:"not null;default:false" json:"virtual"` // 虚拟教室（线上或外部场地）
	Seats           int     `gorm:"not null;default:0"     json:"seats"`
	SeatsForSection *int    `json:"seats_for_section,omitempty"`
	Remark          *string `gorm:"type:text" json:"remark,omitempty"`
	BuildingID      *string `gorm:"type:uuid" json:"building_id,omitempty"`
	RoomTypeID      *string `gorm:"type:uuid" json:"room_type_id,omitempty"`
	BaseModel

	// 关联
	Building *Building `gorm:"foreignKey:BuildingID;references:BuildingID" json:"building,omitempty"`
	RoomType *RoomType `gorm:"foreignKey:RoomTypeID;references:RoomTypeID" json:"room_type,omitempty"`
}

// TableName 指定表名
func (Room) TableName() string { return "rooms" }
