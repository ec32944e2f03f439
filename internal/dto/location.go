package dto

// CampusResponse 校区响应
type CampusResponse struct {
	CampusID string  `json:"campus_id"`
	JwID     *int64  `json:"jw_id,omitempty"`
	NameCN   string  `json:"name_cn"`
	NameEN   *string `json:"name_en,omitempty"`
}

// BuildingResponse 教学楼响应
type BuildingResponse struct {
	BuildingID string  `json:"building_id"`
	JwID       *int64  `json:"jw_id,omitempty"`
	Code       string  `json:"code"`
	NameCN     string  `json:"name_cn"`
	NameEN     *string `json:"name_en,omitempty"`
	Campus     *string `json:"campus,omitempty"`
}

// RoomResponse 教室响应
type RoomResponse struct {
	RoomID   string  `json:"room_id"`
	JwID     *int64  `json:"jw_id,omitempty"`
	Code     string  `json:"code"`
	NameCN   string  `json:"name_cn"`
	NameEN   *string `json:"name_en,omitempty"`
	Floor    *int    `json:"floor,omitempty"`
	Virtual  bool    `json:"virtual"`
	Seats    int     `json:"seats"`
	Building *string `json:"building,omitempty"`
	RoomType *string `json:"room_type,omitempty"`
}
