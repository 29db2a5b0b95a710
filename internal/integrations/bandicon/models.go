package bandicon

// Member участник джема из основного API Bandicon
type Member struct {
	UserID          int64  `json:"userId"`
	Nickname        string `json:"nickname"`
	SessionTypeCode string `json:"sessionTypeCode"` // VOCAL, GUITAR, BASS, DRUM, KEYBOARD ...
	PartLabel       string `json:"partLabel"`       // подпись слота сессии ("Guitar 1")
	Status          string `json:"status"`          // CONFIRMED, PENDING, REJECTED
}

// MembersResponse ответ GET /internal/jams/{jamId}/members
type MembersResponse struct {
	JamID   int64    `json:"jamId"`
	Members []Member `json:"members"`
}

// ErrorResponse модель ошибки от Bandicon API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatusConfirmed статус подтвержденного участника
const StatusConfirmed = "CONFIRMED"
