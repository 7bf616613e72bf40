package settings

type Settings struct {
	Timezone           string `json:"timezone,omitempty"`
	DateFormat         string `json:"dateFormat,omitempty"`
	Currency           string `json:"currency,omitempty"`
	EmailNotifications bool   `json:"emailNotifications"`
	WeeklyDigest       bool   `json:"weeklyDigest"`
}

type UpdateSettingsRequest struct {
	Timezone           string `json:"timezone" form:"timezone" binding:"omitempty,max=64"`
	DateFormat         string `json:"dateFormat" form:"dateFormat" binding:"omitempty,max=32"`
	Currency           string `json:"currency" form:"currency" binding:"omitempty,len=3"`
	EmailNotifications bool   `json:"emailNotifications" form:"emailNotifications"`
	WeeklyDigest       bool   `json:"weeklyDigest" form:"weeklyDigest"`
}
