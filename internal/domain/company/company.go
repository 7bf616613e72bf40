package company

type Company struct {
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Website  string `json:"website,omitempty"`
	Founded  string `json:"founded,omitempty"`
	About    string `json:"about,omitempty"`
}

type UpdateCompanyRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=2,max=120"`
	Industry string `json:"industry" form:"industry" binding:"omitempty,max=80"`
	Email    string `json:"email" form:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty,max=40"`
	Address  string `json:"address" form:"address" binding:"omitempty,max=200"`
	Website  string `json:"website" form:"website" binding:"omitempty,url"`
	Founded  string `json:"founded" form:"founded" binding:"omitempty,max=20"`
	About    string `json:"about" form:"about" binding:"omitempty,max=2000"`
}
