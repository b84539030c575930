package models

// SurveyResponse 表示用户提交的一份答卷
type SurveyResponse struct {
	BaseModel
	SurveyID uint `gorm:"not null" json:"survey_id"` // 所属问卷ID
	UserID   uint `gorm:"not null" json:"user_id"`   // 提交答卷的账号ID

	// Relations - 关联关系
	Survey  *Survey  `gorm:"foreignKey:SurveyID" json:"survey,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Answers []Answer `gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE" json:"answers,omitempty"` // 答卷内的答案（一对多）
}

// Answer 表示答卷中对某个问题的作答，可选择一个或多个选项
type Answer struct {
	BaseModel
	ResponseID uint `gorm:"not null" json:"response_id"` // 所属答卷ID
	QuestionID uint `gorm:"not null" json:"question_id"` // 对应问题ID

	// Relations - 关联关系
	Question *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	Choices  []Choice  `gorm:"many2many:answer_choices" json:"choices,omitempty"` // 选中的选项（多对多）
}
