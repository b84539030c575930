package models

import "time"

// 问题类型枚举
const (
	QuestionTypeSingle   = "single"   // 单选
	QuestionTypeMultiple = "multiple" // 多选
)

// Survey 表示一次问卷调查
type Survey struct {
	BaseModel
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Deadline    *time.Time `json:"deadline"` // 截止时间，可为空

	// Relations - 关联关系
	Questions []Question       `gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE" json:"questions,omitempty"` // 问卷的问题（一对多）
	Responses []SurveyResponse `gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE" json:"responses,omitempty"` // 问卷的答卷（一对多）
}

// Question 表示问卷中的一个问题
type Question struct {
	BaseModel
	Text string `gorm:"type:text;not null" json:"text"`
	Type string `gorm:"type:varchar(10);default:'single'" json:"type"` // single, multiple

	SurveyID uint `gorm:"not null" json:"survey_id"` // 所属问卷ID

	// Relations - 关联关系
	Choices []Choice `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"choices,omitempty"` // 问题的选项（一对多）
}

// Choice 表示问题的一个选项
type Choice struct {
	BaseModel
	Text string `gorm:"type:varchar(255);not null" json:"text"`

	QuestionID uint `gorm:"not null" json:"question_id"` // 所属问题ID
}
