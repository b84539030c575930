package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceSurveyService 定义问卷服务接口
type InterfaceSurveyService interface {
	GetAllSurveys(page, pageSize int) ([]models.Survey, int64, error)
	GetSurveyByID(id uint) (*models.Survey, error)
	CreateSurvey(input *SurveyInput) (*models.Survey, error)
	DeleteSurvey(id uint) error
	GetSurveyResponses(surveyID uint) ([]models.SurveyResponse, error)

	GetAllSurveyResponses(actor *perms.Actor, page, pageSize int) ([]models.SurveyResponse, int64, error)
	GetSurveyResponseByID(id uint) (*models.SurveyResponse, error)
	CreateSurveyResponse(actor *perms.Actor, input *SurveyResponseInput) (*models.SurveyResponse, error)
}

// SurveyInput 表示创建问卷的嵌套输入：问卷 → 问题 → 选项
type SurveyInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Deadline    *time.Time      `json:"deadline"`
	Questions   []QuestionInput `json:"questions" binding:"required,min=1"`
}

// QuestionInput 表示问卷中的一个问题及其选项
type QuestionInput struct {
	Text    string        `json:"text" binding:"required"`
	Type    string        `json:"type"`
	Choices []ChoiceInput `json:"choices" binding:"required,min=1"`
}

// ChoiceInput 表示问题的一个选项
type ChoiceInput struct {
	Text string `json:"text" binding:"required"`
}

// SurveyResponseInput 表示提交答卷的嵌套输入：答卷 → 答案 → 选项引用
type SurveyResponseInput struct {
	SurveyID uint          `json:"survey_id" binding:"required"`
	Answers  []AnswerInput `json:"answers" binding:"required,min=1"`
}

// AnswerInput 表示对一个问题的作答
type AnswerInput struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	ChoiceIDs  []uint `json:"choices" binding:"required,min=1"`
}

// SurveyService 提供问卷相关的服务
type SurveyService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService
}

// NewSurveyService 创建一个新的问卷服务
func NewSurveyService(db *gorm.DB, cfg *config.Config, redis InterfaceRedisService) InterfaceSurveyService {
	return &SurveyService{
		DB:     db,
		Config: cfg,
		Redis:  redis,
	}
}

// 1. GetAllSurveys 获取所有问卷列表，支持分页
func (s *SurveyService) GetAllSurveys(page, pageSize int) ([]models.Survey, int64, error) {
	var surveys []models.Survey
	var total int64

	if err := s.DB.Model(&models.Survey{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&surveys).Error; err != nil {
		return nil, 0, err
	}

	return surveys, total, nil
}

// 2. GetSurveyByID 根据ID获取问卷详情，嵌套问题和选项。
// 详情读取量大，走Redis旁路缓存，缓存不可用时直接读库
func (s *SurveyService) GetSurveyByID(id uint) (*models.Survey, error) {
	cacheKey := fmt.Sprintf("survey:%d", id)

	if s.Redis != nil {
		var cached models.Survey
		if err := s.Redis.Get(cacheKey, &cached); err == nil && cached.ID != 0 {
			return &cached, nil
		}
	}

	var survey models.Survey
	if err := s.DB.Preload("Questions").Preload("Questions.Choices").First(&survey, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrSurveyNotFound)
		}
		return nil, err
	}

	if s.Redis != nil {
		_ = s.Redis.Set(cacheKey, &survey, 5*time.Minute)
	}

	return &survey, nil
}

// 3. CreateSurvey 创建问卷。
// 问卷、问题、选项作为一个整体在单个事务内写入，任一层失败则全部回滚
func (s *SurveyService) CreateSurvey(input *SurveyInput) (*models.Survey, error) {
	var surveyID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		survey := models.Survey{
			Title:       input.Title,
			Description: input.Description,
			Deadline:    input.Deadline,
		}
		if err := tx.Create(&survey).Error; err != nil {
			return err
		}

		for _, questionInput := range input.Questions {
			questionType := questionInput.Type
			if questionType == "" {
				questionType = models.QuestionTypeSingle
			}
			if questionType != models.QuestionTypeSingle && questionType != models.QuestionTypeMultiple {
				return code.NewErrorWithMessage(code.ErrValidation, "问题类型取值不合法")
			}

			question := models.Question{
				Text:     questionInput.Text,
				Type:     questionType,
				SurveyID: survey.ID,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}

			for _, choiceInput := range questionInput.Choices {
				if choiceInput.Text == "" {
					return code.NewErrorWithMessage(code.ErrValidation, "选项内容不能为空")
				}
				choice := models.Choice{
					Text:       choiceInput.Text,
					QuestionID: question.ID,
				}
				if err := tx.Create(&choice).Error; err != nil {
					return err
				}
			}
		}

		surveyID = survey.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetSurveyByID(surveyID)
}

// 4. DeleteSurvey 删除问卷，级联删除问题、选项和答卷
func (s *SurveyService) DeleteSurvey(id uint) error {
	var survey models.Survey
	if err := s.DB.First(&survey, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.NewError(code.ErrSurveyNotFound)
		}
		return err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&models.Question{}).Where("survey_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&models.Choice{}).Error; err != nil {
				return err
			}
		}

		var responseIDs []uint
		if err := tx.Model(&models.SurveyResponse{}).Where("survey_id = ?", id).Pluck("id", &responseIDs).Error; err != nil {
			return err
		}
		if len(responseIDs) > 0 {
			if err := tx.Where("response_id IN ?", responseIDs).Delete(&models.Answer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("survey_id = ?", id).Delete(&models.SurveyResponse{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("survey_id = ?", id).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&survey).Error
	})
	if err != nil {
		return err
	}

	if s.Redis != nil {
		_ = s.Redis.Delete(fmt.Sprintf("survey:%d", id))
	}
	return nil
}

// 5. GetSurveyResponses 获取指定问卷的所有答卷
func (s *SurveyService) GetSurveyResponses(surveyID uint) ([]models.SurveyResponse, error) {
	var survey models.Survey
	if err := s.DB.First(&survey, surveyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrSurveyNotFound)
		}
		return nil, err
	}

	var responses []models.SurveyResponse
	if err := s.DB.Where("survey_id = ?", surveyID).
		Preload("User").
		Preload("Answers").Preload("Answers.Question").Preload("Answers.Choices").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

// 6. GetAllSurveyResponses 获取答卷列表，非管理人员只能看到自己提交的
func (s *SurveyService) GetAllSurveyResponses(actor *perms.Actor, page, pageSize int) ([]models.SurveyResponse, int64, error) {
	var responses []models.SurveyResponse
	var total int64

	query := perms.ScopeToUser(s.DB.Model(&models.SurveyResponse{}), actor, "user_id")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("Survey").Limit(pageSize).Offset(offset).Find(&responses).Error; err != nil {
		return nil, 0, err
	}

	return responses, total, nil
}

// 7. GetSurveyResponseByID 根据ID获取答卷详情，答案附带问题和选项文本
func (s *SurveyService) GetSurveyResponseByID(id uint) (*models.SurveyResponse, error) {
	var response models.SurveyResponse
	if err := s.DB.Preload("Survey").Preload("User").
		Preload("Answers").Preload("Answers.Question").Preload("Answers.Choices").
		First(&response, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrSurveyResponseNotFound)
		}
		return nil, err
	}
	return &response, nil
}

// 8. CreateSurveyResponse 提交答卷。
// 答卷、答案和选项引用在单个事务内写入；任一选项不存在或不属于
// 对应问题时整体回滚，不会残留孤儿答卷
func (s *SurveyService) CreateSurveyResponse(actor *perms.Actor, input *SurveyResponseInput) (*models.SurveyResponse, error) {
	if actor == nil {
		return nil, code.NewError(code.ErrTokenInvalid)
	}

	var responseID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var survey models.Survey
		if err := tx.First(&survey, input.SurveyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code.NewError(code.ErrSurveyNotFound)
			}
			return err
		}

		response := models.SurveyResponse{
			SurveyID: survey.ID,
			UserID:   actor.UserID,
		}
		if err := tx.Create(&response).Error; err != nil {
			return err
		}

		for _, answerInput := range input.Answers {
			var question models.Question
			if err := tx.Where("id = ? AND survey_id = ?", answerInput.QuestionID, survey.ID).First(&question).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return code.NewError(code.ErrQuestionNotFound)
				}
				return err
			}

			// 单选题只允许一个选项
			if question.Type == models.QuestionTypeSingle && len(answerInput.ChoiceIDs) > 1 {
				return code.NewErrorWithMessage(code.ErrValidation, "单选题只能选择一个选项")
			}

			// 所有选项必须存在且属于该问题
			var choices []models.Choice
			if err := tx.Where("id IN ? AND question_id = ?", answerInput.ChoiceIDs, question.ID).Find(&choices).Error; err != nil {
				return err
			}
			if len(choices) != len(answerInput.ChoiceIDs) {
				return code.NewError(code.ErrChoiceInvalid)
			}

			answer := models.Answer{
				ResponseID: response.ID,
				QuestionID: question.ID,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
			if err := tx.Model(&answer).Association("Choices").Append(&choices); err != nil {
				return err
			}
		}

		responseID = response.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetSurveyResponseByID(responseID)
}
