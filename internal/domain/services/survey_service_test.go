package services

import (
	"testing"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"

	"gorm.io/gorm"
)

func seedSurvey(t *testing.T, db *gorm.DB, svc InterfaceSurveyService) *models.Survey {
	t.Helper()

	survey, err := svc.CreateSurvey(&SurveyInput{
		Title: "小区环境满意度调查",
		Questions: []QuestionInput{
			{
				Text:    "您对小区绿化是否满意",
				Type:    models.QuestionTypeSingle,
				Choices: []ChoiceInput{{Text: "满意"}, {Text: "不满意"}},
			},
			{
				Text:    "您希望增加哪些设施",
				Type:    models.QuestionTypeMultiple,
				Choices: []ChoiceInput{{Text: "健身房"}, {Text: "儿童乐园"}, {Text: "充电桩"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("创建问卷失败: %v", err)
	}
	return survey
}

func TestCreateSurveyNested(t *testing.T) {
	db := newTestDB(t)
	svc := NewSurveyService(db, newTestConfig(), nil)

	survey := seedSurvey(t, db, svc)

	if len(survey.Questions) != 2 {
		t.Fatalf("期望问卷包含2个问题，实际 %d", len(survey.Questions))
	}
	if len(survey.Questions[0].Choices) != 2 || len(survey.Questions[1].Choices) != 3 {
		t.Fatalf("期望选项数为2和3，实际为 %d 和 %d", len(survey.Questions[0].Choices), len(survey.Questions[1].Choices))
	}
}

func TestCreateSurveyInvalidQuestionTypeRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewSurveyService(db, newTestConfig(), nil)

	_, err := svc.CreateSurvey(&SurveyInput{
		Title: "坏问卷",
		Questions: []QuestionInput{
			{Text: "正常问题", Choices: []ChoiceInput{{Text: "选项"}}},
			{Text: "坏问题", Type: "ranking", Choices: []ChoiceInput{{Text: "选项"}}},
		},
	})
	assertCode(t, err, code.ErrValidation)

	// 事务整体回滚，不残留问卷和问题
	var surveyCount, questionCount int64
	db.Model(&models.Survey{}).Count(&surveyCount)
	db.Model(&models.Question{}).Count(&questionCount)
	if surveyCount != 0 || questionCount != 0 {
		t.Fatalf("期望创建失败后不残留数据，实际 surveys=%d questions=%d", surveyCount, questionCount)
	}
}

func TestCreateSurveyResponse(t *testing.T) {
	db := newTestDB(t)
	svc := NewSurveyService(db, newTestConfig(), nil)
	user := seedUser(t, db, "resident1", false)
	survey := seedSurvey(t, db, svc)

	single := survey.Questions[0]
	multiple := survey.Questions[1]

	actor := &perms.Actor{UserID: user.ID}
	response, err := svc.CreateSurveyResponse(actor, &SurveyResponseInput{
		SurveyID: survey.ID,
		Answers: []AnswerInput{
			{QuestionID: single.ID, ChoiceIDs: []uint{single.Choices[0].ID}},
			{QuestionID: multiple.ID, ChoiceIDs: []uint{multiple.Choices[0].ID, multiple.Choices[2].ID}},
		},
	})
	if err != nil {
		t.Fatalf("提交答卷失败: %v", err)
	}

	if response.UserID != user.ID {
		t.Fatalf("期望答卷归属账号 %d，实际为 %d", user.ID, response.UserID)
	}
	if len(response.Answers) != 2 {
		t.Fatalf("期望2条答案，实际 %d", len(response.Answers))
	}
	if len(response.Answers[1].Choices) != 2 {
		t.Fatalf("期望多选答案包含2个选项，实际 %d", len(response.Answers[1].Choices))
	}
}

func TestCreateSurveyResponseSingleQuestionOneChoice(t *testing.T) {
	db := newTestDB(t)
	svc := NewSurveyService(db, newTestConfig(), nil)
	user := seedUser(t, db, "resident1", false)
	survey := seedSurvey(t, db, svc)

	single := survey.Questions[0]

	// 单选问题不接受多个选项
	_, err := svc.CreateSurveyResponse(&perms.Actor{UserID: user.ID}, &SurveyResponseInput{
		SurveyID: survey.ID,
		Answers: []AnswerInput{
			{QuestionID: single.ID, ChoiceIDs: []uint{single.Choices[0].ID, single.Choices[1].ID}},
		},
	})
	assertCode(t, err, code.ErrValidation)
}

func TestCreateSurveyResponseInvalidChoiceRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewSurveyService(db, newTestConfig(), nil)
	user := seedUser(t, db, "resident1", false)
	survey := seedSurvey(t, db, svc)

	single := survey.Questions[0]
	multiple := survey.Questions[1]

	// 第二个答案引用了不属于该问题的选项，整体回滚
	_, err := svc.CreateSurveyResponse(&perms.Actor{UserID: user.ID}, &SurveyResponseInput{
		SurveyID: survey.ID,
		Answers: []AnswerInput{
			{QuestionID: single.ID, ChoiceIDs: []uint{single.Choices[0].ID}},
			{QuestionID: multiple.ID, ChoiceIDs: []uint{single.Choices[1].ID}},
		},
	})
	assertCode(t, err, code.ErrChoiceInvalid)

	var responseCount, answerCount int64
	db.Model(&models.SurveyResponse{}).Count(&responseCount)
	db.Model(&models.Answer{}).Count(&answerCount)
	if responseCount != 0 || answerCount != 0 {
		t.Fatalf("期望提交失败后不残留孤儿答卷，实际 responses=%d answers=%d", responseCount, answerCount)
	}
}

func TestCreateSurveyResponseUnknownQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := NewSurveyService(db, newTestConfig(), nil)
	user := seedUser(t, db, "resident1", false)
	survey := seedSurvey(t, db, svc)

	_, err := svc.CreateSurveyResponse(&perms.Actor{UserID: user.ID}, &SurveyResponseInput{
		SurveyID: survey.ID,
		Answers: []AnswerInput{
			{QuestionID: 999, ChoiceIDs: []uint{1}},
		},
	})
	assertCode(t, err, code.ErrQuestionNotFound)
}

func TestDeleteSurveyCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewSurveyService(db, newTestConfig(), nil)
	user := seedUser(t, db, "resident1", false)
	survey := seedSurvey(t, db, svc)

	single := survey.Questions[0]
	if _, err := svc.CreateSurveyResponse(&perms.Actor{UserID: user.ID}, &SurveyResponseInput{
		SurveyID: survey.ID,
		Answers: []AnswerInput{
			{QuestionID: single.ID, ChoiceIDs: []uint{single.Choices[0].ID}},
		},
	}); err != nil {
		t.Fatalf("提交答卷失败: %v", err)
	}

	if err := svc.DeleteSurvey(survey.ID); err != nil {
		t.Fatalf("删除问卷失败: %v", err)
	}

	var questions, choices, responses, answers int64
	db.Model(&models.Question{}).Count(&questions)
	db.Model(&models.Choice{}).Count(&choices)
	db.Model(&models.SurveyResponse{}).Count(&responses)
	db.Model(&models.Answer{}).Count(&answers)
	if questions != 0 || choices != 0 || responses != 0 || answers != 0 {
		t.Fatalf("期望级联删除全部关联数据，实际 questions=%d choices=%d responses=%d answers=%d",
			questions, choices, responses, answers)
	}
}

func TestGetAllSurveyResponsesScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewSurveyService(db, newTestConfig(), nil)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	survey := seedSurvey(t, db, svc)

	single := survey.Questions[0]
	for _, user := range []*models.User{alice, bob} {
		if _, err := svc.CreateSurveyResponse(&perms.Actor{UserID: user.ID}, &SurveyResponseInput{
			SurveyID: survey.ID,
			Answers: []AnswerInput{
				{QuestionID: single.ID, ChoiceIDs: []uint{single.Choices[0].ID}},
			},
		}); err != nil {
			t.Fatalf("提交答卷失败: %v", err)
		}
	}

	_, total, err := svc.GetAllSurveyResponses(&perms.Actor{UserID: alice.ID}, 1, 10)
	if err != nil {
		t.Fatalf("获取答卷列表失败: %v", err)
	}
	if total != 1 {
		t.Fatalf("期望普通账号只看到自己的1份答卷，实际 %d", total)
	}

	_, total, err = svc.GetAllSurveyResponses(&perms.Actor{UserID: 99, IsStaff: true}, 1, 10)
	if err != nil {
		t.Fatalf("获取答卷列表失败: %v", err)
	}
	if total != 2 {
		t.Fatalf("期望管理人员看到2份答卷，实际 %d", total)
	}
}
