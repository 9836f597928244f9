package wizard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/board"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/model"
	sharedValidator "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/validator"
	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the minimum length of the edit password after trimming.
const MinPasswordLength = 4

// Violation is a failed step check. It is shown to the user, never thrown.
type Violation struct {
	Step   Step
	Reason string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("step %d (%s): %s", v.Step.Index, v.Step.Kind, v.Reason)
}

// Validator gates forward navigation for one board. Checks are local and synchronous.
type Validator struct {
	board    *board.Board
	validate *validator.Validate
}

func NewValidator(b *board.Board) *Validator {
	v := validator.New()
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation(sharedValidator.KakaoTag, sharedValidator.ValidateKakao)
	return &Validator{
		board:    b,
		validate: v,
	}
}

// CanAdvance reports whether the user may leave step index, and why not.
func (v *Validator) CanAdvance(index int, a *Answers) (bool, string) {
	step, ok := StepAt(v.board, a, index)
	if !ok {
		return false, "존재하지 않는 단계입니다."
	}
	if reason := v.Check(step, a); reason != "" {
		return false, reason
	}
	return true, ""
}

// ValidateAll checks every step of the current sequence and returns the first
// violation, or nil when the answers can be submitted.
func (v *Validator) ValidateAll(a *Answers) *Violation {
	for _, step := range ComputeSteps(v.board, a) {
		if reason := v.Check(step, a); reason != "" {
			return &Violation{Step: step, Reason: reason}
		}
	}
	return nil
}

// Check returns the rejection reason for step, or "" when it passes.
func (v *Validator) Check(step Step, a *Answers) string {
	switch step.Kind {
	case StepProgramType:
		return v.checkProgramTypes(a)
	case StepBranchSubjects:
		return v.checkBranch(step.Branch, a)
	case StepSubjects:
		for _, s := range nonBlank(a.Subjects) {
			if !v.board.HasSubject(strings.TrimSpace(s)) {
				return fmt.Sprintf("알 수 없는 과목입니다: %s", s)
			}
		}
		if len(ActiveBranches(v.board, a)) > 0 {
			return ""
		}
		if len(nonBlank(a.Subjects)) == 0 && isBlank(a.SubjectsOther) {
			return "과목을 하나 이상 선택하거나 직접 입력해 주세요."
		}
	case StepLesson:
		return CheckLesson(a.Format, a.Region)
	case StepTitleTags:
		return CheckTitleTags(v.board, a.TitleTags)
	case StepDescription:
		return CheckDescription(a.Description)
	case StepContact:
		return v.CheckContact(a.Email, a.KakaoContact)
	case StepPassword:
		return checkPassword(a.Password, a.PasswordConfirm)
	}
	return ""
}

func (v *Validator) checkProgramTypes(a *Answers) string {
	if len(a.ProgramTypes) == 0 {
		return "프로그램 유형을 하나 이상 선택해 주세요."
	}
	for _, pt := range a.ProgramTypes {
		if !v.board.HasProgramType(pt) {
			return fmt.Sprintf("알 수 없는 프로그램 유형입니다: %s", pt)
		}
	}
	return ""
}

// checkBranch accepts the branch's own presets plus freeform text.
func (v *Validator) checkBranch(programType string, a *Answers) string {
	br, _ := v.board.BranchFor(programType)
	label := br.Label
	if label == "" {
		label = programType + " 과목"
	}

	presets := nonBlank(a.BranchSubjects[programType])
	for _, s := range presets {
		if !slices.Contains(br.Subjects, strings.TrimSpace(s)) {
			return fmt.Sprintf("%s에 없는 과목입니다: %s", label, s)
		}
	}
	if len(presets) > 0 || !isBlank(a.BranchOther[programType]) {
		return ""
	}
	return fmt.Sprintf("%s을(를) 하나 이상 선택하거나 직접 입력해 주세요.", label)
}

// CheckLesson validates the lesson format and the region it may require.
func CheckLesson(format, region string) string {
	f, ok := model.ParseLessonFormat(format)
	if !ok {
		return "수업 방식을 선택해 주세요."
	}
	if f.RequiresRegion() && isBlank(region) {
		return "대면 수업이 가능한 경우 지역을 입력해 주세요."
	}
	return ""
}

// CheckTitleTags enforces 1..limit known tags.
func CheckTitleTags(b *board.Board, tags []string) string {
	if len(tags) == 0 {
		return "제목 태그를 하나 이상 선택해 주세요."
	}
	if len(tags) > b.TitleTagLimit() {
		return fmt.Sprintf("제목 태그는 최대 %d개까지 선택할 수 있습니다.", b.TitleTagLimit())
	}
	for _, tag := range tags {
		if !b.HasTitleTag(tag) {
			return fmt.Sprintf("알 수 없는 제목 태그입니다: %s", tag)
		}
	}
	return ""
}

func CheckDescription(description string) string {
	if isBlank(description) {
		return "상세 내용을 입력해 주세요."
	}
	return ""
}

// CheckContact requires at least one contact channel, each well formed if given.
func (v *Validator) CheckContact(email, kakao string) string {
	if isBlank(email) && isBlank(kakao) {
		return "이메일 또는 카카오톡 연락처 중 하나는 입력해 주세요."
	}
	if !isBlank(email) {
		if err := v.validate.Var(strings.TrimSpace(email), "email"); err != nil {
			return "이메일 형식이 올바르지 않습니다."
		}
	}
	if !isBlank(kakao) {
		if err := v.validate.Var(strings.TrimSpace(kakao), sharedValidator.KakaoTag); err != nil {
			return "카카오톡 ID 형식이 올바르지 않습니다."
		}
	}
	return ""
}

func checkPassword(password, confirm string) string {
	trimmed := strings.TrimSpace(password)
	if trimmed == "" {
		return "비밀번호를 입력해 주세요."
	}
	if len([]rune(trimmed)) < MinPasswordLength {
		return fmt.Sprintf("비밀번호는 최소 %d자 이상이어야 합니다.", MinPasswordLength)
	}
	if trimmed != strings.TrimSpace(confirm) {
		return "비밀번호가 일치하지 않습니다."
	}
	return ""
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if !isBlank(v) {
			out = append(out, v)
		}
	}
	return out
}
