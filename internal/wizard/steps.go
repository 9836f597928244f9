package wizard

import (
	"fmt"
	"slices"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/board"
)

type StepKind string

const (
	StepProgramType    StepKind = "program_type"
	StepBranchSubjects StepKind = "branch_subjects"
	StepSubjects       StepKind = "subjects"
	StepLesson         StepKind = "lesson"
	StepTitleTags      StepKind = "title_tags"
	StepDescription    StepKind = "description"
	StepContact        StepKind = "contact"
	StepPassword       StepKind = "password"
)

// BaseStepCount is the number of steps when no branch is active.
const BaseStepCount = 7

// Step describes the question shown at a 1-based position of the wizard.
type Step struct {
	Index    int      `json:"index"`
	Kind     StepKind `json:"kind"`
	Branch   string   `json:"branch,omitempty"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
}

// ActiveBranches returns the board branches triggered by the selected program
// types, in board definition order.
func ActiveBranches(b *board.Board, a *Answers) []board.Branch {
	var active []board.Branch
	for _, br := range b.Branches {
		if slices.Contains(a.ProgramTypes, br.ProgramType) {
			active = append(active, br)
		}
	}
	return active
}

// ComputeSteps builds the step list for the current answers. It is always
// recomputed: changing the program type changes what every later index means.
func ComputeSteps(b *board.Board, a *Answers) []Step {
	steps := []Step{{
		Kind:     StepProgramType,
		Question: "어떤 프로그램 수업인가요?",
		Options:  b.ProgramTypes,
	}}

	// branch steps go right after the step that decided them
	for _, br := range ActiveBranches(b, a) {
		steps = append(steps, Step{
			Kind:     StepBranchSubjects,
			Branch:   br.ProgramType,
			Question: fmt.Sprintf("%s을(를) 선택해 주세요.", br.Label),
			Options:  br.Subjects,
		})
	}

	steps = append(steps,
		Step{Kind: StepSubjects, Question: "과목을 선택해 주세요.", Options: b.Subjects},
		Step{Kind: StepLesson, Question: "수업 방식과 지역, 학년을 알려 주세요.", Options: b.Regions},
		Step{Kind: StepTitleTags, Question: fmt.Sprintf("제목 태그를 골라 주세요. (최대 %d개)", b.TitleTagLimit()), Options: b.TitleTags},
		Step{Kind: StepDescription, Question: "상세 내용을 입력해 주세요."},
		Step{Kind: StepContact, Question: "연락 받을 이메일 또는 카카오톡 ID를 입력해 주세요."},
		Step{Kind: StepPassword, Question: "글 수정에 사용할 비밀번호를 정해 주세요."},
	)

	for i := range steps {
		steps[i].Index = i + 1
	}
	return steps
}

// StepAt returns the step at a 1-based index.
func StepAt(b *board.Board, a *Answers, index int) (Step, bool) {
	steps := ComputeSteps(b, a)
	if index < 1 || index > len(steps) {
		return Step{}, false
	}
	return steps[index-1], true
}
