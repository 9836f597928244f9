package wizard

import "slices"

// Answers is the whole form state of the posting wizard. It is posted as-is by
// the client on every wizard call and on submission.
type Answers struct {
	ProgramTypes []string `json:"programTypes"`

	// general subjects step
	Subjects      []string `json:"subjects"`
	SubjectsOther string   `json:"subjectsOther"`

	// branch steps, keyed by program type (e.g. "IB")
	BranchSubjects map[string][]string `json:"branchSubjects"`
	BranchOther    map[string]string   `json:"branchOther"`

	Level  string `json:"level"`
	Format string `json:"format"`
	Region string `json:"region"`

	TitleTags   []string `json:"titleTags"`
	Description string   `json:"description"`

	Email        string `json:"email"`
	KakaoContact string `json:"kakaoContact"`

	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

func (a *Answers) ToggleProgramType(programType string) {
	a.ProgramTypes = toggle(a.ProgramTypes, programType)
}

func (a *Answers) ToggleSubject(subject string) {
	a.Subjects = toggle(a.Subjects, subject)
}

func (a *Answers) ToggleBranchSubject(programType, subject string) {
	if a.BranchSubjects == nil {
		a.BranchSubjects = map[string][]string{}
	}
	a.BranchSubjects[programType] = toggle(a.BranchSubjects[programType], subject)
}

func (a *Answers) SetBranchOther(programType, text string) {
	if a.BranchOther == nil {
		a.BranchOther = map[string]string{}
	}
	a.BranchOther[programType] = text
}

// ToggleTitleTag removes tag if selected, otherwise adds it unless max tags are
// already selected. It reports whether the selection changed.
func (a *Answers) ToggleTitleTag(tag string, max int) bool {
	if i := slices.Index(a.TitleTags, tag); i >= 0 {
		a.TitleTags = slices.Delete(a.TitleTags, i, i+1)
		return true
	}
	if len(a.TitleTags) >= max {
		return false
	}
	a.TitleTags = append(a.TitleTags, tag)
	return true
}

func toggle(values []string, v string) []string {
	if i := slices.Index(values, v); i >= 0 {
		return slices.Delete(values, i, i+1)
	}
	return append(values, v)
}
