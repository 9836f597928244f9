package listing

import (
	"strings"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/board"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/model"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/wizard"
)

// MergeSubjects flattens every subject source into one list: branch subjects in
// step order, general presets, then freeform text split on commas. Blank and
// repeated entries are dropped, keeping the first occurrence.
func MergeSubjects(b *board.Board, a *wizard.Answers) []string {
	seen := map[string]struct{}{}
	var merged []string
	add := func(values ...string) {
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			merged = append(merged, v)
		}
	}

	for _, br := range wizard.ActiveBranches(b, a) {
		add(a.BranchSubjects[br.ProgramType]...)
		add(splitFreeform(a.BranchOther[br.ProgramType])...)
	}
	add(a.Subjects...)
	add(splitFreeform(a.SubjectsOther)...)
	return merged
}

func splitFreeform(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(text, ",")
}

// buildListing maps validated answers onto a new OPEN listing.
func buildListing(b *board.Board, a *wizard.Answers, passwordHash string) *model.Listing {
	format, _ := model.ParseLessonFormat(a.Format)

	l := model.NewListing(b.Key, passwordHash)
	l.ProgramTypes = append([]string(nil), a.ProgramTypes...)
	l.Subjects = MergeSubjects(b, a)
	l.Level = strings.TrimSpace(a.Level)
	l.Format = format
	l.Region = strings.TrimSpace(a.Region)
	l.TitleTags = append([]string(nil), a.TitleTags...)
	l.Description = strings.TrimSpace(a.Description)
	l.Email = strings.TrimSpace(a.Email)
	l.KakaoContact = strings.TrimSpace(a.KakaoContact)
	return l
}
