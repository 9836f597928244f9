// Package board holds the declarative board definitions. Every listing board
// (hagwon request, student job, ...) is the same component configured here.
package board

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMaxTitleTags is used when a board does not set maxTitleTags.
const DefaultMaxTitleTags = 3

//go:embed boards.yaml
var defaultDefinitions []byte

// Branch adds a subject-selection step when its program type is chosen.
type Branch struct {
	ProgramType string   `yaml:"programType" json:"programType"`
	Label       string   `yaml:"label" json:"label"`
	Subjects    []string `yaml:"subjects" json:"subjects"`
}

type Board struct {
	Key          string   `yaml:"key" json:"key"`
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description" json:"description,omitempty"`
	ProgramTypes []string `yaml:"programTypes" json:"programTypes"`
	Subjects     []string `yaml:"subjects" json:"subjects"`
	Branches     []Branch `yaml:"branches" json:"branches"`
	TitleTags    []string `yaml:"titleTags" json:"titleTags"`
	MaxTitleTags int      `yaml:"maxTitleTags" json:"maxTitleTags"`
	Regions      []string `yaml:"regions" json:"regions,omitempty"`
}

func (b *Board) HasProgramType(programType string) bool {
	return slices.Contains(b.ProgramTypes, programType)
}

// HasSubject reports whether subject is one of the general presets.
func (b *Board) HasSubject(subject string) bool {
	return slices.Contains(b.Subjects, subject)
}

// BranchFor returns the branch triggered by programType.
func (b *Board) BranchFor(programType string) (Branch, bool) {
	for _, br := range b.Branches {
		if br.ProgramType == programType {
			return br, true
		}
	}
	return Branch{}, false
}

func (b *Board) HasTitleTag(tag string) bool {
	return slices.Contains(b.TitleTags, tag)
}

// TitleTagLimit returns the maximum number of title tags a listing may carry.
func (b *Board) TitleTagLimit() int {
	if b.MaxTitleTags <= 0 {
		return DefaultMaxTitleTags
	}
	return b.MaxTitleTags
}

type file struct {
	Boards []*Board `yaml:"boards"`
}

// Registry is the read-only set of boards loaded at startup.
type Registry struct {
	boards []*Board
	byKey  map[string]*Board
}

// Load reads board definitions from path, or the embedded defaults when path is empty.
func Load(path string) (*Registry, error) {
	if path == "" {
		slog.Info("내장 게시판 정의 사용")
		return Parse(defaultDefinitions)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("게시판 정의 파일 읽기 실패: %s: %w", path, err)
	}

	registry, err := Parse(data)
	if err != nil {
		return nil, err
	}
	slog.Info("게시판 정의 파일 로드", "file", path, "boards", len(registry.boards))
	return registry, nil
}

// Default returns the embedded board definitions.
func Default() *Registry {
	registry, err := Parse(defaultDefinitions)
	if err != nil {
		panic(err)
	}
	return registry
}

// Parse decodes and validates a YAML board file.
func Parse(data []byte) (*Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("게시판 정의 파싱 실패: %w", err)
	}

	if len(f.Boards) == 0 {
		return nil, fmt.Errorf("게시판 정의가 비어 있습니다")
	}

	registry := &Registry{byKey: make(map[string]*Board, len(f.Boards))}
	for _, b := range f.Boards {
		if err := validate(b); err != nil {
			return nil, err
		}
		if _, dup := registry.byKey[b.Key]; dup {
			return nil, fmt.Errorf("중복된 게시판 key: %s", b.Key)
		}
		if b.MaxTitleTags <= 0 {
			b.MaxTitleTags = DefaultMaxTitleTags
		}
		registry.boards = append(registry.boards, b)
		registry.byKey[b.Key] = b
	}
	return registry, nil
}

func validate(b *Board) error {
	if b == nil || strings.TrimSpace(b.Key) == "" {
		return fmt.Errorf("게시판 key가 필요합니다")
	}
	if len(b.ProgramTypes) == 0 {
		return fmt.Errorf("게시판 %s: programTypes가 필요합니다", b.Key)
	}
	if len(b.TitleTags) == 0 {
		return fmt.Errorf("게시판 %s: titleTags가 필요합니다", b.Key)
	}
	seen := map[string]bool{}
	for _, br := range b.Branches {
		if !b.HasProgramType(br.ProgramType) {
			return fmt.Errorf("게시판 %s: 알 수 없는 branch programType %q", b.Key, br.ProgramType)
		}
		if seen[br.ProgramType] {
			return fmt.Errorf("게시판 %s: 중복된 branch programType %q", b.Key, br.ProgramType)
		}
		seen[br.ProgramType] = true
	}
	return nil
}

func (r *Registry) Get(key string) (*Board, bool) {
	b, ok := r.byKey[key]
	return b, ok
}

// All returns boards in definition order.
func (r *Registry) All() []*Board {
	return r.boards
}
