package domain

import (
	"fmt"
	"strings"
)

type CareerField string

const (
	FieldTechnology  CareerField = "technology"
	FieldFinance     CareerField = "finance"
	FieldHealthcare  CareerField = "healthcare"
	FieldMarketing   CareerField = "marketing"
	FieldSales       CareerField = "sales"
	FieldEngineering CareerField = "engineering"
	FieldDataScience CareerField = "data_science"
	FieldDesign      CareerField = "design"
)

// AllCareerFields is the closed set of fields. The strategy catalog must
// cover every entry.
var AllCareerFields = []CareerField{
	FieldTechnology,
	FieldFinance,
	FieldHealthcare,
	FieldMarketing,
	FieldSales,
	FieldEngineering,
	FieldDataScience,
	FieldDesign,
}

func (f CareerField) Valid() bool {
	for _, v := range AllCareerFields {
		if v == f {
			return true
		}
	}
	return false
}

func ParseCareerField(s string) (CareerField, error) {
	f := CareerField(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unknown career field %q", s)
	}
	return f, nil
}

type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelExecutive ExperienceLevel = "executive"
)

var AllExperienceLevels = []ExperienceLevel{
	LevelEntry,
	LevelMid,
	LevelSenior,
	LevelLead,
	LevelExecutive,
}

func (l ExperienceLevel) Valid() bool {
	for _, v := range AllExperienceLevels {
		if v == l {
			return true
		}
	}
	return false
}

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	l := ExperienceLevel(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown experience level %q", s)
	}
	return l, nil
}

// JobBoard identifies the provider a posting came from.
type JobBoard string

const (
	BoardIndeed     JobBoard = "indeed"
	BoardLinkedIn   JobBoard = "linkedin"
	BoardGlassdoor  JobBoard = "glassdoor"
	BoardLever      JobBoard = "lever"
	BoardGreenhouse JobBoard = "greenhouse"
)

var AllJobBoards = []JobBoard{
	BoardIndeed,
	BoardLinkedIn,
	BoardGlassdoor,
	BoardLever,
	BoardGreenhouse,
}

func (b JobBoard) Valid() bool {
	for _, v := range AllJobBoards {
		if v == b {
			return true
		}
	}
	return false
}

// JobID namespaces a provider-native id so ids stay unique across boards.
func JobID(board JobBoard, nativeID string) string {
	return string(board) + "_" + strings.TrimSpace(nativeID)
}

var companySizes = map[string]bool{
	"":           true,
	"startup":    true,
	"small":      true,
	"medium":     true,
	"large":      true,
	"enterprise": true,
}
