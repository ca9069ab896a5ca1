package staffing

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
)

// RoleKeywords holds the substrings used to classify free-form position
// labels into role classes. Facilities label the same job differently
// ("Shift Lead", "Unit Supervisor", "Ward Manager"), so the lists are
// loadable from a YAML file; the compiled-in defaults cover the common
// English labels.
type RoleKeywords struct {
	Supervisor      []string `yaml:"supervisor"`
	SeniorCaregiver []string `yaml:"senior_caregiver"`
	Caregiver       []string `yaml:"caregiver"`
	Nurse           []string `yaml:"nurse"`
}

func DefaultRoleKeywords() RoleKeywords {
	return RoleKeywords{
		Supervisor:      []string{"supervisor", "lead", "manager", "director", "head"},
		SeniorCaregiver: []string{"senior caregiver", "senior care"},
		Caregiver:       []string{"caregiver", "care assistant", "care aide", "aide"},
		Nurse:           []string{"nurse"},
	}
}

// LoadRoleKeywords reads keyword lists from a YAML file. Missing sections
// fall back to the defaults so a partial override file stays valid.
func LoadRoleKeywords(path string) (RoleKeywords, error) {
	kw := DefaultRoleKeywords()

	data, err := os.ReadFile(path)
	if err != nil {
		return kw, fmt.Errorf("read role keywords: %w", err)
	}

	var loaded RoleKeywords
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return kw, fmt.Errorf("parse role keywords: %w", err)
	}

	if len(loaded.Supervisor) > 0 {
		kw.Supervisor = loaded.Supervisor
	}
	if len(loaded.SeniorCaregiver) > 0 {
		kw.SeniorCaregiver = loaded.SeniorCaregiver
	}
	if len(loaded.Caregiver) > 0 {
		kw.Caregiver = loaded.Caregiver
	}
	if len(loaded.Nurse) > 0 {
		kw.Nurse = loaded.Nurse
	}
	return kw, nil
}

// fold lowercases a label in a locale-agnostic way so keyword matching
// behaves the same for "NURSE", "Nurse" and folded non-ASCII labels. A
// cases.Caser may be stateful, so each call gets its own; Ranker promises
// concurrent safety and must not share one across goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}
