package engine

import (
	"reflect"
	"testing"

	"github.com/fgclab/arena-api/internal/models"
)

func member(name, character string, winRate int, skills models.Skills) models.RosterMember {
	return models.RosterMember{
		Name:          name,
		Character:     character,
		WinRate:       winRate,
		Skills:        skills,
		StrengthScore: Score(skills),
		Style:         Classify(character),
	}
}

func flatSkills(v int) models.Skills {
	return models.Skills{Offense: v, Defense: v, Adaptation: v, Execution: v, Footsies: v}
}

func TestAggregateOverallSkill(t *testing.T) {
	roster := models.Roster{Members: []models.RosterMember{
		member("A", "Ryu", 50, flatSkills(80)),
		member("B", "Guile", 50, flatSkills(60)),
	}}

	got := Aggregate(roster)
	if got.OverallSkill != 70 {
		t.Errorf("OverallSkill = %d, want 70", got.OverallSkill)
	}
}

func TestAggregateEmptyRoster(t *testing.T) {
	got := Aggregate(models.Roster{})
	if got.OverallSkill != 0 {
		t.Errorf("OverallSkill for empty roster = %d, want 0", got.OverallSkill)
	}
	if len(got.Strengths) == 0 || len(got.Weaknesses) == 0 {
		t.Error("label lists must never be empty")
	}
}

func TestAggregateIdempotent(t *testing.T) {
	roster := models.Roster{Members: []models.RosterMember{
		member("A", "Zangief", 70, flatSkills(75)),
		member("B", "Cammy", 60, flatSkills(55)),
		member("C", "Dhalsim", 40, flatSkills(45)),
	}}

	once := Aggregate(roster)
	twice := Aggregate(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Aggregate is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := member("A", "Zangief", 70, flatSkills(75))
	b := member("B", "Cammy", 60, flatSkills(55))
	c := member("C", "Dhalsim", 40, flatSkills(45))

	fwd := Aggregate(models.Roster{Members: []models.RosterMember{a, b, c}})
	rev := Aggregate(models.Roster{Members: []models.RosterMember{c, b, a}})

	if fwd.OverallSkill != rev.OverallSkill {
		t.Errorf("OverallSkill differs by order: %d vs %d", fwd.OverallSkill, rev.OverallSkill)
	}
	if !reflect.DeepEqual(fwd.Strengths, rev.Strengths) {
		t.Errorf("Strengths differ by order: %v vs %v", fwd.Strengths, rev.Strengths)
	}
	if !reflect.DeepEqual(fwd.Weaknesses, rev.Weaknesses) {
		t.Errorf("Weaknesses differ by order: %v vs %v", fwd.Weaknesses, rev.Weaknesses)
	}
}

func TestAggregateStrengthLabels(t *testing.T) {
	tests := []struct {
		name    string
		members []models.RosterMember
		want    []string
	}{
		{
			name: "SpecialistTeam",
			members: []models.RosterMember{
				member("A", "Zangief", 50, flatSkills(50)),
				member("B", "Manon", 50, flatSkills(50)),
				member("C", "Lily", 50, flatSkills(50)),
				member("D", "Ken", 50, flatSkills(50)),
			},
			want: []string{"Grappler Specialist Team"},
		},
		{
			name: "DiverseSelection",
			members: []models.RosterMember{
				member("A", "Zangief", 50, flatSkills(50)),
				member("B", "Cammy", 50, flatSkills(50)),
				member("C", "Dhalsim", 50, flatSkills(50)),
			},
			want: []string{"Diverse Character Selection"},
		},
		{
			name: "HighSkillAndRecord",
			members: []models.RosterMember{
				member("A", "Ryu", 80, flatSkills(90)),
			},
			want: []string{"High Overall Skill Level", "Strong Win Record", "Strong Offensive Capability", "Solid Defensive Skills"},
		},
		{
			name: "NoRuleFires",
			members: []models.RosterMember{
				member("A", "Ryu", 50, flatSkills(50)),
				member("B", "Guile", 50, flatSkills(50)),
			},
			want: []string{NoStrengthsSentinel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(models.Roster{Members: tt.members})
			if !reflect.DeepEqual(got.Strengths, tt.want) {
				t.Errorf("Strengths = %v, want %v", got.Strengths, tt.want)
			}
		})
	}
}

func TestAggregateWeaknessLabels(t *testing.T) {
	tests := []struct {
		name    string
		members []models.RosterMember
		want    []string
	}{
		{
			name: "LowEverything",
			members: []models.RosterMember{
				member("A", "Ryu", 30, flatSkills(30)),
			},
			want: []string{"Low Overall Skill Level", "Poor Win Record", "Limited Offensive Pressure", "Vulnerable Defense"},
		},
		{
			name: "NoDiversity",
			members: []models.RosterMember{
				member("A", "Zangief", 50, flatSkills(50)),
				member("B", "Zangief", 50, flatSkills(50)),
				member("C", "Zangief", 50, flatSkills(50)),
			},
			want: []string{"Lack of Character Diversity"},
		},
		{
			name: "NoRuleFires",
			members: []models.RosterMember{
				member("A", "Ryu", 50, flatSkills(50)),
				member("B", "Guile", 50, flatSkills(50)),
			},
			want: []string{NoWeaknessesSentinel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(models.Roster{Members: tt.members})
			if !reflect.DeepEqual(got.Weaknesses, tt.want) {
				t.Errorf("Weaknesses = %v, want %v", got.Weaknesses, tt.want)
			}
		})
	}
}
