// Package engine implements the team matchup prediction engine: archetype
// classification, strength scoring, roster aggregation and pairwise matchup
// prediction. Every function is pure and deterministic - the engine holds no
// state between calls and never mutates its inputs.
package engine

import "github.com/fgclab/arena-api/internal/models"

// characterArchetypes is the fixed classification table. Unlisted characters
// degrade to Unknown rather than failing.
var characterArchetypes = map[string]models.Archetype{
	// All-rounders
	"Ryu":   models.ArchetypeAllRounder,
	"Ken":   models.ArchetypeAllRounder,
	"Luke":  models.ArchetypeAllRounder,
	"Akuma": models.ArchetypeAllRounder,

	// Rushdown
	"Cammy":    models.ArchetypeRushdown,
	"Juri":     models.ArchetypeRushdown,
	"Kimberly": models.ArchetypeRushdown,
	"Rashid":   models.ArchetypeRushdown,

	// Zoners
	"Dhalsim": models.ArchetypeZoner,
	"Guile":   models.ArchetypeZoner,
	"JP":      models.ArchetypeZoner,

	// Grapplers
	"Zangief": models.ArchetypeGrappler,
	"Manon":   models.ArchetypeGrappler,
	"Lily":    models.ArchetypeGrappler,
	"E.Honda": models.ArchetypeGrappler,

	// Mixed / tricky
	"Blanka":  models.ArchetypeMixed,
	"A.K.I.":  models.ArchetypeMixed,
	"Dee Jay": models.ArchetypeMixed,

	// Balanced
	"Chun-Li": models.ArchetypeBalanced,
	"Jamie":   models.ArchetypeBalanced,
	"Marisa":  models.ArchetypeBalanced,
}

// Classify maps a character identifier to its playstyle archetype.
// Matching is case-sensitive; unrecognized identifiers yield Unknown.
func Classify(character string) models.Archetype {
	if a, ok := characterArchetypes[character]; ok {
		return a
	}
	return models.ArchetypeUnknown
}
