package pipeline

import (
	"slices"

	"alcfg/internal/auxtable"
)

// Input tables.
const (
	FileShips          = "ship_skin_template.json"
	FileWords          = "ship_skin_words.json"
	FileNameCode       = "name_code.json"
	FileStory          = "story.json"
	FileMemoryTemplate = "memory_template.json"
	FileMemoryGroup    = "memory_group.json"
	FilePaintingFilter = "painting_filte_map.json"
)

// Generated artifacts.
const (
	OutputCombined = "al_combined_final.json"
	OutputZuming   = "zuming.json"
	OutputName     = "name.json"
	OutputVoice    = "skin_voice_mapping_optimized.json"
	OutputStory    = "story_dialogues_structured.json"
	OutputAux      = "aux_config.json"
)

// Stage names, in run order.
const (
	StageCombined = "combined"
	StageVoice    = "voice"
	StageStory    = "story"
	StageAux      = "aux"
)

// voiceIndent matches the wider indentation the voice mapping has always used.
const voiceIndent = 4

// InputFiles lists every table a generate run may read: the core inputs
// followed by the auxiliary tables, without duplicates.
func InputFiles() []string {
	files := []string{
		FileShips,
		FileWords,
		FileNameCode,
		FileStory,
		FileMemoryTemplate,
		FileMemoryGroup,
		FilePaintingFilter,
	}
	for _, s := range auxtable.Strategies() {
		if !slices.Contains(files, s.File) {
			files = append(files, s.File)
		}
	}
	return files
}
