package pipeline

import (
	"context"

	"alcfg/internal/artifact"
	"alcfg/internal/auxtable"
	"alcfg/internal/logging"
	"alcfg/internal/resource"
	"alcfg/internal/roster"
	"alcfg/internal/services"
	"alcfg/internal/story"
	"alcfg/internal/voice"
)

type combinedStage struct{}

func (combinedStage) Name() string { return StageCombined }

func (combinedStage) Requires() []string { return []string{FileShips, FileNameCode} }

func (combinedStage) Run(_ context.Context, env *Env) error {
	ships, _ := env.Table(FileShips)
	codes := env.Codes()
	if ships.Len() == 0 || codes.Len() == 0 {
		return services.Wrap(services.ErrMalformedInput, StageCombined, "load",
			"ship template or namecode table is empty", nil)
	}
	words, _ := env.Table(FileWords)

	doc := roster.GenerateCombined(ships, words, codes, env.Now())
	if err := env.Write(OutputCombined, doc); err != nil {
		return services.Wrap(services.ErrOutput, StageCombined, "write", OutputCombined, err)
	}
	if err := env.Write(OutputZuming, doc.ZumingData); err != nil {
		return services.Wrap(services.ErrOutput, StageCombined, "write", OutputZuming, err)
	}

	filter, found := env.OptionalTable(FilePaintingFilter)
	if found {
		env.Notice("painting filter loaded", logging.Int("entries", filter.Len()))
	} else {
		env.Notice("painting filter not found; res_list left empty",
			logging.String(logging.FieldResource, FilePaintingFilter))
	}
	if err := env.Write(OutputName, roster.BuildNameView(doc.Ships, filter)); err != nil {
		return services.Wrap(services.ErrOutput, StageCombined, "write", OutputName, err)
	}

	env.Notice("combined data generated",
		logging.Int("ships", len(doc.Ships)),
		logging.Int("skins", len(doc.Skins)),
		logging.Int("words", doc.Words.Len()),
	)
	return nil
}

type voiceStage struct{}

func (voiceStage) Name() string { return StageVoice }

func (voiceStage) Requires() []string { return []string{FileShips, FileWords} }

func (voiceStage) Run(_ context.Context, env *Env) error {
	template, _ := env.Table(FileShips)
	words, _ := env.Table(FileWords)

	opts := voice.Options{UnknownSkin: env.Labels().UnknownSkin}
	if _, found := env.OptionalTable(FileNameCode); found {
		opts.Codes = env.Codes()
	}
	mapping := voice.Build(template, words, opts)
	if err := env.Write(OutputVoice, mapping, artifact.WithIndent(voiceIndent)); err != nil {
		return services.Wrap(services.ErrOutput, StageVoice, "write", OutputVoice, err)
	}
	env.Notice("voice mapping generated", logging.Int("groups", mapping.Len()))
	return nil
}

type storyStage struct{}

func (storyStage) Name() string { return StageStory }

func (storyStage) Requires() []string {
	return []string{FileStory, FileMemoryTemplate, FileMemoryGroup, FileNameCode}
}

func (storyStage) Run(_ context.Context, env *Env) error {
	stories, _ := env.Table(FileStory)
	templates, _ := env.Table(FileMemoryTemplate)
	groups, _ := env.Table(FileMemoryGroup)

	labels := env.Labels()
	doc := story.Structure(story.Inputs{
		Stories:   stories,
		Templates: templates,
		Groups:    groups,
		Codes:     env.Codes(),
	}, story.Options{
		UnknownTitle: labels.UnknownTitle,
		Ungrouped:    labels.Ungrouped,
		UnknownGroup: labels.UnknownGroup,
	}, env.Now())

	if err := env.Write(OutputStory, doc); err != nil {
		return services.Wrap(services.ErrOutput, StageStory, "write", OutputStory, err)
	}
	env.Notice("story dialogues generated",
		logging.Int("groups", len(doc.Groups)),
		logging.Int("episodes", doc.EpisodeCount()),
	)
	return nil
}

type auxStage struct{}

func (auxStage) Name() string { return StageAux }

func (auxStage) Requires() []string { return nil }

func (auxStage) Run(_ context.Context, env *Env) error {
	tables := map[auxtable.TableID]*resource.Table{}
	for _, s := range auxtable.Strategies() {
		if table, found := env.OptionalTable(s.File); found {
			tables[s.ID] = table
		}
	}
	if len(tables) == 0 {
		return services.Wrap(services.ErrMissingInput, StageAux, "load", "no auxiliary tables found", nil)
	}

	sections, skipped, err := auxtable.ConvertAll(tables, env.Codes())
	if err != nil {
		return services.Wrap(services.ErrMalformedInput, StageAux, "convert", "", err)
	}
	for _, id := range skipped {
		env.Notice("auxiliary table skipped", logging.String("table", id.String()))
	}
	if len(sections) == 0 {
		return services.Wrap(services.ErrMalformedInput, StageAux, "convert", "every auxiliary table was empty", nil)
	}

	doc, err := auxtable.Assemble(sections)
	if err != nil {
		return services.Wrap(services.ErrOutput, StageAux, "assemble", "", err)
	}
	if err := env.WriteRaw(OutputAux, doc); err != nil {
		return services.Wrap(services.ErrOutput, StageAux, "write", OutputAux, err)
	}
	env.Notice("auxiliary config generated", logging.Int("sections", len(sections)))
	return nil
}
