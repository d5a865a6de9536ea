package story

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"alcfg/internal/namecode"
	"alcfg/internal/resource"
	"alcfg/internal/valueutil"
)

const (
	// Version stamps the structured dialogue document.
	Version = "1.0"
	// Description is written into the document metadata.
	Description = "碧蓝航线剧情对话 - 已替换namecode，按数字顺序排序，只包含纯对话文本"
	// TimeLayout is the local timestamp format of generated_at.
	TimeLayout = "2006-01-02T15:04:05.000000"
)

// Default labels for unresolved titles and groups.
const (
	DefaultUnknownTitle = "未知标题"
	DefaultUngrouped    = "未分组剧情"
	DefaultUnknownGroup = "未知组"
)

// Options carries the fallback labels.
type Options struct {
	UnknownTitle string
	Ungrouped    string
	UnknownGroup string
}

func (o Options) withDefaults() Options {
	if o.UnknownTitle == "" {
		o.UnknownTitle = DefaultUnknownTitle
	}
	if o.Ungrouped == "" {
		o.Ungrouped = DefaultUngrouped
	}
	if o.UnknownGroup == "" {
		o.UnknownGroup = DefaultUnknownGroup
	}
	return o
}

// Inputs are the tables the structurer reads.
type Inputs struct {
	Stories   *resource.Table
	Templates *resource.Table
	Groups    *resource.Table
	Codes     *namecode.Table
}

// Document is the story_dialogues_structured.json document.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Groups   []Group  `json:"groups"`
}

// Metadata describes the generated document.
type Metadata struct {
	GeneratedAt string `json:"generated_at"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// Group is a titled set of episodes ordered by story key.
type Group struct {
	GroupTitle string    `json:"group_title"`
	Episodes   []Episode `json:"episodes"`
}

// Episode is the dialogue of one story.
type Episode struct {
	StoryKey     string   `json:"story_key"`
	EpisodeTitle string   `json:"episode_title"`
	MemoryID     *string  `json:"memory_id"`
	Dialogues    []string `json:"dialogues"`
}

// EpisodeCount returns the number of episodes across all groups.
func (d Document) EpisodeCount() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Episodes)
	}
	return n
}

type memory struct {
	id    string
	title string
}

// Structure builds the grouped dialogue document.
func Structure(in Inputs, opts Options, now time.Time) Document {
	opts = opts.withDefaults()
	fold := cases.Fold()

	memories := indexTemplates(in.Templates, fold, opts.UnknownTitle)
	groupOf := indexGroups(in.Groups, opts.UnknownGroup)

	byGroup := map[string][]Episode{}
	if in.Stories != nil {
		for _, key := range in.Stories.Keys() {
			content, _ := in.Stories.Get(key)
			dialogues := Dialogues(content, in.Codes)
			if len(dialogues) == 0 {
				continue
			}

			episode := Episode{StoryKey: key, EpisodeTitle: "[" + key + "]", Dialogues: dialogues}
			groupTitle := opts.Ungrouped
			if m, ok := memories[fold.String(key)]; ok {
				id := m.id
				episode.MemoryID = &id
				episode.EpisodeTitle = m.title
				if title, ok := groupOf[id]; ok {
					groupTitle = title
				}
			}
			byGroup[groupTitle] = append(byGroup[groupTitle], episode)
		}
	}

	doc := Document{
		Metadata: Metadata{
			GeneratedAt: now.Format(TimeLayout),
			Version:     Version,
			Description: Description,
		},
		Groups: make([]Group, 0, len(byGroup)),
	}
	for _, title := range slices.Sorted(maps.Keys(byGroup)) {
		episodes := byGroup[title]
		slices.SortStableFunc(episodes, func(a, b Episode) int { return cmp.Compare(a.StoryKey, b.StoryKey) })
		doc.Groups = append(doc.Groups, Group{GroupTitle: title, Episodes: episodes})
	}
	return doc
}

// indexTemplates maps folded story keys to their memory. The id comes from
// the first template naming the story and the title from the last one. A
// title that looks like a "[key]" placeholder falls back to the first
// template's own title.
func indexTemplates(templates *resource.Table, fold cases.Caser, unknownTitle string) map[string]memory {
	out := map[string]memory{}
	firstTitle := map[string]string{}
	if templates == nil {
		return out
	}
	for _, id := range templates.Keys() {
		rec, ok := templates.Object(id)
		if !ok {
			continue
		}
		storyKey, ok := rec["story"].(string)
		if !ok || storyKey == "" {
			continue
		}
		folded := fold.String(storyKey)
		title := unknownTitle
		v, hasTitle := rec["title"]
		if hasTitle {
			title = valueutil.String(v)
		}
		if m, seen := out[folded]; seen {
			m.title = title
			out[folded] = m
			continue
		}
		if hasTitle {
			firstTitle[folded] = title
		}
		out[folded] = memory{id: id, title: title}
	}
	for key, m := range out {
		if t, ok := firstTitle[key]; ok && strings.HasPrefix(m.title, "[") {
			m.title = t
			out[key] = m
		}
	}
	return out
}

// indexGroups maps memory ids to their group title. Later groups win.
func indexGroups(groups *resource.Table, unknownGroup string) map[string]string {
	out := map[string]string{}
	if groups == nil {
		return out
	}
	for _, id := range groups.Keys() {
		rec, ok := groups.Object(id)
		if !ok {
			continue
		}
		title := unknownGroup
		if v, ok := rec["title"]; ok {
			title = valueutil.String(v)
		}
		list, _ := rec["memories"].([]any)
		for _, mid := range list {
			out[valueutil.String(mid)] = title
		}
	}
	return out
}
