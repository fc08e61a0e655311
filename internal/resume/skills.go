package resume

import "strings"

// SkillsParser reads the SKILLS section. Only lines containing a colon
// define a category: the text before the colon (leading bullet marker
// stripped) names the group, the text after it splits on commas into items.
// Lines without a colon, and colon lines with nothing after the colon, are
// ignored. Known limitation: skill lists wrapped onto a following
// continuation line are dropped, not merged into the previous category.
type SkillsParser struct{}

// Parse returns the skill groups in order of first appearance. A category
// repeated later in the section merges its items into the first occurrence
// so category names stay unique.
func (SkillsParser) Parse(lines []string) SkillGroups {
	var groups SkillGroups
	index := make(map[string]int)

	for _, line := range lines {
		line = StripBullet(line)
		before, after, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		category := strings.TrimSpace(before)
		items := splitComma(after)
		if category == "" || len(items) == 0 {
			continue
		}

		if i, seen := index[category]; seen {
			groups[i].Items = append(groups[i].Items, items...)
			continue
		}
		index[category] = len(groups)
		groups = append(groups, SkillGroup{Category: category, Items: items})
	}

	return groups
}
