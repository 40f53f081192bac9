package domain

import (
	"sort"
	"strings"
)

// DocumentSet maps document names to their loaded trees
type DocumentSet map[string]*Node

// Enums holds the advisory value lists for constrained fields
type Enums struct {
	Rarities []string
	Elements []string
}

const elementSentinel = "NONE"

// InferEnums derives rarity tiers from the Rarities document's key order
// and elemental tags from the element/elements fields of skills.
func InferEnums(docs DocumentSet) Enums {
	var enums Enums
	if rarities, ok := docs[DocRarities]; ok {
		enums.Rarities = rarities.Keys()
	}
	enums.Elements = inferElements(docs[DocSkills])
	return enums
}

func inferElements(skills *Node) []string {
	if !skills.IsMap() {
		return nil
	}
	scan, err := Resolve(skills, SkillsBase(skills))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	add := func(v *Node) {
		if v.Kind() != KindString {
			return
		}
		tag := v.StringValue()
		if strings.EqualFold(tag, elementSentinel) {
			return
		}
		seen[tag] = true
	}

	scan.Each(func(_ string, skill *Node) {
		for _, key := range []string{"element", "elements"} {
			v, ok := skill.Get(key)
			if !ok {
				continue
			}
			if v.IsList() {
				for _, item := range v.Items() {
					add(item)
				}
				continue
			}
			add(v)
		}
	})

	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
