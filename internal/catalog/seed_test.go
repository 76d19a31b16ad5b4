package catalog

import "testing"

func TestSeedSourcesWellFormed(t *testing.T) {
	if len(seedSources) == 0 {
		t.Fatal("seed catalog is empty")
	}

	slugs := make(map[string]bool, len(seedSources))
	tiers := make(map[int]bool)

	for _, cmd := range seedSources {
		if cmd.Slug == "" {
			t.Errorf("source %q has empty slug", cmd.Title)
		}
		if slugs[cmd.Slug] {
			t.Errorf("duplicate slug %q", cmd.Slug)
		}
		slugs[cmd.Slug] = true

		if cmd.Tier < MinTier || cmd.Tier > MaxTier {
			t.Errorf("source %q has invalid tier %d", cmd.Slug, cmd.Tier)
		}
		tiers[cmd.Tier] = true

		if !validFormat(cmd.Format) {
			t.Errorf("source %q has invalid format %q", cmd.Slug, cmd.Format)
		}
		if cmd.Language == "" {
			t.Errorf("source %q has empty language", cmd.Slug)
		}
	}

	for tier := MinTier; tier <= MaxTier; tier++ {
		if !tiers[tier] {
			t.Errorf("no seed source covers tier %d", tier)
		}
	}
}

func TestSeedParallelGroupsPaired(t *testing.T) {
	groups := make(map[string][]RegisterCommand)
	for _, cmd := range seedSources {
		if cmd.ParallelGroup != nil {
			groups[*cmd.ParallelGroup] = append(groups[*cmd.ParallelGroup], cmd)
		}
	}

	for group, members := range groups {
		if len(members) < 2 {
			t.Errorf("parallel group %q has only %d member", group, len(members))
			continue
		}

		langs := make(map[string]bool)
		for _, m := range members {
			langs[m.Language] = true
		}
		if len(langs) < 2 {
			t.Errorf("parallel group %q spans a single language", group)
		}
	}
}
