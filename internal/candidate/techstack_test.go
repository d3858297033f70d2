package candidate

import (
	"slices"
	"strings"
	"testing"
)

func findCategory(parsed []TechCategory, name string) (TechCategory, bool) {
	for _, cat := range parsed {
		if cat.Name == name {
			return cat, true
		}
	}
	return TechCategory{}, false
}

func TestParseTechStack(t *testing.T) {
	t.Run("common full stack", func(t *testing.T) {
		parsed := ParseTechStack("Python, React, MongoDB")

		languages, ok := findCategory(parsed, "languages")
		if !ok || !slices.Contains(languages.Items, "Python") {
			t.Errorf("expected Python under languages, got %+v", parsed)
		}
		frameworks, ok := findCategory(parsed, "frameworks")
		if !ok || !slices.Contains(frameworks.Items, "React") {
			t.Errorf("expected React under frameworks, got %+v", parsed)
		}
		databases, ok := findCategory(parsed, "databases")
		if !ok || !slices.Contains(databases.Items, "Mongodb") {
			t.Errorf("expected Mongodb under databases, got %+v", parsed)
		}
		if _, ok := findCategory(parsed, "other"); ok {
			t.Errorf("expected no other bucket, got %+v", parsed)
		}
	})

	t.Run("uncategorized tokens land in other", func(t *testing.T) {
		parsed := ParseTechStack("Python or Zig")
		other, ok := findCategory(parsed, "other")
		if !ok {
			t.Fatalf("expected other bucket, got %+v", parsed)
		}
		if !slices.Contains(other.Items, "Zig") {
			t.Errorf("expected Zig under other, got %+v", other.Items)
		}
		// two-character tokens are dropped
		if slices.Contains(other.Items, "Or") {
			t.Errorf("short token leaked into other: %+v", other.Items)
		}
	})

	t.Run("multi-word keyword also surfaces word-level", func(t *testing.T) {
		// The phrase matches the cloud bucket, while the token pass still
		// routes the individual words to other. Kept behavior.
		parsed := ParseTechStack("github actions")

		cloud, ok := findCategory(parsed, "cloud")
		if !ok || !slices.Contains(cloud.Items, "Github Actions") {
			t.Errorf("expected Github Actions under cloud, got %+v", parsed)
		}
		other, ok := findCategory(parsed, "other")
		if !ok {
			t.Fatalf("expected other bucket with split words, got %+v", parsed)
		}
		if !slices.Contains(other.Items, "Github") || !slices.Contains(other.Items, "Actions") {
			t.Errorf("expected Github and Actions under other, got %+v", other.Items)
		}
	})

	t.Run("empty buckets are dropped", func(t *testing.T) {
		parsed := ParseTechStack("mysql")
		if len(parsed) != 1 || parsed[0].Name != "databases" {
			t.Errorf("expected single databases bucket, got %+v", parsed)
		}
	})

	t.Run("category order is stable", func(t *testing.T) {
		parsed := ParseTechStack("mysql docker python react figma somethingelse")
		var names []string
		for _, cat := range parsed {
			names = append(names, cat.Name)
		}
		want := []string{"languages", "frameworks", "databases", "cloud", "tools", "other"}
		if !slices.Equal(names, want) {
			t.Errorf("bucket order = %v, want %v", names, want)
		}
	})
}

func TestFormatTechStackDisplay(t *testing.T) {
	t.Run("labelled lines per bucket", func(t *testing.T) {
		got := FormatTechStackDisplay("docker")
		if !strings.Contains(got, "**Cloud:** Docker") {
			t.Errorf("FormatTechStackDisplay = %q, want cloud line", got)
		}
	})

	t.Run("unparseable input passes through", func(t *testing.T) {
		if got := FormatTechStackDisplay(""); got != "" {
			t.Errorf("FormatTechStackDisplay(empty) = %q, want empty", got)
		}
	})
}
