package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md is a file, and every file is listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopics(t *testing.T) {
	content, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	all, _ := GetAllTopics()
	for _, topic := range all {
		one, _ := GetTopic(topic)
		if !strings.Contains(content, one) {
			t.Errorf("GetTopics(\"*\") does not contain topic %q", topic)
		}
	}
	if strings.Contains(content, "Topics:") {
		t.Error("GetTopics(\"*\") must not contain the readme")
	}

	if _, err := GetTopics("shell", "nope"); err == nil {
		t.Error("GetTopics with an unknown topic should fail")
	}
}

// TestHeadings checks that every topic starts with a single level 1 heading,
// it is used as the topic title.
func TestHeadings(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			var titles int
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
					titles++
				}
				return ast.WalkContinue, nil
			})
			if titles != 1 {
				t.Errorf("%s has %d level 1 headings, want 1", file, titles)
			}
			if first, ok := root.FirstChild().(*ast.Heading); !ok || first.Level != 1 {
				t.Errorf("%s does not start with a level 1 heading", file)
			}
		})
	}
}
