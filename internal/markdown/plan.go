package markdown

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

var ErrInvalidPlan = errors.New("invalid plan")

var (
	checkboxPrefix = regexp.MustCompile(`^\s*\[[ xX]\]\s*`)
	taskLine       = regexp.MustCompile(`^(.*?)\s*\((\d+)\s*h\)(?:\s+due\s+(\S+))?\s*$`)
)

// Plan is a goal written as a markdown checklist:
//
//	---
//	name: Learn X
//	hours: 10
//	---
//	- [ ] read the book (4h) due 01/01/2030
//	- [x] practice (6h)
//
// Values are kept as written so they go through the same validation as
// form input.
type Plan struct {
	Name  string
	Hours string
	Tasks []PlannedTask
}

type PlannedTask struct {
	Description string
	Hours       string
	Deadline    string
	Completed   bool
}

// ParsePlan reads the goal from the frontmatter (falling back to the first
// level one heading for the name) and one task per GFM task list item.
func (p *Parser) ParsePlan(source []byte) (*Plan, error) {
	doc := p.parse(source)
	plan := &Plan{
		Name:  metaString(doc.meta, "name"),
		Hours: metaString(doc.meta, "hours"),
	}

	err := ast.Walk(doc.doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if plan.Name == "" && node.Level == 1 {
				plan.Name = blockText(node, doc.source)
			}
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			first := node.FirstChild()
			if first == nil {
				return ast.WalkContinue, nil
			}
			checkbox, ok := first.FirstChild().(*extast.TaskCheckBox)
			if !ok {
				return ast.WalkContinue, nil
			}

			task, err := parseTaskLine(blockText(first, doc.source))
			if err != nil {
				return ast.WalkStop, err
			}
			task.Completed = checkbox.IsChecked
			plan.Tasks = append(plan.Tasks, task)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

func parseTaskLine(line string) (PlannedTask, error) {
	line = checkboxPrefix.ReplaceAllString(line, "")

	match := taskLine.FindStringSubmatch(line)
	if match == nil {
		return PlannedTask{}, fmt.Errorf("%w: task %q has no hour weight like (4h)", ErrInvalidPlan, line)
	}

	return PlannedTask{
		Description: strings.TrimSpace(match[1]),
		Hours:       match[2],
		Deadline:    match[3],
	}, nil
}

func blockText(n ast.Node, source []byte) string {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		parts = append(parts, strings.TrimSpace(string(segment.Value(source))))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func metaString(meta map[string]any, key string) string {
	value, ok := meta[key]
	if !ok || value == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(value))
}
