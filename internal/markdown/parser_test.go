package markdown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan(t *testing.T) {
	source := []byte(`---
name: Learn X
hours: 10
---

Some notes that are not tasks.

- [ ] read the book (4h) due 01/01/2030
- [x] practice (6h)
- a plain bullet
`)

	plan, err := NewParser().ParsePlan(source)
	require.NoError(t, err)

	assert.Equal(t, "Learn X", plan.Name)
	assert.Equal(t, "10", plan.Hours)
	assert.Equal(t, []PlannedTask{
		{Description: "read the book", Hours: "4", Deadline: "01/01/2030"},
		{Description: "practice", Hours: "6", Completed: true},
	}, plan.Tasks)
}

func TestParsePlanNameFromHeading(t *testing.T) {
	source := []byte(`# Run a marathon

- [ ] buy shoes (1h)
`)

	plan, err := NewParser().ParsePlan(source)
	require.NoError(t, err)

	assert.Equal(t, "Run a marathon", plan.Name)
	assert.Empty(t, plan.Hours)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "buy shoes", plan.Tasks[0].Description)
}

func TestParsePlanRejectsTaskWithoutWeight(t *testing.T) {
	source := []byte(`# Goal

- [ ] no weight here
`)

	_, err := NewParser().ParsePlan(source)
	assert.True(t, errors.Is(err, ErrInvalidPlan))
}

func TestRenderOmitsRawHTML(t *testing.T) {
	html, err := NewParser().Render([]byte("**bold** <script>alert(1)</script>"))
	require.NoError(t, err)

	assert.Contains(t, string(html), "<strong>bold</strong>")
	assert.NotContains(t, string(html), "<script>")
}
