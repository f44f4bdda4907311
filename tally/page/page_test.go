package page

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/tally-mcp/tally/model"
)

func intPtr(v int) *int { return &v }

func TestLimit(t *testing.T) {
	var testCases = []struct {
		description string
		requested   *int
		expect      int
	}{
		{description: "absent", requested: nil, expect: 20},
		{description: "zero", requested: intPtr(0), expect: 20},
		{description: "negative", requested: intPtr(-3), expect: 20},
		{description: "within range", requested: intPtr(5), expect: 5},
		{description: "lower bound", requested: intPtr(1), expect: 1},
		{description: "upper bound", requested: intPtr(50), expect: 50},
		{description: "over cap", requested: intPtr(999), expect: 50},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, Limit(testCase.requested), testCase.description)
	}
}

func TestInput_Map(t *testing.T) {
	assert.EqualValues(t, map[string]interface{}{"limit": 20}, New(nil, "", "").Map())
	assert.EqualValues(t, map[string]interface{}{"limit": 10, "afterCursor": "a"}, New(intPtr(10), "a", "").Map())
	assert.EqualValues(t, map[string]interface{}{"limit": 50, "beforeCursor": "b"}, New(intPtr(70), "", "b").Map())
}

// pagedSource serves ids 0..total-1 in pages of size, minting opaque cursors.
func pagedSource(total, size int) (Fetch[int], *[]string) {
	var requested []string
	return func(ctx context.Context, afterCursor string) ([]int, model.PageInfo, error) {
		requested = append(requested, afterCursor)
		start := 0
		if afterCursor != "" {
			if _, err := fmt.Sscanf(afterCursor, "cursor-%d", &start); err != nil {
				return nil, model.PageInfo{}, err
			}
			start++
		}
		var items []int
		for i := start; i < total && len(items) < size; i++ {
			items = append(items, i)
		}
		info := model.PageInfo{}
		if len(items) > 0 {
			first := fmt.Sprintf("cursor-%d", items[0])
			info.FirstCursor = &first
			if items[len(items)-1] < total-1 {
				last := fmt.Sprintf("cursor-%d", items[len(items)-1])
				info.LastCursor = &last
			}
		}
		return items, info, nil
	}, &requested
}

func TestWalk_NoRepeats(t *testing.T) {
	var testCases = []struct {
		description string
		total       int
		size        int
		pages       int
	}{
		{description: "empty", total: 0, size: 5, pages: 1},
		{description: "single page", total: 3, size: 5, pages: 1},
		{description: "exact multiple", total: 10, size: 5, pages: 2},
		{description: "remainder", total: 12, size: 5, pages: 3},
	}
	for _, testCase := range testCases {
		fetch, requested := pagedSource(testCase.total, testCase.size)
		items, err := Collect(context.Background(), fetch)
		require.NoError(t, err, testCase.description)
		assert.Len(t, items, testCase.total, testCase.description)
		seen := map[int]bool{}
		for _, item := range items {
			assert.False(t, seen[item], "%s: item %d repeated", testCase.description, item)
			seen[item] = true
		}
		assert.Len(t, *requested, testCase.pages, testCase.description)
		assert.EqualValues(t, "", (*requested)[0], testCase.description)
	}
}

func TestWalk_RepeatedCursor(t *testing.T) {
	cursor := "same"
	fetch := func(ctx context.Context, afterCursor string) ([]int, model.PageInfo, error) {
		return []int{1}, model.PageInfo{LastCursor: &cursor}, nil
	}
	_, err := Collect[int](context.Background(), fetch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repeated")
}

func TestWalk_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	fetch := func(ctx context.Context, afterCursor string) ([]int, model.PageInfo, error) {
		return nil, model.PageInfo{}, boom
	}
	_, err := Collect[int](context.Background(), fetch)
	assert.ErrorIs(t, err, boom)

	stop := errors.New("stop")
	fetch2, _ := pagedSource(10, 2)
	err = Walk(context.Background(), fetch2, func(items []int) error { return stop })
	assert.ErrorIs(t, err, stop)
}
