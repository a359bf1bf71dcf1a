package reading

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids[T interface{ RecordID() int }](list []T) []int {
	result := make([]int, len(list))
	for i := range list {
		result[i] = list[i].RecordID()
	}
	return result
}

func assertNoticesOrdered(t *testing.T, notices []Notice) {
	t.Helper()
	for i := 1; i < len(notices); i++ {
		prev, cur := notices[i-1], notices[i]
		if !prev.Important && cur.Important {
			t.Errorf("important notice %d after regular notice %d", cur.ID, prev.ID)
		}
		if prev.Important == cur.Important && prev.Date < cur.Date {
			t.Errorf("notice %d (%s) before newer notice %d (%s)", prev.ID, prev.Date, cur.ID, cur.Date)
		}
	}
}

func TestNotices(t *testing.T) {
	t.Run("ListIsImportantFirstThenNewest", func(t *testing.T) {
		ctx, m := newTestManager(t)

		page, err := m.Notices.List(ctx, NoticeFilter{}, NewPageRequest(nil, nil))
		require.NoError(t, err)

		assert.Equal(t, []int{1, 3, 6, 2, 4, 5}, ids(page.Data))
		assertNoticesOrdered(t, page.Data)
		assert.Equal(t, 6, page.Total)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("ByIDCountsViews", func(t *testing.T) {
		ctx, m := newTestManager(t)

		first, err := m.Notices.ByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, 11, first.Views)

		second, err := m.Notices.ByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 12, second.Views)
	})

	t.Run("ByIDMissing", func(t *testing.T) {
		ctx, m := newTestManager(t)

		n, err := m.Notices.ByID(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, n)
	})

	t.Run("SearchTitleAndContent", func(t *testing.T) {
		ctx, m := newTestManager(t)

		page, err := m.Notices.List(ctx, NoticeFilter{Search: "오리엔테이션"}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, []int{6}, ids(page.Data))

		page, err = m.Notices.List(ctx, NoticeFilter{Search: "Updated list"}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, []int{5}, ids(page.Data))
	})

	t.Run("CreateSetsServerFieldsAndPrepends", func(t *testing.T) {
		ctx, m := newTestManager(t)

		created, err := m.Notices.Create(ctx, Notice{
			ID:        99,
			Title:     "새 공지",
			Content:   "내용",
			Author:    "관리자",
			Date:      "1999-01-01",
			Views:     500,
			Important: false,
		})
		require.NoError(t, err)

		want := Notice{
			ID:          7,
			Title:       "새 공지",
			Content:     "내용",
			Author:      "관리자",
			Date:        "2026-03-15",
			Views:       0,
			Attachments: []string{},
		}
		if diff := cmp.Diff(want, created); diff != "" {
			t.Errorf("created notice mismatch (-want +got):\n%s", diff)
		}

		all, err := m.Notices.Query(ctx, PageRequest{Page: 1, PageSize: 100})
		require.NoError(t, err)
		assert.Equal(t, 7, all.Total)

		rows, err := m.Notices.table.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{7, 1, 2, 3, 4, 5, 6}, ids(rows), "new notice goes to the front of the store")

		stored, err := m.Notices.Catalog.ByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 0, stored.Views, "plain lookup must not count a view")
	})

	t.Run("UpdateKeepsIDAndViews", func(t *testing.T) {
		ctx, m := newTestManager(t)

		otherID, views, title := 999, 0, "X"
		updated, err := m.Notices.Update(ctx, 2, NoticePatch{ID: &otherID, Views: &views, Title: &title})
		require.NoError(t, err)
		require.NotNil(t, updated)

		want := SeedNotices()[1]
		want.Title = "X"
		if diff := cmp.Diff(want, *updated); diff != "" {
			t.Errorf("updated notice mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("DeleteThenGet", func(t *testing.T) {
		ctx, m := newTestManager(t)

		ok, err := m.Notices.Delete(ctx, 3)
		require.NoError(t, err)
		assert.True(t, ok)

		n, err := m.Notices.ByID(ctx, 3)
		require.NoError(t, err)
		assert.Nil(t, n)

		ok, err = m.Notices.Delete(ctx, 3)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestReviews(t *testing.T) {
	t.Run("FilterByType", func(t *testing.T) {
		ctx, m := newTestManager(t)

		page, err := m.Reviews.List(ctx, ReviewFilter{Type: ReviewTypeOgeoseo}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4, 6}, ids(page.Data))
	})

	t.Run("FilterByProgram", func(t *testing.T) {
		ctx, m := newTestManager(t)

		page, err := m.Reviews.List(ctx, ReviewFilter{ProgramID: intPtr(1)}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 5}, ids(page.Data))
	})

	t.Run("SearchAcrossFields", func(t *testing.T) {
		ctx, m := newTestManager(t)

		for search, want := range map[string][]int{
			"칼 세이건":      {4},
			"Emily":      {3},
			"트롤리":        {5},
			"데미안":        {1},
			"nothing-here": {},
		} {
			page, err := m.Reviews.List(ctx, ReviewFilter{Search: search}, NewPageRequest(nil, nil))
			require.NoError(t, err)
			assert.Equal(t, want, ids(page.Data), "search %q", search)
		}
	})

	t.Run("TypeAndSearchCombine", func(t *testing.T) {
		ctx, m := newTestManager(t)

		page, err := m.Reviews.List(ctx, ReviewFilter{Type: ReviewTypeProgram, Search: "데미안"}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, []int{1}, ids(page.Data))

		page, err = m.Reviews.List(ctx, ReviewFilter{Type: ReviewTypeOgeoseo, Search: "데미안"}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Empty(t, page.Data)
	})

	t.Run("CreateResetsCounters", func(t *testing.T) {
		ctx, m := newTestManager(t)

		created, err := m.Reviews.Create(ctx, Review{
			Type:     ReviewTypeOgeoseo,
			User:     Reviewer{Name: "홍길동", Avatar: "/a.png"},
			Book:     ReviewedBook{Title: "1984", Author: "조지 오웰"},
			Rating:   5,
			Text:     "감시 사회에 대한 경고",
			Likes:    100,
			Comments: 50,
			TimeAgo:  "1년 전",
		})
		require.NoError(t, err)
		assert.Equal(t, 7, created.ID)
		assert.Zero(t, created.Likes)
		assert.Zero(t, created.Comments)
		assert.Equal(t, JustNow, created.TimeAgo)

		page, err := m.Reviews.List(ctx, ReviewFilter{}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, 7, page.Data[0].ID, "new reviews come first")
	})

	t.Run("LikeIncrements", func(t *testing.T) {
		ctx, m := newTestManager(t)

		r, err := m.Reviews.Like(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 13, r.Likes)

		missing, err := m.Reviews.Like(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("UpdateReplacesNestedObjects", func(t *testing.T) {
		ctx, m := newTestManager(t)

		likes := 0
		book := ReviewedBook{Title: "동물농장", Author: "조지 오웰", Cover: "/c.jpg"}
		updated, err := m.Reviews.Update(ctx, 1, ReviewPatch{Book: &book, Likes: &likes})
		require.NoError(t, err)
		assert.Equal(t, book, updated.Book)
		assert.Equal(t, 24, updated.Likes)
		assert.Equal(t, "김민지", updated.User.Name)
	})

	t.Run("DeleteDoesNotCascade", func(t *testing.T) {
		ctx, m := newTestManager(t)

		ok, err := m.Programs.Delete(ctx, 1)
		require.NoError(t, err)
		require.True(t, ok)

		r, err := m.Reviews.ByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, r.ProgramID)
		assert.Equal(t, 1, *r.ProgramID)
	})
}

func TestClassics(t *testing.T) {
	t.Run("SearchDemian", func(t *testing.T) {
		ctx, m := newTestManager(t)

		page, err := m.Classics.List(ctx, ClassicFilter{Search: "데미안"}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, ids(page.Data))
		for _, c := range page.Data {
			if !strings.Contains(c.Title, "데미안") && !strings.Contains(c.Author, "데미안") &&
				!strings.Contains(c.Description, "데미안") {
				t.Errorf("classic %d does not mention the search term", c.ID)
			}
		}
	})

	t.Run("CategoryAndYear", func(t *testing.T) {
		ctx, m := newTestManager(t)

		page, err := m.Classics.List(ctx, ClassicFilter{Category: "문학"}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(page.Data))

		page, err = m.Classics.List(ctx, ClassicFilter{Category: "문학", Year: intPtr(1949)}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, []int{4}, ids(page.Data))

		page, err = m.Classics.List(ctx, ClassicFilter{Category: "과학", Year: intPtr(1949)}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.Zero(t, page.TotalPages)
	})

	t.Run("Pagination", func(t *testing.T) {
		ctx, m := newTestManager(t)

		page, err := m.Classics.List(ctx, ClassicFilter{}, PageRequest{Page: 2, PageSize: 5})
		require.NoError(t, err)
		assert.Equal(t, []int{6, 7, 8, 9, 10}, ids(page.Data))
		assert.Equal(t, 12, page.Total)
		assert.Equal(t, 3, page.TotalPages)

		page, err = m.Classics.List(ctx, ClassicFilter{}, PageRequest{Page: 4, PageSize: 5})
		require.NoError(t, err)
		assert.NotNil(t, page.Data)
		assert.Empty(t, page.Data)
	})

	t.Run("CreateAppends", func(t *testing.T) {
		ctx, m := newTestManager(t)

		created, err := m.Classics.Create(ctx, Classic{ID: 1, Title: "변신", Author: "프란츠 카프카", Year: 1915, Category: "문학"})
		require.NoError(t, err)
		assert.Equal(t, 13, created.ID)

		page, err := m.Classics.List(ctx, ClassicFilter{}, PageRequest{Page: 1, PageSize: 100})
		require.NoError(t, err)
		assert.Equal(t, 13, page.Data[len(page.Data)-1].ID)

		got, err := m.Classics.ByID(ctx, 13)
		require.NoError(t, err)
		assert.Equal(t, created, *got)
	})
}

func TestPrograms(t *testing.T) {
	t.Run("FilterByStatus", func(t *testing.T) {
		ctx, m := newTestManager(t)

		page, err := m.Programs.List(ctx, ProgramFilter{Status: ProgramStatusRecruiting}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 4}, ids(page.Data))

		page, err = m.Programs.List(ctx, ProgramFilter{Category: "독서토론", Search: "English"}, NewPageRequest(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, []int{4}, ids(page.Data))
	})

	t.Run("CreateResetsParticipants", func(t *testing.T) {
		ctx, m := newTestManager(t)

		created, err := m.Programs.Create(ctx, Program{Title: "시 낭독회", Participants: 40, Capacity: 20})
		require.NoError(t, err)
		assert.Equal(t, 5, created.ID)
		assert.Zero(t, created.Participants)
	})

	t.Run("JoinIncrements", func(t *testing.T) {
		ctx, m := newTestManager(t)

		p, err := m.Programs.Join(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, 6, p.Participants)
	})

	t.Run("UpdateIgnoresParticipants", func(t *testing.T) {
		ctx, m := newTestManager(t)

		participants, status := 0, ProgramStatusClosed
		p, err := m.Programs.Update(ctx, 2, ProgramPatch{Participants: &participants, Status: &status})
		require.NoError(t, err)
		assert.Equal(t, 45, p.Participants)
		assert.Equal(t, ProgramStatusClosed, p.Status)
	})
}

func TestManager_Stats(t *testing.T) {
	ctx, m := newTestManager(t)

	stats, err := m.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Notices: 6, Reviews: 6, Classics: 12, Programs: 4}, stats)

	_, err = m.Notices.Delete(ctx, 1)
	require.NoError(t, err)

	stats, err = m.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Notices)
}

func TestManager_SeedRestoresDataset(t *testing.T) {
	ctx, m := newTestManager(t)

	_, err := m.Classics.Delete(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, m.Seed(ctx))

	page, err := m.Classics.List(ctx, ClassicFilter{}, PageRequest{Page: 1, PageSize: 100})
	require.NoError(t, err)
	if diff := cmp.Diff(SeedClassics(), page.Data); diff != "" {
		t.Errorf("classics after reseed mismatch (-want +got):\n%s", diff)
	}
}
