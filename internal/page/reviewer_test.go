package page_test

import (
	"testing"

	"github.com/ChaseHampton/headstones/internal/page"
	"github.com/ChaseHampton/headstones/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) Changed(p page.Page) {
	m.Called(p)
}

func samplePages(n int) []page.Page {
	pages := make([]page.Page, n)
	for i := range pages {
		h := record.NewHeadstone()
		h.SequenceID = string(rune('A' + i))
		pages[i] = page.Page{FileName: "scan.tif", PageNumber: i + 1, Headstone: h}
	}
	return pages
}

func TestLoadPages_ResetsCursorAndPublishes(t *testing.T) {
	r := page.NewReviewer(zap.NewNop())
	obs := &MockObserver{}
	obs.On("Changed", mock.Anything).Return()
	r.Subscribe(obs.Changed)

	pages := samplePages(3)
	require.NoError(t, r.LoadPages(pages))
	r.Next()
	require.NoError(t, r.LoadPages(pages))

	assert.Equal(t, 0, r.Index())
	assert.Equal(t, 3, r.Len())
	cur, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, 1, cur.PageNumber)
	obs.AssertNumberOfCalls(t, "Changed", 3)
}

func TestLoadPages_EmptyKeepsState(t *testing.T) {
	r := page.NewReviewer(nil)
	require.NoError(t, r.LoadPages(samplePages(2)))
	r.Next()

	assert.ErrorIs(t, r.LoadPages(nil), page.ErrNoPages)
	assert.Equal(t, 1, r.Index())
	assert.Equal(t, 2, r.Len())
}

func TestNextPrevious_Saturate(t *testing.T) {
	r := page.NewReviewer(zap.NewNop())
	obs := &MockObserver{}
	obs.On("Changed", mock.Anything).Return()
	require.NoError(t, r.LoadPages(samplePages(3)))
	r.Subscribe(obs.Changed)

	assert.False(t, r.Previous())
	assert.Equal(t, 0, r.Index())

	assert.True(t, r.Next())
	assert.True(t, r.Next())
	assert.False(t, r.Next())
	assert.Equal(t, 2, r.Index())

	assert.True(t, r.Previous())
	assert.Equal(t, 1, r.Index())

	// Only the three real moves notify.
	obs.AssertNumberOfCalls(t, "Changed", 3)
}

func TestNext_NotifiesEvenWhenValueRepeats(t *testing.T) {
	same := samplePages(1)[0]
	r := page.NewReviewer(zap.NewNop())
	require.NoError(t, r.LoadPages([]page.Page{same, same}))

	var got []page.Page
	r.Subscribe(func(p page.Page) { got = append(got, p) })
	r.Next()
	r.Previous()

	require.Len(t, got, 2)
	assert.Equal(t, got[0], got[1])
}

func TestReviewer_BeforeLoad(t *testing.T) {
	r := page.NewReviewer(zap.NewNop())
	_, ok := r.Current()
	assert.False(t, ok)
	assert.False(t, r.Next())
	assert.False(t, r.Previous())
	assert.Equal(t, 0, r.Len())
}

func TestSaveToDatabase(t *testing.T) {
	r := page.NewReviewer(zap.NewNop())
	assert.True(t, r.SaveToDatabase())
	require.NoError(t, r.LoadPages(samplePages(1)))
	assert.True(t, r.SaveToDatabase())
}

func TestLoadPages_CopiesInput(t *testing.T) {
	r := page.NewReviewer(zap.NewNop())
	pages := samplePages(2)
	require.NoError(t, r.LoadPages(pages))
	pages[0].FileName = "changed"

	cur, _ := r.Current()
	assert.Equal(t, "scan.tif", cur.FileName)
}

func TestPublish_SubscribeDuringNotifyWaitsForNextMove(t *testing.T) {
	r := page.NewReviewer(zap.NewNop())
	late := &MockObserver{}
	late.On("Changed", mock.Anything).Return()

	subscribed := false
	r.Subscribe(func(page.Page) {
		if !subscribed {
			subscribed = true
			r.Subscribe(late.Changed)
		}
	})

	require.NoError(t, r.LoadPages(samplePages(2)))
	late.AssertNotCalled(t, "Changed", mock.Anything)

	r.Next()
	late.AssertNumberOfCalls(t, "Changed", 1)
}
