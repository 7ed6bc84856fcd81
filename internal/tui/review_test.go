package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/ChaseHampton/headstones/internal/page"
	"github.com/ChaseHampton/headstones/internal/record"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteRecord(ctx context.Context, index int, h *record.Headstone) error {
	args := m.Called(ctx, index, h)
	return args.Error(0)
}

func loadedReviewer(t *testing.T) *page.Reviewer {
	t.Helper()
	r := page.NewReviewer(zap.NewNop())
	var pages []page.Page
	for i, last := range []string{"DOE", "ROE"} {
		h := record.NewHeadstone()
		h.SequenceID = last + "-1"
		h.Primary.FirstName = "JOHN"
		h.Primary.LastName = last
		pages = append(pages, page.Page{FileName: "scan.tif", PageNumber: i + 1, Headstone: h})
	}
	require.NoError(t, r.LoadPages(pages))
	return r
}

func press(m tea.Model, key string) (tea.Model, tea.Cmd) {
	switch key {
	case "right":
		return m.Update(tea.KeyMsg{Type: tea.KeyRight})
	case "left":
		return m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	case "ctrl+c":
		return m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	default:
		return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}
}

func TestModel_Navigation(t *testing.T) {
	r := loadedReviewer(t)
	var m tea.Model = New(r, nil)

	m, _ = press(m, "right")
	assert.Equal(t, 1, r.Index())
	m, _ = press(m, "l")
	assert.Equal(t, 1, r.Index())
	m, _ = press(m, "h")
	assert.Equal(t, 0, r.Index())
	m, _ = press(m, "n")
	assert.Equal(t, 1, r.Index())
	_, _ = press(m, "p")
	assert.Equal(t, 0, r.Index())
}

func TestModel_View(t *testing.T) {
	r := loadedReviewer(t)
	view := New(r, nil).View()

	assert.Contains(t, view, "Page 1 of 2")
	assert.Contains(t, view, "JOHN DOE")
	assert.Contains(t, view, "Primary decedent")
	assert.NotContains(t, view, "Decedent 2")
}

func TestModel_ViewBeforeLoad(t *testing.T) {
	assert.Equal(t, "no pages loaded\n", New(page.NewReviewer(nil), nil).View())
}

func TestModel_Quit(t *testing.T) {
	m := New(loadedReviewer(t), nil)
	for _, key := range []string{"q", "ctrl+c"} {
		_, cmd := press(m, key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestModel_SaveWritesCurrentPage(t *testing.T) {
	r := loadedReviewer(t)
	r.Next()
	cur, _ := r.Current()

	w := &MockWriter{}
	w.On("WriteRecord", mock.Anything, 2, mock.MatchedBy(func(h *record.Headstone) bool {
		return h != cur.Headstone && h.SequenceID == "ROE-1"
	})).Run(func(args mock.Arguments) {
		args.Get(2).(*record.Headstone).PrimaryKey = "FS-A-1-12"
	}).Return(nil)

	m, cmd := press(New(r, w), "s")
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Empty(t, cur.Headstone.PrimaryKey)

	m, _ = m.Update(msg)

	w.AssertExpectations(t)
	assert.Equal(t, "FS-A-1-12", cur.Headstone.PrimaryKey)
	assert.Contains(t, m.View(), "saved")
	assert.Contains(t, m.View(), "FS-A-1-12")
}

func TestModel_SaveRunsAlongsideView(t *testing.T) {
	r := loadedReviewer(t)
	cur, _ := r.Current()

	w := &MockWriter{}
	w.On("WriteRecord", mock.Anything, 1, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(2).(*record.Headstone).PrimaryKey = "FS-B-2-3"
	}).Return(nil)

	m, cmd := press(New(r, w), "s")
	require.NotNil(t, cmd)

	done := make(chan tea.Msg)
	go func() { done <- cmd() }()
	for i := 0; i < 50; i++ {
		_ = m.View()
	}
	m, _ = m.Update(<-done)

	assert.Equal(t, "FS-B-2-3", cur.Headstone.PrimaryKey)
	assert.Contains(t, m.View(), "FS-B-2-3")
}

func TestModel_FailedSaveKeepsKey(t *testing.T) {
	r := loadedReviewer(t)
	cur, _ := r.Current()
	cur.Headstone.PrimaryKey = "OLD"

	w := &MockWriter{}
	w.On("WriteRecord", mock.Anything, 1, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(2).(*record.Headstone).PrimaryKey = "NEW"
	}).Return(errors.New("locked"))

	m, cmd := press(New(r, w), "s")
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())

	assert.Equal(t, "OLD", cur.Headstone.PrimaryKey)
}

func TestModel_SaveFailureShown(t *testing.T) {
	r := loadedReviewer(t)
	w := &MockWriter{}
	w.On("WriteRecord", mock.Anything, 1, mock.Anything).Return(errors.New("disk full"))

	m, cmd := press(New(r, w), "s")
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())

	assert.Contains(t, m.View(), "save failed: disk full")
}

func TestModel_SaveWithoutWriter(t *testing.T) {
	m, cmd := press(New(loadedReviewer(t), nil), "s")
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	assert.Contains(t, m.View(), "saved")
}
