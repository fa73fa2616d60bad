package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryList(t *testing.T) {
	ta := newTestApp(t)
	ta.history.EXPECT().Load(gomock.Any()).Return([]string{"bob", "alice"}, nil)

	require.NoError(t, ta.run("history", "list"))

	assert.Contains(t, ta.out.String(), " 1  bob\n")
	assert.Contains(t, ta.out.String(), " 2  alice\n")
}

func TestHistoryList_EmptyJSON(t *testing.T) {
	ta := newTestApp(t)
	ta.history.EXPECT().Load(gomock.Any()).Return(nil, nil)

	require.NoError(t, ta.run("history", "list", "--format", "json"))

	assert.JSONEq(t, `[]`, ta.out.String())
}

func TestHistoryRemove(t *testing.T) {
	ta := newTestApp(t)
	ta.history.EXPECT().Load(gomock.Any()).Return([]string{"bob", "alice"}, nil)
	ta.history.EXPECT().Save(gomock.Any(), []string{"bob"}).Return(nil)

	require.NoError(t, ta.run("history", "rm", "2"))

	assert.NotContains(t, ta.out.String(), "alice")
}

func TestHistoryRemove_UnknownEntry(t *testing.T) {
	ta := newTestApp(t)
	ta.history.EXPECT().Load(gomock.Any()).Return([]string{"bob"}, nil)

	err := ta.run("history", "rm", "5")

	assert.ErrorIs(t, err, ErrUnknownHistoryEntry)
}

func TestHistoryClear(t *testing.T) {
	ta := newTestApp(t)
	ta.history.EXPECT().Load(gomock.Any()).Return([]string{"bob"}, nil)
	ta.history.EXPECT().Save(gomock.Any(), []string{}).Return(nil)

	require.NoError(t, ta.run("history", "clear"))

	assert.Contains(t, ta.out.String(), "no recent searches")
}
