package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rounds/internal/app/navctl"
	"github.com/llehouerou/rounds/internal/app/popupctl"
	"github.com/llehouerou/rounds/internal/settings"
	"github.com/llehouerou/rounds/internal/timer"
	"github.com/llehouerou/rounds/internal/ui/action"
	"github.com/llehouerou/rounds/internal/ui/setupview"
	"github.com/llehouerou/rounds/internal/ui/testutil"
	"github.com/llehouerou/rounds/internal/ui/timerview"
)

var fixedNow = time.Date(2026, 3, 14, 14, 53, 0, 0, time.UTC)

var small = settings.Settings{Rounds: 2, RoundDuration: 90, RestDuration: 30}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	opts.Now = func() time.Time { return fixedNow }
	m := New(settings.NewStore(small), opts)
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return result
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return result, cmd
}

// press sends key and feeds back the action it reports, if any. Only use
// it for keys whose command cannot be a tick.
func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	m, cmd := updateCmd(t, m, testutil.Key(key))
	if msg, ok := testutil.ExecuteCmd(cmd).(action.Msg); ok {
		m = feed(t, m, msg)
	}
	return m
}

// feed delivers an action and keeps delivering the actions that follow
// from it.
func feed(t *testing.T, m Model, msg action.Msg) Model {
	t.Helper()
	m, cmd := updateCmd(t, m, msg)
	if next, ok := testutil.ExecuteCmd(cmd).(action.Msg); ok {
		return feed(t, m, next)
	}
	return m
}

func startSession(t *testing.T, m Model) Model {
	t.Helper()
	m = press(t, m, "enter")
	require.Equal(t, navctl.ScreenTimer, m.Navigation.Screen())
	return m
}

func startRunning(t *testing.T, m Model) Model {
	t.Helper()
	m = startSession(t, m)
	m, _ = updateCmd(t, m, testutil.Key(" "))
	tv, ok := m.Navigation.Timer()
	require.True(t, ok)
	require.True(t, tv.Running())
	return m
}

func TestNew_StartsOnSetup(t *testing.T) {
	m := newTestModel(t, Options{})

	assert.Equal(t, navctl.ScreenSetup, m.Navigation.Screen())
	_, mounted := m.Navigation.Timer()
	assert.False(t, mounted)

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "ROUNDS")
	assert.Contains(t, view, "Training setup")
	assert.Contains(t, view, "2 × 1:30 · 0:30 rest")
}

func TestView_EmptyBeforeSize(t *testing.T) {
	m := New(settings.NewStore(small), Options{})
	assert.Empty(t, m.View())
}

func TestView_TooSmall(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 8})

	assert.Contains(t, m.View(), "Terminal too small")
}

func TestEnter_StartsSession(t *testing.T) {
	m := newTestModel(t, Options{})

	m = startSession(t, m)

	tv, ok := m.Navigation.Timer()
	require.True(t, ok)
	assert.Equal(t, small, tv.Settings())
	assert.False(t, tv.Running(), "a new session starts paused")
	assert.Contains(t, testutil.StripANSI(m.View()), "Round 1 / 2")
}

func TestCommitted_EchoedSettingsKeepSession(t *testing.T) {
	m := newTestModel(t, Options{})
	m = startRunning(t, m)

	// The store echoes the committed value back through the subscription.
	m = update(t, m, SettingsChangedMsg(small))

	tv, _ := m.Navigation.Timer()
	assert.True(t, tv.Running())
}

func TestSettingsChanged_ResetsSession(t *testing.T) {
	m := newTestModel(t, Options{})
	m = startRunning(t, m)

	next := settings.Settings{Rounds: 5, RoundDuration: 60, RestDuration: 0}
	m = update(t, m, SettingsChangedMsg(next))

	tv, _ := m.Navigation.Timer()
	assert.False(t, tv.Running())
	assert.Equal(t, 5, tv.Snapshot().Rounds)
	assert.Equal(t, 60, tv.Snapshot().TimeLeft)
}

func TestSettingsChanged_ReloadsSetup(t *testing.T) {
	store := settings.NewStore(small)
	m := New(store, Options{})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	next := store.Set(settings.Settings{Rounds: 7, RoundDuration: 120, RestDuration: 45})
	m = update(t, m, SettingsChangedMsg(next))

	assert.Equal(t, setupview.FieldsFor(next), m.Navigation.Setup().Fields())
}

func TestSettingsClosed_StopsListening(t *testing.T) {
	m := newTestModel(t, Options{})

	m, cmd := updateCmd(t, m, SettingsClosedMsg{})
	assert.Nil(t, cmd)
	assert.Nil(t, waitForSettings(m.sub))
}

func TestWaitForSettings(t *testing.T) {
	store := settings.NewStore(small)
	sub := store.Subscribe()
	cmd := waitForSettings(sub)

	committed := store.Set(settings.Settings{Rounds: 4, RoundDuration: 60, RestDuration: 10})
	assert.Equal(t, SettingsChangedMsg(committed), cmd())

	store.Close()
	assert.Equal(t, SettingsClosedMsg{}, waitForSettings(sub)())
}

func TestBack_PausedReturnsToSetup(t *testing.T) {
	m := newTestModel(t, Options{})
	m = startSession(t, m)

	m = press(t, m, "esc")

	assert.Equal(t, navctl.ScreenSetup, m.Navigation.Screen())
	_, mounted := m.Navigation.Timer()
	assert.False(t, mounted, "leaving unmounts the session")
}

func TestBack_RunningConfirmed(t *testing.T) {
	m := newTestModel(t, Options{})
	m = startRunning(t, m)

	m = press(t, m, "esc")
	require.Equal(t, popupctl.Confirm, m.Popups.ActivePopup())
	assert.Contains(t, testutil.StripANSI(m.View()), "Stop training?")

	m = press(t, m, "y")

	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
	assert.Equal(t, navctl.ScreenSetup, m.Navigation.Screen())
}

func TestBack_RunningCanceled(t *testing.T) {
	m := newTestModel(t, Options{})
	m = startRunning(t, m)

	m = press(t, m, "esc")
	m = press(t, m, "n")

	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
	assert.Equal(t, navctl.ScreenTimer, m.Navigation.Screen())
	tv, _ := m.Navigation.Timer()
	assert.True(t, tv.Running())
	assert.False(t, tv.Snapshot().ExitPending)
}

func TestBack_ConfirmedAfterRemoteReset(t *testing.T) {
	m := newTestModel(t, Options{})
	m = startRunning(t, m)

	m = press(t, m, "esc")
	require.Equal(t, popupctl.Confirm, m.Popups.ActivePopup())
	m = update(t, m, RemoteMsg{Command: RemoteReset})

	m = press(t, m, "y")

	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
	assert.Equal(t, navctl.ScreenSetup, m.Navigation.Screen())
	_, mounted := m.Navigation.Timer()
	assert.False(t, mounted, "the confirmed exit survives the reset")
}

func TestQuit_Idle(t *testing.T) {
	m := newTestModel(t, Options{})

	_, cmd := updateCmd(t, m, testutil.Key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestQuit_RunningAsks(t *testing.T) {
	m := newTestModel(t, Options{})
	m = startRunning(t, m)

	m = press(t, m, "q")
	require.Equal(t, popupctl.Confirm, m.Popups.ActivePopup())

	m = press(t, m, "n")
	tv, _ := m.Navigation.Timer()
	assert.True(t, tv.Running())

	m = press(t, m, "q")
	m, cmd := updateCmd(t, m, testutil.Key("y"))
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok)
	_, cmd = updateCmd(t, m, msg)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestCtrlC_QuitsAndStopsSession(t *testing.T) {
	m := newTestModel(t, Options{})
	m = startRunning(t, m)
	tv, _ := m.Navigation.Timer()

	_, cmd := updateCmd(t, m, testutil.Key("ctrl+c"))

	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.False(t, tv.Running(), "engine closed on quit")
}

func TestHelp_PerScreen(t *testing.T) {
	m := newTestModel(t, Options{})

	m = press(t, m, "?")
	require.Equal(t, popupctl.Help, m.Popups.ActivePopup())
	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "Setup")

	m = press(t, m, "?")
	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())

	m = startSession(t, m)
	m = press(t, m, "?")
	assert.Contains(t, testutil.StripANSI(m.View()), "reset")
}

func TestHelp_SwallowsScreenKeys(t *testing.T) {
	m := newTestModel(t, Options{})
	m = startSession(t, m)
	m = press(t, m, "?")

	m, _ = updateCmd(t, m, testutil.Key(" "))

	tv, _ := m.Navigation.Timer()
	assert.False(t, tv.Running())
}

func TestNotice_ShownAndDismissed(t *testing.T) {
	m := newTestModel(t, Options{Notice: "Failed to register media controls: no bus"})
	m.Init()

	require.Equal(t, popupctl.Error, m.Popups.ActivePopup())
	assert.Contains(t, testutil.StripANSI(m.View()), "no bus")

	m = press(t, m, "x")
	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
}

func TestRemote_DrivesTimer(t *testing.T) {
	remote := NewRemote()
	var sent []tea.Msg
	remote.SetSender(func(msg tea.Msg) { sent = append(sent, msg) })

	m := newTestModel(t, Options{Remote: remote})
	assert.Equal(t, 1, remote.Snapshot().Round)
	assert.False(t, remote.Snapshot().Running)

	remote.Play()
	require.Len(t, sent, 1)
	m = update(t, m, sent[0])
	assert.False(t, remote.Snapshot().Running, "ignored without a session")

	m = startSession(t, m)
	m = update(t, m, RemoteMsg{Command: RemotePlay})
	assert.True(t, remote.Snapshot().Running)

	m = update(t, m, RemoteMsg{Command: RemoteToggle})
	assert.False(t, remote.Snapshot().Running)

	m = update(t, m, RemoteMsg{Command: RemoteToggle})
	m = update(t, m, RemoteMsg{Command: RemotePause})
	assert.False(t, remote.Snapshot().Running)

	m = update(t, m, RemoteMsg{Command: RemoteReset})
	assert.Equal(t, timer.PhaseRound, remote.Snapshot().Phase)
	assert.Equal(t, 90, remote.Snapshot().TimeLeft)
}

func TestRemote_DropsWithoutSender(t *testing.T) {
	remote := NewRemote()
	assert.NotPanics(t, remote.Toggle)
	assert.Equal(t, timer.Snapshot{}, remote.Snapshot())
}

func TestFlash_ReachesTimer(t *testing.T) {
	m := newTestModel(t, Options{})
	m = startSession(t, m)

	m = update(t, m, timerview.FlashMsg{Text: "REST", Phase: timer.PhaseRest})

	assert.Contains(t, testutil.StripANSI(m.View()), "REST")
}
